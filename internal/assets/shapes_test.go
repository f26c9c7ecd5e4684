package assets

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

func TestShapesCoverEverySpriteKey(t *testing.T) {
	cfg := config.Default()
	shapes := Shapes(cfg)

	specs := entity.Sprites(cfg)
	if shapes.Len() != len(specs) {
		t.Errorf("catalog has %d shapes, expected %d", shapes.Len(), len(specs))
	}
	for _, spec := range specs {
		if !shapes.Has(spec.Key) {
			t.Errorf("missing shape for %q", spec.Key)
		}
		if got := shapes.Lookup(spec.Key).Radius; got != spec.Radius {
			t.Errorf("%q radius = %v, expected %v", spec.Key, got, spec.Radius)
		}
	}
}

func TestAsteroidShapesFitTheirBody(t *testing.T) {
	cfg := config.Default()
	shapes := Shapes(cfg)

	for tier := 1; tier <= cfg.Asteroid.Tiers; tier++ {
		for kind := 1; kind <= cfg.Asteroid.Kinds; kind++ {
			s := shapes.Lookup(entity.AsteroidSprite(tier, kind))
			r := float64(tier) * cfg.Asteroid.MinRadius
			if s.Radius != r {
				t.Errorf("tier %d radius = %v, expected %v", tier, s.Radius, r)
			}
			if ext := s.Extent(); ext > r+1e-9 || ext < 0.75*r {
				t.Errorf("tier %d kind %d extent = %v, expected within [%v, %v]", tier, kind, ext, 0.75*r, r)
			}
		}
	}

	a := shapes.Lookup(entity.AsteroidSprite(2, 1))
	b := shapes.Lookup(entity.AsteroidSprite(2, 2))
	if len(a.Polys[0].Points) == len(b.Polys[0].Points) {
		t.Error("visual kinds should differ in outline")
	}
}

func TestShipShapes(t *testing.T) {
	cfg := config.Default()
	shapes := Shapes(cfg)

	idle := shapes.Lookup(entity.SpriteShip)
	thrust := shapes.Lookup(entity.SpriteShipThrust)
	if len(thrust.Polys) != len(idle.Polys)+1 {
		t.Error("thrust sprite should add a flame")
	}
	// Nose points along +Y.
	if nose := idle.Polys[0].Points[0]; nose.Y != cfg.Ship.Radius || nose.X != 0 {
		t.Errorf("nose = %v, expected (0, %v)", nose, cfg.Ship.Radius)
	}
}

func TestPlatformShapes(t *testing.T) {
	cfg := config.Default()
	shapes := Shapes(cfg)
	r := cfg.Platform.Radius

	body := shapes.Lookup(entity.SpritePlatform)
	cooling := shapes.Lookup(entity.SpritePlatformCool)
	if ext := body.Extent(); ext != r {
		t.Errorf("platform extent = %v, expected %v", ext, r)
	}
	last := len(body.Circles) - 1
	if body.Circles[last].Color == cooling.Circles[last].Color {
		t.Error("cooling platform should dim its hub")
	}

	tests := []struct {
		engine entity.EngineState
		side   core.Vec2 // where the flame sits relative to the hull
	}{
		{entity.EngineTop, core.V(0, -1)},
		{entity.EngineBottom, core.V(0, 1)},
		{entity.EngineLeft, core.V(-1, 0)},
		{entity.EngineRight, core.V(1, 0)},
	}
	for _, tc := range tests {
		key := entity.PlatformEngineSprite(tc.engine)
		t.Run(key, func(t *testing.T) {
			flame := shapes.Lookup(key)
			tip := flame.Polys[0].Points[1]
			if tip.Sub(tc.side.Scale(1.5*r)).Len() > 1e-9 {
				t.Errorf("flame tip = %v, expected %v", tip, tc.side.Scale(1.5*r))
			}
		})
	}
}

func TestExplosionGrows(t *testing.T) {
	cfg := config.Default()
	shapes := Shapes(cfg)

	prev := 0.0
	for step := 1; step <= cfg.Explosion.Steps; step++ {
		ext := shapes.Lookup(entity.ExplosionSprite(step)).Extent()
		if ext <= prev {
			t.Errorf("step %d extent %v does not grow past %v", step, ext, prev)
		}
		prev = ext
	}
}
