package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func testLoadout(cfg config.AsteroidsConfig, secondary bool) Loadout {
	return Loadout{Primary: cfg.Primary, Secondary: cfg.Secondary, SecondaryArmed: secondary}
}

func TestCollidesSymmetric(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))

	ship := NewShip(core.V(100, 100), cfg.Ship, testLoadout(cfg, false), rng)
	entities := []Entity{
		ship,
		NewAsteroid(core.V(130, 100), core.Vec2{}, 1, 1, 20),
		NewAsteroid(core.V(160, 100), core.Vec2{}, 2, 1, 20),
		NewProjectile(core.V(100, 126), core.Vec2{}, 5, WeaponPrimary, 1),
		NewProjectile(core.V(500, 500), core.Vec2{}, 5, WeaponPrimary, 1),
		NewExplosion(core.V(95, 95), 10, cfg.Explosion),
	}

	for i, a := range entities {
		for j, b := range entities {
			ab, ba := Collides(a, b), Collides(b, a)
			if ab != ba {
				t.Errorf("Collides(%d,%d)=%v but Collides(%d,%d)=%v", i, j, ab, j, i, ba)
			}
			ba2, bb2 := BodyOf(a), BodyOf(b)
			want := ba2.Pos.Distance(bb2.Pos) <= ba2.Radius+bb2.Radius
			if ab != want {
				t.Errorf("Collides(%d,%d)=%v, expected %v", i, j, ab, want)
			}
		}
	}
}

func TestCollidesTouching(t *testing.T) {
	a := NewAsteroid(core.V(0, 0), core.Vec2{}, 1, 1, 20)
	b := NewAsteroid(core.V(40, 0), core.Vec2{}, 1, 1, 20)
	if !Collides(a, b) {
		t.Error("circles that exactly touch should collide")
	}
	b.Pos = core.V(40.001, 0)
	if Collides(a, b) {
		t.Error("separated circles should not collide")
	}
}

func TestAsteroidSplit(t *testing.T) {
	cfg := config.Default().Asteroid

	tests := []struct {
		name         string
		tier         int
		wantChildren int
	}{
		{"smallest tier vanishes", 1, 0},
		{"middle tier halves", 2, 2},
		{"largest tier halves", 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			a := NewAsteroid(core.V(100, 100), core.V(0, 50), tc.tier, 2, cfg.MinRadius)

			children := a.Split(rng, cfg)

			if a.Alive() {
				t.Error("split asteroid should be dead")
			}
			if len(children) != tc.wantChildren {
				t.Fatalf("got %d children, expected %d", len(children), tc.wantChildren)
			}
			for _, c := range children {
				if c.Tier != tc.tier-1 {
					t.Errorf("child tier = %d, expected %d", c.Tier, tc.tier-1)
				}
				if c.Pos != a.Pos {
					t.Errorf("child position = %v, expected parent position %v", c.Pos, a.Pos)
				}
				if c.VisualKind != a.VisualKind {
					t.Errorf("child kind = %d, expected inherited %d", c.VisualKind, a.VisualKind)
				}
				if !near(c.Radius, float64(c.Tier)*cfg.MinRadius) {
					t.Errorf("child radius = %v, expected %v", c.Radius, float64(c.Tier)*cfg.MinRadius)
				}
				if !c.Alive() {
					t.Error("children should be alive")
				}
			}
		})
	}
}

func TestAsteroidSplitVelocities(t *testing.T) {
	cfg := config.Default().Asteroid
	parentVel := core.V(0, 50)

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := NewAsteroid(core.V(100, 100), parentVel, 2, 1, cfg.MinRadius)
		children := a.Split(rng, cfg)

		var angles []float64
		for _, c := range children {
			if !near(c.Vel.Len(), parentVel.Len()*cfg.SplitBoost) {
				t.Fatalf("seed %d: child speed %v, expected %v", seed, c.Vel.Len(), parentVel.Len()*cfg.SplitBoost)
			}
			// Signed angle from the parent velocity to the child velocity.
			angle := math.Atan2(c.Vel.Y, c.Vel.X)*180/math.Pi - math.Atan2(parentVel.Y, parentVel.X)*180/math.Pi
			if math.Abs(angle) < cfg.SplitAngleMin-eps || math.Abs(angle) > cfg.SplitAngleMax+eps {
				t.Fatalf("seed %d: child deviates %v degrees, expected within [%v, %v]",
					seed, angle, cfg.SplitAngleMin, cfg.SplitAngleMax)
			}
			angles = append(angles, angle)
		}
		if !near(angles[0], -angles[1]) {
			t.Fatalf("seed %d: children should be mirrored, got %v and %v", seed, angles[0], angles[1])
		}
	}
}

func TestNewAsteroidPanicsOnBadTier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for tier 0")
		}
	}()
	NewAsteroid(core.Vec2{}, core.Vec2{}, 0, 1, 20)
}

func TestNewBodyContract(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec2
		radius float64
	}{
		{"negative radius", core.V(0, 0), -1},
		{"NaN position", core.V(math.NaN(), 0), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewBody(tc.pos, core.Vec2{}, tc.radius)
		})
	}
}

func TestExplosionAnimation(t *testing.T) {
	cfg := config.ExplosionConfig{Steps: 3, StepDuration: 0.1}
	e := NewExplosion(core.V(10, 10), 20, cfg)

	if e.Step != 1 || e.Sprite() != "explosion_1" {
		t.Fatalf("new explosion at step %d (%s), expected 1", e.Step, e.Sprite())
	}

	e.Update(0.05)
	if e.Step != 1 {
		t.Errorf("step advanced early to %d", e.Step)
	}
	e.Update(0.06)
	if e.Step != 2 {
		t.Errorf("step = %d, expected 2", e.Step)
	}
	e.Update(0.1)
	if e.Step != 3 || !e.Alive() {
		t.Errorf("step = %d alive = %v, expected 3 and alive", e.Step, e.Alive())
	}
	e.Update(0.1)
	if e.Alive() {
		t.Error("explosion should die after its last step")
	}
	if e.Pos != core.V(10, 10) {
		t.Errorf("explosion moved to %v", e.Pos)
	}
}

func TestSprites(t *testing.T) {
	cfg := config.Default()
	specs := Sprites(cfg)

	want := 4 + 4 + cfg.Asteroid.Tiers*cfg.Asteroid.Kinds + cfg.Primary.Kinds + cfg.Secondary.Kinds + cfg.Explosion.Steps
	if len(specs) != want {
		t.Errorf("Sprites() returned %d entries, expected %d", len(specs), want)
	}

	seen := make(map[string]SpriteSpec)
	for _, spec := range specs {
		if _, dup := seen[spec.Key]; dup {
			t.Errorf("duplicate key %q", spec.Key)
		}
		seen[spec.Key] = spec
	}
	for _, k := range []string{
		"ship", "ship_thrust", "platform", "platform_cd",
		"platform_engine_top", "platform_engine_bottom", "platform_engine_left", "platform_engine_right",
		"asteroid_3_3", "shot_1", "spread_2", "explosion_5",
	} {
		if _, ok := seen[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}

	if got := seen["asteroid_3_2"]; got.Tier != 3 || got.Variant != 2 || got.Radius != 3*cfg.Asteroid.MinRadius {
		t.Errorf("asteroid_3_2 = %+v", got)
	}
	if got := seen["platform_engine_left"]; !got.Overlay || got.Engine != EngineLeft || got.Hull != HullPlatform {
		t.Errorf("platform_engine_left = %+v", got)
	}
}

// Every key a live entity reports must be listed.
func TestSpritesCoverLiveKeys(t *testing.T) {
	cfg := config.Default()
	listed := make(map[string]bool)
	for _, spec := range Sprites(cfg) {
		listed[spec.Key] = true
	}

	loadout := Loadout{Primary: cfg.Primary, Secondary: cfg.Secondary, SecondaryArmed: true}
	p := NewPlatform(core.V(0, 0), cfg.Platform, loadout, nil)
	p.Control(core.Frame(core.ActionTurnLeft, core.ActionTurnRight, core.ActionThrust, core.ActionReverse), 0.01)
	p.FireSpread(nil)

	keys := append([]string{p.Sprite()}, p.EngineSprites()...)
	if len(keys) != 5 {
		t.Fatalf("platform reported %v, expected body and four engines", keys)
	}
	for _, k := range keys {
		if !listed[k] {
			t.Errorf("live key %q is not listed", k)
		}
	}
}
