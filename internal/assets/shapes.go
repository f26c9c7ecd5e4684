package assets

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Poly is a polyline in shape space.
type Poly struct {
	Points []core.Vec2
	Closed bool
	Color  color.RGBA
}

// Circle is a filled disc or a ring in shape space.
type Circle struct {
	Center core.Vec2
	Radius float64
	Fill   bool
	Color  color.RGBA
}

// Shape is a vector sprite centered on the origin. Radius is the body
// radius the shape was drawn for; renderers scale by body.Radius/Radius.
// Ship shapes point along +Y, heading 0.
type Shape struct {
	Radius  float64
	Polys   []Poly
	Circles []Circle
}

// Extent returns the distance from the origin to the farthest drawn point.
func (s Shape) Extent() float64 {
	var ext float64
	for _, p := range s.Polys {
		for _, pt := range p.Points {
			ext = math.Max(ext, pt.Len())
		}
	}
	for _, c := range s.Circles {
		ext = math.Max(ext, c.Center.Len()+c.Radius)
	}
	return ext
}

var (
	shipColor         = color.RGBA{255, 255, 160, 255}
	flameColor        = color.RGBA{255, 140, 0, 255}
	platformColor     = color.RGBA{120, 230, 255, 255}
	platformCoolColor = color.RGBA{60, 90, 110, 255}
	asteroidColor     = color.RGBA{170, 170, 170, 255}
	shotColors        = []color.RGBA{
		{120, 230, 255, 255},
		{255, 255, 255, 255},
		{140, 255, 140, 255},
	}
	spreadColors = []color.RGBA{
		{255, 90, 255, 255},
		{200, 120, 255, 255},
	}
)

// Shapes builds a shape for every sprite the game can produce under cfg.
func Shapes(cfg config.AsteroidsConfig) *Catalog[Shape] {
	c := NewCatalog[Shape]()
	for _, spec := range entity.Sprites(cfg) {
		c.Register(spec.Key, shapeFor(spec))
	}
	return c
}

func shapeFor(spec entity.SpriteSpec) Shape {
	r := spec.Radius
	switch spec.Kind {
	case entity.KindShip:
		switch {
		case spec.Overlay:
			return engineShape(r, spec.Engine.Push())
		case spec.Hull == entity.HullPlatform:
			return platformShape(r, spec.Cooling)
		default:
			return shipShape(r, spec.Engine.Has(entity.EngineThrust))
		}
	case entity.KindAsteroid:
		return asteroidShape(r, spec.Variant)
	case entity.KindProjectile:
		if spec.Weapon == entity.WeaponSecondary {
			clr := spreadColors[(spec.Variant-1)%len(spreadColors)]
			return Shape{
				Radius: r,
				Circles: []Circle{
					{Radius: r * 0.6, Fill: true, Color: clr},
					{Radius: r, Color: clr},
				},
			}
		}
		return Shape{
			Radius: r,
			Circles: []Circle{{
				Radius: r,
				Fill:   true,
				Color:  shotColors[(spec.Variant-1)%len(shotColors)],
			}},
		}
	default:
		return explosionShape(spec.Step, spec.Steps)
	}
}

func shipShape(r float64, thrust bool) Shape {
	s := Shape{
		Radius: r,
		Polys: []Poly{{
			Points: []core.Vec2{
				core.V(0, r),
				core.V(-0.7*r, -0.7*r),
				core.V(0, -0.4*r),
				core.V(0.7*r, -0.7*r),
			},
			Closed: true,
			Color:  shipColor,
		}},
	}
	if thrust {
		s.Polys = append(s.Polys, Poly{
			Points: []core.Vec2{
				core.V(-0.3*r, -0.6*r),
				core.V(0, -1.3*r),
				core.V(0.3*r, -0.6*r),
			},
			Color: flameColor,
		})
	}
	return s
}

// platformShape is a hull ring with a turret core. Platforms never rotate,
// so the shape is in screen orientation. The core dims while the spread
// weapon recharges.
func platformShape(r float64, cooling bool) Shape {
	hub := platformColor
	if cooling {
		hub = platformCoolColor
	}
	return Shape{
		Radius: r,
		Circles: []Circle{
			{Radius: r, Color: shipColor},
			{Radius: 0.8 * r, Color: shipColor},
			{Radius: 0.35 * r, Fill: true, Color: hub},
		},
	}
}

// engineShape is a flame on the side of a platform opposite to push,
// pointing away from the hull.
func engineShape(r float64, push core.Vec2) Shape {
	back := push.Scale(-1)
	side := core.V(-back.Y, back.X)
	return Shape{
		Radius: r,
		Polys: []Poly{{
			Points: []core.Vec2{
				back.Scale(r).Add(side.Scale(0.25 * r)),
				back.Scale(1.5 * r),
				back.Scale(r).Sub(side.Scale(0.25 * r)),
			},
			Color: flameColor,
		}},
	}
}

// asteroidShape draws a jagged outline. Kinds differ in vertex count and
// dent pattern; no vertex lies outside r.
func asteroidShape(r float64, kind int) Shape {
	n := 9 + kind
	pts := make([]core.Vec2, n)
	for i := range n {
		dent := float64((i*7+kind*3)%5) / 4
		rad := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = core.V(math.Cos(rad), math.Sin(rad)).Scale(r * (0.78 + 0.22*dent))
	}
	return Shape{
		Radius: r,
		Polys:  []Poly{{Points: pts, Closed: true, Color: asteroidColor}},
	}
}

// explosionShape is a unit-radius burst that grows and cools with step.
func explosionShape(step, steps int) Shape {
	t := float64(step) / float64(max(steps, 1))
	clr := color.RGBA{255, uint8(230 - 170*t), uint8(120 - 120*t), 255}

	s := Shape{
		Radius:  1,
		Circles: []Circle{{Radius: t, Color: clr}},
	}
	for i := range 8 {
		dir := core.Forward(float64(i) * 45)
		s.Circles = append(s.Circles, Circle{
			Center: dir.Scale(0.4 + 0.5*t),
			Radius: 0.1,
			Fill:   true,
			Color:  clr,
		})
	}
	return s
}
