package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
)

const strokeWidth = 2

// Sprite is a rasterized shape.
type Sprite struct {
	Image  *ebiten.Image
	Radius float64 // body radius the image was drawn for
}

// rasterize turns every shape into an image. Shapes of unit radius are drawn
// at the scale given so they survive being stretched to a body radius.
func rasterize(shapes *assets.Catalog[assets.Shape], unitScale float64) *assets.Catalog[Sprite] {
	sprites := assets.NewCatalog[Sprite]()
	for _, key := range shapes.Keys() {
		s := shapes.Lookup(key)
		scale := 1.0
		if s.Radius < 2 {
			scale = unitScale
		}
		sprites.Register(key, Sprite{
			Image:  drawShape(s, scale),
			Radius: s.Radius * scale,
		})
	}
	return sprites
}

func drawShape(s assets.Shape, scale float64) *ebiten.Image {
	half := math.Ceil(s.Extent()*scale) + strokeWidth
	size := int(2 * half)
	img := ebiten.NewImage(size, size)

	px := func(v float64) float32 { return float32(half + v*scale) }

	for _, p := range s.Polys {
		n := len(p.Points)
		last := n - 1
		if p.Closed {
			last = n
		}
		for i := range last {
			a, b := p.Points[i], p.Points[(i+1)%n]
			vector.StrokeLine(img, px(a.X), px(a.Y), px(b.X), px(b.Y), strokeWidth, p.Color, true)
		}
	}
	for _, c := range s.Circles {
		r := float32(c.Radius * scale)
		if c.Fill {
			vector.DrawFilledCircle(img, px(c.Center.X), px(c.Center.Y), r, c.Color, true)
		} else {
			vector.StrokeCircle(img, px(c.Center.X), px(c.Center.Y), r, strokeWidth, c.Color, true)
		}
	}
	return img
}

// drawSprite draws sp centered at (x, y), scaled to radius and rotated
// clockwise by deg.
func drawSprite(dst *ebiten.Image, sp Sprite, x, y, radius, deg float64) {
	b := sp.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if sp.Radius > 0 && radius > 0 && radius != sp.Radius {
		k := radius / sp.Radius
		op.GeoM.Scale(k, k)
	}
	if deg != 0 {
		op.GeoM.Rotate(deg * math.Pi / 180)
	}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sp.Image, op)
}
