package tui

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/mode"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

var (
	// Indexed by heading octant, 0 = +X, clockwise on screen.
	shipRunes      = []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	asteroidRunes  = []rune{'#', '@', '%', '&'}
	explosionRunes = []rune{'*', '+', '.', '`'}
)

// projector maps world coordinates onto screen cells.
type projector struct {
	sx, sy float64 // world units per cell
}

func newProjector(vp core.Viewport, w, h int) projector {
	return projector{
		sx: vp.Width / float64(max(w, 1)),
		sy: vp.Height / float64(max(h, 1)),
	}
}

func (p projector) cell(v core.Vec2) (x, y int) {
	return int(math.Floor(v.X / p.sx)), int(math.Floor(v.Y / p.sy))
}

// world returns the world position of the center of cell (x, y).
func (p projector) world(x, y int) core.Vec2 {
	return core.V((float64(x)+0.5)*p.sx, (float64(y)+0.5)*p.sy)
}

// DrawView renders a state's view into s.
func DrawView(s *core.Screen, v mode.View) {
	s.Clear()
	if v.Field != nil {
		drawField(s, v.Field)
	}
	for i, line := range v.HUD {
		s.DrawTextColored(1, i, line, core.ColorHUD)
	}
	drawOverlay(s, v)
}

func drawField(s *core.Screen, f *sim.Field) {
	p := newProjector(f.Viewport(), s.Width(), s.Height())
	for _, e := range f.Drawables() {
		switch e := e.(type) {
		case *entity.Asteroid:
			drawAsteroid(s, p, e)
		case *entity.Projectile:
			drawProjectile(s, p, e)
		case *entity.Explosion:
			drawExplosion(s, p, e)
		}
	}
	// Ship goes on top.
	if ship := f.Ship(); ship.Alive() {
		drawShip(s, p, ship)
	}
}

func drawAsteroid(s *core.Screen, p projector, a *entity.Asteroid) {
	r := asteroidRunes[(a.VisualKind-1+len(asteroidRunes))%len(asteroidRunes)]
	cx, cy := p.cell(a.Pos)
	if a.Radius < math.Min(p.sx, p.sy) {
		s.SetColored(cx, cy, r, core.ColorAsteroid)
		return
	}

	// Enough samples to touch every cell on the outline.
	n := int(2*math.Pi*a.Radius/math.Min(p.sx, p.sy))*2 + 8
	for i := range n {
		rad := 2 * math.Pi * float64(i) / float64(n)
		pt := a.Pos.Add(core.V(math.Cos(rad), math.Sin(rad)).Scale(a.Radius))
		x, y := p.cell(pt)
		s.SetColored(x, y, r, core.ColorAsteroid)
	}
}

func drawProjectile(s *core.Screen, p projector, pr *entity.Projectile) {
	x, y := p.cell(pr.Pos)
	if pr.Weapon == entity.WeaponSecondary {
		s.SetColored(x, y, '*', core.ColorSpread)
		return
	}
	s.SetColored(x, y, '.', core.ColorShot)
}

func drawExplosion(s *core.Screen, p projector, e *entity.Explosion) {
	r := explosionRunes[min(max(e.Step-1, 0), len(explosionRunes)-1)]
	x, y := p.cell(e.Pos)
	s.SetColored(x, y, r, core.ColorExplosion)
	if e.Step < 2 {
		return
	}
	d := e.Step - 1
	for _, off := range [][2]int{{-d, -d}, {d, -d}, {-d, d}, {d, d}} {
		s.SetColored(x+off[0], y+off[1], r, core.ColorExplosion)
	}
}

func drawShip(s *core.Screen, p projector, ship *entity.Ship) {
	if !ship.Rotates() {
		drawPlatform(s, p, ship)
		return
	}
	fwd := ship.Forward()
	if ship.Engine.Has(entity.EngineThrust) {
		ex, ey := p.cell(ship.Pos.Sub(fwd.Scale(ship.Radius)))
		s.SetColored(ex, ey, '*', core.ColorExhaust)
	}
	x, y := p.cell(ship.Pos)
	s.SetColored(x, y, headingRune(fwd), core.ColorShip)
}

// platformEngines lists the engines a platform can burn.
var platformEngines = []entity.EngineState{
	entity.EngineTop, entity.EngineBottom, entity.EngineLeft, entity.EngineRight,
}

// drawPlatform draws the hull as a ring, dimmed while the spread weapon
// recharges, with exhaust beside each burning engine.
func drawPlatform(s *core.Screen, p projector, ship *entity.Ship) {
	for _, e := range platformEngines {
		if ship.Engine.Has(e) {
			ex, ey := p.cell(ship.Pos.Sub(e.Push().Scale(ship.Radius)))
			s.SetColored(ex, ey, '*', core.ColorExhaust)
		}
	}
	r := 'O'
	if ship.SecondaryCooling() {
		r = 'o'
	}
	x, y := p.cell(ship.Pos)
	s.SetColored(x, y, r, core.ColorShip)
}

// headingRune picks the arrow closest to a screen-space direction.
func headingRune(dir core.Vec2) rune {
	deg := math.Atan2(dir.Y, dir.X) * 180 / math.Pi
	octant := int(math.Round(deg/45)) % 8
	if octant < 0 {
		octant += 8
	}
	return shipRunes[octant]
}

// drawOverlay draws the banner, text lines and menu centered on screen.
func drawOverlay(s *core.Screen, v mode.View) {
	if v.Banner == "" && len(v.Lines) == 0 && len(v.Menu) == 0 {
		return
	}

	rows := 1 + len(v.Lines)
	if len(v.Menu) > 0 {
		rows += len(v.Menu) + 1
	}
	width := len([]rune(v.Banner))
	for _, l := range v.Lines {
		width = max(width, len([]rune(l)))
	}
	top := (s.Height() - rows) / 2

	// Keep text readable over a live field.
	if v.Field != nil {
		box := core.NewRect((s.Width()-width)/2-2, top-1, width+4, rows+2)
		s.DrawRect(box, ' ')
		s.DrawBox(box, core.ColorHUD)
	}

	y := top
	s.DrawTextCentered(y, v.Banner, core.ColorBanner)
	y++
	for i, item := range v.Menu {
		label := "  " + item + "  "
		if i == v.Cursor {
			label = "> " + item + " <"
		}
		s.DrawTextCentered(y+1+i, label, core.ColorHUD)
	}
	if len(v.Menu) > 0 {
		y += len(v.Menu) + 1
	}
	for _, l := range v.Lines {
		s.DrawTextCentered(y, l, core.ColorHUD)
		y++
	}
}
