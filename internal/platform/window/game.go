// Package window runs the game in a desktop window with Ebitengine.
// The layout size equals the world viewport, so world coordinates are
// screen pixels before Ebitengine scales the window.
package window

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/mode"
)

const (
	// Explosion shapes are unit sized; draw them at this radius in pixels.
	explosionRaster = 48
	lineHeight      = 18
)

var (
	background  = color.RGBA{8, 8, 20, 255}
	hudColor    = color.RGBA{235, 235, 235, 255}
	bannerColor = color.RGBA{120, 255, 120, 255}
	dimColor    = color.RGBA{0, 0, 0, 170}
)

// Game adapts the state machine to ebiten.Game.
type Game struct {
	machine *mode.Machine
	sprites *assets.Catalog[Sprite]
	face    *text.GoXFace
	log     *log.Logger
	vp      core.Viewport
	dt      float64
}

// New creates a window game driving machine.
func New(machine *mode.Machine, cfg config.AsteroidsConfig, rt core.RuntimeConfig, logger *log.Logger) *Game {
	return &Game{
		machine: machine,
		sprites: rasterize(assets.Shapes(cfg), explosionRaster),
		face:    text.NewGoXFace(basicfont.Face7x13),
		log:     logger,
		vp:      cfg.Viewport.Bounds(),
		dt:      rt.TickDelta(),
	}
}

// Update steps the machine once per tick.
func (g *Game) Update() error {
	g.machine.Step(g.dt, readInput())
	if g.machine.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	v := g.machine.View()
	if v.Field != nil {
		g.drawField(screen, v)
	}
	for i, line := range v.HUD {
		g.drawText(screen, line, 12, float64(8+i*lineHeight), hudColor)
	}
	g.drawOverlay(screen, v)
}

func (g *Game) drawField(screen *ebiten.Image, v mode.View) {
	for _, e := range v.Field.Drawables() {
		b := entity.BodyOf(e)
		sp := g.sprites.Lookup(e.Sprite())
		switch e := e.(type) {
		case *entity.Ship:
			if e.Rotates() {
				drawSprite(screen, sp, b.Pos.X, b.Pos.Y, 0, e.Rotation)
				continue
			}
			drawSprite(screen, sp, b.Pos.X, b.Pos.Y, 0, 0)
			for _, key := range e.EngineSprites() {
				drawSprite(screen, g.sprites.Lookup(key), b.Pos.X, b.Pos.Y, 0, 0)
			}
		default:
			drawSprite(screen, sp, b.Pos.X, b.Pos.Y, b.Radius, 0)
		}
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, v mode.View) {
	if v.Banner == "" && len(v.Lines) == 0 && len(v.Menu) == 0 {
		return
	}
	if v.Field != nil {
		vector.DrawFilledRect(screen, 0, 0, float32(g.vp.Width), float32(g.vp.Height), dimColor, false)
	}

	rows := 2 + len(v.Lines) + len(v.Menu)
	y := (g.vp.Height - float64(rows*lineHeight)) / 2

	g.drawCentered(screen, v.Banner, y, bannerColor)
	y += 2 * lineHeight
	for i, item := range v.Menu {
		label := item
		if i == v.Cursor {
			label = "> " + item + " <"
		}
		g.drawCentered(screen, label, y, hudColor)
		y += lineHeight
	}
	if len(v.Menu) > 0 {
		y += lineHeight
	}
	for _, line := range v.Lines {
		g.drawCentered(screen, line, y, hudColor)
		y += lineHeight
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w := text.Advance(s, g.face)
	g.drawText(screen, s, (g.vp.Width-w)/2, y, clr)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

// Layout keeps the logical screen at the world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.vp.Width), int(g.vp.Height)
}

// Run opens the window and blocks until the machine quits or the window
// is closed.
func Run(machine *mode.Machine, cfg config.AsteroidsConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	g := New(machine, cfg, rt, logger)

	ebiten.SetWindowSize(int(g.vp.Width), int(g.vp.Height))
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(rt.TickRate)

	g.log.Debug("window opened", "width", g.vp.Width, "height", g.vp.Height, "sprites", g.sprites.Len())
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
