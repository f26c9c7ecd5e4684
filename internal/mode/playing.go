package mode

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// Playing is active play on one field. It owns the field exclusively.
type Playing struct {
	env   *Env
	field *sim.Field
}

// NewEndless starts an endless round carrying score.
func NewEndless(env *Env, score int) *Playing {
	return &Playing{env: env, field: sim.NewEndless(env.Config, env.Rand, score)}
}

// NewLevel starts level n carrying score.
func NewLevel(env *Env, n, score int) *Playing {
	return &Playing{env: env, field: sim.NewLevel(env.Config, env.Rand, n, score)}
}

func (p *Playing) Kind() Kind { return KindPlaying }

// Field returns the field being played.
func (p *Playing) Field() *sim.Field { return p.field }

func (p *Playing) Ledger() Ledger {
	return Ledger{Score: p.field.Score(), Level: p.field.Level()}
}

func (p *Playing) Step(dt float64, in core.InputFrame) State {
	if in.Has(core.ActionQuit) {
		return Quit{}
	}
	if in.Has(core.ActionPause) {
		return &Paused{resume: p}
	}

	switch p.field.Step(dt, in) {
	case sim.ShipLost:
		return NewGameOver(p.env, p.field.Kind(), p.Ledger())
	case sim.Cleared:
		return &LevelCleared{env: p.env, ledger: p.Ledger()}
	}
	return p
}

func (p *Playing) View() View {
	return View{
		Kind:  KindPlaying,
		Field: p.field,
		HUD:   p.hud(),
	}
}

func (p *Playing) hud() []string {
	hud := []string{fmt.Sprintf("SCORE: %d", p.field.Score())}
	if p.field.Kind() == sim.Level {
		hud = append(hud, fmt.Sprintf("LEVEL %d", p.field.Level()))
	}
	return hud
}

// Paused freezes a Playing state until resumed.
type Paused struct {
	resume *Playing
}

func (p *Paused) Kind() Kind { return KindPaused }

func (p *Paused) Ledger() Ledger { return p.resume.Ledger() }

// Resume returns the frozen Playing state.
func (p *Paused) Resume() *Playing { return p.resume }

func (p *Paused) Step(dt float64, in core.InputFrame) State {
	switch {
	case in.Has(core.ActionQuit):
		return Quit{}
	case in.Has(core.ActionPause):
		return p.resume
	case in.Has(core.ActionBack):
		// Abandoning a round still counts it on the scoreboard.
		p.resume.env.record(p.resume.field.Kind(), p.Ledger())
		return NewMenu(p.resume.env)
	}
	return p
}

func (p *Paused) View() View {
	return View{
		Kind:   KindPaused,
		Field:  p.resume.field,
		HUD:    p.resume.hud(),
		Banner: BannerPaused,
		Lines:  []string{"P to resume, Esc for menu"},
	}
}
