package mode

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// Machine drives the current state and logs transitions between states.
// It is not safe for concurrent use; frontends step it from their own loop.
type Machine struct {
	env   *Env
	state State
}

// NewMachine creates a machine starting at the menu.
func NewMachine(env *Env) *Machine {
	if env.Log == nil {
		panic("mode: env without logger")
	}
	return &Machine{env: env, state: NewMenu(env)}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Done reports whether the machine reached Quit.
func (m *Machine) Done() bool { return m.state.Kind() == KindQuit }

// View returns the current state's view.
func (m *Machine) View() View { return m.state.View() }

// Step advances the current state by one frame.
func (m *Machine) Step(dt float64, in core.InputFrame) State {
	prev := m.state
	next := prev.Step(dt, in)
	if next == prev {
		return next
	}

	l := next.Ledger()
	m.env.Log.Info("transition",
		"from", prev.Kind(),
		"to", next.Kind(),
		"score", l.Score,
		"level", l.Level,
	)
	if p, ok := next.(*Playing); ok && p.field.Kind() == sim.Level && p.field.Ticks() == 0 {
		m.env.Log.Debug("level start",
			"level", p.field.Level(),
			"asteroids", len(p.field.Asteroids()),
		)
	}
	m.state = next
	return next
}
