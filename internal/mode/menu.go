package mode

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Menu entries.
const (
	MenuEndless = iota
	MenuLevels
	MenuQuit
)

var menuItems = []string{"Endless", "Levels", "Quit"}

// Menu is the title screen.
type Menu struct {
	env    *Env
	cursor int
	best   int
}

// NewMenu creates the title screen.
func NewMenu(env *Env) *Menu {
	return &Menu{env: env, best: env.best(0)}
}

func (m *Menu) Kind() Kind { return KindMenu }

func (m *Menu) Ledger() Ledger { return Ledger{} }

// Cursor returns the highlighted entry.
func (m *Menu) Cursor() int { return m.cursor }

func (m *Menu) Step(dt float64, in core.InputFrame) State {
	switch {
	case in.Has(core.ActionQuit), in.Has(core.ActionBack):
		return Quit{}
	case in.Has(core.ActionUp):
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case in.Has(core.ActionDown):
		m.cursor = (m.cursor + 1) % len(menuItems)
	case in.Has(core.ActionConfirm):
		return m.selectEntry(m.cursor)
	}
	return m
}

func (m *Menu) selectEntry(i int) State {
	switch i {
	case MenuEndless:
		return NewEndless(m.env, 0)
	case MenuLevels:
		return NewLevel(m.env, 1, 0)
	default:
		return Quit{}
	}
}

func (m *Menu) View() View {
	lines := []string{"Up/Down to choose, Enter to start"}
	if m.best > 0 {
		lines = append(lines, fmt.Sprintf("SESSION BEST: %d", m.best))
	}
	return View{
		Kind:   KindMenu,
		Banner: BannerTitle,
		Lines:  lines,
		Menu:   menuItems,
		Cursor: m.cursor,
	}
}
