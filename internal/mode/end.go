package mode

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// GameOver shows the final score of a lost round.
type GameOver struct {
	env    *Env
	from   sim.Kind
	ledger Ledger
	best   int
}

// NewGameOver ends a round of the given kind and records it on the session
// scoreboard.
func NewGameOver(env *Env, from sim.Kind, l Ledger) *GameOver {
	return &GameOver{
		env:    env,
		from:   from,
		ledger: l,
		best:   env.record(from, l),
	}
}

func (g *GameOver) Kind() Kind { return KindGameOver }

func (g *GameOver) Ledger() Ledger { return g.ledger }

// Best returns the session best score including this round.
func (g *GameOver) Best() int { return g.best }

func (g *GameOver) Step(dt float64, in core.InputFrame) State {
	switch {
	case in.Has(core.ActionQuit):
		return Quit{}
	case in.Has(core.ActionRestart):
		return g.restart()
	case in.Has(core.ActionConfirm), in.Has(core.ActionBack):
		return NewMenu(g.env)
	}
	return g
}

// restart starts a fresh round with the score discarded.
func (g *GameOver) restart() State {
	if g.env.Config.GameOver.Restart == config.RestartSame && g.from == sim.Level {
		return NewLevel(g.env, 1, 0)
	}
	return NewEndless(g.env, 0)
}

func (g *GameOver) View() View {
	lines := []string{fmt.Sprintf("SCORE: %d", g.ledger.Score)}
	if g.ledger.Level > 0 {
		lines = append(lines, fmt.Sprintf("REACHED LEVEL %d", g.ledger.Level))
	}
	lines = append(lines,
		fmt.Sprintf("SESSION BEST: %d", g.best),
		"",
		"R new game, Enter menu, Q quit",
	)
	return View{
		Kind:   KindGameOver,
		Banner: BannerGameOver,
		Lines:  lines,
	}
}

// LevelCleared waits between two levels.
type LevelCleared struct {
	env    *Env
	ledger Ledger
}

func (l *LevelCleared) Kind() Kind { return KindLevelCleared }

func (l *LevelCleared) Ledger() Ledger { return l.ledger }

func (l *LevelCleared) Step(dt float64, in core.InputFrame) State {
	switch {
	case in.Has(core.ActionQuit):
		return Quit{}
	case in.Has(core.ActionConfirm):
		return NewLevel(l.env, l.ledger.Level+1, l.ledger.Score)
	case in.Has(core.ActionBack):
		l.env.record(sim.Level, l.ledger)
		return NewMenu(l.env)
	}
	return l
}

func (l *LevelCleared) View() View {
	return View{
		Kind:   KindLevelCleared,
		Banner: fmt.Sprintf("LEVEL %d CLEARED", l.ledger.Level),
		Lines: []string{
			fmt.Sprintf("SCORE: %d", l.ledger.Score),
			"",
			"Enter for the next level",
		},
	}
}

// Quit is terminal; stepping it changes nothing.
type Quit struct{}

func (Quit) Kind() Kind { return KindQuit }

func (Quit) Ledger() Ledger { return Ledger{} }

func (q Quit) Step(dt float64, in core.InputFrame) State { return q }

func (Quit) View() View { return View{Kind: KindQuit} }
