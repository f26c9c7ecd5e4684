// Package mode implements the top-level game state machine: Menu, Playing
// (endless or level n), Paused, GameOver, LevelCleared and Quit.
//
// Each state is a value that knows how to step itself and what the frontend
// should show. Score and level travel between states in a Ledger handed from
// one state to the next; there is no shared mutable game state.
package mode

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// Kind identifies a state of the machine.
type Kind int

const (
	KindMenu Kind = iota
	KindPlaying
	KindPaused
	KindGameOver
	KindLevelCleared
	KindQuit
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindPlaying:
		return "playing"
	case KindPaused:
		return "paused"
	case KindGameOver:
		return "game_over"
	case KindLevelCleared:
		return "level_cleared"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// State is one mode of the game.
type State interface {
	Kind() Kind
	// Step advances the state by one frame and returns the next state,
	// usually itself.
	Step(dt float64, in core.InputFrame) State
	// View describes what the frontend should draw this frame.
	View() View
	// Ledger returns the score and level carried by this state.
	Ledger() Ledger
}

// Ledger is the score and level progress threaded through transitions.
// Level is 0 outside of level play.
type Ledger struct {
	Score int
	Level int
}

// Scoreboard records finished rounds for the current session.
type Scoreboard interface {
	Record(mode string, level, score int) error
	Best() (int, error)
}

// Env holds the collaborators shared by all states of one machine.
type Env struct {
	Config config.AsteroidsConfig
	Rand   *rand.Rand
	Log    *log.Logger
	Board  Scoreboard // optional
}

// record stores a finished round and returns the session best. Scoreboard
// failures are logged and otherwise ignored.
func (e *Env) record(kind sim.Kind, l Ledger) int {
	if e.Board == nil {
		return l.Score
	}
	if err := e.Board.Record(kind.String(), l.Level, l.Score); err != nil {
		e.Log.Warn("failed to record round", "err", err)
	}
	return e.best(l.Score)
}

// best returns the session best, or fallback when it cannot be read.
func (e *Env) best(fallback int) int {
	if e.Board == nil {
		return fallback
	}
	b, err := e.Board.Best()
	if err != nil {
		e.Log.Warn("failed to read best score", "err", err)
		return fallback
	}
	return max(b, fallback)
}

// View is the render contract between the state machine and frontends.
type View struct {
	Kind Kind

	// Field is the play field to draw, nil when there is none.
	Field *sim.Field

	// HUD lines drawn in the top-left corner over the field.
	HUD []string

	// Banner is the large centered caption, empty for none.
	Banner string

	// Lines are drawn centered below the banner.
	Lines []string

	// Menu entries with the highlighted one at Cursor; nil outside the menu.
	Menu   []string
	Cursor int
}

// HUD and banner strings.
const (
	BannerTitle    = "ASTEROIDS"
	BannerPaused   = "-- GAME PAUSED --"
	BannerGameOver = "-- GAME OVER --"
)
