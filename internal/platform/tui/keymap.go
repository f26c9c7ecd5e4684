package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldDuration is how long a gameplay key counts as held after its
// last press or repeat.
const DefaultHoldDuration = 150 * time.Millisecond

// Terminals report key presses and auto-repeats but never releases, so
// gameplay keys stay held for a short window after each event.
var heldKeys = map[string]core.Action{
	"left":  core.ActionTurnLeft,
	"a":     core.ActionTurnLeft,
	"right": core.ActionTurnRight,
	"d":     core.ActionTurnRight,
	"up":    core.ActionThrust,
	"w":     core.ActionThrust,
	"down":  core.ActionReverse,
	"s":     core.ActionReverse,
	" ":     core.ActionFirePrimary,
	"x":     core.ActionFireSecondary,
	"f":     core.ActionFireSecondary,
}

// Edge actions fire on the single frame after the key event.
var edgeKeys = map[string]core.Action{
	"up":     core.ActionUp,
	"w":      core.ActionUp,
	"k":      core.ActionUp,
	"down":   core.ActionDown,
	"s":      core.ActionDown,
	"j":      core.ActionDown,
	"enter":  core.ActionConfirm,
	"esc":    core.ActionBack,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"r":      core.ActionRestart,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// KeyMapper translates Bubble Tea key and mouse messages into input frames.
type KeyMapper struct {
	hold     time.Duration
	lastSeen map[core.Action]time.Time
	edge     core.InputFrame
	pointer  *core.Vec2
}

// NewKeyMapper creates a key mapper with the given hold window; zero
// selects DefaultHoldDuration.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &KeyMapper{
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time),
		edge:     core.NewInputFrame(),
	}
}

// MapKey records a key event at now. It reports whether the key is bound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, now time.Time) bool {
	key := msg.String()
	held, isHeld := heldKeys[key]
	if isHeld {
		km.lastSeen[held] = now
	}
	edge, isEdge := edgeKeys[key]
	if isEdge {
		km.edge.Set(edge)
	}
	return isHeld || isEdge
}

// Press records a held action directly, as a mouse button does.
func (km *KeyMapper) Press(a core.Action, now time.Time) {
	km.lastSeen[a] = now
}

// SetPointer records the pointer position in world coordinates.
func (km *KeyMapper) SetPointer(p core.Vec2) {
	km.pointer = &p
}

// Frame builds the input frame for a step at now. Edge actions are consumed.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := km.edge.Clone()
	for a, t := range km.lastSeen {
		if now.Sub(t) < km.hold {
			frame.Set(a)
		}
	}
	if km.pointer != nil {
		frame.SetPointer(*km.pointer)
	}
	km.edge.Clear()
	return frame
}

// Reset forgets every held key, e.g. when the game loses focus.
func (km *KeyMapper) Reset() {
	clear(km.lastSeen)
	km.edge.Clear()
}
