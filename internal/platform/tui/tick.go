// Package tui runs the game in a terminal with Bubble Tea.
// It handles the terminal UI loop, held-key emulation and drawing the
// play field into a cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const fallbackTickRate = 60

// TickMsg asks the model to advance the simulation by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next frame. Non-positive rates run at 60 fps.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = fallbackTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
