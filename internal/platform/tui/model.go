package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mode"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Model is the Bubble Tea model running the game state machine.
type Model struct {
	machine    *mode.Machine
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a model driving machine. store may be nil.
func NewModel(machine *mode.Machine, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		machine: machine,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		log:     logger,
		config:  cfg,
		keys:    NewKeyMapper(DefaultHoldDuration),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.keys.Reset()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	case "tab":
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.keys.Reset()
		return m, nil
	}

	m.keys.MapKey(msg, now)
	return m, nil
}

// handleMouse aims with the cursor. A left click fires the primary gun and
// a right click the spread weapon.
func (m Model) handleMouse(msg tea.MouseMsg, now time.Time) (tea.Model, tea.Cmd) {
	v := m.machine.View()
	if v.Field == nil {
		return m, nil
	}
	p := newProjector(v.Field.Viewport(), m.screen.Width(), m.screen.Height())
	m.keys.SetPointer(p.world(msg.X, msg.Y))
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.keys.Press(core.ActionFirePrimary, now)
		case tea.MouseButtonRight:
			m.keys.Press(core.ActionFireSecondary, now)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the projection onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick steps the machine with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.machine.Step(m.config.TickDelta(), m.keys.Frame(now))
	if m.machine.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// Keep the loop alive; the game is frozen meanwhile.
		return m, tickCmd(m.config.TickRate)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}

	sb, cmd := m.scoreboard.Update(msg)
	if sb.Closed() {
		m.scoreboard = nil
		return m, cmd
	}
	m.scoreboard = &sb
	return m, cmd
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	DrawView(m.screen, m.machine.View())

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("asteroids_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	DrawView(m.screen, m.machine.View())
	return RenderScreen(m.screen)
}

// State returns the machine's current state.
func (m Model) State() mode.State {
	return m.machine.State()
}

// Run starts the Bubble Tea program for machine.
func Run(machine *mode.Machine, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(machine, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
