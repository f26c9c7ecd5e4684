package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the mode sidebar
	sidebarWidth       = 20  // Width of mode sidebar
	maxScores          = 100 // Max rounds to load
)

// scoreboardModes lists the filter tabs; "" shows every mode.
var scoreboardModes = []struct {
	ID    string
	Title string
}{
	{"", "All"},
	{"endless", "Endless"},
	{"level", "Levels"},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Close    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Close},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev mode"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to game"),
		),
	}
}

// ScoreboardModel shows the rounds finished this session. It is embedded in
// the game model and toggled with Tab; the game is frozen while it is open.
type ScoreboardModel struct {
	store       *storage.Store
	modeCursor  int
	rounds      []storage.Round
	stats       []storage.ModeStats
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	closed      bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard and loads the current rounds.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable builds the rounds table sized to the current height.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Mode", Width: 9},
			{Title: "Level", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	t.SetStyles(tableStyles())
	return t
}

// reload reads rounds and stats for the selected mode.
func (m *ScoreboardModel) reload() {
	m.rounds, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		m.rounds, m.err = m.store.TopScores(scoreboardModes[m.modeCursor].ID, maxScores)
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		level := "-"
		if r.Level > 0 {
			level = fmt.Sprintf("%d", r.Level)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Mode,
			level,
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Closed reports whether the user asked to leave the scoreboard.
func (m ScoreboardModel) Closed() bool {
	return m.closed
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(scoreboardModes)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor = (m.modeCursor + len(scoreboardModes) - 1) % len(scoreboardModes)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := fmt.Sprintf("SESSION SCORES - %s", scoreboardModes[m.modeCursor].Title)

	body := m.renderNarrowLayout()
	if m.showSidebar {
		body = m.renderWideLayout()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sbTitle.Render(centerText(title, m.width)),
		"",
		body,
		"",
		sbHelp.Render(m.help.View(m.keys)),
	)
}

// renderWideLayout puts the mode list and per-mode stats beside the table.
func (m ScoreboardModel) renderWideLayout() string {
	side := lipgloss.JoinVertical(lipgloss.Left,
		sbPanel.Render(m.modeList()),
		sbPanel.Render(m.statsPanel()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", sbFrame.Render(m.renderTableContent()))
}

// renderNarrowLayout puts mode tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	tabs := make([]string, len(scoreboardModes))
	for i, md := range scoreboardModes {
		if i == m.modeCursor {
			tabs[i] = sbActiveTab.Render(md.Title)
		} else {
			tabs[i] = sbTab.Render(" " + md.Title + " ")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(strings.Join(tabs, " "), m.width),
		"",
		centerText(sbFrame.Render(m.renderTableContent()), m.width),
	)
}

func (m ScoreboardModel) modeList() string {
	var b strings.Builder
	b.WriteString("Modes\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, md := range scoreboardModes {
		b.WriteString("\n")
		if i == m.modeCursor {
			b.WriteString(sbSelected.Render("> " + md.Title))
		} else {
			b.WriteString("  " + md.Title)
		}
	}
	return b.String()
}

// statsPanel summarizes every mode that has at least one round.
func (m ScoreboardModel) statsPanel() string {
	if len(m.stats) == 0 {
		return sbEmpty.Render("no rounds")
	}
	lines := make([]string, 0, len(m.stats)*3)
	for _, st := range m.stats {
		lines = append(lines, sbSelected.Render(st.Mode),
			fmt.Sprintf(" %d rounds, best %d", st.Rounds, st.HighScore),
			fmt.Sprintf(" avg %.1f", st.AvgScore))
		if st.MaxLevel > 0 {
			lines = append(lines, fmt.Sprintf(" deepest level %d", st.MaxLevel))
		}
	}
	return strings.Join(lines, "\n")
}

// renderTableContent renders the table or an empty/error message.
func (m ScoreboardModel) renderTableContent() string {
	switch {
	case m.err != nil:
		return sbEmpty.Padding(2, 4).Render("Scores unavailable:\n" + m.err.Error())
	case len(m.rounds) == 0:
		return sbEmpty.Padding(2, 4).Render("No rounds finished yet.\nLose a ship to get on the board!")
	}
	return m.table.View()
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

var (
	sbBorder    = lipgloss.Color("240")
	sbAccent    = lipgloss.Color("229")
	sbHighlight = lipgloss.Color("57")
	sbMuted     = lipgloss.Color("241")

	sbTitle     = lipgloss.NewStyle().Bold(true).Foreground(sbAccent)
	sbHelp      = lipgloss.NewStyle().Foreground(sbMuted)
	sbSelected  = lipgloss.NewStyle().Bold(true).Foreground(sbAccent)
	sbTab       = lipgloss.NewStyle().Foreground(sbMuted)
	sbActiveTab = lipgloss.NewStyle().Bold(true).Foreground(sbAccent).Background(sbHighlight).Padding(0, 1)
	sbEmpty     = lipgloss.NewStyle().Foreground(sbMuted).Italic(true)
	sbFrame     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(sbBorder).Padding(0, 1)
	sbPanel     = sbFrame.Width(sidebarWidth)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(sbBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(sbAccent).Background(sbHighlight).Bold(false)
	return s
}
