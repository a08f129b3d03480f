// Package tui provides the Bubble Tea front end for watching a
// simulation day by day, locally or over SSH. One keypress advances
// one day; the engine itself never blocks.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/panemdev/arena/internal/narrate"
	"github.com/panemdev/arena/internal/sim"
	"github.com/panemdev/arena/internal/storage"
)

const survivorPanelWidth = 34

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	aliveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	deadStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	deathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	winnerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	journalHeight = 3 // minimum journal lines shown
)

// WatchModel is the Bubble Tea model for stepping through a run.
type WatchModel struct {
	engine *sim.Engine
	store  *storage.Store
	seed   int64

	keys WatchKeyMap
	help help.Model

	width  int
	height int

	lines    []string // current day's narration
	started  bool
	done     bool
	saved    bool
	quitting bool
}

// NewWatchModel creates a watch model over a fresh engine. The store
// may be nil; finished runs are then simply not persisted.
func NewWatchModel(engine *sim.Engine, store *storage.Store, seed int64, width, height int) WatchModel {
	return WatchModel{
		engine: engine,
		store:  store,
		seed:   seed,
		keys:   DefaultWatchKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and advances the simulation on request.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if m.done {
				m.quitting = true
				return m, tea.Quit
			}
			report := m.engine.AdvanceDay()
			m.started = true
			m.lines = narrate.Day(report)
			if !report.Continuing {
				m.done = true
				m.saveRun()
			}
			return m, nil
		}
	}

	return m, nil
}

// saveRun persists the finished run once. Best effort; watching
// continues regardless.
func (m *WatchModel) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	rec := storage.RunRecord{
		Seed:       m.seed,
		Days:       m.engine.Day(),
		RosterSize: len(m.engine.Tributes()),
	}
	if w := m.engine.Winner(); w != nil {
		rec.Winner = w.Name
		rec.WinnerDistrict = w.District
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(rec, m.engine.Timeline())
}

// View renders the watch screen: survivors on the left, the current
// day's journal on the right.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("ARENA — Day %d", m.engine.Day())
	if !m.started {
		title = "ARENA — the games await"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	left := m.renderSurvivors()
	right := m.renderJournal()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if m.done {
		b.WriteString(m.renderOutcome())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m WatchModel) renderSurvivors() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("Tributes (%d alive)", len(m.engine.Living()))))
	b.WriteString("\n")

	for _, t := range m.engine.Tributes() {
		if t.IsDead() {
			b.WriteString(deadStyle.Render(fmt.Sprintf("%s (D%d)", t.Name, t.District)))
		} else {
			b.WriteString(aliveStyle.Render(fmt.Sprintf("%s (D%d)", t.Name, t.District)))
			b.WriteString(dimStyle.Render(fmt.Sprintf(" %.0f/%.0f/%.0f", t.Hunger, t.Thirst, t.Health)))
		}
		b.WriteString("\n")
	}

	return panelStyle.Width(survivorPanelWidth).Render(b.String())
}

func (m WatchModel) renderJournal() string {
	if !m.started {
		return panelStyle.Render("Press space to start the games.")
	}

	// Fit the journal into the space the survivor panel leaves; the
	// roster panel drives the overall height anyway.
	maxLines := len(m.engine.Tributes()) + 1
	if maxLines < journalHeight {
		maxLines = journalHeight
	}
	lines := m.lines
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(m.styleLine(line))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	width := m.width - survivorPanelWidth - 5
	if width < 20 {
		width = 20
	}
	return panelStyle.Width(width).Render(b.String())
}

// styleLine colors journal lines by content. The journal is plain
// strings at this point; death and victory lines are the ones worth
// highlighting.
func (m WatchModel) styleLine(line string) string {
	switch {
	case strings.Contains(line, "died") || strings.Contains(line, "killed") || strings.Contains(line, "starved"):
		return deathStyle.Render(line)
	case strings.HasPrefix(line, "The games are over"):
		return winnerStyle.Render(line)
	default:
		return line
	}
}

func (m WatchModel) renderOutcome() string {
	var b strings.Builder

	if w := m.engine.Winner(); w != nil {
		b.WriteString(winnerStyle.Render(fmt.Sprintf("Winner: %s (district %d) after %d days", w.Name, w.District, m.engine.Day())))
	} else {
		b.WriteString(deathStyle.Render(fmt.Sprintf("Nobody survived the %d days", m.engine.Day())))
	}
	b.WriteString("\n")

	b.WriteString(dimStyle.Render("Fallen tributes:"))
	b.WriteString("\n")
	for _, d := range m.engine.Timeline() {
		b.WriteString(fmt.Sprintf("  day %2d  %s (district %d)\n", d.Day, d.Name, d.District))
	}
	b.WriteString(dimStyle.Render("Press space to exit."))

	return b.String()
}

// RunWatch runs the watch UI in the local terminal.
func RunWatch(engine *sim.Engine, store *storage.Store, seed int64, width, height int) error {
	model := NewWatchModel(engine, store, seed, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
