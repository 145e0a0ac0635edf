package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/gocomplete/internal/complete"
	"github.com/gocomplete/internal/config"
	"github.com/gocomplete/internal/logging"
	"github.com/gocomplete/internal/ui"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// Model is the main application model
type Model struct {
	widget ui.Autocomplete
	keys   ui.KeyMap
	help   help.Model
	logger *log.Logger

	sourceName string

	// Submitted value, owned here and never fed back into the widget
	submitted    string
	hasSubmitted bool

	statusMsg string
	err       error

	// Window dimensions
	width  int
	height int
}

// New creates the host page over src. A nil logger discards output.
func New(cfg *config.Config, src complete.Source, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}

	m := &Model{
		keys:       ui.DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		sourceName: string(cfg.Lookup.Source),
	}
	m.initAutocomplete(cfg, src)

	return m
}

func (m *Model) submit(value string) {
	m.submitted = value
	m.hasSubmitted = true
	m.err = nil
	m.statusMsg = "Submitted"
	m.logger.Info("value submitted", "value", value)
}

// Submitted returns the last submitted value
func (m *Model) Submitted() (string, bool) {
	return m.submitted, m.hasSubmitted
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.widget.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.widget.SetWidth(min(msg.Width-4, 60))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			m.copySubmitted()
			return m, nil
		}
	}

	return m, m.widget.Update(msg)
}

func (m *Model) copySubmitted() {
	if !m.hasSubmitted {
		m.statusMsg = "Nothing submitted yet"
		return
	}
	if err := writeClipboard(m.submitted); err != nil {
		m.err = err
		m.statusMsg = "✗ Failed to copy: " + err.Error()
		m.logger.Error("clipboard write failed", "err", err)
		return
	}
	m.err = nil
	m.statusMsg = "✓ Copied submitted value to clipboard"
}

// suggestion offers the closest candidate when nothing matched
func (m *Model) suggestion() string {
	ctrl := m.widget.Controller()
	if ctrl.Query() == "" || len(ctrl.Filtered()) > 0 || ctrl.State() == complete.StateFiltering {
		return ""
	}
	if s, ok := complete.Suggest(ctrl.Query(), ctrl.Candidates()); ok {
		return fmt.Sprintf("did you mean %q?", s)
	}
	return ""
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("⚡ GoComplete"))
	b.WriteString("\n")

	b.WriteString(m.widget.View())
	b.WriteString("\n")

	value := ui.HelpStyle.Render("nothing yet")
	if m.hasSubmitted {
		value = ui.SuccessStyle.Render(m.submitted)
	}
	b.WriteString(ui.InfoBox{Title: "Submitted value:", Content: value, Width: min(m.width-4, 60)}.View())
	b.WriteString("\n")

	if hint := m.suggestion(); hint != "" {
		b.WriteString(ui.WarningStyle.Render(hint))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		style := ui.HelpStyle
		if m.err != nil {
			style = ui.ErrorStyle
		}
		b.WriteString(style.Render(m.statusMsg))
		b.WriteString("\n")
	}

	ctrl := m.widget.Controller()
	bar := ui.StatusBar{
		Left:   "source: " + m.sourceName,
		Center: ctrl.State().String(),
		Right:  "order: " + ctrl.Ordering().String(),
		Width:  m.width,
	}

	body := b.String()
	footer := lipgloss.JoinVertical(lipgloss.Left, bar.View(), m.help.View(m.keys))
	if gap := m.height - lipgloss.Height(body) - lipgloss.Height(footer); gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + footer
}
