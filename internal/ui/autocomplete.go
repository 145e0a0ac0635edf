package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gocomplete/internal/complete"
)

// FilteredMsg carries a finished lookup back to the widget
type FilteredMsg struct {
	complete.Result
}

// CandidatesLoadedMsg carries the baseline candidate list
type CandidatesLoadedMsg struct {
	Candidates []string
}

// AutocompleteOptions tunes the widget's presentation
type AutocompleteOptions struct {
	Placeholder string
	MaxVisible  int
	Width       int
}

// Autocomplete is a text field with an asynchronously filtered candidate list
type Autocomplete struct {
	input   textinput.Model
	spinner spinner.Model
	list    List
	keys    KeyMap

	ctrl   *complete.Controller
	engine *complete.Engine
}

// NewAutocomplete binds a controller and engine to a text field
func NewAutocomplete(ctrl *complete.Controller, engine *complete.Engine, opts AutocompleteOptions) Autocomplete {
	if opts.MaxVisible <= 0 {
		opts.MaxVisible = 10
	}
	if opts.Width <= 0 {
		opts.Width = 40
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 0 // the field must hold every candidate verbatim
	ti.Width = opts.Width - 4
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	list := NewList("Candidates", ctrl.Filtered())
	list.Height = opts.MaxVisible
	list.Width = opts.Width

	return Autocomplete{
		input:   ti,
		spinner: sp,
		list:    list,
		keys:    DefaultKeyMap(),
		ctrl:    ctrl,
		engine:  engine,
	}
}

// Init starts the cursor blink and loads the baseline candidate list
func (a *Autocomplete) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadCandidates())
}

// Update handles input and lookup results
func (a *Autocomplete) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FilteredMsg:
		if a.ctrl.Apply(msg.Result) {
			a.syncList()
		}
		return nil

	case CandidatesLoadedMsg:
		a.ctrl.SetCandidates(msg.Candidates)
		a.syncList()
		return nil

	case spinner.TickMsg:
		if a.ctrl.State() != complete.StateFiltering {
			return nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Up):
			a.list.MoveUp()
			return nil
		case key.Matches(msg, a.keys.Down):
			a.list.MoveDown()
			return nil
		case key.Matches(msg, a.keys.Select):
			a.SelectCurrent()
			return nil
		case key.Matches(msg, a.keys.Submit):
			a.ctrl.Submit()
			return nil
		}
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, a.Change(a.input.Value()))
}

// Change feeds raw field text to the controller and starts its lookup
func (a *Autocomplete) Change(raw string) tea.Cmd {
	wasIdle := a.ctrl.State() == complete.StateIdle
	req := a.ctrl.Change(raw)
	a.input.SetValue(a.ctrl.Query())
	a.list.Query = a.ctrl.Query()

	cmds := []tea.Cmd{a.filter(req)}
	if wasIdle {
		cmds = append(cmds, a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// SelectCurrent adopts the highlighted candidate
func (a *Autocomplete) SelectCurrent() bool {
	item, ok := a.list.GetSelected()
	if !ok {
		return false
	}
	a.ctrl.Select(item)
	a.input.SetValue(a.ctrl.Query())
	a.input.CursorEnd()
	a.syncList()
	return true
}

func (a *Autocomplete) filter(req complete.Request) tea.Cmd {
	engine := a.engine
	return func() tea.Msg {
		return FilteredMsg{Result: engine.Run(context.Background(), req)}
	}
}

func (a *Autocomplete) loadCandidates() tea.Cmd {
	engine := a.engine
	return func() tea.Msg {
		return CandidatesLoadedMsg{Candidates: engine.Candidates(context.Background())}
	}
}

func (a *Autocomplete) syncList() {
	a.list.SetItems(a.ctrl.Filtered())
	a.list.Query = a.ctrl.Query()
}

// Value returns the text currently in the field
func (a *Autocomplete) Value() string {
	return a.input.Value()
}

// Filtered returns the displayed candidates
func (a *Autocomplete) Filtered() []string {
	return a.ctrl.Filtered()
}

// Controller exposes the underlying state machine
func (a *Autocomplete) Controller() *complete.Controller {
	return a.ctrl
}

// SetWidth resizes the field and candidate panel
func (a *Autocomplete) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	a.input.Width = width - 4
	a.list.Width = width
}

// View renders the field, the lookup indicator and the candidates
func (a *Autocomplete) View() string {
	var b strings.Builder

	field := InputFocusedStyle.Width(a.list.Width).Render(a.input.View())
	indicator := " "
	if a.ctrl.State() == complete.StateFiltering {
		indicator = a.spinner.View()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, field, " ", indicator))
	b.WriteString("\n")
	b.WriteString(a.list.View())

	return b.String()
}
