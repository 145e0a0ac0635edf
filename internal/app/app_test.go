package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocomplete/internal/config"
	"github.com/gocomplete/internal/models"
	"github.com/gocomplete/internal/source"
	"github.com/gocomplete/internal/ui"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Lookup.Delay = config.Duration{}
	cfg.Lookup.Candidates = []string{"Apple", "Banana", "Cherry"}
	return cfg
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := testConfig()
	src, err := NewSource(context.Background(), cfg, nil)
	require.NoError(t, err)

	m := New(cfg, src, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

// run executes cmd and feeds the widget messages it produces back into m
func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(m, c)
		}
	case ui.FilteredMsg, ui.CandidatesLoadedMsg:
		_, next := m.Update(msg)
		run(m, next)
	}
}

func press(m *Model, msg tea.KeyMsg) {
	_, cmd := m.Update(msg)
	run(m, cmd)
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestModel_SubmitShowsValue(t *testing.T) {
	m := newTestModel(t)
	run(m, m.Init())

	typeText(m, "ap")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	value, ok := m.Submitted()
	require.True(t, ok)
	assert.Equal(t, "Apple", value)

	view := m.View()
	assert.Contains(t, view, "Submitted value:")
	assert.Contains(t, view, "Apple")
	assert.Contains(t, view, "source: static")
}

func TestModel_SubmitRawText(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "Kiw")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	value, ok := m.Submitted()
	require.True(t, ok)
	assert.Equal(t, "kiw", value)
}

func TestModel_SuggestsOnNoMatch(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "bnn")
	assert.Contains(t, m.View(), `did you mean "Banana"?`)
}

func TestModel_Copy(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "Nothing submitted yet", m.statusMsg)
	assert.Empty(t, copied)

	typeText(m, "cherry")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "cherry", copied)
	assert.NoError(t, m.err)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "no clipboard")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_LoadingBeforeResize(t *testing.T) {
	cfg := testConfig()
	m := New(cfg, source.NewStatic(cfg.CandidateList()), nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestNewSource(t *testing.T) {
	cfg := testConfig()

	src, err := NewSource(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &source.Static{}, src)

	cfg.Lookup.Source = models.SourceHTTP
	src, err = NewSource(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &source.HTTP{}, src)

	cfg.Lookup.Source = "ftp"
	_, err = NewSource(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidSource)
}
