package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List shows candidates with the current query highlighted
type List struct {
	Items    []string
	Selected int
	Offset   int
	Height   int
	Width    int
	Title    string
	Query    string
}

// NewList creates a new List
func NewList(title string, items []string) List {
	return List{
		Title:    title,
		Items:    items,
		Selected: 0,
		Offset:   0,
		Height:   10,
		Width:    30,
	}
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
		if l.Selected < l.Offset {
			l.Offset = l.Selected
		}
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
		if l.Selected >= l.Offset+l.Height {
			l.Offset = l.Selected - l.Height + 1
		}
	}
}

// GetSelected returns the selected item
func (l *List) GetSelected() (string, bool) {
	if l.Selected >= 0 && l.Selected < len(l.Items) {
		return l.Items[l.Selected], true
	}
	return "", false
}

// SetItems updates the list items
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Selected = 0
	l.Offset = 0
}

// View renders the list
func (l *List) View() string {
	var b strings.Builder

	if l.Title != "" {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("%s (%d)", l.Title, len(l.Items))))
		b.WriteString("\n")
	}

	if len(l.Items) == 0 {
		b.WriteString(HelpStyle.Render("  no matches"))
		return SidebarStyle.Width(l.Width).Render(b.String())
	}

	endIdx := l.Offset + l.Height
	if endIdx > len(l.Items) {
		endIdx = len(l.Items)
	}

	for i := l.Offset; i < endIdx; i++ {
		item := l.Items[i]
		if i == l.Selected {
			b.WriteString(SelectedStyle.Render("▸ ") + renderCandidate(item, l.Query, true))
		} else {
			b.WriteString("  " + renderCandidate(item, l.Query, false))
		}
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if hidden := len(l.Items) - endIdx; hidden > 0 {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(fmt.Sprintf("  … %d more", hidden)))
	}

	return SidebarStyle.Width(l.Width).Render(b.String())
}

// InfoBox displays information in a box
type InfoBox struct {
	Title   string
	Content string
	Width   int
}

// View renders the info box
func (i InfoBox) View() string {
	title := BadgeStyle.Render(i.Title)
	return InfoPanelStyle.Width(i.Width).Render(title + " " + i.Content)
}

// StatusBar component
type StatusBar struct {
	Left   string
	Center string
	Right  string
	Width  int
}

// View renders the status bar
func (s StatusBar) View() string {
	leftStyle := StatusBarStyle.Width(s.Width / 3)
	centerStyle := StatusBarStyle.Width(s.Width / 3).Align(lipgloss.Center)
	rightStyle := StatusBarStyle.Width(s.Width - 2*(s.Width/3)).Align(lipgloss.Right)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(s.Left),
		centerStyle.Render(s.Center),
		rightStyle.Render(s.Right),
	)
}
