package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gocomplete/internal/complete"
)

// HighlightMatches renders text with every occurrence of query passed
// through matchStyle and the rest through normalStyle
func HighlightMatches(text, query string, normalStyle, matchStyle func(string) string) string {
	spans := complete.Highlight(text, query)

	var result strings.Builder
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		if span.Match {
			result.WriteString(matchStyle(span.Text))
		} else {
			result.WriteString(normalStyle(span.Text))
		}
	}
	return result.String()
}

// renderCandidate highlights a candidate row, selected or not
func renderCandidate(text, query string, selected bool) string {
	if selected {
		return HighlightMatches(text, query, render(SelectedStyle), render(SelectedMatchStyle))
	}
	return HighlightMatches(text, query, render(ItemStyle), render(MatchStyle))
}

// render adapts a style to a single-string render func
func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}
