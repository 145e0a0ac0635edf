package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors - Cyberpunk/Neon aesthetic
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#00FFFF") // Cyan
	ColorSecondary = lipgloss.Color("#FF00FF") // Magenta
	ColorAccent    = lipgloss.Color("#FFFF00") // Yellow
	ColorSuccess   = lipgloss.Color("#00FF00") // Green
	ColorError     = lipgloss.Color("#FF0055") // Hot Pink
	ColorWarning   = lipgloss.Color("#FF9900") // Orange

	// Background colors
	ColorBg      = lipgloss.Color("#0D0D1A") // Deep dark blue
	ColorBgLight = lipgloss.Color("#1A1A2E") // Slightly lighter

	// Text colors
	ColorText      = lipgloss.Color("#E0E0E0") // Light gray
	ColorTextMuted = lipgloss.Color("#6B7280") // Muted gray
)

// Styles
var (
	// Title bar
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Background(ColorBgLight).
		Padding(0, 2).
		MarginBottom(1)

	// Candidate panel
	SidebarStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)

	// Selected item
	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBg).
		Background(ColorPrimary)

	// Normal list item
	ItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	// Highlighted query match inside an item
	MatchStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	// Highlighted query match inside the selected item
	SelectedMatchStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(ColorBg).
		Background(ColorPrimary)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBgLight).
		Padding(0, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	// Error message
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true).
		Padding(0, 1)

	// Success message
	SuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true).
		Padding(0, 1)

	// Warning message
	WarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true).
		Padding(0, 1)

	// Info panel
	InfoPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 2).
		MarginTop(1)

	// Input field
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	// Focused input
	InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(0, 1)

	// Badge/Tag
	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorSecondary).
		Padding(0, 1).
		Bold(true)

	// Spinner while a lookup is in flight
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
)
