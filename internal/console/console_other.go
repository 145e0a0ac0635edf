//go:build !windows

// Package console prepares the terminal for the TUI
package console

// Prepare is a no-op outside Windows; Unix terminals already speak UTF-8
// and ANSI escapes.
func Prepare() error {
	return nil
}

// CodePage returns 0 outside Windows
func CodePage() uint32 {
	return 0
}
