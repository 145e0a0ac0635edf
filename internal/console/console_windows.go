//go:build windows

// Package console prepares the terminal for the TUI
package console

import (
	"fmt"
	"syscall"
	"unsafe"
)

const (
	cpUTF8 = 65001

	stdInputHandle  = ^uintptr(9)  // -10
	stdOutputHandle = ^uintptr(10) // -11

	enableVirtualTerminalInput      = 0x0200
	enableVirtualTerminalProcessing = 0x0004
)

var (
	kernel32           = syscall.NewLazyDLL("kernel32.dll")
	setConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
	setConsoleCP       = kernel32.NewProc("SetConsoleCP")
	getConsoleCP       = kernel32.NewProc("GetConsoleCP")
	getStdHandle       = kernel32.NewProc("GetStdHandle")
	getConsoleMode     = kernel32.NewProc("GetConsoleMode")
	setConsoleMode     = kernel32.NewProc("SetConsoleMode")
)

// Prepare switches the console to UTF-8 so accented candidates and the
// highlight glyphs render, then turns on ANSI escape handling.
func Prepare() error {
	if r1, _, err := setConsoleCP.Call(uintptr(cpUTF8)); r1 == 0 {
		return fmt.Errorf("failed to set input code page: %w", err)
	}
	if r1, _, err := setConsoleOutputCP.Call(uintptr(cpUTF8)); r1 == 0 {
		return fmt.Errorf("failed to set output code page: %w", err)
	}

	enableMode(stdOutputHandle, enableVirtualTerminalProcessing)
	enableMode(stdInputHandle, enableVirtualTerminalInput)
	return nil
}

// CodePage returns the current console input code page
func CodePage() uint32 {
	r1, _, _ := getConsoleCP.Call()
	return uint32(r1)
}

func enableMode(std uintptr, flag uint32) {
	handle, _, _ := getStdHandle.Call(std)
	var mode uint32
	getConsoleMode.Call(handle, uintptr(unsafe.Pointer(&mode)))
	setConsoleMode.Call(handle, uintptr(mode|flag))
}
