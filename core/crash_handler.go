// Package core holds process-wide crash handling shared by the game goroutine and helpers.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/term-snake/terminal"
)

// Finalizer restores a terminal
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer

	// Overridden in tests
	crashOut  io.Writer = os.Stderr
	resetOut  io.Writer = os.Stdout
	crashExit           = os.Exit
)

// SetCrashTerminal registers the terminal HandleCrash restores; nil unregisters
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	// Terminal cleanup if available
	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(resetOut)
	}

	ReportCrash(r)
}

// ReportCrash prints the panic and stack trace and exits
// The terminal must already be restored; installed as the terminal's input goroutine crash handler.
func ReportCrash(r any) {
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// InstallCrashHandler routes panics in the terminal's input goroutines to ReportCrash
func InstallCrashHandler() {
	terminal.SetCrashHandler(ReportCrash)
}
