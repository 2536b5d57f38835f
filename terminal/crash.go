package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// CrashHandler receives a panic recovered in one of the terminal's goroutines
// The terminal has already been reset when it runs.
type CrashHandler func(r any)

var (
	crashMu      sync.Mutex
	crashHandler CrashHandler

	// Overridden in tests
	crashResetOut io.Writer = os.Stdout
)

// SetCrashHandler installs the handler for input goroutine panics; nil restores the default,
// which prints the panic with its stack to stderr and exits with status 1
func SetCrashHandler(h CrashHandler) {
	crashMu.Lock()
	crashHandler = h
	crashMu.Unlock()
}

// recoverCrash must be deferred directly by every goroutine this package starts
func recoverCrash(source string) {
	r := recover()
	if r == nil {
		return
	}

	EmergencyReset(crashResetOut)

	crashMu.Lock()
	h := crashHandler
	crashMu.Unlock()
	if h == nil {
		h = defaultCrash
	}
	h(fmt.Errorf("%s: %v", source, r))
}

func defaultCrash(r any) {
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
