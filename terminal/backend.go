package terminal

import "io"

// The ANSI output buffer writes straight into the backend
var _ io.Writer = Backend(nil)

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output; a Backend is the output buffer's io.Writer
	Write(p []byte) (int, error)

	// Read blocks until input is available, the poll interval elapses, the stop channel is
	// closed, or an error occurs. A nil slice with nil error signals an idle poll.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
