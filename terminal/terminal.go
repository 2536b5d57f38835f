package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrTooSmall is returned when the terminal cannot fit the playfield
var ErrTooSmall = errors.New("terminal too small")

// Terminal provides the game's view of the screen and keyboard
type Terminal interface {
	// Init enters raw mode and the alternate screen buffer
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// PressedKey returns the next pending key without blocking
	PressedKey() (Event, bool)

	// Write queues raw text at the current cursor position
	Write(text string)

	// SetCell queues one glyph with colors at (x, y), 0-indexed
	SetCell(x, y int, glyph rune, fg, bg RGB)

	// Flush pushes every queued write to the terminal
	Flush() error

	HideCursor()
	ShowCursor()

	// Clear erases the whole screen
	Clear()
}

// CheckSize validates terminal dimensions against the playfield minimum
func CheckSize(width, height, minWidth, minHeight int) error {
	if width < minWidth || height < minHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, width, height, minWidth, minHeight)
	}
	return nil
}

// termImpl implements Terminal over a raw ANSI Backend
type termImpl struct {
	backend Backend
	output  *outputBuffer
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates an ANSI terminal on stdin/stdout
// Color mode is detected from the environment unless given
func New(colorMode ...ColorMode) Terminal {
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return newANSI(newBackend(), c)
}

func newANSI(b Backend, c ColorMode) *termImpl {
	return &termImpl{
		backend: b,
		output:  newOutputBuffer(b, c),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.input = newInputReader(t.backend)

	t.output.writeRaw(csiAltScreenEnter)
	// Prevents terminal scroll on bottom-right corner write
	t.output.writeRaw(csiAutoWrapOff)
	t.output.clear()
	if err := t.output.flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.input != nil {
		t.input.stop()
	}

	t.output.writeRaw(csiSGR0)
	t.output.writeRaw(csiCursorShow)
	t.output.writeRaw(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer has it
	t.output.writeRaw(csiAutoWrapOn)
	t.output.flush()

	t.backend.Fini()
	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// PressedKey drains at most one decoded key
func (t *termImpl) PressedKey() (Event, bool) {
	if t.input == nil {
		return Event{}, false
	}
	return t.input.poll()
}

func (t *termImpl) Write(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.output.writeString(text)
}

func (t *termImpl) SetCell(x, y int, glyph rune, fg, bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.output.setCell(x, y, glyph, fg, bg)
}

// Flush writes the buffered stream, reporting a dead input reader as well
func (t *termImpl) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.output.flush(); err != nil {
		return fmt.Errorf("terminal flush: %w", err)
	}
	if t.input != nil {
		if err := t.input.lastErr(); err != nil {
			return fmt.Errorf("terminal input: %w", err)
		}
	}
	return nil
}

func (t *termImpl) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.output.writeRaw(csiCursorHide)
	t.output.flush()
}

func (t *termImpl) ShowCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.output.writeRaw(csiCursorShow)
	t.output.flush()
}

func (t *termImpl) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.output.clear()
	t.output.flush()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
