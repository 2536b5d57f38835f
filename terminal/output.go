package terminal

import (
	"bufio"
	"io"
)

// outputBuffer encodes positioned cell writes into a buffered ANSI stream
type outputBuffer struct {
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: colorMode,
	}
}

// setCell queues one glyph at (x, y), moving the cursor only when the write is not contiguous
func (o *outputBuffer) setCell(x, y int, glyph rune, fg, bg RGB) {
	w := o.writer

	if !o.cursorValid || x != o.cursorX || y != o.cursorY {
		writeCursorPos(w, x, y)
		o.cursorX = x
		o.cursorY = y
		o.cursorValid = true
	}

	if !o.lastValid || o.lastFg != fg {
		writeFg(w, fg, o.colorMode)
		o.lastFg = fg
	}
	if !o.lastValid || o.lastBg != bg {
		writeBg(w, bg, o.colorMode)
		o.lastBg = bg
	}
	o.lastValid = true

	if glyph == 0 {
		glyph = ' '
	}
	if glyph < 0x80 {
		w.WriteByte(byte(glyph))
	} else {
		w.WriteRune(glyph)
	}
	o.cursorX++
}

// writeString queues raw text at the current cursor position
func (o *outputBuffer) writeString(s string) {
	o.writer.WriteString(s)
	o.invalidate()
}

// writeRaw queues a control sequence
func (o *outputBuffer) writeRaw(p []byte) {
	o.writer.Write(p)
}

// flush resets attributes and pushes the buffered stream to the backend
func (o *outputBuffer) flush() error {
	if o.lastValid {
		o.writer.Write(csiSGR0)
		o.lastValid = false
	}
	return o.writer.Flush()
}

// clear erases the screen and homes the cursor
func (o *outputBuffer) clear() {
	o.writer.Write(csiSGR0)
	o.writer.Write(csiClear)
	o.invalidate()
	o.cursorX, o.cursorY, o.cursorValid = 0, 0, true
}

// invalidate forgets cursor and style state after a write the buffer did not track
func (o *outputBuffer) invalidate() {
	o.cursorValid = false
	o.lastValid = false
}
