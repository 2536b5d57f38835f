package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping, preventing scroll when writing to bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by Nm
	csiBg256 = []byte("\x1b[48;5;") // followed by Nm
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;Bm
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [5]byte
	i := 4
	for n > 0 && i >= 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeFg writes a foreground color in the given mode
func writeFg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		writeRGB(w, c)
		return
	}
	w.Write(csiFg256)
	writeInt(w, int(RGBTo256(c)))
	w.WriteByte('m')
}

// writeBg writes a background color in the given mode
func writeBg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeRGB(w, c)
		return
	}
	w.Write(csiBg256)
	writeInt(w, int(RGBTo256(c)))
	w.WriteByte('m')
}

func writeRGB(w *bufio.Writer, c RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
}
