package terminal

import (
	"errors"
	"sync"
	"time"
)

// errInputClosed is returned by a backend when stdin reaches EOF
var errInputClosed = errors.New("terminal input closed")

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// inputReader handles raw stdin parsing
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	err     error

	// Persistent buffer for stream assembly, keeps partial UTF-8 and escape sequences across reads
	buf []byte
}

// newInputReader creates a new input reader
func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Reader may be stuck in a blocking read, don't wait forever
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
}

// poll returns the next decoded key without blocking
func (r *inputReader) poll() (Event, bool) {
	select {
	case ev := <-r.eventCh:
		return ev, true
	default:
		return Event{}, false
	}
}

// lastErr reports the error that terminated the read loop, if any
func (r *inputReader) lastErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	defer recoverCrash("input reader")

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			return
		}

		if len(data) == 0 {
			// Idle poll: a lone pending ESC is the Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendEvent(Event{Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parseInput(r.buf)

		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendEvent(Event{Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // Wait for more data or idle timeout
			}

			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			if ev := parseControl(b); ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.sendEvent(Event{Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			i++
			continue
		}
		if i+seqLen > n {
			return i
		}
		rn, size, ok := decodeRune(data[i:])
		if ok {
			r.sendEvent(Event{Key: KeyRune, Rune: rn})
		}
		i += size
	}
	return i
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		// ESC ESC: first one is a plain Escape, second starts over
		return 1, Event{Key: KeyEscape}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] >= 0x20 && data[1] < 0x7f:
		return 2, Event{Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// Alt+control
	ev := parseControl(data[1])
	ev.Modifiers |= ModAlt
	return 2, ev
}

// parseCSI parses CSI sequence without allocation
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	end := 2
	maxScan := min(len(data), 16)
	terminated := false

	for end < maxScan {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			terminated = true
			break
		}
		if b < 0x20 || b > 0x7e {
			// Garbage inside sequence, drop the introducer
			return 2, Event{}
		}
	}

	if !terminated {
		if maxScan == 16 {
			// Overlong, swallow what was scanned
			return end, Event{}
		}
		return 0, Event{}
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, Event{Key: key, Modifiers: mod}
	}
	// Unknown but well-formed, consume silently
	return end, Event{}
}

// parseSS3 parses SS3 sequence, returns length even for unknown sequences
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Key: key, Modifiers: mod}
	}
	return 3, Event{}
}

// parseControl maps control characters to keys, unknown chords map to KeyNone
func parseControl(b byte) Event {
	switch b {
	case 0x03:
		return Event{Key: KeyCtrlC, Modifiers: ModCtrl}
	case 0x04:
		return Event{Key: KeyCtrlD, Modifiers: ModCtrl}
	case 0x08:
		return Event{Key: KeyBackspace}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Key: KeyEnter}
	case 0x1a:
		return Event{Key: KeyCtrlZ, Modifiers: ModCtrl}
	case 0x1b:
		return Event{Key: KeyEscape}
	}
	return Event{}
}

// sendEvent queues an event, dropping it when the game is not draining
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}

// decodeRune decodes the first UTF-8 rune from data
// ok is false for malformed or overlong input; size is then the one byte to drop.
func decodeRune(data []byte) (r rune, size int, ok bool) {
	if len(data) == 0 {
		return 0, 0, false
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1, true
	}

	var lo rune

	switch {
	case b&0xe0 == 0xc0:
		size, lo, r = 2, 0x80, rune(b&0x1f)
	case b&0xf0 == 0xe0:
		size, lo, r = 3, 0x800, rune(b&0x0f)
	case b&0xf8 == 0xf0:
		size, lo, r = 4, 0x10000, rune(b&0x07)
	default:
		return 0, 1, false
	}

	if len(data) < size {
		return 0, 1, false
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0, 1, false
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < lo || r > 0x10ffff || (r >= 0xd800 && r <= 0xdfff) {
		return 0, 1, false
	}
	return r, size, true
}
