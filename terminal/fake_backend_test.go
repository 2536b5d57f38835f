package terminal

import (
	"bytes"
	"sync"
	"time"
)

// fakeBackend records output and replays queued input chunks
type fakeBackend struct {
	mu     sync.Mutex
	out    bytes.Buffer
	input  chan []byte
	width  int
	height int
	inited bool
	fini   bool
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{input: make(chan []byte, 16), width: w, height: h}
}

func (f *fakeBackend) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inited = true
	return nil
}

func (f *fakeBackend) Fini() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fini = true
}

func (f *fakeBackend) Size() (int, int) { return f.width, f.height }

func (f *fakeBackend) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}

func (f *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case <-stopCh:
		return nil, nil
	case data := <-f.input:
		return data, nil
	case <-time.After(5 * time.Millisecond):
		return nil, nil
	}
}

func (f *fakeBackend) output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

// waitKey polls fn until it yields a key or the deadline passes
func waitKey(fn func() (Event, bool)) (Event, bool) {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := fn(); ok {
			return ev, true
		}
		time.Sleep(time.Millisecond)
	}
	return Event{}, false
}
