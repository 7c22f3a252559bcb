package signal

import (
	"encoding/json"
	"sync"

	"github.com/dkeye/Intercom/internal/core"
	"github.com/samber/lo"
)

type fakeConn struct {
	mu     sync.Mutex
	frames []core.Frame
	full   bool
	closed bool
}

func (f *fakeConn) TrySend(fr core.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrConnClosed
	}
	if f.full {
		return ErrBackpressure
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// take decodes and clears everything received so far.
func (f *fakeConn) take() []core.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := lo.Map(f.frames, func(fr core.Frame, _ int) core.Envelope {
		var env core.Envelope
		if err := json.Unmarshal(fr, &env); err != nil {
			panic(err)
		}
		return env
	})
	f.frames = nil
	return out
}

func ofType(envs []core.Envelope, event core.Event) []core.Envelope {
	return lo.Filter(envs, func(e core.Envelope, _ int) bool { return e.Type == event })
}
