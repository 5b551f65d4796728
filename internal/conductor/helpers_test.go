package conductor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/tone/internal/sink/memsink"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// pacer records every pacing request instead of sleeping.
type pacer struct {
	mu    sync.Mutex
	waits []time.Duration
	hook  func(call int)
}

func (p *pacer) sleep(ctx context.Context, d time.Duration) error {
	p.mu.Lock()
	p.waits = append(p.waits, d)
	call := len(p.waits)
	p.mu.Unlock()
	if p.hook != nil {
		p.hook(call)
	}
	return ctx.Err()
}

func (p *pacer) recorded() []time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]time.Duration(nil), p.waits...)
}

// turnLog records listener callbacks.
type turnLog struct {
	mu     sync.Mutex
	events []string
}

func (l *turnLog) NoteOn(n contracts.Note) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "on "+n.String())
}

func (l *turnLog) NoteOff(n contracts.Note) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "off "+n.String())
}

func (l *turnLog) recorded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

var errNoDevice = errors.New("no device")

// brokenSink cannot be opened.
type brokenSink struct {
	memsink.Sink
}

func (s *brokenSink) Open() error { return errNoDevice }

// slowSink takes delay per write and remembers whether two writes ever overlapped.
type slowSink struct {
	*memsink.Sink
	delay    time.Duration
	inflight atomic.Int32
	overlap  atomic.Bool
}

func (s *slowSink) Write(p []byte) (int, error) {
	if s.inflight.Add(1) > 1 {
		s.overlap.Store(true)
	}
	defer s.inflight.Add(-1)
	time.Sleep(s.delay)
	return s.Sink.Write(p)
}

// failingSink rejects writes after the first n.
type failingSink struct {
	*memsink.Sink
	n      int
	writes int
}

func (s *failingSink) Write(p []byte) (int, error) {
	s.writes++
	if s.writes > s.n {
		return 0, fmt.Errorf("write %d: device lost", s.writes)
	}
	return s.Sink.Write(p)
}

func note(p contracts.Pitch, l contracts.NoteLength) contracts.Note {
	return contracts.Note{Pitch: p, Length: l}
}
