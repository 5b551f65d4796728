// Package memsink implements an AudioSink that records everything in memory.
package memsink

import (
	"bytes"
	"errors"
	"sync"
)

// ErrNotOpen is returned by Write when the sink is not open.
var ErrNotOpen = errors.New("memory sink is not open")

// Sink records every write. It is used for dry runs and in tests.
type Sink struct {
	mu     sync.Mutex
	open   bool
	data   bytes.Buffer
	writes [][]byte

	opens, drains, closes int
}

// New returns a closed, empty sink.
func New() *Sink {
	return &Sink{}
}

func (s *Sink) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.opens++
	return nil
}

func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return 0, ErrNotOpen
	}
	s.writes = append(s.writes, bytes.Clone(p))
	return s.data.Write(p)
}

func (s *Sink) Drain() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drains++
	return nil
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.closes++
	return nil
}

// Bytes returns a copy of everything written so far.
func (s *Sink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.data.Bytes())
}

// Writes returns a copy of every Write call's payload, in order.
func (s *Sink) Writes() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.writes...)
}

// Counts returns how many times Open, Drain and Close were called.
func (s *Sink) Counts() (opens, drains, closes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens, s.drains, s.closes
}

// Reset forgets recorded data.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Reset()
	s.writes = nil
}
