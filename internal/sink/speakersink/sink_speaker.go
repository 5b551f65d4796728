//go:build !headless

package speakersink

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/leandrodaf/tone/internal/sink/linebuf"
	"github.com/leandrodaf/tone/internal/waveform"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// ErrNotOpen is returned by Write and Drain before Open.
var ErrNotOpen = errors.New("speaker sink is not open")

// Sink feeds the speaker from a line holding at most one measure of audio.
type Sink struct {
	sr         beep.SampleRate
	bufferSize int

	mu   sync.Mutex
	line *linebuf.Line
}

// New returns a sink with a speaker buffer of 100ms.
func New() *Sink {
	sr := beep.SampleRate(contracts.SampleRate)
	return &Sink{sr: sr, bufferSize: sr.N(time.Second / 10)}
}

func (s *Sink) Open() error {
	if err := speaker.Init(s.sr, s.bufferSize); err != nil {
		return err
	}
	line := linebuf.New(waveform.MeasureBytes)
	s.mu.Lock()
	s.line = line
	s.mu.Unlock()
	speaker.Play(&lineStreamer{line: line})
	return nil
}

func (s *Sink) Write(p []byte) (int, error) {
	line := s.current()
	if line == nil {
		return 0, ErrNotOpen
	}
	return line.Write(p)
}

func (s *Sink) Drain() error {
	line := s.current()
	if line == nil {
		return ErrNotOpen
	}
	line.Drain()
	time.Sleep(s.sr.D(s.bufferSize))
	return nil
}

func (s *Sink) Close() error {
	s.mu.Lock()
	line := s.line
	s.line = nil
	s.mu.Unlock()
	if line == nil {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	line.Close()
	return nil
}

func (s *Sink) current() *linebuf.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.line
}
