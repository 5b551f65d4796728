//go:build !headless

package otosink

import (
	"errors"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/leandrodaf/tone/internal/sink/linebuf"
	"github.com/leandrodaf/tone/internal/waveform"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// ErrNotOpen is returned by Write and Drain before Open.
var ErrNotOpen = errors.New("oto sink is not open")

// oto allows a single context per process.
var (
	ctxOnce sync.Once
	otoCtx  *oto.Context
	ctxErr  error
)

func sharedContext() (*oto.Context, error) {
	ctxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   contracts.SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatUnsignedInt8,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			ctxErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, ctxErr
}

// Sink queues written samples on a line that an oto player drains in real time.
type Sink struct {
	mutex  sync.Mutex // guards line and player
	line   *linebuf.Line
	player *oto.Player
}

// New returns a sink; the device is acquired by Open.
func New() *Sink {
	return &Sink{}
}

func (s *Sink) Open() error {
	ctx, err := sharedContext()
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.line = linebuf.New(waveform.MeasureBytes)
	s.player = ctx.NewPlayer(&unsignedReader{line: s.line})
	s.player.Play()
	return nil
}

func (s *Sink) Write(p []byte) (int, error) {
	line, _ := s.current()
	if line == nil {
		return 0, ErrNotOpen
	}
	return line.Write(p)
}

// Drain waits for the line to empty, then for the player's own buffer to play out.
func (s *Sink) Drain() error {
	line, player := s.current()
	if line == nil {
		return ErrNotOpen
	}
	line.Drain()
	buffered := player.BufferedSize()
	time.Sleep(time.Duration(buffered) * time.Second / contracts.SampleRate)
	return nil
}

func (s *Sink) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.line != nil {
		s.line.Close()
	}
	if s.player == nil {
		return nil
	}
	s.player.Pause()
	err := s.player.Close()
	s.line, s.player = nil, nil
	return err
}

func (s *Sink) current() (*linebuf.Line, *oto.Player) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.line, s.player
}
