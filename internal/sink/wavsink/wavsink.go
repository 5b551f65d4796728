// Package wavsink renders a performance to a WAV file instead of a sound device.
package wavsink

import (
	"errors"
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// Format is the layout of rendered files: mono, 16-bit, contracts.SampleRate.
var Format = beep.Format{
	SampleRate:  beep.SampleRate(contracts.SampleRate),
	NumChannels: 1,
	Precision:   2,
}

// ErrNoPath is returned by Open when the sink has no output path.
var ErrNoPath = errors.New("wav sink requires an output path")

// Sink buffers written samples and encodes them on Drain and Close.
type Sink struct {
	path  string
	f     *os.File
	pcm   []byte
	dirty bool
}

// New returns a sink writing to path. The file is created by Open.
func New(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the output file.
func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) Open() error {
	if s.path == "" {
		return ErrNoPath
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	s.f = f
	s.pcm = s.pcm[:0]
	s.dirty = true
	return nil
}

func (s *Sink) Write(p []byte) (int, error) {
	if s.f == nil {
		return 0, os.ErrClosed
	}
	s.pcm = append(s.pcm, p...)
	s.dirty = true
	return len(p), nil
}

// Drain encodes everything written so far and syncs the file.
func (s *Sink) Drain() error {
	if s.f == nil {
		return os.ErrClosed
	}
	if !s.dirty {
		return nil
	}
	if _, err := s.f.Seek(0, 0); err != nil {
		return err
	}
	if err := s.f.Truncate(0); err != nil {
		return err
	}
	if err := wav.Encode(s.f, newStreamer(s.pcm), Format); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	s.dirty = false
	return s.f.Sync()
}

func (s *Sink) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.Drain()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	s.f = nil
	return err
}

// streamer plays 8-bit signed mono samples as a beep.Streamer.
type streamer struct {
	pcm []byte
	pos int
}

func newStreamer(pcm []byte) *streamer {
	return &streamer{pcm: pcm}
}

func (s *streamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.pcm) {
		return 0, false
	}
	n := 0
	for ; n < len(samples) && s.pos < len(s.pcm); n++ {
		v := float64(int8(s.pcm[s.pos])) / 128
		samples[n][0], samples[n][1] = v, v
		s.pos++
	}
	return n, true
}

func (s *streamer) Err() error {
	return nil
}
