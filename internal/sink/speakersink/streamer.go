// Package speakersink plays a performance on the system audio device through beep's speaker.
package speakersink

import "github.com/leandrodaf/tone/internal/sink/linebuf"

// lineStreamer is a beep.Streamer that never ends: it plays whatever is queued
// on the line and silence otherwise.
type lineStreamer struct {
	line    *linebuf.Line
	scratch []byte
}

func (s *lineStreamer) Stream(samples [][2]float64) (int, bool) {
	if cap(s.scratch) < len(samples) {
		s.scratch = make([]byte, len(samples))
	}
	buf := s.scratch[:len(samples)]
	s.line.Read(buf)
	for i, b := range buf {
		v := float64(int8(b)) / 128
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

func (s *lineStreamer) Err() error {
	return nil
}
