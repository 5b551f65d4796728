// Package waveform synthesizes and caches the sample buffer of every pitch.
package waveform

import (
	"math"
	"sync"
	"time"

	"github.com/leandrodaf/tone/sdk/contracts"
)

// MeasureBytes is the length of every cached buffer: one measure at contracts.SampleRate.
var MeasureBytes = int(int64(contracts.SampleRate) * int64(contracts.MeasureLength) / int64(time.Second))

// Table maps a pitch to its immutable sample buffer. Buffers are synthesized on
// first use and kept for the lifetime of the table. A Table is safe for concurrent use.
type Table struct {
	entries [contracts.NumPitches]entry
}

type entry struct {
	once sync.Once
	buf  []byte
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

var defaultTable = sync.OnceValue(NewTable)

// Default returns the process-wide table.
func Default() *Table {
	return defaultTable()
}

// Sample returns the buffer for p. The returned slice is shared and must not be modified.
// Invalid pitches get the Rest buffer.
func (t *Table) Sample(p contracts.Pitch) []byte {
	if !p.Valid() {
		p = contracts.Rest
	}
	e := &t.entries[p]
	e.once.Do(func() {
		e.buf = Synthesize(p, contracts.SampleRate, MeasureBytes)
	})
	return e.buf
}

// Spacer returns the silence written between notes.
func (t *Table) Spacer() []byte {
	return t.Sample(contracts.Rest)[:contracts.SpacerBytes]
}

// Synthesize renders n 8-bit signed samples of a sine at the frequency of p.
// Rest renders silence. The output depends only on its arguments.
func Synthesize(p contracts.Pitch, sampleRate, n int) []byte {
	buf := make([]byte, n)
	freq := p.Frequency()
	if freq == 0 {
		return buf
	}
	step := freq * 2 * math.Pi / float64(sampleRate)
	for i := range buf {
		buf[i] = byte(int8(math.Sin(float64(i)*step) * contracts.MaxVolume))
	}
	return buf
}
