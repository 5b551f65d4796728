package contracts

import (
	"fmt"
	"math"
	"time"
)

const (
	// SampleRate is the number of 8-bit signed mono samples played per second (~48kHz).
	SampleRate = 48 * 1024
	// MeasureLength is the time unit every NoteLength is scaled against.
	MeasureLength = time.Second
	// MaxVolume is the peak amplitude of a synthesized sample.
	MaxVolume = 127.0
	// ReferenceA4 is the frequency, in Hz, of pitch A4.
	ReferenceA4 = 440.0
	// SpacerBytes is the length of the silence written after every note to avoid clicks.
	SpacerBytes = 50
)

// Pitch identifies a musical note, including the Rest pseudo-pitch.
type Pitch int

// Rest must stay the first pitch: every other pitch is a half step above the previous one.
const (
	Rest Pitch = iota
	A4
	A4S
	B4
	C4
	C4S
	D4
	D4S
	E4
	F4
	F4S
	G4
	G4S
	A5
)

// NumPitches is the size of the fixed pitch set.
const NumPitches = int(A5) + 1

var pitchNames = [NumPitches]string{
	"REST", "A4", "A4S", "B4", "C4", "C4S", "D4", "D4S", "E4", "F4", "F4S", "G4", "G4S", "A5",
}

// String returns the canonical score name of the pitch.
func (p Pitch) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pitch(%d)", int(p))
	}
	return pitchNames[p]
}

// Valid reports whether p belongs to the fixed pitch set.
func (p Pitch) Valid() bool {
	return p >= Rest && int(p) < NumPitches
}

// Frequency returns the pitch frequency in Hz. Rest has frequency zero.
func (p Pitch) Frequency() float64 {
	if p == Rest || !p.Valid() {
		return 0
	}
	return ReferenceA4 * math.Pow(2, float64(p-A4)/12)
}

// MIDINote returns the MIDI note number of the pitch. The boolean is false for Rest.
func (p Pitch) MIDINote() (byte, bool) {
	if p == Rest || !p.Valid() {
		return 0, false
	}
	return byte(69 + int(p-A4)), true
}

// ParsePitch resolves a case-sensitive score name such as "C4S" or "REST".
func ParsePitch(name string) (Pitch, error) {
	for i, n := range pitchNames {
		if n == name {
			return Pitch(i), nil
		}
	}
	return Rest, fmt.Errorf("invalid note name: %q", name)
}

// NearestPitch returns the non-rest pitch closest to freq and the distance in cents.
func NearestPitch(freq float64) (Pitch, float64) {
	if freq <= 0 {
		return Rest, 0
	}
	best, bestCents := A4, math.Inf(1)
	for p := A4; int(p) < NumPitches; p++ {
		cents := 1200 * math.Log2(freq/p.Frequency())
		if math.Abs(cents) < math.Abs(bestCents) {
			best, bestCents = p, cents
		}
	}
	return best, bestCents
}

// NoteLength is a note duration expressed as a fraction of a measure.
type NoteLength int

const (
	Whole NoteLength = iota
	Half
	Quarter
	Eighth
)

var lengthInfo = [...]struct {
	name     string
	code     int
	fraction float64
}{
	Whole:   {"WHOLE", 1, 1.0},
	Half:    {"HALF", 2, 0.5},
	Quarter: {"QUARTER", 4, 0.25},
	Eighth:  {"EIGHTH", 8, 0.125},
}

func (l NoteLength) valid() bool {
	return l >= Whole && int(l) < len(lengthInfo)
}

// String returns the length name, e.g. "QUARTER".
func (l NoteLength) String() string {
	if !l.valid() {
		return fmt.Sprintf("NoteLength(%d)", int(l))
	}
	return lengthInfo[l].name
}

// Code returns the score duration code (1, 2, 4 or 8).
func (l NoteLength) Code() int {
	if !l.valid() {
		return 0
	}
	return lengthInfo[l].code
}

// Duration resolves the length against MeasureLength.
func (l NoteLength) Duration() time.Duration {
	if !l.valid() {
		return 0
	}
	return time.Duration(lengthInfo[l].fraction * float64(MeasureLength))
}

// Milliseconds is Duration truncated to whole milliseconds.
func (l NoteLength) Milliseconds() int {
	return int(l.Duration() / time.Millisecond)
}

// Bytes returns how many waveform bytes a note of this length writes. It never exceeds one measure.
func (l NoteLength) Bytes() int {
	ms := min(l.Milliseconds(), int(MeasureLength/time.Millisecond))
	return SampleRate * ms / 1000
}

// ParseLength resolves a score duration code.
func ParseLength(code int) (NoteLength, error) {
	for i, info := range lengthInfo {
		if info.code == code {
			return NoteLength(i), nil
		}
	}
	return Whole, fmt.Errorf("unaccepted duration: %d", code)
}

// Note is one entry of a Score.
type Note struct {
	Pitch  Pitch
	Length NoteLength
}

func (n Note) String() string {
	return fmt.Sprintf("%s/%s", n.Pitch, n.Length)
}

// Score is the ordered sequence of notes of a song. It may be empty.
type Score []Note

// Duration is the total pacing time of the score.
func (s Score) Duration() time.Duration {
	var d time.Duration
	for _, n := range s {
		d += n.Length.Duration()
	}
	return d
}

// Pitches returns the distinct pitches of the score in first-occurrence order.
func (s Score) Pitches() []Pitch {
	var seen [NumPitches]bool
	var out []Pitch
	for _, n := range s {
		if n.Pitch.Valid() && !seen[n.Pitch] {
			seen[n.Pitch] = true
			out = append(out, n.Pitch)
		}
	}
	return out
}
