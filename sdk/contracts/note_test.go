package contracts

import (
	"math"
	"testing"
	"time"
)

func TestParsePitch(t *testing.T) {
	for i, name := range pitchNames {
		p, err := ParsePitch(name)
		if err != nil || p != Pitch(i) {
			t.Errorf("ParsePitch(%q) = %v, %v", name, p, err)
		}
		if p.String() != name {
			t.Errorf("%d.String() = %q, want %q", i, p.String(), name)
		}
	}
	for _, name := range []string{"c4", "H4", "", "rest", "A4 "} {
		if _, err := ParsePitch(name); err == nil {
			t.Errorf("ParsePitch(%q) accepted", name)
		}
	}
}

func TestPitchFrequency(t *testing.T) {
	tests := []struct {
		p    Pitch
		want float64
	}{
		{Rest, 0},
		{A4, 440},
		{A4S, 466.16},
		{C4, 523.25},
		{A5, 880},
	}
	for _, tt := range tests {
		if got := tt.p.Frequency(); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("%s.Frequency() = %.2f, want %.2f", tt.p, got, tt.want)
		}
	}
}

func TestPitchMIDINote(t *testing.T) {
	if _, ok := Rest.MIDINote(); ok {
		t.Error("Rest has a MIDI note")
	}
	if n, _ := A4.MIDINote(); n != 69 {
		t.Errorf("A4 = %d, want 69", n)
	}
	if n, _ := A5.MIDINote(); n != 81 {
		t.Errorf("A5 = %d, want 81", n)
	}
}

func TestNearestPitch(t *testing.T) {
	for p := A4; int(p) < NumPitches; p++ {
		got, cents := NearestPitch(p.Frequency() * 1.01)
		if got != p {
			t.Errorf("NearestPitch(%s +1%%) = %s", p, got)
		}
		if cents <= 0 || cents > 20 {
			t.Errorf("%s: cents = %.1f", p, cents)
		}
	}
	if p, _ := NearestPitch(0); p != Rest {
		t.Errorf("NearestPitch(0) = %s, want REST", p)
	}
}

func TestNoteLength(t *testing.T) {
	tests := []struct {
		code  int
		want  NoteLength
		ms    int
		bytes int
	}{
		{1, Whole, 1000, 49152},
		{2, Half, 500, 24576},
		{4, Quarter, 250, 12288},
		{8, Eighth, 125, 6144},
	}
	for _, tt := range tests {
		l, err := ParseLength(tt.code)
		if err != nil || l != tt.want {
			t.Fatalf("ParseLength(%d) = %v, %v", tt.code, l, err)
		}
		if l.Code() != tt.code {
			t.Errorf("%s.Code() = %d", l, l.Code())
		}
		if l.Milliseconds() != tt.ms {
			t.Errorf("%s.Milliseconds() = %d, want %d", l, l.Milliseconds(), tt.ms)
		}
		if l.Bytes() != tt.bytes {
			t.Errorf("%s.Bytes() = %d, want %d", l, l.Bytes(), tt.bytes)
		}
	}
	for _, code := range []int{0, 3, 16, -4} {
		if _, err := ParseLength(code); err == nil {
			t.Errorf("ParseLength(%d) accepted", code)
		}
	}
}

func TestScore(t *testing.T) {
	s := Score{
		{E4, Quarter}, {Rest, Eighth}, {C4, Half}, {E4, Eighth}, {Rest, Quarter},
	}
	if got, want := s.Duration(), 1250*time.Millisecond; got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
	got := s.Pitches()
	want := []Pitch{E4, Rest, C4}
	if len(got) != len(want) {
		t.Fatalf("Pitches() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pitches() = %v, want %v", got, want)
		}
	}
	if n := (Note{C4S, Quarter}).String(); n != "C4S/QUARTER" {
		t.Errorf("String() = %q", n)
	}
	if len(Score(nil).Pitches()) != 0 {
		t.Error("empty score has pitches")
	}
}

func TestParseLogLevel(t *testing.T) {
	for name, want := range map[string]LogLevel{"debug": DebugLevel, "WARN": WarnLevel, " info ": InfoLevel} {
		if got, err := ParseLogLevel(name); err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("ParseLogLevel accepted an unknown level")
	}
}
