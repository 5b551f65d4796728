package score

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leandrodaf/tone/sdk/contracts"
)

func TestParse(t *testing.T) {
	song := `# mary had a little lamb
E4 4 D4 4
C4 4   D4 4

E4 2 REST 8
`
	got, err := Parse(strings.NewReader(song))
	if err != nil {
		t.Fatal(err)
	}
	want := contracts.Score{
		{Pitch: contracts.E4, Length: contracts.Quarter},
		{Pitch: contracts.D4, Length: contracts.Quarter},
		{Pitch: contracts.C4, Length: contracts.Quarter},
		{Pitch: contracts.D4, Length: contracts.Quarter},
		{Pitch: contracts.E4, Length: contracts.Half},
		{Pitch: contracts.Rest, Length: contracts.Eighth},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d notes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("note %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParsePairSpansLines(t *testing.T) {
	got, err := Parse(strings.NewReader("A5\n1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (contracts.Note{Pitch: contracts.A5, Length: contracts.Whole}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseRejectsWholeSong(t *testing.T) {
	tests := []struct {
		name  string
		song  string
		lines []int
	}{
		{"unknown duration", "C4 4\nD4 3\nE4 4\n", []int{2}},
		{"unknown note", "C4 4\nH9 4\n", []int{2}},
		{"lowercase note", "c4 4\n", []int{1}},
		{"duration not a number", "C4 four\n", []int{1}},
		{"missing duration", "C4 4 D4\n", []int{1}},
		{"several", "X 4\nC4 5\nD4 4\nE4 16\n", []int{1, 2, 4}},
		{"bad note and bad duration", "X 3\n", []int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.song))
			if s != nil {
				t.Errorf("got score %v, want nil", s)
			}
			if !errors.Is(err, contracts.ErrScoreLoad) {
				t.Fatalf("err = %v, want ErrScoreLoad", err)
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("err = %T, want *LoadError", err)
			}
			diags := le.Diagnostics()
			if len(diags) != len(tt.lines) {
				t.Fatalf("got %d diagnostics (%v), want %d", len(diags), err, len(tt.lines))
			}
			for i, d := range diags {
				if d.Line != tt.lines[i] {
					t.Errorf("diagnostic %d on line %d, want %d", i, d.Line, tt.lines[i])
				}
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, song := range []string{"", "\n\n", "# only a comment\n"} {
		_, err := Parse(strings.NewReader(song))
		if !errors.Is(err, contracts.ErrEmptyScore) {
			t.Errorf("Parse(%q) err = %v, want ErrEmptyScore", song, err)
		}
		if !errors.Is(err, contracts.ErrScoreLoad) {
			t.Errorf("Parse(%q) err = %v, want ErrScoreLoad", song, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	if err := os.WriteFile(path, []byte("C4 4 REST 4 C4 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 3 {
		t.Fatalf("got %d notes, want 3", len(s))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, contracts.ErrScoreLoad) {
		t.Fatalf("err = %v, want ErrScoreLoad", err)
	}
}

func TestParseLongLine(t *testing.T) {
	song := strings.Repeat("C4 4 ", 15000) + "E4 8"
	got, err := Parse(strings.NewReader(song))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 15001 {
		t.Fatalf("got %d notes, want 15001", len(got))
	}
	if last := got[len(got)-1]; last != (contracts.Note{Pitch: contracts.E4, Length: contracts.Eighth}) {
		t.Errorf("last note = %v, want E4/EIGHTH", last)
	}
}

func TestParseLongLineDiagnostic(t *testing.T) {
	song := strings.Repeat("C4 4 ", 20000) + "\nH4 4\n"
	_, err := Parse(strings.NewReader(song))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LoadError", err)
	}
	if d := le.Diagnostics(); len(d) != 1 || d[0].Line != 2 {
		t.Fatalf("diagnostics = %v, want one on line 2", d)
	}
}

func TestLoadBundledSongs(t *testing.T) {
	songs, err := filepath.Glob(filepath.Join("..", "..", "songs", "*.txt"))
	if err != nil || len(songs) == 0 {
		t.Fatalf("no bundled songs: %v", err)
	}
	for _, path := range songs {
		if _, err := Load(path); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}

	lamb, err := Load(filepath.Join("..", "..", "songs", "lamb.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < 3; i++ {
		if lamb[i].Pitch.Frequency() >= lamb[i-1].Pitch.Frequency() {
			t.Errorf("lamb note %d (%s) not below note %d (%s)", i, lamb[i], i-1, lamb[i-1])
		}
	}
}
