// Package score turns a textual song description into a contracts.Score.
//
// A song is a sequence of whitespace separated "NOTE CODE" pairs, for example
//
//	C4 4
//	REST 8  E4 2
//
// where NOTE is a pitch name and CODE one of 1, 2, 4 or 8. Pairs may span
// lines. Blank lines and text after '#' are ignored.
package score

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leandrodaf/tone/sdk/contracts"
	"go.uber.org/multierr"
)

// Diagnostic reports one rejected token.
type Diagnostic struct {
	Line int
	Msg  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Msg)
}

type token struct {
	text string
	line int
}

// Load reads the song at path.
func Load(path string) (contracts.Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrScoreLoad, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse reads a song from r. Any rejected token rejects the whole song: the
// returned error wraps contracts.ErrScoreLoad and every Diagnostic found
// (see multierr.Errors). A song without notes returns contracts.ErrEmptyScore.
func Parse(r io.Reader) (contracts.Score, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrScoreLoad, err)
	}

	var (
		out   contracts.Score
		diags error
	)
	for i := 0; i < len(tokens); i += 2 {
		name := tokens[i]
		if i+1 == len(tokens) {
			diags = multierr.Append(diags, &Diagnostic{name.line, fmt.Sprintf("missing duration after note %q", name.text)})
			break
		}
		code := tokens[i+1]

		note, err := parseNote(name, code)
		if err != nil {
			diags = multierr.Append(diags, err)
			continue
		}
		out = append(out, note)
	}

	if diags != nil {
		return nil, &LoadError{diags: diags}
	}
	if len(out) == 0 {
		return nil, contracts.ErrEmptyScore
	}
	return out, nil
}

func parseNote(name, code token) (contracts.Note, error) {
	var errs error

	pitch, err := contracts.ParsePitch(name.text)
	if err != nil {
		errs = multierr.Append(errs, &Diagnostic{name.line, err.Error()})
	}

	n, err := strconv.Atoi(code.text)
	if err != nil {
		errs = multierr.Append(errs, &Diagnostic{code.line, fmt.Sprintf("invalid format after the note %q: %q is not a duration", name.text, code.text)})
		return contracts.Note{}, errs
	}
	length, err := contracts.ParseLength(n)
	if err != nil {
		errs = multierr.Append(errs, &Diagnostic{code.line, err.Error()})
	}

	if errs != nil {
		return contracts.Note{}, errs
	}
	return contracts.Note{Pitch: pitch, Length: length}, nil
}

// tokenize splits r into tokens. Lines may be of any length.
func tokenize(r io.Reader) ([]token, error) {
	var tokens []token
	br := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, f := range strings.Fields(text) {
			tokens = append(tokens, token{text: f, line: line})
		}
		if err == io.EOF {
			return tokens, nil
		}
	}
}

// LoadError aggregates the diagnostics of a rejected song.
type LoadError struct {
	diags error
}

func (e *LoadError) Error() string {
	return contracts.ErrScoreLoad.Error() + ": " + e.diags.Error()
}

// Unwrap exposes contracts.ErrScoreLoad and every Diagnostic to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	return append([]error{contracts.ErrScoreLoad}, multierr.Errors(e.diags)...)
}

// Diagnostics returns the rejected tokens in input order.
func (e *LoadError) Diagnostics() []*Diagnostic {
	var out []*Diagnostic
	for _, err := range multierr.Errors(e.diags) {
		if d, ok := err.(*Diagnostic); ok {
			out = append(out, d)
		}
	}
	return out
}
