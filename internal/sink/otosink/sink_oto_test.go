//go:build !headless

package otosink

import (
	"errors"
	"testing"
)

func TestSinkRequiresOpen(t *testing.T) {
	s := New()
	if _, err := s.Write([]byte{1, 2, 3}); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Write before Open = %v, want ErrNotOpen", err)
	}
	if err := s.Drain(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Drain before Open = %v, want ErrNotOpen", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close before Open = %v", err)
	}
}
