//go:build headless

package otosink

import "errors"

var errHeadless = errors.New("oto output is not available in headless builds")

type Sink struct{}

func New() *Sink {
	return &Sink{}
}

func (s *Sink) Open() error                 { return errHeadless }
func (s *Sink) Write(p []byte) (int, error) { return 0, errHeadless }
func (s *Sink) Drain() error                { return nil }
func (s *Sink) Close() error                { return nil }
