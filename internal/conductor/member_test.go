package conductor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// gateSink blocks every write until release is closed.
type gateSink struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
	bytes   int
}

func (s *gateSink) Open() error  { return nil }
func (s *gateSink) Drain() error { return nil }
func (s *gateSink) Close() error { return nil }

func (s *gateSink) Write(p []byte) (int, error) {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	s.bytes += len(p)
	return len(p), nil
}

func TestMemberFinishesWriteBeforeStopping(t *testing.T) {
	sink := &gateSink{entered: make(chan struct{}), release: make(chan struct{})}
	sample := make([]byte, contracts.SampleRate)
	m := newMember(contracts.C4, sink, sample, make([]byte, contracts.SpacerBytes), logger.NewNopLogger())

	var wg sync.WaitGroup
	m.start(&wg)
	done := m.giveTurn(contracts.Half)
	<-sink.entered

	m.stop()
	exited := make(chan struct{})
	go func() {
		wg.Wait()
		close(exited)
	}()

	select {
	case <-exited:
		t.Fatal("member exited in the middle of a write")
	case <-time.After(20 * time.Millisecond):
	}

	close(sink.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	<-exited

	if want := contracts.Half.Bytes() + contracts.SpacerBytes; sink.bytes != want {
		t.Errorf("wrote %d bytes, want %d", sink.bytes, want)
	}
}

func TestMemberRejectsTurnAfterStop(t *testing.T) {
	m := newMember(contracts.E4, &gateSink{}, nil, nil, logger.NewNopLogger())
	var wg sync.WaitGroup
	m.start(&wg)
	m.stop()
	wg.Wait()

	if err := <-m.giveTurn(contracts.Quarter); !errors.Is(err, contracts.ErrStopped) {
		t.Fatalf("err = %v, want ErrStopped", err)
	}
}

func TestMemberTruncatesToOneMeasure(t *testing.T) {
	sink := &gateSink{entered: make(chan struct{}), release: make(chan struct{})}
	close(sink.release)
	sample := make([]byte, 100)
	m := newMember(contracts.C4, sink, sample, nil, logger.NewNopLogger())

	var wg sync.WaitGroup
	m.start(&wg)
	defer func() {
		m.stop()
		wg.Wait()
	}()

	if err := <-m.giveTurn(contracts.Whole); err != nil {
		t.Fatal(err)
	}
	if sink.bytes != len(sample) {
		t.Errorf("wrote %d bytes, want the whole %d byte buffer", sink.bytes, len(sample))
	}
}
