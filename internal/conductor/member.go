package conductor

import (
	"sync"

	"github.com/leandrodaf/tone/sdk/contracts"
)

// turn is the single command a member understands: play one note, then report
// the write result on done.
type turn struct {
	length contracts.NoteLength
	done   chan error
}

// member owns the waveform of one pitch and writes it to the shared sink when
// handed a turn. It runs on its own goroutine until stopped.
type member struct {
	pitch  contracts.Pitch
	sink   contracts.AudioSink
	sample []byte
	spacer []byte
	logger contracts.Logger

	turns chan turn     // single slot
	quit  chan struct{} // closed by stop
}

func newMember(pitch contracts.Pitch, sink contracts.AudioSink, sample, spacer []byte, logger contracts.Logger) *member {
	return &member{
		pitch:  pitch,
		sink:   sink,
		sample: sample,
		spacer: spacer,
		logger: logger,
		turns:  make(chan turn, 1),
		quit:   make(chan struct{}),
	}
}

// start launches the member loop. wg is marked done when the loop exits.
func (m *member) start(wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.run()
	}()
}

func (m *member) run() {
	for {
		// A pending stop wins over a pending turn.
		select {
		case <-m.quit:
			return
		default:
		}

		select {
		case <-m.quit:
			return
		case t := <-m.turns:
			t.done <- m.play(t.length)
		}
	}
}

// giveTurn hands the member a note without waiting for it to be played. The
// returned channel receives the write result exactly once.
func (m *member) giveTurn(length contracts.NoteLength) <-chan error {
	t := turn{length: length, done: make(chan error, 1)}
	select {
	case <-m.quit:
		t.done <- contracts.ErrStopped
		return t.done
	default:
	}

	select {
	case m.turns <- t:
	case <-m.quit:
		t.done <- contracts.ErrStopped
	}
	return t.done
}

// play writes the note, truncated to one measure, followed by the spacer. A
// write is never interrupted by stop.
func (m *member) play(length contracts.NoteLength) error {
	n := min(length.Bytes(), len(m.sample))
	m.logger.Debug("Playing",
		m.logger.Field().String("pitch", m.pitch.String()),
		m.logger.Field().Int("ms", length.Milliseconds()),
		m.logger.Field().Int("bytes", n))

	if _, err := m.sink.Write(m.sample[:n]); err != nil {
		return err
	}
	if _, err := m.sink.Write(m.spacer); err != nil {
		return err
	}
	return nil
}

func (m *member) stop() {
	close(m.quit)
}
