package midi

import (
	"time"

	"github.com/leandrodaf/tone/sdk/contracts"
)

// NoteEcho mirrors every turn of a performance on a MIDI output: NoteOn when a
// member gets its turn, NoteOff when it is done. Rests send nothing.
// It implements contracts.NoteListener.
type NoteEcho struct {
	client   contracts.ClientMIDI
	logger   contracts.Logger
	channel  byte
	velocity byte
	now      func() time.Time
}

// NewNoteEcho wraps client. Channel and velocity come from the same options the client was built with.
func NewNoteEcho(client contracts.ClientMIDI, opts ...contracts.ClientOption) *NoteEcho {
	options, _ := applyDefaultOptions(opts...)
	return &NoteEcho{
		client:   client,
		logger:   options.Logger,
		channel:  options.Channel,
		velocity: options.Velocity,
		now:      time.Now,
	}
}

// NoteOn sends a Note On event for n.
func (e *NoteEcho) NoteOn(n contracts.Note) {
	e.send(contracts.NoteOn, n, e.velocity)
}

// NoteOff sends a Note Off event for n.
func (e *NoteEcho) NoteOff(n contracts.Note) {
	e.send(contracts.NoteOff, n, 0)
}

func (e *NoteEcho) send(cmd contracts.MIDICommand, n contracts.Note, velocity byte) {
	key, ok := n.Pitch.MIDINote()
	if !ok {
		return
	}
	event := contracts.MIDI{
		Timestamp: uint64(e.now().UTC().UnixNano()),
		Command:   byte(cmd) | e.channel,
		Note:      key,
		Velocity:  velocity,
	}
	if err := e.client.Send(event); err != nil {
		e.logger.Warn("Failed to echo note",
			e.logger.Field().String("note", n.String()),
			e.logger.Field().Error("error", err))
	}
}
