package midi

import (
	"errors"
	"testing"

	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/sdk/contracts"
)

type recordingClient struct {
	events []contracts.MIDI
	err    error
}

func (c *recordingClient) Stop() error                                  { return nil }
func (c *recordingClient) ListDevices() ([]contracts.DeviceInfo, error) { return nil, nil }
func (c *recordingClient) SelectDevice(int) error                       { return nil }

func (c *recordingClient) Send(e contracts.MIDI) error {
	c.events = append(c.events, e)
	return c.err
}

func TestNoteEcho(t *testing.T) {
	client := &recordingClient{}
	echo := NewNoteEcho(client,
		contracts.WithClientLogger(logger.NewNopLogger()),
		contracts.WithChannel(2),
		contracts.WithVelocity(90))

	c4 := contracts.Note{Pitch: contracts.C4, Length: contracts.Quarter}
	rest := contracts.Note{Pitch: contracts.Rest, Length: contracts.Quarter}
	echo.NoteOn(c4)
	echo.NoteOff(c4)
	echo.NoteOn(rest)
	echo.NoteOff(rest)

	want := []contracts.MIDI{
		{Command: 0x92, Note: 72, Velocity: 90},
		{Command: 0x82, Note: 72, Velocity: 0},
	}
	if len(client.events) != len(want) {
		t.Fatalf("sent %d events, want %d", len(client.events), len(want))
	}
	for i, e := range client.events {
		if e.Command != want[i].Command || e.Note != want[i].Note || e.Velocity != want[i].Velocity {
			t.Errorf("event %d = %+v, want %+v", i, e, want[i])
		}
		if e.Timestamp == 0 {
			t.Errorf("event %d has no timestamp", i)
		}
	}
}

func TestNoteEchoKeepsGoingOnSendError(t *testing.T) {
	client := &recordingClient{err: errors.New("unplugged")}
	echo := NewNoteEcho(client, contracts.WithClientLogger(logger.NewNopLogger()))

	echo.NoteOn(contracts.Note{Pitch: contracts.A4, Length: contracts.Half})
	if len(client.events) != 1 || client.events[0].Velocity != DefaultVelocity {
		t.Fatalf("events = %+v", client.events)
	}
}

func TestApplyDefaultOptions(t *testing.T) {
	opts, err := applyDefaultOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Logger == nil || opts.CoreMIDIConfig == nil || opts.Velocity != DefaultVelocity {
		t.Fatalf("defaults not applied: %+v", opts)
	}
}
