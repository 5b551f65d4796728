package midi

import (
	"fmt"
	"runtime"

	"github.com/leandrodaf/tone/internal/midi/mididarwin"
	"github.com/leandrodaf/tone/internal/midi/midiport"
	"github.com/leandrodaf/tone/internal/midi/midiwindows"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no MIDI output backend.
var ErrUnsupportedOS = contracts.ErrUnsupportedOS

type outputInitializer func(*contracts.ClientOptions) (contracts.ClientMIDI, error)

// outputs maps OS names to MIDI output backends.
var outputs = map[string]outputInitializer{
	"darwin":  mididarwin.NewMIDIClient,  // CoreMIDI output port.
	"windows": midiwindows.NewMIDIClient, // winmm midiOut.
	"linux":   midiport.NewMIDIClient,    // PortMidi (requires -tags portmidi).
	"freebsd": midiport.NewMIDIClient,
}

// NewMIDIClient opens the MIDI output backend of the running OS.
// No device is selected yet: call SelectDevice before Send.
func NewMIDIClient(opts ...contracts.ClientOption) (contracts.ClientMIDI, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return newOutput(runtime.GOOS, &options)
}

func newOutput(goos string, options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	initializer, ok := outputs[goos]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}

	client, err := initializer(options)
	if err != nil {
		options.Logger.Error("Failed to open MIDI output",
			options.Logger.Field().String("os", goos),
			options.Logger.Field().Error("error", err))
		return nil, err
	}
	options.Logger.Debug("MIDI output ready", options.Logger.Field().String("os", goos))
	return client, nil
}
