//go:build !portmidi

package midiport

import (
	"fmt"

	"github.com/leandrodaf/tone/sdk/contracts"
)

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient returns a client whose operations fail: the binary was built without the portmidi tag.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy MIDI client; rebuild with -tags portmidi for MIDI output")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy MIDI client")
	return nil, fmt.Errorf("PortMidi support was not compiled in")
}

func (m *dummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy MIDI client")
	return fmt.Errorf("PortMidi support was not compiled in")
}

func (m *dummyMIDIClient) Send(event contracts.MIDI) error {
	return fmt.Errorf("PortMidi support was not compiled in")
}

func (m *dummyMIDIClient) Stop() error {
	return nil
}
