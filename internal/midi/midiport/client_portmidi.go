//go:build portmidi

package midiport

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/tone/sdk/contracts"
	"github.com/rakyll/portmidi"
)

// ErrNoDeviceSelected is returned by Send before SelectDevice succeeded.
var ErrNoDeviceSelected = errors.New("no MIDI output device selected")

// ClientMid sends events to a PortMidi output stream.
type ClientMid struct {
	logger   contracts.Logger
	mu       sync.Mutex
	stream   *portmidi.Stream
	outputs  []portmidi.DeviceID // output device ids, indexed by DeviceInfo.ID
	stopOnce sync.Once
}

// NewMIDIClient initializes PortMidi.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, err
	}
	options.Logger.Info("PortMidi client successfully created")
	return &ClientMid{logger: options.Logger}, nil
}

// ListDevices lists PortMidi devices that accept output.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outputs = m.outputs[:0]
	var devices []contracts.DeviceInfo
	for i := 0; i < portmidi.CountDevices(); i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		if info == nil || !info.IsOutputAvailable {
			continue
		}
		devices = append(devices, contracts.DeviceInfo{
			ID:           len(m.outputs),
			Name:         info.Name,
			EntityName:   info.Interface,
			Manufacturer: info.Interface,
		})
		m.outputs = append(m.outputs, portmidi.DeviceID(i))
	}
	if len(devices) == 0 {
		return nil, errors.New("no MIDI output devices found")
	}
	return devices, nil
}

// SelectDevice opens an output stream on the deviceID-th output device.
func (m *ClientMid) SelectDevice(deviceID int) error {
	if _, err := m.ListDevices(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if deviceID < 0 || deviceID >= len(m.outputs) {
		return fmt.Errorf("invalid MIDI output device %d", deviceID)
	}
	if m.stream != nil {
		m.stream.Close()
		m.stream = nil
	}

	stream, err := portmidi.NewOutputStream(m.outputs[deviceID], 1024, 0)
	if err != nil {
		return fmt.Errorf("failed to open MIDI output %d: %w", deviceID, err)
	}
	m.stream = stream
	m.logger.Info("MIDI output selected", m.logger.Field().Int("deviceID", deviceID))
	return nil
}

// Send writes one short message.
func (m *ClientMid) Send(event contracts.MIDI) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stream == nil {
		return ErrNoDeviceSelected
	}
	return m.stream.WriteShort(int64(event.Command), int64(event.Note), int64(event.Velocity))
}

// Stop closes the stream and terminates PortMidi.
func (m *ClientMid) Stop() error {
	var err error
	m.stopOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.stream != nil {
			err = m.stream.Close()
			m.stream = nil
		}
		if terr := portmidi.Terminate(); err == nil {
			err = terr
		}
		m.logger.Info("PortMidi output stopped")
	})
	return err
}
