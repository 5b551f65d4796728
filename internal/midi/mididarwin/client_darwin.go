//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/tone/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI output issues.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI destinations found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI destination")
	ErrCreateOutputPort  = errors.New("error creating output port")
	ErrNoDeviceSelected  = errors.New("no MIDI destination selected")
	ErrSendFailed        = errors.New("error sending MIDI packet")
)

// ClientMid sends MIDI events to a CoreMIDI destination on Darwin (macOS).
type ClientMid struct {
	logger      contracts.Logger
	client      coremidi.Client           // CoreMIDI client instance for MIDI operations.
	outputPort  coremidi.OutputPort       // Output port events are sent through.
	destination *coremidi.Destination     // Selected destination, nil until SelectDevice.
	config      *contracts.CoreMIDIConfig // Configuration for MIDI client.
	mu          sync.Mutex                // Guards destination and port.
	stopOnce    sync.Once                 // Ensures Stop() is executed only once.
}

// NewMIDIClient initializes a new ClientMid with an output port.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	port, err := coremidi.NewOutputPort(client, "Output Port")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	options.Logger.Info("MIDI client successfully created")

	return &ClientMid{
		logger:     options.Logger,
		client:     client,
		outputPort: port,
		config:     options.CoreMIDIConfig,
	}, nil
}

// ListDevices retrieves the available MIDI destinations.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI destinations: %w", err)
	}
	if len(destinations) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(destinations))
	for i, destination := range destinations {
		entity := destination.Entity()
		devices[i] = contracts.DeviceInfo{
			ID:           i,
			Name:         destination.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice selects the destination events are sent to.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI destinations: %w", err)
	}
	if deviceID < 0 || deviceID >= len(destinations) {
		m.logger.Error(ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return ErrInvalidMIDIDevice
	}

	destination := destinations[deviceID]
	m.destination = &destination
	m.logger.Info("MIDI destination selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", destination.Name()))
	return nil
}

// Send delivers one event to the selected destination.
func (m *ClientMid) Send(event contracts.MIDI) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destination == nil {
		return ErrNoDeviceSelected
	}
	packet := coremidi.NewPacket([]byte{event.Command, event.Note, event.Velocity}, event.Timestamp)
	if err := packet.Send(&m.outputPort, m.destination); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}

// Stop forgets the selected destination. It only has an effect once.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.destination = nil
		m.logger.Info("MIDI output stopped")
	})
	return nil
}
