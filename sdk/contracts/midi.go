package contracts

// MIDI represents a MIDI event with a timestamp, command, note, and velocity.
type MIDI struct {
	Timestamp uint64 // Timestamp indicates the time the event was produced.
	Command   byte   // Command specifies the type of MIDI event (e.g., Note On, Note Off).
	Note      byte   // Note represents the MIDI note number (0-127).
	Velocity  byte   // Velocity indicates the strength of the note being played (0-127).
}

// ClientMIDI defines an interface for MIDI output operations.
type ClientMIDI interface {
	Stop() error                        // Stops the MIDI client and releases resources.
	ListDevices() ([]DeviceInfo, error) // Lists all available MIDI output devices.
	SelectDevice(deviceID int) error    // Selects a MIDI output device by its ID.
	Send(event MIDI) error              // Sends one event to the selected device.
}

// MIDICommand represents a MIDI status byte without its channel nibble.
type MIDICommand byte

const (
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
)
