package contracts

// PlayerOptions defines the configuration of a tone player.
type PlayerOptions struct {
	Logger      Logger         // Logger for playback events and errors.
	LogLevel    LogLevel       // Level of logging to use.
	LogFilePath string         // File path for logging; empty keeps console logging.
	Sink        SinkKind       // Backend used when AudioSink is nil.
	OutputPath  string         // Destination file for the WAV sink.
	AudioSink   AudioSink      // Explicit sink; overrides Sink.
	Listeners   []NoteListener // Observers notified of every turn.
}

// Option is a function that modifies PlayerOptions.
type Option func(*PlayerOptions)

// WithLogger sets the logger for the player.
func WithLogger(l Logger) Option {
	return func(opts *PlayerOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the player.
func WithLogLevel(level LogLevel) Option {
	return func(opts *PlayerOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile sends log output to path.
func WithLogFile(path string) Option {
	return func(opts *PlayerOptions) {
		opts.LogFilePath = path
	}
}

// WithSink selects the audio backend by name.
func WithSink(kind SinkKind) Option {
	return func(opts *PlayerOptions) {
		opts.Sink = kind
	}
}

// WithWAVOutput renders to the WAV file at path instead of a device.
func WithWAVOutput(path string) Option {
	return func(opts *PlayerOptions) {
		opts.Sink = WAVSink
		opts.OutputPath = path
	}
}

// WithAudioSink plays into s. The player opens and closes it for every run.
func WithAudioSink(s AudioSink) Option {
	return func(opts *PlayerOptions) {
		opts.AudioSink = s
	}
}

// WithNoteListener adds an observer of every turn, e.g. a MIDI echo.
func WithNoteListener(l NoteListener) Option {
	return func(opts *PlayerOptions) {
		opts.Listeners = append(opts.Listeners, l)
	}
}

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
}

// ClientOptions defines the configuration options for the MIDI client.
type ClientOptions struct {
	Logger         Logger          // Logger for logging events and errors.
	LogLevel       LogLevel        // Level of logging to use.
	Channel        byte            // MIDI channel (0-15) used for echoed notes.
	Velocity       byte            // Velocity of echoed NoteOn events.
	CoreMIDIConfig *CoreMIDIConfig // Configuration specific to CoreMIDI.
}

// ClientOption is a function that modifies ClientOptions.
type ClientOption func(*ClientOptions)

// WithClientLogger sets the logger for the MIDI client.
func WithClientLogger(l Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithClientLogLevel sets the logging level for the MIDI client.
func WithClientLogLevel(level LogLevel) ClientOption {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithChannel sets the MIDI channel echoed notes are sent on.
func WithChannel(channel byte) ClientOption {
	return func(opts *ClientOptions) {
		opts.Channel = channel & 0x0F
	}
}

// WithVelocity sets the velocity of echoed NoteOn events.
func WithVelocity(velocity byte) ClientOption {
	return func(opts *ClientOptions) {
		opts.Velocity = velocity & 0x7F
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the MIDI client.
func WithCoreMIDIConfig(config CoreMIDIConfig) ClientOption {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}
