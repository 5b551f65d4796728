package contracts

// AudioSink is the single destination every member writes its samples to.
//
// Write is never called concurrently by the conductor, so implementations need
// no locking of their own for it. Only the conductor calls Open, Drain and Close.
type AudioSink interface {
	Open() error                 // Acquires the output. Failure aborts the run before any member starts.
	Write(p []byte) (int, error) // Queues 8-bit signed mono samples at SampleRate.
	Drain() error                // Blocks until every written byte has been played or flushed.
	Close() error                // Releases the output.
}

// SinkKind names an AudioSink backend.
type SinkKind string

const (
	// OtoSink plays through the system audio device using oto.
	OtoSink SinkKind = "oto"
	// SpeakerSink plays through the system audio device using beep's speaker.
	SpeakerSink SinkKind = "speaker"
	// WAVSink renders the song to a WAV file.
	WAVSink SinkKind = "wav"
	// MemorySink records every write in memory.
	MemorySink SinkKind = "memory"
)

// NoteListener observes the turns handed out by the conductor.
// NoteOn is called right before a member gets its turn and NoteOff once the
// member acknowledged its write or the turn was abandoned.
type NoteListener interface {
	NoteOn(note Note)
	NoteOff(note Note)
}
