package contracts

import (
	"errors"
	"fmt"
)

// Errors shared by the player, the conductor and the sink backends.
var (
	// ErrScoreLoad is returned when a song cannot be turned into a playable Score.
	ErrScoreLoad = errors.New("no playable score")
	// ErrEmptyScore is returned when a song file holds no notes. It wraps ErrScoreLoad.
	ErrEmptyScore = fmt.Errorf("%w: score is empty", ErrScoreLoad)
	// ErrSinkUnavailable is returned when the audio output cannot be acquired or opened.
	ErrSinkUnavailable = errors.New("audio sink unavailable")
	// ErrSinkWrite is returned when a member fails to write its note to the sink.
	ErrSinkWrite = errors.New("audio sink write failed")
	// ErrInterrupted is returned when pacing is cancelled before the score is exhausted.
	ErrInterrupted = errors.New("playback interrupted")
	// ErrUnknownPitch marks a score entry with no member. It is logged, never returned by a run.
	ErrUnknownPitch = errors.New("no member for pitch")
	// ErrStopped acknowledges a turn handed to a member that has already been stopped.
	ErrStopped = errors.New("member stopped")
	// ErrUnsupportedSink is returned for an unknown SinkKind.
	ErrUnsupportedSink = errors.New("unsupported audio sink")
	// ErrUnsupportedOS is returned when no MIDI backend exists for the operating system.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)
