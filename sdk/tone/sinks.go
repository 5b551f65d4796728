package tone

import (
	"fmt"

	"github.com/leandrodaf/tone/internal/sink/memsink"
	"github.com/leandrodaf/tone/internal/sink/otosink"
	"github.com/leandrodaf/tone/internal/sink/speakersink"
	"github.com/leandrodaf/tone/internal/sink/wavsink"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// sinkInitializers maps sink kinds to their constructors. Constructors must not
// touch the device: acquiring it is the job of AudioSink.Open.
var sinkInitializers = map[contracts.SinkKind]func(*contracts.PlayerOptions) (contracts.AudioSink, error){
	contracts.OtoSink: func(*contracts.PlayerOptions) (contracts.AudioSink, error) {
		return otosink.New(), nil
	},
	contracts.SpeakerSink: func(*contracts.PlayerOptions) (contracts.AudioSink, error) {
		return speakersink.New(), nil
	},
	contracts.WAVSink: func(opts *contracts.PlayerOptions) (contracts.AudioSink, error) {
		if opts.OutputPath == "" {
			return nil, wavsink.ErrNoPath
		}
		return wavsink.New(opts.OutputPath), nil
	},
	contracts.MemorySink: func(*contracts.PlayerOptions) (contracts.AudioSink, error) {
		return memsink.New(), nil
	},
}

// SinkKinds lists the available backends.
func SinkKinds() []contracts.SinkKind {
	return []contracts.SinkKind{contracts.OtoSink, contracts.SpeakerSink, contracts.WAVSink, contracts.MemorySink}
}

func unsupportedSink(kind contracts.SinkKind) error {
	return fmt.Errorf("%w: %q", contracts.ErrUnsupportedSink, kind)
}

// newSink returns the explicit sink if one was given, otherwise a fresh
// instance of the configured backend.
func newSink(opts *contracts.PlayerOptions) (contracts.AudioSink, error) {
	if opts.AudioSink != nil {
		return opts.AudioSink, nil
	}
	initializer, ok := sinkInitializers[opts.Sink]
	if !ok {
		return nil, unsupportedSink(opts.Sink)
	}
	s, err := initializer(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrSinkUnavailable, err)
	}
	return s, nil
}
