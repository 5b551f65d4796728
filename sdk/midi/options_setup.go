package midi

import (
	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// DefaultVelocity is used for echoed notes when no velocity is configured.
const DefaultVelocity = 100

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.ClientOption: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.ClientOption) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
		options.Logger.SetLevel(options.LogLevel)
	}
	if options.Velocity == 0 {
		options.Velocity = DefaultVelocity
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{ClientName: "tone"}
	}

	return *options, nil
}
