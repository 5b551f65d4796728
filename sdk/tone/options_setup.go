package tone

import (
	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// applyDefaultOptions sets default values for PlayerOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify PlayerOptions.
//
// Returns:
//   - contracts.PlayerOptions: The finalized player options with defaults applied.
//   - error: An error if the requested sink is unknown.
func applyDefaultOptions(opts ...contracts.Option) (contracts.PlayerOptions, error) {
	options := &contracts.PlayerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	options.Logger.SetLevel(options.LogLevel)
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}

	if options.Sink == "" {
		options.Sink = contracts.OtoSink
	}
	if options.AudioSink == nil {
		if _, ok := sinkInitializers[options.Sink]; !ok {
			return *options, unsupportedSink(options.Sink)
		}
	}
	return *options, nil
}
