package tone

import (
	"github.com/leandrodaf/tone/sdk/contracts"
)

// NewPlayer creates a new player with the specified options.
// It applies default options: zap logging at info level and the oto sink.
//
// opts ...contracts.Option: A variadic list of option functions to customize the player.
//
// Returns:
//   - *Player: A player ready to Play.
//   - error: An error if the options name an unknown sink.
func NewPlayer(opts ...contracts.Option) (*Player, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Player{options: options}, nil
}
