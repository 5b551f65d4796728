package tone

import (
	"context"

	"github.com/leandrodaf/tone/internal/conductor"
	"github.com/leandrodaf/tone/internal/score"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// Player plays scores, one run at a time.
type Player struct {
	options contracts.PlayerOptions
}

// Play performs s on a fresh sink and blocks until it is over, ctx is done or
// the sink fails. An empty score opens, drains and closes the sink without
// starting any member.
func (p *Player) Play(ctx context.Context, s contracts.Score) error {
	sink, err := newSink(&p.options)
	if err != nil {
		return err
	}

	opts := []conductor.Option{conductor.WithLogger(p.options.Logger)}
	for _, l := range p.options.Listeners {
		opts = append(opts, conductor.WithListener(l))
	}

	log := p.options.Logger
	log.Info("Playing score",
		log.Field().Int("notes", len(s)),
		log.Field().String("sink", string(p.options.Sink)))

	if err := conductor.New(s, sink, opts...).Run(ctx); err != nil {
		log.Error("Playback failed", log.Field().Error("error", err))
		return err
	}
	log.Info("Playback finished")
	return nil
}

// PlayFile loads the song at path and plays it. Nothing is played unless the
// whole file is valid; load failures wrap contracts.ErrScoreLoad.
func (p *Player) PlayFile(ctx context.Context, path string) error {
	s, err := LoadScore(path)
	if err != nil {
		return err
	}
	return p.Play(ctx, s)
}

// LoadScore reads and validates a song file.
func LoadScore(path string) (contracts.Score, error) {
	return score.Load(path)
}

// Options returns the resolved configuration.
func (p *Player) Options() contracts.PlayerOptions {
	return p.options
}
