// Package conductor plays a Score by handing turns to one member goroutine per
// distinct pitch, so that exactly one member writes to the shared sink at a time.
package conductor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/internal/waveform"
	"github.com/leandrodaf/tone/sdk/contracts"
)

// SleepFunc blocks for d or until ctx is done, returning ctx.Err() in the latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Option configures a Conductor.
type Option func(*Conductor)

// WithLogger sets the logger.
func WithLogger(l contracts.Logger) Option {
	return func(c *Conductor) {
		c.logger = l
	}
}

// WithTable sets the waveform table members take their samples from.
func WithTable(t *waveform.Table) Option {
	return func(c *Conductor) {
		c.table = t
	}
}

// WithListener adds an observer of every turn.
func WithListener(l contracts.NoteListener) Option {
	return func(c *Conductor) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

// WithSleep replaces the pacing function.
func WithSleep(fn SleepFunc) Option {
	return func(c *Conductor) {
		c.sleep = fn
	}
}

// Conductor drives one playback pass of a Score over an AudioSink. It is the
// only opener and closer of the sink. A Conductor is meant for a single Run.
type Conductor struct {
	score     contracts.Score
	sink      contracts.AudioSink
	table     *waveform.Table
	logger    contracts.Logger
	listeners []contracts.NoteListener
	sleep     SleepFunc

	mu      sync.Mutex
	members map[contracts.Pitch]*member
	order   []contracts.Pitch

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}
}

// New returns a conductor for score. Nothing starts until Run.
func New(score contracts.Score, sink contracts.AudioSink, opts ...Option) *Conductor {
	c := &Conductor{
		score:   score,
		sink:    sink,
		table:   waveform.Default(),
		logger:  logger.NewNopLogger(),
		sleep:   Sleep,
		members: make(map[contracts.Pitch]*member),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run opens the sink, starts one member per distinct pitch and plays every
// note in order: the member gets its turn, the conductor waits the note's
// duration and then the member's acknowledgment before moving on. The sink is
// drained after the last note. Whatever happens, all members are stopped and
// the sink is closed before Run returns.
//
// Errors wrap contracts.ErrSinkUnavailable, contracts.ErrInterrupted or
// contracts.ErrSinkWrite.
func (c *Conductor) Run(ctx context.Context) (err error) {
	if err := c.sink.Open(); err != nil {
		return fmt.Errorf("%w: %v", contracts.ErrSinkUnavailable, err)
	}
	defer func() {
		c.StopAll()
		if cerr := c.sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close sink: %w", cerr)
		}
	}()

	c.assemble()
	c.logger.Info("Members assembled",
		c.logger.Field().Int("notes", len(c.score)),
		c.logger.Field().Int("members", len(c.order)),
		c.logger.Field().Duration("length", c.score.Duration()))

	for i, note := range c.score {
		if err := c.perform(ctx, i, note); err != nil {
			return err
		}
	}

	if err := c.sink.Drain(); err != nil {
		return fmt.Errorf("drain sink: %w", err)
	}
	return nil
}

// perform plays a single entry of the score.
func (c *Conductor) perform(ctx context.Context, index int, note contracts.Note) error {
	select {
	case <-c.stopped:
		return fmt.Errorf("%w: %v", contracts.ErrInterrupted, contracts.ErrStopped)
	default:
	}

	m, ok := c.member(note.Pitch)
	if !ok {
		c.logger.Warn(contracts.ErrUnknownPitch.Error(),
			c.logger.Field().Int("index", index),
			c.logger.Field().String("pitch", note.Pitch.String()))
		return nil
	}

	for _, l := range c.listeners {
		l.NoteOn(note)
	}
	defer func() {
		for _, l := range c.listeners {
			l.NoteOff(note)
		}
	}()
	done := m.giveTurn(note.Length)

	if err := c.sleep(ctx, note.Length.Duration()); err != nil {
		c.logger.Warn("Playback interrupted",
			c.logger.Field().Int("index", index),
			c.logger.Field().Error("error", err))
		return fmt.Errorf("%w: %v", contracts.ErrInterrupted, err)
	}

	select {
	case err := <-done:
		if errors.Is(err, contracts.ErrStopped) {
			return fmt.Errorf("%w: %v", contracts.ErrInterrupted, err)
		}
		if err != nil {
			return fmt.Errorf("%w: note %d (%s): %v", contracts.ErrSinkWrite, index, note, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", contracts.ErrInterrupted, ctx.Err())
	case <-c.stopped:
		return fmt.Errorf("%w: %v", contracts.ErrInterrupted, contracts.ErrStopped)
	}
}

// assemble creates one member per distinct pitch, in first-occurrence order.
func (c *Conductor) assemble() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.stopped:
		return
	default:
	}

	spacer := c.table.Spacer()
	for _, p := range c.score.Pitches() {
		if _, ok := c.members[p]; ok {
			continue
		}
		m := newMember(p, c.sink, c.table.Sample(p), spacer, c.logger)
		c.members[p] = m
		c.order = append(c.order, p)
		m.start(&c.wg)
		c.logger.Debug("Member created",
			c.logger.Field().String("pitch", p.String()))
	}
}

func (c *Conductor) member(p contracts.Pitch) (*member, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.members[p]
	return m, ok
}

// Members returns the pitches that got a member, in creation order.
func (c *Conductor) Members() []contracts.Pitch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]contracts.Pitch(nil), c.order...)
}

// StopAll tells every member to exit and waits for their goroutines to return.
// A member in the middle of a write finishes it first. StopAll may be called
// more than once and from any goroutine; only the first call has an effect.
func (c *Conductor) StopAll() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		close(c.stopped)
		for _, p := range c.order {
			c.members[p].stop()
		}
		c.mu.Unlock()

		c.wg.Wait()
		c.logger.Debug("Members stopped", c.logger.Field().Int("members", len(c.order)))
	})
}
