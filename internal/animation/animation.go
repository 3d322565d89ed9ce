// Package animation drives the rolling-dice effect shown before a roll is scored.
package animation

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/thousand/internal/common/clock"
	"github.com/KirkDiggler/thousand/internal/dice"
	"github.com/KirkDiggler/thousand/internal/models"
)

const (
	// DefaultFrames is the number of ticks in one animation (three seconds at the default interval)
	DefaultFrames = 30

	// DefaultInterval is the delay between ticks
	DefaultInterval = 100 * time.Millisecond
)

// FrameFunc is called on every tick with the frame number and the display-only dice
type FrameFunc func(frame int, faces []int)

// Config for an animation task
type Config struct {
	// Frames is how many ticks to run before completing
	Frames int

	// Interval between ticks
	Interval time.Duration

	// DiceCount is how many dice to shuffle on screen
	DiceCount int

	// Roller supplies the random faces shown during the animation
	Roller dice.Roller

	// Clock supplies the ticker
	Clock clock.Clock
}

// Task runs one rolling animation. It owns its tick counter and display dice,
// so a Task can be reused for consecutive rolls but not run concurrently.
type Task struct {
	frames    int
	interval  time.Duration
	roller    dice.Roller
	clock     clock.Clock
	faces     []int
	completed int
}

// New creates an animation task, filling unset fields with defaults
func New(cfg *Config) (*Task, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	frames := cfg.Frames
	if frames <= 0 {
		frames = DefaultFrames
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	diceCount := cfg.DiceCount
	if diceCount <= 0 {
		diceCount = models.DiceCount
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Task{
		frames:   frames,
		interval: interval,
		roller:   cfg.Roller,
		clock:    c,
		faces:    make([]int, diceCount),
	}, nil
}

// Frames returns the number of ticks in one run
func (t *Task) Frames() int {
	return t.frames
}

// Completed returns how many ticks the last run delivered
func (t *Task) Completed() int {
	return t.completed
}

// Run blocks until every frame has been delivered to onFrame or ctx is done.
// The faces slice passed to onFrame is reused between ticks.
func (t *Task) Run(ctx context.Context, onFrame FrameFunc) error {
	t.completed = 0

	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for t.completed < t.frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
		}

		dice.Fill(t.roller, t.faces)
		if onFrame != nil {
			onFrame(t.completed, t.faces)
		}
		t.completed++
	}

	return nil
}
