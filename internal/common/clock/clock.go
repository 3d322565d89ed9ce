package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/thousand/internal/common/clock Clock,Ticker
type Clock interface {
	Now() time.Time

	// NewTicker returns a ticker that fires every d
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on a channel until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// NewTicker wraps time.NewTicker
func (c *DefaultClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}
