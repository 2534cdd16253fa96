package scan

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// Configurable ranges. Inputs outside them are clamped, never rejected.
const (
	MinPRF = 10
	MaxPRF = 5000

	MinRPM = 0.1
	MaxRPM = 60.0
)

// ClampPRF limits hz to [MinPRF, MaxPRF].
func ClampPRF(hz int) int {
	return min(max(hz, MinPRF), MaxPRF)
}

// ClampRPM limits rpm to [MinRPM, MaxRPM]. NaN maps to MinRPM.
func ClampRPM(rpm float64) float64 {
	if math.IsNaN(rpm) {
		return MinRPM
	}
	return math.Min(math.Max(rpm, MinRPM), MaxRPM)
}

// TickPeriod converts a PRF into the driver period: 1000/hz milliseconds,
// truncated, never below 1ms. hz is clamped first.
func TickPeriod(hz int) time.Duration {
	ms := max(1000/ClampPRF(hz), 1)
	return time.Duration(ms) * time.Millisecond
}

// Clock is the periodic sweep driver. A stopped Clock keeps its last period
// and its C channel is nil, which blocks forever in a select.
// It is not safe for concurrent use.
type Clock struct {
	clock  clockwork.Clock
	ticker clockwork.Ticker
	period time.Duration
}

// NewClock creates a stopped driver on top of c.
func NewClock(c clockwork.Clock) *Clock {
	return &Clock{clock: c}
}

// Start (re)starts the driver at period. A running ticker is replaced.
func (c *Clock) Start(period time.Duration) {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.ticker = c.clock.NewTicker(period)
	c.period = period
}

// Stop halts the driver. Calling Stop on a stopped Clock is a no-op.
func (c *Clock) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

func (c *Clock) Running() bool { return c.ticker != nil }

// Period returns the most recent period passed to Start.
func (c *Clock) Period() time.Duration { return c.period }

// C returns the tick channel, or nil while stopped.
func (c *Clock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.Chan()
}
