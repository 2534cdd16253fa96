package console

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/radar-console/internal/domain"
	"github.com/couchcryptid/radar-console/internal/observability"
	"github.com/couchcryptid/radar-console/internal/scan"
	"github.com/jonboulle/clockwork"
)

// ErrTargetNotFound is returned when a target ID is not in the current batch.
var ErrTargetNotFound = errors.New("target not found")

// Status lines shown under the display.
const (
	StatusReady     = "Ready"
	StatusAnalyzing = "Analyzing..."
	StatusDetected  = "Target detected!"
	StatusClear     = "No target detected."
)

// MaxTargets caps a single regenerate request.
const MaxTargets = 1000

// Options configures a Console.
type Options struct {
	TargetCount     int
	AutoStart       bool
	RefreshInterval time.Duration
}

// Console hosts the sweep engine: it owns the periodic driver, the target
// generator and the wall-clock refresh, and serialises every access to the
// engine behind one mutex so a setter never lands in the middle of a tick.
type Console struct {
	mu          sync.Mutex
	engine      *scan.Engine
	driver      *scan.Clock
	generator   *domain.Generator
	clock       clockwork.Clock
	opts        Options
	status      string
	displayTime time.Time

	wake    chan struct{}
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates a Console, generates the first target batch and, when
// opts.AutoStart is set, starts the sweep driver.
func New(engine *scan.Engine, clock clockwork.Clock, generator *domain.Generator, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Console {
	if opts.TargetCount <= 0 {
		opts.TargetCount = 10
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Second
	}

	c := &Console{
		engine:      engine,
		driver:      scan.NewClock(clock),
		generator:   generator,
		clock:       clock,
		opts:        opts,
		status:      StatusReady,
		displayTime: clock.Now(),
		wake:        make(chan struct{}, 1),
		logger:      logger,
		metrics:     metrics,
	}

	c.engine.SetTargets(c.generator.Generate(opts.TargetCount))
	c.metrics.TargetsTracked.Set(float64(opts.TargetCount))
	c.metrics.Regenerations.Inc()
	if opts.AutoStart {
		c.driver.Start(c.engine.TickPeriod())
	}
	c.publishConfig()

	return c
}

// CheckReadiness returns nil while Run is active.
func (c *Console) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return errors.New("console loop is not running")
	}
	return nil
}

// Run services sweep ticks and display refreshes until the context is
// cancelled.
func (c *Console) Run(ctx context.Context) error {
	refresh := c.clock.NewTicker(c.opts.RefreshInterval)
	defer refresh.Stop()

	snap := c.Snapshot()
	c.logger.Info("console started",
		"prf_hz", snap.PRF,
		"rotation_rpm", snap.RotationRPM,
		"tick_period_ms", snap.TickPeriodMS,
		"running", snap.Running,
		"targets", len(snap.Targets),
	)
	c.ready.Store(true)
	defer c.ready.Store(false)

	for {
		c.mu.Lock()
		tickC := c.driver.C()
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			c.logger.Info("console stopping", "reason", ctx.Err())
			return nil
		case <-c.wake:
		case <-tickC:
			c.tick(tickC)
		case now := <-refresh.Chan():
			c.refreshDisplay(now)
		}
	}
}

// tick advances the engine once. Ticks from a driver that has since been
// stopped or restarted are dropped.
func (c *Console) tick(src <-chan time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if src != c.driver.C() {
		return
	}

	start := time.Now()
	revolutions := c.engine.Revolutions()
	n := c.engine.Tick()

	if n > 0 {
		c.status = StatusDetected
	} else {
		c.status = StatusClear
	}

	c.metrics.SweepTicks.Inc()
	c.metrics.SweepAngle.Set(c.engine.Angle())
	c.metrics.IlluminatedTargets.Set(float64(n))
	if c.engine.Revolutions() > revolutions {
		c.metrics.SweepRevolutions.Inc()
	}
	for _, id := range c.engine.IlluminatedIDs() {
		if t, ok := c.engine.Target(id); ok {
			c.metrics.Illuminations.WithLabelValues(string(t.Classification().TargetType)).Inc()
		}
	}
	c.metrics.TickDuration.Observe(time.Since(start).Seconds())

	if n > 0 {
		c.logger.Debug("targets illuminated", "count", n, "sweep_angle", c.engine.Angle())
	}
}

func (c *Console) refreshDisplay(now time.Time) {
	c.mu.Lock()
	c.displayTime = now
	c.mu.Unlock()
}

// SetPRF applies a new pulse repetition frequency, restarts the driver at
// the derived period (starting it if stopped) and returns the applied value.
func (c *Console) SetPRF(hz int) int {
	c.mu.Lock()
	applied := c.engine.SetPRF(hz)
	c.driver.Start(c.engine.TickPeriod())
	c.publishConfig()
	period := c.engine.TickPeriod()
	speed := c.engine.Speed()
	c.mu.Unlock()

	c.poke()

	if applied != hz {
		c.metrics.ConfigClamped.WithLabelValues("prf").Inc()
		c.logger.Warn("prf clamped", "requested", hz, "applied", applied)
	}
	c.logger.Info("prf changed", "prf_hz", applied, "tick_period", period, "sweep_speed", speed)
	return applied
}

// SetRotationRPM applies a new antenna rate and returns the applied value.
// The driver period is unaffected.
func (c *Console) SetRotationRPM(rpm float64) float64 {
	c.mu.Lock()
	applied := c.engine.SetRotationRPM(rpm)
	c.publishConfig()
	speed := c.engine.Speed()
	c.mu.Unlock()

	if applied != rpm {
		c.metrics.ConfigClamped.WithLabelValues("rpm").Inc()
		c.logger.Warn("rotation rpm clamped", "requested", rpm, "applied", applied)
	}
	c.logger.Info("rotation rpm changed", "rotation_rpm", applied, "sweep_speed", speed)
	return applied
}

// Start runs the driver at the current PRF. Starting a running driver is a
// no-op.
func (c *Console) Start() {
	c.mu.Lock()
	started := !c.driver.Running()
	if started {
		c.driver.Start(c.engine.TickPeriod())
		c.publishConfig()
	}
	c.mu.Unlock()

	if started {
		c.poke()
		c.logger.Info("scan started")
	}
}

// Stop halts the driver. The sweep angle is kept.
func (c *Console) Stop() {
	c.mu.Lock()
	stopped := c.driver.Running()
	c.driver.Stop()
	c.publishConfig()
	angle := c.engine.Angle()
	c.mu.Unlock()

	if stopped {
		c.logger.Info("scan stopped", "sweep_angle", angle)
	}
}

// Regenerate replaces the target batch with count fresh targets. A
// non-positive count uses the configured batch size; larger requests are
// capped at MaxTargets. It returns the number generated.
func (c *Console) Regenerate(count int) int {
	if count <= 0 {
		count = c.opts.TargetCount
	}
	count = min(count, MaxTargets)

	c.mu.Lock()
	c.engine.SetTargets(c.generator.Generate(count))
	c.status = StatusAnalyzing
	c.mu.Unlock()

	c.metrics.TargetsTracked.Set(float64(count))
	c.metrics.Regenerations.Inc()
	c.logger.Info("targets regenerated", "count", count)
	return count
}

// Analyze is the console's analyze action: a fresh batch of the configured
// size.
func (c *Console) Analyze() int {
	return c.Regenerate(c.opts.TargetCount)
}

// Snapshot returns the current display state.
func (c *Console) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lit := c.engine.IlluminatedIDs()
	targets := c.engine.Targets()
	views := make([]TargetView, len(targets))
	for i := range targets {
		views[i] = newTargetView(i+1, targets[i], lit)
	}

	return Snapshot{
		SweepAngle:     c.engine.Angle(),
		SweepSpeed:     c.engine.Speed(),
		PRF:            c.engine.PRF(),
		RotationRPM:    c.engine.RotationRPM(),
		TickPeriodMS:   c.engine.TickPeriod().Milliseconds(),
		Running:        c.driver.Running(),
		Illuminated:    len(lit),
		IlluminatedIDs: lit,
		Status:         c.status,
		DisplayTime:    c.displayTime.Format(DisplayTimeLayout),
		Ticks:          c.engine.Ticks(),
		Revolutions:    c.engine.Revolutions(),
		Targets:        views,
	}
}

// Target returns the detail panel for one target.
func (c *Console) Target(id string) (TargetDetail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.engine.Targets() {
		if t.ID == id {
			return newTargetDetail(i+1, t, c.engine.IlluminatedIDs()), nil
		}
	}
	return TargetDetail{}, ErrTargetNotFound
}

// publishConfig mirrors the applied scan settings into gauges. Callers hold mu.
func (c *Console) publishConfig() {
	c.metrics.PRF.Set(float64(c.engine.PRF()))
	c.metrics.RotationRPM.Set(c.engine.RotationRPM())
	c.metrics.SweepSpeed.Set(c.engine.Speed())
	running := 0.0
	if c.driver.Running() {
		running = 1
	}
	c.metrics.ScanRunning.Set(running)
}

// poke wakes Run so it picks up a restarted driver channel.
func (c *Console) poke() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}
