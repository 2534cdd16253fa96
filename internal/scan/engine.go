package scan

import (
	"math"
	"slices"
	"time"

	"github.com/couchcryptid/radar-console/internal/domain"
)

// Engine owns the sweep state and the current target batch.
// It is not safe for concurrent use; the host serialises access.
type Engine struct {
	angle     float64 // degrees, [0,360)
	speed     float64 // degrees per tick
	prf       int
	rpm       float64
	threshold float64

	targets     []domain.Target
	illuminated []string // IDs under the beam after the last tick

	ticks       uint64
	revolutions uint64
}

// NewEngine creates an engine at angle 0 with clamped PRF and RPM. A
// non-positive threshold selects DefaultIlluminationDeg.
func NewEngine(prf int, rpm, thresholdDeg float64) *Engine {
	if thresholdDeg <= 0 {
		thresholdDeg = DefaultIlluminationDeg
	}
	e := &Engine{
		prf:       ClampPRF(prf),
		rpm:       ClampRPM(rpm),
		threshold: thresholdDeg,
	}
	e.recomputeSpeed()
	return e
}

// SetPRF clamps and applies hz, recomputes the sweep speed and returns the
// applied value. The caller restarts its driver at TickPeriod.
func (e *Engine) SetPRF(hz int) int {
	e.prf = ClampPRF(hz)
	e.recomputeSpeed()
	return e.prf
}

// SetRotationRPM clamps and applies rpm, recomputes the sweep speed and
// returns the applied value.
func (e *Engine) SetRotationRPM(rpm float64) float64 {
	e.rpm = ClampRPM(rpm)
	e.recomputeSpeed()
	return e.rpm
}

// recomputeSpeed keeps speed = rpm*360/(60*prf). A non-positive PRF leaves
// the speed unchanged.
func (e *Engine) recomputeSpeed() {
	if e.prf <= 0 {
		return
	}
	e.speed = e.rpm * 360.0 / (60.0 * float64(e.prf))
}

// Tick advances the sweep by exactly one step, then records and returns the
// number of illuminated targets.
func (e *Engine) Tick() int {
	next := e.angle + e.speed
	if next >= 360.0 {
		e.revolutions++
	}
	e.angle = math.Mod(next, 360.0)
	e.ticks++

	e.illuminated = e.illuminated[:0]
	for i := range e.targets {
		if Illuminated(e.targets[i].Azimuth(), e.angle, e.threshold) {
			e.illuminated = append(e.illuminated, e.targets[i].ID)
		}
	}
	return len(e.illuminated)
}

// SetTargets replaces the target batch and clears the last illumination.
func (e *Engine) SetTargets(targets []domain.Target) {
	e.targets = slices.Clone(targets)
	e.illuminated = e.illuminated[:0]
}

// Targets returns a copy of the current batch.
func (e *Engine) Targets() []domain.Target { return slices.Clone(e.targets) }

// Target looks a target up by ID.
func (e *Engine) Target(id string) (domain.Target, bool) {
	i := slices.IndexFunc(e.targets, func(t domain.Target) bool { return t.ID == id })
	if i < 0 {
		return domain.Target{}, false
	}
	return e.targets[i], true
}

// IlluminatedIDs returns the IDs that were under the beam on the last tick.
func (e *Engine) IlluminatedIDs() []string { return slices.Clone(e.illuminated) }

// IlluminatedCount returns the count computed on the last tick.
func (e *Engine) IlluminatedCount() int { return len(e.illuminated) }

func (e *Engine) Angle() float64 { return e.angle }

// Speed returns the sweep step in degrees per tick.
func (e *Engine) Speed() float64 { return e.speed }

func (e *Engine) PRF() int { return e.prf }

func (e *Engine) RotationRPM() float64 { return e.rpm }

func (e *Engine) Threshold() float64 { return e.threshold }

// TickPeriod returns the driver period for the current PRF.
func (e *Engine) TickPeriod() time.Duration { return TickPeriod(e.prf) }

func (e *Engine) Ticks() uint64 { return e.ticks }

// Revolutions counts how many times the sweep has wrapped past 360.
func (e *Engine) Revolutions() uint64 { return e.revolutions }
