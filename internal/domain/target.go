package domain

import (
	"fmt"
	"time"
)

// SignalStrength is the coarse return strength reported for a target.
type SignalStrength string

const (
	SignalWeak     SignalStrength = "Weak"
	SignalModerate SignalStrength = "Moderate"
	SignalStrong   SignalStrength = "Strong"
)

// SignalStrengths lists every strength in display order.
var SignalStrengths = []SignalStrength{SignalWeak, SignalModerate, SignalStrong}

// Direction is the heading pattern used by the classifier. Only Straight
// takes part in a rule; the rest are informational.
type Direction string

const (
	DirectionNone     Direction = ""
	DirectionStraight Direction = "Straight"
	DirectionTurning  Direction = "Turning"
	DirectionErratic  Direction = "Erratic"
)

// Directions lists the non-empty directions the generator can assign.
var Directions = []Direction{DirectionStraight, DirectionTurning, DirectionErratic}

// Kinematics are the non-positional classification inputs of a target.
type Kinematics struct {
	Speed     float64   `json:"speed"`
	Angle     float64   `json:"angle"` // turn angle in degrees, not the azimuth
	Direction Direction `json:"direction"`
}

// Target is one contact on the display. Position and kinematics are private
// so the classification can never drift from its inputs.
type Target struct {
	ID             string
	SignalStrength SignalStrength
	DetectedTime   time.Time
	LastUpdateTime time.Time

	azimuth    float64
	rng        float64
	kinematics Kinematics
	class      Classification
}

// NewTarget builds a target and classifies it immediately.
func NewTarget(id string, azimuth, rng float64, strength SignalStrength, k Kinematics) Target {
	now := clock.Now()
	t := Target{
		ID:             id,
		SignalStrength: strength,
		DetectedTime:   now,
		LastUpdateTime: now,
		azimuth:        azimuth,
		rng:            rng,
		kinematics:     k,
	}
	t.class = Classify(t.Features())
	return t
}

// Azimuth returns the bearing in degrees, [0, 360).
func (t Target) Azimuth() float64 { return t.azimuth }

// Range returns the distance in meters.
func (t Target) Range() float64 { return t.rng }

func (t Target) Kinematics() Kinematics { return t.kinematics }

func (t Target) Classification() Classification { return t.class }

// Features returns the inputs the rule table evaluates for this target.
func (t Target) Features() Features {
	return Features{
		Speed:     t.kinematics.Speed,
		Range:     t.rng,
		Angle:     t.kinematics.Angle,
		Direction: t.kinematics.Direction,
	}
}

// SetKinematics replaces the classification inputs, reclassifies and stamps
// LastUpdateTime.
func (t *Target) SetKinematics(k Kinematics) {
	t.kinematics = k
	t.class = Classify(t.Features())
	t.LastUpdateTime = clock.Now()
}

// Coordinates renders the (range, azimuth) pair the detail panel shows.
func (t Target) Coordinates() string {
	return fmt.Sprintf("(%.1f, %.1f)", t.rng, t.azimuth)
}
