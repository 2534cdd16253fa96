package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestNewTarget_ClassifiesOnCreation(t *testing.T) {
	fixedTime := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	tgt := NewTarget("tgt-1", 45, 240, SignalStrong, Kinematics{Speed: 950})

	assert.Equal(t, "tgt-1", tgt.ID)
	assert.Equal(t, 45.0, tgt.Azimuth())
	assert.Equal(t, 240.0, tgt.Range())
	assert.Equal(t, SignalStrong, tgt.SignalStrength)
	assert.Equal(t, TypeMissile, tgt.Classification().TargetType)
	assert.Equal(t, fixedTime, tgt.DetectedTime)
	assert.Equal(t, fixedTime, tgt.LastUpdateTime)
}

func TestTarget_SetKinematicsReclassifies(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	SetClock(fc)
	defer SetClock(nil)

	tgt := NewTarget("tgt-2", 10, 150, SignalWeak, Kinematics{})
	assert.Equal(t, TypeStationaryObject, tgt.Classification().TargetType)
	detected := tgt.DetectedTime

	fc.Advance(5 * time.Second)
	tgt.SetKinematics(Kinematics{Speed: 450, Direction: DirectionStraight})

	assert.Equal(t, TypeCommercialAircraft, tgt.Classification().TargetType)
	assert.Equal(t, 88, tgt.Classification().Confidence)
	assert.Equal(t, 450.0, tgt.Kinematics().Speed)
	assert.Equal(t, detected, tgt.DetectedTime)
	assert.Equal(t, detected.Add(5*time.Second), tgt.LastUpdateTime)
}

func TestTarget_Features(t *testing.T) {
	tgt := NewTarget("tgt-3", 90, 120, SignalModerate, Kinematics{Speed: 300, Angle: 45, Direction: DirectionTurning})

	assert.Equal(t, Features{Speed: 300, Range: 120, Angle: 45, Direction: DirectionTurning}, tgt.Features())
	assert.Equal(t, TypeEvasiveAircraft, tgt.Classification().TargetType)
}

func TestTarget_Coordinates(t *testing.T) {
	tgt := NewTarget("tgt-4", 123.456, 87.65, SignalWeak, Kinematics{})
	assert.Equal(t, "(87.7, 123.5)", tgt.Coordinates())
}

func TestSetClock(t *testing.T) {
	t.Run("set custom clock", func(t *testing.T) {
		fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(fixedTime))
		assert.Equal(t, fixedTime, clock.Now())
		SetClock(nil)
	})

	t.Run("reset to real clock", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		SetClock(nil)
		assert.True(t, time.Since(clock.Now()) < time.Second)
	})
}
