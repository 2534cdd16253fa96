package domain

import "github.com/google/uuid"

// RandomSource is the subset of *math/rand/v2.Rand the generator draws from.
// Tests supply fixed sequences through it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// Generator produces fresh batches of classified targets.
// It is not safe for concurrent use.
type Generator struct {
	rand       RandomSource
	kinematics bool
	newID      func() string
}

// NewGenerator creates a Generator. With seedKinematics false, speed, angle
// and direction stay zero/empty and every target classifies from its range
// alone.
func NewGenerator(src RandomSource, seedKinematics bool) *Generator {
	return &Generator{
		rand:       src,
		kinematics: seedKinematics,
		newID:      newTargetID,
	}
}

// Generate returns count targets with azimuth in [0,360), range in [50,250)
// and a uniformly chosen signal strength. Each target is already classified.
func (g *Generator) Generate(count int) []Target {
	if count <= 0 {
		return []Target{}
	}

	targets := make([]Target, 0, count)
	for range count {
		azimuth := g.rand.Float64() * 360.0
		rng := g.rand.Float64()*200.0 + 50.0
		strength := SignalStrengths[g.rand.IntN(len(SignalStrengths))]

		var k Kinematics
		if g.kinematics {
			k = Kinematics{
				Speed:     g.rand.Float64() * 1200.0,
				Angle:     g.rand.Float64() * 360.0,
				Direction: Directions[g.rand.IntN(len(Directions))],
			}
		}

		targets = append(targets, NewTarget(g.newID(), azimuth, rng, strength, k))
	}
	return targets
}

func newTargetID() string {
	return "tgt_" + uuid.NewString()
}
