package scan

import (
	"math"

	"github.com/couchcryptid/radar-console/internal/domain"
)

// DefaultIlluminationDeg is the beam half-width used when none is configured.
const DefaultIlluminationDeg = 2.0

// AngularDistance returns the shortest angle between two bearings, in
// [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360.0)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

// Illuminated reports whether a target at azimuth lies within thresholdDeg
// of the sweep. The boundary counts.
func Illuminated(azimuth, sweepDeg, thresholdDeg float64) bool {
	return AngularDistance(azimuth, sweepDeg) <= thresholdDeg
}

// IlluminatedCount counts the targets under the beam. It has no side effects.
func IlluminatedCount(targets []domain.Target, sweepDeg, thresholdDeg float64) int {
	n := 0
	for i := range targets {
		if Illuminated(targets[i].Azimuth(), sweepDeg, thresholdDeg) {
			n++
		}
	}
	return n
}
