// Package analysis provides migration analysis over the closed-form motion
// model: size estimation from travel distance, band separation, and
// standard-curve tables for plotting.
package analysis

import (
	"errors"

	"github.com/san-kum/gelsim/internal/gel"
)

var ErrNoMigration = errors.New("analysis: fragment has not migrated")

// EstimateSize inverts the migration law for a band observed at the given
// distance from its well after elapsed seconds at a constant voltage.
// distance is measured from the well offset, not from the gel top.
func EstimateSize(distance float64, voltage int, seconds float64) (float64, error) {
	if distance <= 0 || seconds <= 0 {
		return 0, ErrNoMigration
	}
	// distance = BaseSpeed * (V/ref) * (scale/(size+offset)) * FrameScale * t
	size := gel.BaseSpeed*(float64(voltage)/gel.VoltageRef)*gel.MobilityScale*gel.FrameScale*seconds/distance - gel.MobilityOffset
	if size < 0 {
		size = 0
	}
	return size, nil
}

// Separation returns the distance between two band sizes after running at
// the given voltage for the given time, ignoring the travel limit. Bands
// closer than a canvas row are visually unresolvable.
func Separation(size1, size2, voltage int, seconds float64) float64 {
	d := (gel.Speed(size1, voltage) - gel.Speed(size2, voltage)) * seconds
	if d < 0 {
		return -d
	}
	return d
}

// CurvePoint pairs a known ladder size with its predicted travel distance.
type CurvePoint struct {
	SizeBP   int
	Distance float64
}

// StandardCurve predicts migration distance for each ladder size, capped
// at the travel limit.
func StandardCurve(sizes []int, voltage int, seconds, limit float64) []CurvePoint {
	points := make([]CurvePoint, len(sizes))
	for i, size := range sizes {
		d := gel.Speed(size, voltage) * seconds
		if d > limit {
			d = limit
		}
		points[i] = CurvePoint{SizeBP: size, Distance: d}
	}
	return points
}

// TimeToFinish returns the seconds a fragment needs to cover the given
// travel distance at constant voltage.
func TimeToFinish(sizeBP, voltage int, travel float64) float64 {
	return travel / gel.Speed(sizeBP, voltage)
}
