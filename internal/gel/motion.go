package gel

// Motion constants. The mobility curve is tuned for visual pacing, not
// electrophoretic accuracy.
const (
	BaseSpeed      = 0.5
	MobilityScale  = 500.0
	MobilityOffset = 200.0
	VoltageRef     = 100.0
	FrameScale     = 60.0
)

// Mobility returns the size-dependent speed factor. Larger fragments
// migrate slower; the offset keeps the curve finite for tiny sizes.
func Mobility(sizeBP int) float64 {
	return MobilityScale / (float64(sizeBP) + MobilityOffset)
}

// Speed returns migration speed in distance-units per second.
func Speed(sizeBP, voltage int) float64 {
	return BaseSpeed * (float64(voltage) / VoltageRef) * Mobility(sizeBP) * FrameScale
}

// Step advances every unfinished fragment by dt seconds at the given
// voltage. A fragment reaching limit is pinned there and marked finished.
// dt must be the measured time since the previous frame so the animation
// stays consistent at any frame rate.
func Step(fragments []*Fragment, dt float64, voltage int, limit float64) {
	if dt <= 0 {
		return
	}
	for _, f := range fragments {
		if f.Finished {
			continue
		}
		f.Position += Speed(f.SizeBP, voltage) * dt
		if f.Position >= limit {
			f.Position = limit
			f.Finished = true
		}
	}
}
