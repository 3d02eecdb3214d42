package gel

import (
	"math"
	"testing"
)

func TestSpeedReferenceScenario(t *testing.T) {
	// 300 bp at 100 V: mobility = 500/500 = 1.0, speed = 0.5*1*1*60 = 30.
	speed := Speed(300, 100)
	if math.Abs(speed-30.0) > 1e-9 {
		t.Errorf("expected speed 30, got %f", speed)
	}
}

func TestStepOneSecond(t *testing.T) {
	f := &Fragment{SizeBP: 300, Position: 15}
	Step([]*Fragment{f}, 1.0, 100, 390)

	if math.Abs(f.Position-45.0) > 1e-9 {
		t.Errorf("expected position 45 after 1s at 100V, got %f", f.Position)
	}
	if f.Finished {
		t.Error("fragment should not be finished")
	}
}

func TestStepDoubleVoltage(t *testing.T) {
	f := &Fragment{SizeBP: 300, Position: 15}
	Step([]*Fragment{f}, 1.0, 200, 390)

	// voltage factor 2 -> 60 units in one second
	if math.Abs(f.Position-75.0) > 1e-9 {
		t.Errorf("expected position 75 after 1s at 200V, got %f", f.Position)
	}
}

func TestStepClampsAtLimit(t *testing.T) {
	f := &Fragment{SizeBP: 100, Position: 380}
	Step([]*Fragment{f}, 5.0, 300, 390)

	if f.Position != 390 {
		t.Errorf("expected position pinned at 390, got %f", f.Position)
	}
	if !f.Finished {
		t.Error("fragment at limit should be finished")
	}

	// finished fragments never move again
	Step([]*Fragment{f}, 10.0, 300, 390)
	if f.Position != 390 {
		t.Errorf("finished fragment moved to %f", f.Position)
	}
}

func TestStepMonotonic(t *testing.T) {
	f := &Fragment{SizeBP: 500, Position: 15}
	prev := f.Position
	for i := 0; i < 200; i++ {
		Step([]*Fragment{f}, 0.016, 150, 390)
		if f.Position < prev {
			t.Fatalf("position decreased: %f -> %f", prev, f.Position)
		}
		prev = f.Position
	}
}

func TestStepSizeOrdering(t *testing.T) {
	small := &Fragment{SizeBP: 200, Position: 15}
	large := &Fragment{SizeBP: 2000, Position: 15}
	frags := []*Fragment{small, large}

	for i := 0; i < 100; i++ {
		Step(frags, 0.05, 120, 390)
	}

	if small.Position < large.Position {
		t.Errorf("smaller fragment behind larger: %f < %f", small.Position, large.Position)
	}
}

func TestStepZeroDelta(t *testing.T) {
	f := &Fragment{SizeBP: 300, Position: 42}
	Step([]*Fragment{f}, 0, 100, 390)

	if f.Position != 42 {
		t.Errorf("zero delta moved fragment to %f", f.Position)
	}
}

func TestMobilityDecreasesWithSize(t *testing.T) {
	sizes := []int{100, 300, 1000, 5000, 23130}
	for i := 1; i < len(sizes); i++ {
		if Mobility(sizes[i]) >= Mobility(sizes[i-1]) {
			t.Errorf("mobility not decreasing between %d and %d bp", sizes[i-1], sizes[i])
		}
	}
}
