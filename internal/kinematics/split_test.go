package kinematics

import (
	"math"
	"math/rand"
	"testing"
)

func TestSplitConserves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		parent := Momentum{Mag: 1 + rng.Float64()*60, Angle: (rng.Float64()*2 - 1) * math.Pi}
		frac := 0.2 + rng.Float64()*0.6
		spread := rng.Float64() * 0.5

		a, b := Split(parent, frac, spread, rng)

		sum := a.Vec().Add(b.Vec())
		want := parent.Vec()
		if math.Abs(sum.X-want.X) > 1e-9 || math.Abs(sum.Y-want.Y) > 1e-9 {
			t.Fatalf("iteration %d: children sum (%f, %f), parent (%f, %f)", i, sum.X, sum.Y, want.X, want.Y)
		}
		if math.Abs(a.Mag-parent.Mag*frac) > 1e-9 {
			t.Fatalf("iteration %d: primary magnitude %f, expected %f", i, a.Mag, parent.Mag*frac)
		}
	}
}

func TestSplitAtOffset(t *testing.T) {
	parent := Momentum{Mag: 10, Angle: 0.3}
	a, b := SplitAt(parent, 0.5, 0.4)

	if math.Abs(a.Angle-0.7) > 1e-12 {
		t.Errorf("expected primary angle 0.7, got %f", a.Angle)
	}
	sum := a.Vec().Add(b.Vec())
	if sum.Dist(parent.Vec()) > 1e-9 {
		t.Error("children do not sum to parent")
	}
}

func TestSymmetricPair(t *testing.T) {
	parent := Momentum{Mag: 20, Angle: 0.1}
	opening := 80 * math.Pi / 180

	a, b := SymmetricPair(parent, opening)

	if math.Abs(a.Mag-b.Mag) > 1e-12 {
		t.Errorf("expected equal magnitudes, got %f and %f", a.Mag, b.Mag)
	}
	if math.Abs((a.Angle-b.Angle)-opening) > 1e-12 {
		t.Errorf("expected opening %f, got %f", opening, a.Angle-b.Angle)
	}
	sum := a.Vec().Add(b.Vec())
	if sum.Dist(parent.Vec()) > 1e-9 {
		t.Error("pair does not sum to parent")
	}
}
