// Package kinematics produces momentum-conserving decay splits.
package kinematics

import (
	"math"
	"math/rand"

	"github.com/san-kum/chamber/internal/geom"
)

// Momentum is a 2D momentum vector in polar form.
type Momentum struct {
	Mag   float64
	Angle float64
}

// Vec converts to cartesian components.
func (m Momentum) Vec() geom.Vec {
	return geom.FromPolar(m.Mag, m.Angle)
}

// FromVec converts cartesian components back to polar form.
func FromVec(v geom.Vec) Momentum {
	return Momentum{Mag: v.Len(), Angle: v.Angle()}
}

// Split divides a parent momentum into a primary product carrying frac of
// the parent magnitude at an angle sampled within ±spread of the parent
// direction, and the exact vector complement. The pair always sums back to
// the parent, making conservation at the vertex exact by construction.
func Split(parent Momentum, frac, spread float64, rng *rand.Rand) (Momentum, Momentum) {
	offset := (rng.Float64()*2 - 1) * spread
	return SplitAt(parent, frac, offset)
}

// SplitAt is Split with a fixed angular offset for the primary product.
func SplitAt(parent Momentum, frac, offset float64) (Momentum, Momentum) {
	primary := Momentum{Mag: parent.Mag * frac, Angle: parent.Angle + offset}
	rest := FromVec(parent.Vec().Sub(primary.Vec()))
	return primary, rest
}

// SymmetricPair divides a parent momentum into two products of equal
// magnitude at ±half the opening angle around the parent direction. Each
// magnitude is the forward component divided by cos(half), so the pair sums
// to the parent exactly. Sampled opening angles stay well below π by
// construction; the cosine never approaches zero.
func SymmetricPair(parent Momentum, opening float64) (Momentum, Momentum) {
	half := opening / 2
	mag := parent.Mag / (2 * math.Cos(half))
	a := Momentum{Mag: mag, Angle: parent.Angle + half}
	b := Momentum{Mag: mag, Angle: parent.Angle - half}
	return a, b
}
