package geom

import "math"

// ShapeKind selects the curve family used to trace a track.
type ShapeKind int

const (
	KindStraight ShapeKind = iota
	KindArc
	KindSpiral
)

func (k ShapeKind) String() string {
	switch k {
	case KindStraight:
		return "straight"
	case KindArc:
		return "arc"
	case KindSpiral:
		return "spiral"
	}
	return "unknown"
}

// Shape is a parametrized trajectory mapping t in [0,1] to a chamber point.
//
// The Angle field holds the start direction for straight shapes and the
// angular position of the start point on the circle for arcs and spirals.
// Hand is the curvature sign (+1 counter-clockwise, -1 clockwise, 0 straight).
type Shape struct {
	Kind   ShapeKind `json:"kind"`
	Origin Vec       `json:"origin"`
	Angle  float64   `json:"angle"`
	Radius float64   `json:"radius"`
	Length float64   `json:"length"` // straight: distance; arc: fraction of a full circle
	Turns  float64   `json:"turns,omitempty"`
	Hand   float64   `json:"hand,omitempty"`
	Shrink bool      `json:"shrink,omitempty"`
}

// Handedness maps a particle charge to a curvature sign.
func Handedness(charge int) float64 {
	switch {
	case charge > 0:
		return 1
	case charge < 0:
		return -1
	}
	return 0
}

// Straight builds a line segment of the given length and direction.
func Straight(origin Vec, dir, length float64) Shape {
	return Shape{Kind: KindStraight, Origin: origin, Angle: dir, Length: length}
}

// Arc builds a circular arc starting at origin with initial tangent dir.
// sweep is the swept fraction of a full circle; hand fixes the turn sense.
func Arc(origin Vec, dir, radius, sweep, hand float64) Shape {
	return Shape{
		Kind:   KindArc,
		Origin: origin,
		Angle:  dir - hand*math.Pi/2,
		Radius: radius,
		Length: sweep,
		Hand:   hand,
	}
}

// ArcThrough builds an arc of the given radius from a to b. The chord
// direction bisects the start and end tangents, which pins the end point
// of the shape exactly on b.
func ArcThrough(a, b Vec, radius, hand float64) Shape {
	chord := b.Sub(a)
	c := chord.Len()
	sweep := 2 * math.Asin(Clamp(c/(2*radius), 0, 1))
	dir := chord.Angle() - hand*sweep/2
	return Arc(a, dir, radius, sweep/(2*math.Pi), hand)
}

// Spiral builds a spiral seeded with initial tangent dir. A shrinking
// spiral starts on origin at full radius and winds down to zero; a growing
// one starts on origin at zero radius and winds out.
func Spiral(origin Vec, dir, radius, turns, hand float64, shrink bool) Shape {
	return Shape{
		Kind:   KindSpiral,
		Origin: origin,
		Angle:  dir - hand*math.Pi/2,
		Radius: radius,
		Turns:  turns,
		Hand:   hand,
		Shrink: shrink,
	}
}

// center returns the circle center for arc and spiral shapes.
func (s Shape) center() Vec {
	switch {
	case s.Kind == KindArc:
		return s.Origin.Sub(FromPolar(s.Radius, s.Angle))
	case s.Kind == KindSpiral && s.Shrink:
		return s.Origin.Sub(FromPolar(s.Radius, s.Angle))
	default:
		return s.Origin
	}
}

// PointAt evaluates the shape at parameter t in [0,1].
func (s Shape) PointAt(t float64) Vec {
	switch s.Kind {
	case KindStraight:
		return s.Origin.Add(FromPolar(t*s.Length, s.Angle))
	case KindArc:
		sweep := s.Length * 2 * math.Pi * s.Hand
		return s.center().Add(FromPolar(s.Radius, s.Angle+t*sweep))
	case KindSpiral:
		r := t * s.Radius
		if s.Shrink {
			r = (1 - t) * s.Radius
		}
		theta := s.Angle + t*s.Turns*2*math.Pi*s.Hand
		return s.center().Add(FromPolar(r, theta))
	}
	return s.Origin
}

// EndPoint returns the exact end of the shape. Decay vertices are anchored
// here so chained products join with no discontinuity.
func (s Shape) EndPoint() Vec {
	return s.PointAt(1)
}

// StartTangent returns the direction of motion at t=0.
func (s Shape) StartTangent() float64 {
	if s.Kind == KindStraight {
		return s.Angle
	}
	return s.Angle + s.Hand*math.Pi/2
}

// EndTangent returns the direction of motion at t=1, used to seed the
// initial direction of chained decay products.
func (s Shape) EndTangent() float64 {
	switch s.Kind {
	case KindStraight:
		return s.Angle
	case KindArc:
		return s.Angle + s.Length*2*math.Pi*s.Hand + s.Hand*math.Pi/2
	case KindSpiral:
		return s.Angle + s.Turns*2*math.Pi*s.Hand + s.Hand*math.Pi/2
	}
	return s.Angle
}
