// Package geom provides the 2D vector math used by collision checks.
//
// Arena space has its origin at the top-left corner with Y increasing downward,
// so angles produced by Angle grow clockwise on screen.
package geom

import "math"

// Vec is a point or direction in arena space
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Dot returns the dot product
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the vector length
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Norm returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}

// Angle returns the heading of v in radians
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns a vector of the given length pointing along angle
func FromAngle(angle, length float64) Vec {
	return Vec{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Dist returns the euclidean distance between a and b
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// CirclesOverlap reports whether two circles strictly intersect.
// Touching circles do not overlap.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// PointSegmentDistance returns the distance from p to the segment a-b
func PointSegmentDistance(p, a, b Vec) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	c1 := ab.Dot(ap)
	if c1 <= 0 {
		return Dist(p, a)
	}
	c2 := ab.Dot(ab)
	if c2 <= c1 {
		return Dist(p, b)
	}

	proj := a.Add(ab.Scale(c1 / c2))
	return Dist(p, proj)
}

// WrapAngle normalises an angle into (-Pi, Pi]
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// InSector reports whether p lies inside the circular sector centred on center,
// reaching radius, spanning heading±halfArc.
func InSector(p, center Vec, radius, heading, halfArc float64) bool {
	d := p.Sub(center)
	if d.Len() > radius {
		return false
	}
	diff := WrapAngle(d.Angle() - heading)
	return math.Abs(diff) <= halfArc
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
