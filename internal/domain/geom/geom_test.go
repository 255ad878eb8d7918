package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec_Norm(t *testing.T) {
	n := V(3, 4).Norm()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)

	assert.Equal(t, Vec{}, Vec{}.Norm(), "zero vector stays zero")
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec
		want bool
	}{
		{"overlapping", V(0, 0), V(5, 0), true},
		{"touching - no overlap", V(0, 0), V(6, 0), false},
		{"apart", V(0, 0), V(20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CirclesOverlap(tt.a, 4, tt.b, 2))
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	a, b := V(0, 0), V(10, 0)

	tests := []struct {
		name string
		p    Vec
		want float64
	}{
		{"above middle", V(5, 3), 3},
		{"before start", V(-3, 4), 5},
		{"past end", V(13, 4), 5},
		{"on segment", V(7, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PointSegmentDistance(tt.p, a, b), 1e-9)
		})
	}

	t.Run("degenerate segment", func(t *testing.T) {
		assert.InDelta(t, 5.0, PointSegmentDistance(V(3, 4), V(0, 0), V(0, 0)), 1e-9)
	})
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.5, WrapAngle(0.5+4*math.Pi), 1e-9)
	assert.InDelta(t, -0.5, WrapAngle(-0.5-2*math.Pi), 1e-9)
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-9)
}

func TestInSector(t *testing.T) {
	center := V(100, 100)

	tests := []struct {
		name    string
		p       Vec
		heading float64
		want    bool
	}{
		{"straight ahead", V(150, 100), 0, true},
		{"edge of arc", center.Add(FromAngle(math.Pi/3-0.01, 50)), 0, true},
		{"outside arc", center.Add(FromAngle(math.Pi/2, 50)), 0, false},
		{"beyond reach", V(300, 100), 0, false},
		{"wraps around pi", center.Add(FromAngle(-math.Pi+0.1, 50)), math.Pi - 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InSector(tt.p, center, 100, tt.heading, math.Pi/3))
		})
	}
}
