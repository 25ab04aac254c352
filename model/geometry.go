package model

import "math"

// Vec3 is an x, y, z coordinate triple.
type Vec3 [3]float64

// IsFinite reports whether every component is a finite number.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vertex is one polyline vertex. Z and Bulge are optional; a nil Bulge
// means a straight segment to the next vertex.
type Vertex struct {
	X, Y  float64
	Z     *float64
	Bulge *float64
}

// HasBulge reports whether the segment leaving this vertex is an arc.
func (v Vertex) HasBulge() bool {
	return v.Bulge != nil && *v.Bulge != 0
}

func (v Vertex) clone() Vertex {
	out := Vertex{X: v.X, Y: v.Y}
	if v.Z != nil {
		z := *v.Z
		out.Z = &z
	}
	if v.Bulge != nil {
		b := *v.Bulge
		out.Bulge = &b
	}
	return out
}

// Float returns a pointer to f, for optional vertex fields.
func Float(f float64) *float64 {
	return &f
}
