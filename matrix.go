package ggui

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// ScaleTranslate returns the matrix scaling by (sx, sy) and then
// translating by (tx, ty). The pan/zoom transforms are all of this form.
func ScaleTranslate(sx, sy, tx, ty float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: tx,
		D: 0, E: sy, F: ty,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformPoints applies the transformation to every point, returning a
// new slice.
func (m Matrix) TransformPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsUniformScale reports whether m scales both axes by the same magnitude
// without rotation or shear, within a relative tolerance.
func (m Matrix) IsUniformScale() bool {
	if m.B != 0 || m.D != 0 {
		return false
	}
	a, e := math.Abs(m.A), math.Abs(m.E)
	return math.Abs(a-e) <= 1e-9*math.Max(a, e)
}
