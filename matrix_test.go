package ggui

import (
	"math"
	"testing"
)

func pointsNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestScaleTranslate(t *testing.T) {
	m := ScaleTranslate(2, -3, 10, 20)
	tests := []struct {
		in, want Point
	}{
		{Pt(0, 0), Pt(10, 20)},
		{Pt(1, 1), Pt(12, 17)},
		{Pt(-5, 2), Pt(0, 14)},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !pointsNear(got, tt.want) {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := m.TransformVector(Pt(1, 1)); !pointsNear(got, Pt(2, -3)) {
		t.Errorf("TransformVector ignored translation wrongly: %v", got)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"scale translate", ScaleTranslate(150, 150, 150, 150)},
		{"flipped", ScaleTranslate(0.25, -4, -3, 7)},
		{"general", Matrix{A: 2, B: 1, C: 3, D: -1, E: 4, F: 5}},
	}
	pts := []Point{Pt(0, 0), Pt(1, -2), Pt(123.5, 77)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			for _, p := range pts {
				if got := inv.TransformPoint(tt.m.TransformPoint(p)); !pointsNear(got, p) {
					t.Errorf("round trip of %v = %v", p, got)
				}
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	if got := ScaleTranslate(0, 1, 5, 5).Invert(); got != Identity() {
		t.Errorf("Invert() of singular matrix = %v, want identity", got)
	}
}

func TestTransformPointsCopies(t *testing.T) {
	in := []Point{Pt(1, 2), Pt(3, 4)}
	out := ScaleTranslate(2, 2, 0, 0).TransformPoints(in)
	if in[0] != Pt(1, 2) {
		t.Error("TransformPoints modified its input")
	}
	if out[1] != Pt(6, 8) {
		t.Errorf("out[1] = %v, want (6, 8)", out[1])
	}
}

func TestIsUniformScale(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"uniform", ScaleTranslate(3, 3, 1, 1), true},
		{"flipped y", ScaleTranslate(3, -3, 0, 0), true},
		{"non-uniform", ScaleTranslate(3, 2, 0, 0), false},
		{"sheared", Matrix{A: 1, B: 0.5, E: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsUniformScale(); got != tt.want {
				t.Errorf("IsUniformScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := R(10, 20, 0, 0)
	if got := r.Canon(); got != R(0, 0, 10, 20) {
		t.Errorf("Canon() = %v", got)
	}
	if !r.Empty() {
		t.Error("reversed rect should be empty")
	}
	c := r.Canon()
	if !c.Contains(Pt(0, 0)) || c.Contains(Pt(10, 5)) {
		t.Error("Contains must include min edges and exclude max edges")
	}
}
