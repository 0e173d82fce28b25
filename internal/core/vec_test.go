package core

import (
	"math"
	"testing"
)

const vecEpsilon = 1e-9

func vecNear(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < vecEpsilon && math.Abs(a.Y-b.Y) < vecEpsilon
}

func TestVec2AddSubScale(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); !vecNear(got, V(4, -2)) {
		t.Errorf("Add = %+v, expected {4 -2}", got)
	}
	if got := a.Sub(b); !vecNear(got, V(-2, 6)) {
		t.Errorf("Sub = %+v, expected {-2 6}", got)
	}
	if got := a.Scale(2.5); !vecNear(got, V(2.5, 5)) {
		t.Errorf("Scale = %+v, expected {2.5 5}", got)
	}
}

func TestVec2Len(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"unit x", V(1, 0), 1},
		{"3-4-5", V(3, 4), 5},
		{"negative", V(-3, -4), 5},
		{"zero", V(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); math.Abs(got-tt.want) > vecEpsilon {
				t.Errorf("Len() = %v, expected %v", got, tt.want)
			}
			if got := tt.v.LenSq(); math.Abs(got-tt.want*tt.want) > vecEpsilon {
				t.Errorf("LenSq() = %v, expected %v", got, tt.want*tt.want)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > vecEpsilon {
		t.Errorf("Normalize length = %v, expected 1", n.Len())
	}
	if !vecNear(n, V(0.6, 0.8)) {
		t.Errorf("Normalize = %+v, expected {0.6 0.8}", n)
	}

	// Zero vector must normalize to zero, not NaN
	z := V(0, 0).Normalize()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Normalize of zero vector = %+v, expected zero", z)
	}
}

func TestVec2Limit(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec2
		max     float64
		wantLen float64
	}{
		{"over limit", V(6, 8), 5, 5},
		{"under limit", V(1, 1), 5, math.Sqrt2},
		{"exact limit", V(3, 4), 5, 5},
		{"zero vector", V(0, 0), 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Limit(tt.max)
			if math.Abs(got.Len()-tt.wantLen) > vecEpsilon {
				t.Errorf("Limit(%v).Len() = %v, expected %v", tt.max, got.Len(), tt.wantLen)
			}
			// Direction must be preserved for non-zero vectors
			if tt.v.Len() > 0 {
				want := tt.v.Normalize()
				dir := got.Normalize()
				if !vecNear(dir, want) {
					t.Errorf("Limit changed direction: %+v vs %+v", dir, want)
				}
			}
		})
	}
}

func TestVec2Dist(t *testing.T) {
	a := V(1, 1)
	b := V(4, 5)
	if got := a.Dist(b); math.Abs(got-5) > vecEpsilon {
		t.Errorf("Dist = %v, expected 5", got)
	}
	if got := b.Dist(a); math.Abs(got-5) > vecEpsilon {
		t.Errorf("Dist should be symmetric, got %v", got)
	}
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"east", V(1, 0), 0},
		{"south", V(0, 1), math.Pi / 2},
		{"west", V(-1, 0), math.Pi},
		{"north", V(0, -1), -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Angle(); math.Abs(got-tt.want) > vecEpsilon {
				t.Errorf("Angle() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	for _, rad := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, -math.Pi / 3} {
		v := FromAngle(rad)
		if math.Abs(v.Len()-1) > vecEpsilon {
			t.Errorf("FromAngle(%v) length = %v, expected 1", rad, v.Len())
		}
		if math.Abs(v.Angle()-rad) > vecEpsilon {
			t.Errorf("FromAngle(%v).Angle() = %v", rad, v.Angle())
		}
	}
}
