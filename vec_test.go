package ink

import (
	"math"
	"testing"
)

func TestVecUnit(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"axis", V2(5, 0), V2(1, 0)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"zero uses fallback", V2(0, 0), UnitX},
		{"nan uses fallback", V2(math.NaN(), 1), UnitX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Unit(UnitX)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("%v.Unit() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVecPerp(t *testing.T) {
	v := V2(3, 4)
	p := v.Perp()
	if p != V2(-4, 3) {
		t.Errorf("Perp() = %v, want (-4, 3)", p)
	}
	if v.Dot(p) != 0 {
		t.Errorf("Perp is not perpendicular: dot = %v", v.Dot(p))
	}
}

func TestVecRotate(t *testing.T) {
	got := UnitX.Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", got)
	}
	if l := V2(3, 4).Rotate(1.1).Length(); math.Abs(l-5) > 1e-12 {
		t.Errorf("rotation changed length to %v", l)
	}
}

func TestPointOps(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	if d := b.Sub(a).Length(); d != 5 {
		t.Errorf("distance = %v, want 5", d)
	}
	if m := a.Mid(b); m != Pt(2.5, 4) {
		t.Errorf("Mid = %v", m)
	}
	if o := a.Offset(V2(0, 1), -3); o != Pt(1, -1) {
		t.Errorf("Offset = %v", o)
	}
	if s := b.Sub(a); s != V2(3, 4) {
		t.Errorf("Sub = %v", s)
	}
	if r := a.RotateAround(a, 2); r != a {
		t.Errorf("rotating the center moved it to %v", r)
	}
}
