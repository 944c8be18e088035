package domain

import (
	"math"
	"testing"
)

func TestWignerD_IdentityAtLZero(t *testing.T) {
	tables := NewTables(2, 1.0)
	tables.Precompute(0.3, 0.7, 1.1)
	d := tables.WignerD(0, 0, 0)
	if math.Abs(real(d)-1) > 1e-12 || math.Abs(imag(d)) > 1e-12 {
		t.Errorf("WignerD(0,0,0) = %v, want 1", d)
	}
}

func TestWignerD_ZeroAnglesIsIdentityForDiagonal(t *testing.T) {
	tables := NewTables(1, 1.0)
	tables.Precompute(0, 0, 0)
	for l := 0; l <= 1; l++ {
		for m := -l; m <= l; m++ {
			d := tables.WignerD(l, m, m)
			if math.Abs(real(d)-1) > 1e-9 || math.Abs(imag(d)) > 1e-9 {
				t.Errorf("WignerD(%d,%d,%d) at zero angles = %v, want 1", l, m, m, d)
			}
		}
	}
}

func TestY_ConstantAtLZero(t *testing.T) {
	tables := NewTables(0, 1.0)
	directions := [][3]complex128{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.3, 0.4, 0.5},
	}
	for _, d := range directions {
		y := tables.Y(0, 0, d[0], d[1], d[2])
		if math.Abs(real(y)-1) > 1e-12 || math.Abs(imag(y)) > 1e-12 {
			t.Errorf("Y(0,0,%v) = %v, want 1 (l=0 kernel is direction-independent)", d, y)
		}
	}
}

func TestY_NegativeMUsesSineVariant(t *testing.T) {
	tables := NewTables(1, 1.0)
	x, y, z := complex(0.3, 0), complex(0.4, 0), complex(0.5, 0)
	c := tables.Y(1, 1, x, y, z)
	s := tables.Y(1, -1, x, y, z)
	if c == s {
		t.Errorf("Y(1,1,...) and Y(1,-1,...) should differ (cosine vs sine type), both got %v", c)
	}
}

func TestSmallD_Orthonormal(t *testing.T) {
	// d^l_{m',m}(beta) rows should be normalized: sum_m d^l_{m',m}^2 = 1.
	tables := NewTables(2, 1.0)
	beta := 0.9
	for l := 0; l <= 2; l++ {
		for mp := -l; mp <= l; mp++ {
			sum := 0.0
			for m := -l; m <= l; m++ {
				d := tables.smallD(l, mp, m, beta)
				sum += d * d
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("l=%d,m'=%d: sum_m d^2 = %v, want 1", l, mp, sum)
			}
		}
	}
}
