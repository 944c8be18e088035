package domain

import "testing"

func TestNewAtomTarget_Validation(t *testing.T) {
	cases := []struct {
		name    string
		ip      float64
		l, m    int
		wantErr bool
	}{
		{"valid s state", 0.5, 0, 0, false},
		{"valid p state m=1", 0.5, 1, 1, false},
		{"non-positive ip", 0, 0, 0, true},
		{"negative l", 0.5, -1, 0, true},
		{"m exceeds l", 0.5, 1, 2, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewAtomTarget(c.ip, 1, c.l, c.m, 1, 0, 0)
			if (err != nil) != c.wantErr {
				t.Fatalf("NewAtomTarget(ip=%v,l=%d,m=%d): err=%v, wantErr=%v", c.ip, c.l, c.m, err, c.wantErr)
			}
		})
	}
}

func TestAtomTarget_CoeffIsolatesSingleTerm(t *testing.T) {
	target, err := NewAtomTarget(0.5, 1, 1, 1, 2.0, 0, 0)
	if err != nil {
		t.Fatalf("NewAtomTarget: %v", err)
	}
	if c := target.Coeff(1, 1); c != 2.0 {
		t.Errorf("Coeff(1,1) = %v, want 2.0", c)
	}
	if c := target.Coeff(1, -1); c != 0 {
		t.Errorf("Coeff(1,-1) = %v, want 0", c)
	}
	if c := target.Coeff(0, 0); c != 0 {
		t.Errorf("Coeff(0,0) = %v, want 0", c)
	}
	if target.LMax() != 1 {
		t.Errorf("LMax() = %d, want 1", target.LMax())
	}
}

func TestAtomTarget_OrientationFromQuantizationAxis(t *testing.T) {
	target, err := NewAtomTarget(0.5, 1, 0, 0, 1, 0.7, 1.1)
	if err != nil {
		t.Fatalf("NewAtomTarget: %v", err)
	}
	alpha, beta, gamma := target.Orientation()
	if alpha != 1.1 || beta != 0.7 || gamma != 0 {
		t.Errorf("Orientation() = (%v,%v,%v), want (1.1,0.7,0)", alpha, beta, gamma)
	}
}

func TestNewMoleculeTarget_Validation(t *testing.T) {
	valid := map[[2]int]float64{{0, 0}: 1, {1, 0}: 0.5}
	if _, err := NewMoleculeTarget(0.5, 1, 0, 0, 0, 1, valid); err != nil {
		t.Fatalf("valid molecule target rejected: %v", err)
	}

	cases := []struct {
		name   string
		ip     float64
		lMax   int
		coeffs map[[2]int]float64
	}{
		{"non-positive ip", 0, 1, valid},
		{"negative lMax", 0.5, -1, valid},
		{"l exceeds lMax", 0.5, 0, map[[2]int]float64{{1, 0}: 1}},
		{"m exceeds l", 0.5, 2, map[[2]int]float64{{1, 2}: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewMoleculeTarget(c.ip, 1, 0, 0, 0, c.lMax, c.coeffs); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestNewMoleculeTarget_DropsZeroCoefficients(t *testing.T) {
	coeffs := map[[2]int]float64{{0, 0}: 1, {1, 0}: 0}
	target, err := NewMoleculeTarget(0.5, 1, 0, 0, 0, 1, coeffs)
	if err != nil {
		t.Fatalf("NewMoleculeTarget: %v", err)
	}
	if c := target.Coeff(1, 0); c != 0 {
		t.Errorf("Coeff(1,0) = %v, want 0 (zero entries should be dropped)", c)
	}
	if c := target.Coeff(0, 0); c != 1 {
		t.Errorf("Coeff(0,0) = %v, want 1", c)
	}
}

func TestKappa(t *testing.T) {
	if k := Kappa(0.5); k != 1.0 {
		t.Errorf("Kappa(0.5) = %v, want 1.0", k)
	}
}
