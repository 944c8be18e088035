package domain

import (
	"math"
	"testing"
)

func TestExitGeometry(t *testing.T) {
	fieldMag, phiExit := ExitGeometry(3, 4)
	if math.Abs(fieldMag-5) > 1e-12 {
		t.Errorf("fieldMag = %v, want 5", fieldMag)
	}
	want := math.Atan2(-4, -3)
	if math.Abs(phiExit-want) > 1e-12 {
		t.Errorf("phiExit = %v, want %v", phiExit, want)
	}
}

func TestTriad_Orthonormal(t *testing.T) {
	triad := Triad(0.8)
	dot := triad.X[0]*triad.Y[0] + triad.X[1]*triad.Y[1] + triad.X[2]*triad.Y[2]
	if math.Abs(dot) > 1e-12 {
		t.Errorf("X.Y = %v, want 0 (orthogonal)", dot)
	}
	xNorm := math.Hypot(triad.X[0], triad.X[1])
	if math.Abs(xNorm-1) > 1e-12 {
		t.Errorf("|X| = %v, want 1", xNorm)
	}
}

func TestProject_ExitMomentumIsPerpendicularToField(t *testing.T) {
	// kx,ky built the way C7 builds them (kd along y_FF, no x_FF component)
	// must be perpendicular to the field direction F=(fx,fy).
	fx, fy := 0.03, -0.02
	_, phiExit := ExitGeometry(fx, fy)
	kd := 0.4
	kx := -kd * math.Sin(phiExit)
	ky := kd * math.Cos(phiExit)

	dot := kx*fx + ky*fy
	if math.Abs(dot) > 1e-9 {
		t.Errorf("(kx,ky).F = %v, want 0 (perpendicular to instantaneous field)", dot)
	}
}

func TestProjectComplex_MatchesRealProjectOnRealInput(t *testing.T) {
	triad := Triad(1.2)
	x, y, z := triad.Project(1, 2, 3)
	cx, cy, cz := triad.ProjectComplex(complex(1, 0), complex(2, 0), complex(3, 0))
	if math.Abs(real(cx)-x) > 1e-12 || imag(cx) != 0 {
		t.Errorf("ProjectComplex x = %v, want real %v", cx, x)
	}
	if math.Abs(real(cy)-y) > 1e-12 || imag(cy) != 0 {
		t.Errorf("ProjectComplex y = %v, want real %v", cy, y)
	}
	if math.Abs(real(cz)-z) > 1e-12 || imag(cz) != 0 {
		t.Errorf("ProjectComplex z = %v, want real %v", cz, z)
	}
}

func TestEulerFFToMF_IdentityMFOrientation(t *testing.T) {
	// When the target's MF orientation is the identity (all angles 0),
	// FF->MF degenerates to R_z(phiExit), i.e. alpha=0,beta=0,gamma=phiExit.
	alpha, beta, gamma := EulerFFToMF(0, 0, 0, 0.75)
	if alpha != 0 || beta != 0 {
		t.Errorf("EulerFFToMF identity case: (alpha,beta) = (%v,%v), want (0,0)", alpha, beta)
	}
	if math.Abs(gamma-0.75) > 1e-12 {
		t.Errorf("EulerFFToMF identity case: gamma = %v, want 0.75", gamma)
	}
}
