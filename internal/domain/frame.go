package domain

import "math"

// FFTriad is the instantaneous field-frame basis (spec C4): x̂_FF points
// along the tunneling-exit direction (−F̂), ẑ_FF is the fixed lab z axis,
// and ŷ_FF completes a right-handed set. Both basis vectors are
// expressed in lab-frame coordinates.
type FFTriad struct {
	X [3]float64
	Y [3]float64
}

// ExitGeometry evaluates the instantaneous field magnitude and the
// tunneling-exit azimuth phi_exit = atan2(-Fy, -Fx) from the lab-frame
// field components at the birth time.
func ExitGeometry(fx, fy float64) (fieldMag, phiExit float64) {
	fieldMag = math.Hypot(fx, fy)
	phiExit = math.Atan2(-fy, -fx)
	return
}

// Triad builds the field-frame basis for a given exit azimuth.
func Triad(phiExit float64) FFTriad {
	c, s := math.Cos(phiExit), math.Sin(phiExit)
	return FFTriad{
		X: [3]float64{c, s, 0},
		Y: [3]float64{-s, c, 0},
	}
}

// Project resolves a lab-frame vector (vx,vy,vz) onto the triad's
// (x_FF, y_FF, z_FF) axes.
func (t FFTriad) Project(vx, vy, vz float64) (x, y, z float64) {
	x = vx*t.X[0] + vy*t.X[1] + vz*t.X[2]
	y = vx*t.Y[0] + vy*t.Y[1] + vz*t.Y[2]
	z = vz
	return
}

// ProjectComplex resolves a complex lab-frame vector (vx,vy,vz) — the
// sub-barrier momentum k_ts, whose imaginary part carries the tunneling
// time — onto the triad's (x_FF, y_FF, z_FF) axes.
func (t FFTriad) ProjectComplex(vx, vy, vz complex128) (x, y, z complex128) {
	x = vx*complex(t.X[0], 0) + vy*complex(t.X[1], 0) + vz*complex(t.X[2], 0)
	y = vx*complex(t.Y[0], 0) + vy*complex(t.Y[1], 0) + vz*complex(t.Y[2], 0)
	z = vz
	return
}

// EulerFFToMF composes the target's fixed lab→MF orientation
// (alphaM, betaM, gammaM) with the lab→FF rotation R_z(phiExit) — the FF
// axes are simply the lab axes rotated about z by phiExit — into the
// passive ZYZ Euler angles (alpha, beta, gamma) carrying FF into MF, for
// use by C5's Wigner-D evaluation.
//
// FF→MF = (MF→Lab)^-1 . (FF→Lab) = R(-gammaM,-betaM,-alphaM) . R_z(phiExit)
//
//	= R(-gammaM, -betaM, phiExit-alphaM)
func EulerFFToMF(alphaM, betaM, gammaM, phiExit float64) (alpha, beta, gamma float64) {
	return -gammaM, -betaM, phiExit - alphaM
}
