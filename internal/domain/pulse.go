package domain

import (
	"math"
	"math/cmplx"
)

// Pulse is the interface every laser pulse model satisfies. Fields A and F
// accept complex time: the imaginary part encodes the sub-barrier tunneling
// time used by the ADK amplitude (C6). Only UnitEnvelope is restricted to
// the real time axis; it is the quantity tested against the [0,1]
// invariant and used by the instantaneous-Keldysh term of PreCC.
type Pulse interface {
	PeakIntensity() float64 // I0, W/cm^2
	Wavelength() float64    // lambda, nm
	Omega() float64         // angular frequency, a.u.
	Period() float64        // T = 2*pi/omega
	Ellipticity() float64   // epsilon in [-1,1]
	Azimuth() float64       // phi, principal-axis azimuth, rad
	CEP() float64           // carrier-envelope phase, rad
	TimeShift() float64     // Delta t, a.u.
	PeakField() float64     // F0, a.u.
	PeakVectorPotential() float64 // A0 = F0/omega
	Keldysh(ip float64) float64   // gamma = omega*sqrt(2*ip)/F0
	Monochromatic() bool

	UnitEnvelope(t float64) float64

	Ax(t complex128) complex128
	Ay(t complex128) complex128
	Fx(t complex128) complex128
	Fy(t complex128) complex128
}

// pulseBase holds the scalar attributes and derived quantities common to
// every pulse shape (spec.md Data Model, LaserPulse). Concrete pulse types
// embed it to pick up the shared getters for free.
type pulseBase struct {
	i0      float64
	lambda  float64
	omega   float64
	ellip   float64
	azimuth float64
	cep     float64
	tshift  float64
	f0      float64
	a0      float64
	period  float64
}

func newPulseBase(i0, lambda, ellip, azimuth, cep, tshift float64) (pulseBase, error) {
	if i0 <= 0 {
		return pulseBase{}, wrapPulseErr("peak intensity must be positive")
	}
	if lambda <= 0 {
		return pulseBase{}, wrapPulseErr("wavelength must be positive")
	}
	if ellip < -1 || ellip > 1 {
		return pulseBase{}, wrapPulseErr("ellipticity must be in [-1,1]")
	}

	omega := OmegaPerNanometer / lambda
	f0 := math.Sqrt(i0 / ((1 + ellip*ellip) * IntensityAtomicUnit))

	return pulseBase{
		i0:      i0,
		lambda:  lambda,
		omega:   omega,
		ellip:   ellip,
		azimuth: azimuth,
		cep:     cep,
		tshift:  tshift,
		f0:      f0,
		a0:      f0 / omega,
		period:  2 * math.Pi / omega,
	}, nil
}

func (b pulseBase) PeakIntensity() float64        { return b.i0 }
func (b pulseBase) Wavelength() float64           { return b.lambda }
func (b pulseBase) Omega() float64                { return b.omega }
func (b pulseBase) Period() float64               { return b.period }
func (b pulseBase) Ellipticity() float64          { return b.ellip }
func (b pulseBase) Azimuth() float64              { return b.azimuth }
func (b pulseBase) CEP() float64                  { return b.cep }
func (b pulseBase) TimeShift() float64            { return b.tshift }
func (b pulseBase) PeakField() float64            { return b.f0 }
func (b pulseBase) PeakVectorPotential() float64  { return b.a0 }

func (b pulseBase) Keldysh(ip float64) float64 {
	return b.omega * math.Sqrt(2*ip) / b.f0
}

func wrapPulseErr(msg string) error {
	return &pulseConfigError{msg: msg}
}

type pulseConfigError struct{ msg string }

func (e *pulseConfigError) Error() string { return "domain: " + e.msg }
func (e *pulseConfigError) Unwrap() error { return ErrInvalidPulse }

// carrierFields evaluates the carrier pair (Cx, Cy) and their tau-derivatives
// shared by every envelope shape, at azimuth phi and ellipticity epsilon:
//
//	Cx = cos(omega*tau+cep)*cos(phi) + epsilon*sin(omega*tau+cep)*sin(phi)
//	Cy = -cos(omega*tau+cep)*sin(phi) + epsilon*sin(omega*tau+cep)*cos(phi)
//
// d/dtau Cx = omega*(epsilon*cos(omega*tau+cep)*sin(phi) - sin(omega*tau+cep)*cos(phi))
// d/dtau Cy = omega*(sin(omega*tau+cep)*sin(phi) + epsilon*cos(omega*tau+cep)*cos(phi))
func carrierFields(omega, ellip, azimuth, cep float64, tau complex128) (cx, cy, dcx, dcy complex128) {
	arg := complex(omega, 0)*tau + complex(cep, 0)
	c := cmplx.Cos(arg)
	s := cmplx.Sin(arg)
	cosPhi := complex(math.Cos(azimuth), 0)
	sinPhi := complex(math.Sin(azimuth), 0)
	eps := complex(ellip, 0)
	w := complex(omega, 0)

	cx = c*cosPhi + eps*s*sinPhi
	cy = -c*sinPhi + eps*s*cosPhi
	dcx = w * (eps*c*sinPhi - s*cosPhi)
	dcy = w * (s*sinPhi + eps*c*cosPhi)
	return
}

// fieldsFromEnvelope assembles (Ax, Ay, Fx, Fy) from a pulse's scalar
// attributes and its envelope u(tau), u'(tau), given the already-evaluated
// carrier pair. F is the analytic F = -dA/dtau via the product rule:
//
//	A = A0 * u * C
//	F = -A0 * (u' * C + u * C')
func fieldsFromEnvelope(a0 float64, u, uPrime, cx, cy, dcx, dcy complex128) (ax, ay, fx, fy complex128) {
	a0c := complex(a0, 0)
	ax = a0c * u * cx
	ay = a0c * u * cy
	fx = -a0c * (uPrime*cx + u*dcx)
	fy = -a0c * (uPrime*cy + u*dcy)
	return
}
