package domain

import (
	"math"
	"math/cmplx"
)

// cosPowerPulse implements both the Cos^2 and Cos^4 envelope shapes
// (spec.md 4.2); the only difference between them is the envelope power k
// and, for k=2, the additional tanh edge clamp on the field amplitudes.
type cosPowerPulse struct {
	pulseBase
	cycles float64 // N
	power  float64 // k: 2 or 4
	clamp  bool    // true for Cos^2, per spec Open Question (b)
}

// NewCos4Pulse constructs a cos^4-envelope monochromatic pulse.
func NewCos4Pulse(i0, lambda, cycles, ellip, azimuth, cep, tshift float64) (Pulse, error) {
	return newCosPowerPulse(i0, lambda, cycles, ellip, azimuth, cep, tshift, 4, false)
}

// NewCos2Pulse constructs a cos^2-envelope monochromatic pulse with the
// analytic tanh edge clamp on its field amplitudes.
func NewCos2Pulse(i0, lambda, cycles, ellip, azimuth, cep, tshift float64) (Pulse, error) {
	return newCosPowerPulse(i0, lambda, cycles, ellip, azimuth, cep, tshift, 2, true)
}

func newCosPowerPulse(i0, lambda, cycles, ellip, azimuth, cep, tshift, power float64, clamp bool) (Pulse, error) {
	if cycles <= 0 {
		return nil, wrapPulseErr("cycle count must be positive")
	}
	base, err := newPulseBase(i0, lambda, ellip, azimuth, cep, tshift)
	if err != nil {
		return nil, err
	}
	return &cosPowerPulse{pulseBase: base, cycles: cycles, power: power, clamp: clamp}, nil
}

func (p *cosPowerPulse) Monochromatic() bool { return true }

// insideMask reports whether the real time t lies within the pulse
// support: |omega*(t-tshift)| < N*pi. Both UnitEnvelope and the complex
// field evaluators key off Re(t), per spec.md 4.1.
func (p *cosPowerPulse) insideMask(t float64) bool {
	tau := t - p.tshift
	return math.Abs(p.omega*tau) < p.cycles*math.Pi
}

func (p *cosPowerPulse) UnitEnvelope(t float64) float64 {
	if !p.insideMask(t) {
		return 0
	}
	s := p.omega * (t - p.tshift) / (2 * p.cycles)
	return math.Pow(math.Cos(s), p.power)
}

// envelope evaluates the complex analytic continuation u(tau) and its
// tau-derivative u'(tau), zeroed outside the support of Re(tau).
func (p *cosPowerPulse) envelope(tau complex128) (u, uPrime complex128) {
	if !p.insideMask(real(tau) + p.tshift) {
		return 0, 0
	}
	sArg := complex(p.omega/(2*p.cycles), 0) * tau
	cosS := cmplx.Cos(sArg)
	sinS := cmplx.Sin(sArg)
	u = cmplx.Pow(cosS, complex(p.power, 0))
	uPrime = -complex(p.power*p.omega/(2*p.cycles), 0) * cmplx.Pow(cosS, complex(p.power-1, 0)) * sinS
	return
}

// edgeClamp returns the tanh-based analytic edge clamp for Cos^2 pulses
// (1 for Cos^4, where no clamp applies). It is evaluated on Re(tau) only,
// per spec.md 4.2.
func (p *cosPowerPulse) edgeClamp(tau complex128) complex128 {
	if !p.clamp {
		return 1
	}
	re := real(tau)
	boundary := p.cycles * math.Pi / p.omega
	return complex(math.Tanh(5*(re-boundary))*math.Tanh(-5*(re+boundary)), 0)
}

func (p *cosPowerPulse) fields(t complex128) (ax, ay, fx, fy complex128) {
	tau := t - complex(p.tshift, 0)
	u, uPrime := p.envelope(tau)
	cx, cy, dcx, dcy := carrierFields(p.omega, p.ellip, p.azimuth, p.cep, tau)
	ax, ay, fx, fy = fieldsFromEnvelope(p.a0, u, uPrime, cx, cy, dcx, dcy)
	clamp := p.edgeClamp(tau)
	return ax * clamp, ay * clamp, fx * clamp, fy * clamp
}

func (p *cosPowerPulse) Ax(t complex128) complex128 { ax, _, _, _ := p.fields(t); return ax }
func (p *cosPowerPulse) Ay(t complex128) complex128 { _, ay, _, _ := p.fields(t); return ay }
func (p *cosPowerPulse) Fx(t complex128) complex128 { _, _, fx, _ := p.fields(t); return fx }
func (p *cosPowerPulse) Fy(t complex128) complex128 { _, _, _, fy := p.fields(t); return fy }
