package domain

// trapezoidalPulse implements the trapezoidal envelope shape (spec.md 4.2):
// a linear ramp-up over N_on cycles, a constant plateau over N_const
// cycles, and a linear ramp-down over N_off cycles.
type trapezoidalPulse struct {
	pulseBase
	cyclesOn    float64
	cyclesConst float64
	cyclesOff   float64
	tOn         float64
	tConst      float64
	tOff        float64
}

// NewTrapezoidalPulse constructs a trapezoidal-envelope monochromatic
// pulse. cyclesConst may be zero (a pure triangular pulse); cyclesOn and
// cyclesOff must be positive.
func NewTrapezoidalPulse(i0, lambda, cyclesOn, cyclesConst, cyclesOff, ellip, azimuth, cep, tshift float64) (Pulse, error) {
	if cyclesOn <= 0 {
		return nil, wrapPulseErr("turn-on cycle count must be positive")
	}
	if cyclesConst < 0 {
		return nil, wrapPulseErr("constant cycle count must be non-negative")
	}
	if cyclesOff <= 0 {
		return nil, wrapPulseErr("turn-off cycle count must be positive")
	}
	base, err := newPulseBase(i0, lambda, ellip, azimuth, cep, tshift)
	if err != nil {
		return nil, err
	}
	return &trapezoidalPulse{
		pulseBase:   base,
		cyclesOn:    cyclesOn,
		cyclesConst: cyclesConst,
		cyclesOff:   cyclesOff,
		tOn:         cyclesOn * base.period,
		tConst:      cyclesConst * base.period,
		tOff:        cyclesOff * base.period,
	}, nil
}

func (p *trapezoidalPulse) Monochromatic() bool { return true }

// boundaries returns the three breakpoints of the piecewise ramp, in
// units of tau = t - tshift.
func (p *trapezoidalPulse) boundaries() (onEnd, constEnd, offEnd float64) {
	onEnd = p.tOn
	constEnd = onEnd + p.tConst
	offEnd = constEnd + p.tOff
	return
}

func (p *trapezoidalPulse) UnitEnvelope(t float64) float64 {
	tau := t - p.tshift
	onEnd, constEnd, offEnd := p.boundaries()
	switch {
	case tau < 0 || tau > offEnd:
		return 0
	case tau < onEnd:
		return tau / p.tOn
	case tau <= constEnd:
		return 1
	default:
		return (offEnd - tau) / p.tOff
	}
}

// envelope evaluates the complex analytic continuation u(tau) and its
// tau-derivative u'(tau). The active branch is selected from Re(tau); the
// linear formula for that branch is then evaluated on the full complex
// tau, giving an analytic continuation of each piece off the real axis.
func (p *trapezoidalPulse) envelope(tau complex128) (u, uPrime complex128) {
	re := real(tau)
	onEnd, constEnd, offEnd := p.boundaries()
	switch {
	case re < 0 || re > offEnd:
		return 0, 0
	case re < onEnd:
		return tau / complex(p.tOn, 0), complex(1/p.tOn, 0)
	case re <= constEnd:
		return 1, 0
	default:
		return (complex(offEnd, 0) - tau) / complex(p.tOff, 0), complex(-1/p.tOff, 0)
	}
}

func (p *trapezoidalPulse) fields(t complex128) (ax, ay, fx, fy complex128) {
	tau := t - complex(p.tshift, 0)
	u, uPrime := p.envelope(tau)
	cx, cy, dcx, dcy := carrierFields(p.omega, p.ellip, p.azimuth, p.cep, tau)
	return fieldsFromEnvelope(p.a0, u, uPrime, cx, cy, dcx, dcy)
}

func (p *trapezoidalPulse) Ax(t complex128) complex128 { ax, _, _, _ := p.fields(t); return ax }
func (p *trapezoidalPulse) Ay(t complex128) complex128 { _, ay, _, _ := p.fields(t); return ay }
func (p *trapezoidalPulse) Fx(t complex128) complex128 { _, _, fx, _ := p.fields(t); return fx }
func (p *trapezoidalPulse) Fy(t complex128) complex128 { _, _, _, fy := p.fields(t); return fy }
