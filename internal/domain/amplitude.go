package domain

import "math"

// PrefixSet selects which multiplicative rate factors C6 assembles into
// the complex amplitude. Pre and PreCC are mutually exclusive; that
// invariant is enforced by usecase.SamplerConfig before a builder is ever
// constructed, not re-checked here.
type PrefixSet struct {
	Pre   bool
	PreCC bool
	Jac   bool
}

// AmplitudeBuilder assembles the ADK/MO-ADK complex ionization amplitude
// (C6) for every tunneling-exit candidate of a single batch. It is
// constructed once per birth time t_r: c, c_cc, the Euler geometry, and
// the Wigner-D table all depend only on (target, F(t_r), u(t_r)), not on
// the individual (kd,kz) candidate.
type AmplitudeBuilder struct {
	target Target
	prefix PrefixSet

	kappa float64
	nStar float64
	field float64 // F(t_r)
	fx, fy float64
	c, cCC float64

	triad  FFTriad
	tables *Tables
}

// NewAmplitudeBuilder precomputes the scalars and the memoized Wigner-D
// table shared by every candidate of the batch at birth time t_r. fx, fy
// are the real instantaneous field components at t_r; envelope is
// u(t_r); monochromatic selects whether the instantaneous Keldysh term
// of c_cc is evaluated at all (spec 4.6: zero for non-monochromatic
// pulses).
func NewAmplitudeBuilder(target Target, prefix PrefixSet, fx, fy, omega, envelope float64, monochromatic bool) *AmplitudeBuilder {
	field, phiExit := ExitGeometry(fx, fy)
	return buildAmplitude(target, prefix, fx, fy, field, phiExit, omega, envelope, monochromatic)
}

func buildAmplitude(target Target, prefix PrefixSet, fx, fy, field, phiExit, omega, envelope float64, monochromatic bool) *AmplitudeBuilder {
	kappa := Kappa(target.Ip())
	nStar := target.Z() / kappa

	gammaInst := 0.0
	if monochromatic {
		u := envelope
		if u < minEnvelope {
			u = minEnvelope
		}
		gammaInst = omega * kappa / (field * u)
	}

	c := math.Pow(2, nStar/2+1) * math.Pow(kappa, 2*nStar+0.5) * math.Gamma(nStar/2+1)
	cCC := math.Pow(2, 3*nStar/2+1) * math.Pow(kappa, 5*nStar+0.5) *
		math.Pow(field, -nStar) * math.Pow(1+2*gammaInst/EulerNumber, -nStar)

	alphaM, betaM, gammaM := target.Orientation()
	alpha, beta, gamma := EulerFFToMF(alphaM, betaM, gammaM, phiExit)

	tables := NewTables(target.LMax(), kappa)
	tables.Precompute(alpha, beta, gamma)

	return &AmplitudeBuilder{
		target: target, prefix: prefix,
		kappa: kappa, nStar: nStar, field: field, fx: fx, fy: fy,
		c: c, cCC: cCC,
		triad: Triad(phiExit), tables: tables,
	}
}

// Kappa returns kappa = sqrt(2*Ip) used by this builder.
func (b *AmplitudeBuilder) Kappa() float64 { return b.kappa }

// NStar returns n* = Z/kappa used by this builder.
func (b *AmplitudeBuilder) NStar() float64 { return b.nStar }

// Field returns the instantaneous field magnitude F(t_r) this builder
// was constructed with.
func (b *AmplitudeBuilder) Field() float64 { return b.field }

// TunnelTime returns the sub-barrier imaginary time
// t_i(kd,kz) = sqrt(kappa^2+kd^2+kz^2)/F.
func (b *AmplitudeBuilder) TunnelTime(kd, kz float64) float64 {
	return math.Sqrt(b.kappa*b.kappa+kd*kd+kz*kz) / b.field
}

// Exponential returns E(F,Ip,kd,kz) = exp(-(kd^2+kz^2+2Ip)^1.5/(3F)),
// strictly decreasing in kd^2+kz^2 for fixed F, Ip.
func (b *AmplitudeBuilder) Exponential(kd, kz float64) float64 {
	sum := kd*kd + kz*kz + 2*b.target.Ip()
	return math.Exp(-math.Pow(sum, 1.5) / (3 * b.field))
}

func (b *AmplitudeBuilder) piSum(ffx, ffy, ffz complex128) complex128 {
	var sum complex128
	lMax := b.target.LMax()
	for l := 0; l <= lMax; l++ {
		for m := -l; m <= l; m++ {
			coeff := b.target.Coeff(l, m)
			if coeff == 0 {
				continue
			}
			for mp := -l; mp <= l; mp++ {
				sum += complex(coeff, 0) * b.tables.WignerD(l, mp, m) * b.tables.Y(l, mp, ffx, ffy, ffz)
			}
		}
	}
	return sum
}

func (b *AmplitudeBuilder) prefactorDenominator(kx, ky, kz float64) float64 {
	base := (kx*kx+ky*ky+kz*kz+2*b.target.Ip()) * b.field * b.field
	return math.Pow(base, (b.nStar+1)/4)
}

// Amplitude assembles the complex amplitude for one tunneling-exit
// candidate: lab-frame transverse momentum (kx,ky), the (kd,kz) the
// momentum was derived from, and sqrtDelta = sqrt(sample-volume weight).
// rate = |amp|^2 and phase = arg(amp) are the caller's job (C7).
func (b *AmplitudeBuilder) Amplitude(kx, ky, kd, kz, sqrtDelta float64) complex128 {
	ti := b.TunnelTime(kd, kz)
	e := b.Exponential(kd, kz)

	ktsx := complex(kx, -ti*b.fx)
	ktsy := complex(ky, -ti*b.fy)
	ktsz := complex(kz, 0)
	ffx, ffy, ffz := b.triad.ProjectComplex(ktsx, ktsy, ktsz)

	p := complex(1, 0)
	switch {
	case b.prefix.Pre, b.prefix.PreCC:
		pi := b.piSum(ffx, ffy, ffz)
		denom := complex(b.prefactorDenominator(kx, ky, kz), 0)
		if b.prefix.Pre {
			p = complex(b.c, 0) * pi / denom
		} else {
			p = complex(b.cCC, 0) * pi / denom
		}
	}

	jFactor := complex(1, 0)
	if b.prefix.Jac {
		jFactor = complex(math.Sqrt(b.field), 0)
	}

	return complex(sqrtDelta, 0) * complex(e, 0) * p * jFactor
}
