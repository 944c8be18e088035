package domain

import (
	"math"
	"testing"
)

func TestNewCos4Pulse_PeakFieldAndVectorPotential(t *testing.T) {
	// I0=4e14 W/cm^2, lambda=800nm, circular (epsilon=1): F0 ~= 0.0755, A0 ~= 1.325.
	p, err := NewCos4Pulse(4e14, 800, 2, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCos4Pulse: %v", err)
	}
	if math.Abs(p.PeakField()-0.0755) > 5e-4 {
		t.Errorf("PeakField: got %.6f, want ~0.0755", p.PeakField())
	}
	if math.Abs(p.PeakVectorPotential()-1.325) > 5e-3 {
		t.Errorf("PeakVectorPotential: got %.6f, want ~1.325", p.PeakVectorPotential())
	}
}

func TestPulseRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name                                    string
		i0, lambda, ellip, azimuth, cep, tshift float64
	}{
		{"non-positive intensity", 0, 800, 0, 0, 0, 0},
		{"negative intensity", -1, 800, 0, 0, 0, 0},
		{"non-positive wavelength", 4e14, 0, 0, 0, 0, 0},
		{"ellipticity too high", 4e14, 800, 1.5, 0, 0, 0},
		{"ellipticity too low", 4e14, 800, -1.5, 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewCos4Pulse(c.i0, c.lambda, 2, c.ellip, c.azimuth, c.cep, c.tshift); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestCos4Pulse_UnitEnvelopeRange(t *testing.T) {
	p, err := NewCos4Pulse(4e14, 800, 4, 0.5, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCos4Pulse: %v", err)
	}
	period := p.Period()
	for i := -50; i <= 50; i++ {
		tau := float64(i) / 50 * 4 * period
		u := p.UnitEnvelope(tau)
		if u < 0 || u > 1 {
			t.Fatalf("UnitEnvelope(%.3f) = %.6f, outside [0,1]", tau, u)
		}
	}
	if u0 := p.UnitEnvelope(0); math.Abs(u0-1) > 1e-9 {
		t.Errorf("UnitEnvelope(0) = %.9f, want 1 at pulse center", u0)
	}
}

func TestCos2Pulse_LinearNoTimeShift_YComponentsVanish(t *testing.T) {
	p, err := NewCos2Pulse(4e14, 800, 4, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCos2Pulse: %v", err)
	}
	if ay := p.Ay(0); math.Abs(real(ay))+math.Abs(imag(ay)) > 1e-9 {
		t.Errorf("Ay(0) = %v, want 0 for linear polarization at azimuth 0", ay)
	}
	if fy := p.Fy(0); math.Abs(real(fy))+math.Abs(imag(fy)) > 1e-9 {
		t.Errorf("Fy(0) = %v, want 0 for linear polarization at azimuth 0", fy)
	}
	if fx := p.Fx(0); math.Abs(real(fx)) > 1e-9 {
		t.Errorf("Fx(0) = %v, want 0 at pulse center (cos carrier derivative vanishes)", fx)
	}
}

// TestPulseFieldIsMinusEnvelopeDerivative checks F = -dA/dtau by finite
// difference, at interior points away from the pulse edges, for every
// shape this package provides.
func TestPulseFieldIsMinusEnvelopeDerivative(t *testing.T) {
	pulses := map[string]Pulse{}
	var err error
	pulses["cos4"], err = NewCos4Pulse(4e14, 800, 6, 0.3, 0.4, 0.1, 0)
	if err != nil {
		t.Fatalf("NewCos4Pulse: %v", err)
	}
	pulses["cos2"], err = NewCos2Pulse(4e14, 800, 6, 0.3, 0.4, 0.1, 0)
	if err != nil {
		t.Fatalf("NewCos2Pulse: %v", err)
	}
	pulses["trapezoidal"], err = NewTrapezoidalPulse(4e14, 800, 2, 4, 2, 0.3, 0.4, 0.1, 0)
	if err != nil {
		t.Fatalf("NewTrapezoidalPulse: %v", err)
	}

	const h = 1e-5
	for name, p := range pulses {
		t.Run(name, func(t *testing.T) {
			period := p.Period()
			for i := 1; i < 20; i++ {
				// The 0.37 offset keeps the sample grid off the trapezoidal
				// envelope's exact breakpoints (its derivative is
				// discontinuous there, which a central difference straddling
				// the kink cannot be expected to match).
				tau := ((float64(i)+0.37)/20 - 0.5) * period * 4
				axp := p.Ax(complex(tau+h, 0))
				axm := p.Ax(complex(tau-h, 0))
				dAx := (axp - axm) / complex(2*h, 0)
				fx := p.Fx(complex(tau, 0))

				scale := math.Max(1, math.Abs(real(fx)))
				if diff := cAbs(dAx + fx); diff > 1e-6*scale {
					t.Errorf("tau=%.4f: dAx/dtau + Fx = %v, want ~0", tau, diff)
				}

				ayp := p.Ay(complex(tau+h, 0))
				aym := p.Ay(complex(tau-h, 0))
				dAy := (ayp - aym) / complex(2*h, 0)
				fy := p.Fy(complex(tau, 0))

				scaleY := math.Max(1, math.Abs(real(fy)))
				if diff := cAbs(dAy + fy); diff > 1e-6*scaleY {
					t.Errorf("tau=%.4f: dAy/dtau + Fy = %v, want ~0", tau, diff)
				}
			}
		})
	}
}

func cAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func TestOmegaWavelengthRoundTrip(t *testing.T) {
	p, err := NewCos4Pulse(4e14, 800, 2, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCos4Pulse: %v", err)
	}
	lambdaBack := OmegaPerNanometer / p.Omega()
	if math.Abs(lambdaBack-800) > 1e-9 {
		t.Errorf("omega->lambda round trip: got %.9f, want 800", lambdaBack)
	}
}

func TestKeldyshParameter(t *testing.T) {
	p, err := NewCos4Pulse(4e14, 800, 2, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewCos4Pulse: %v", err)
	}
	ip := 0.5
	gamma := p.Keldysh(ip)
	want := p.Omega() * math.Sqrt(2*ip) / p.PeakField()
	if math.Abs(gamma-want) > 1e-12 {
		t.Errorf("Keldysh: got %.9f, want %.9f", gamma, want)
	}
}
