package domain

import (
	"math"
	"testing"
)

func TestExponential_MonotonicDecreaseInTransverseMomentum(t *testing.T) {
	target, err := NewAtomTarget(0.5, 1, 0, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewAtomTarget: %v", err)
	}
	builder := NewAmplitudeBuilder(target, PrefixSet{}, 0.05, 0, 1.0, 1.0, false)

	prev := builder.Exponential(0, 0)
	for _, kd := range []float64{0.1, 0.3, 0.5, 0.8, 1.2} {
		e := builder.Exponential(kd, 0)
		if e >= prev {
			t.Errorf("Exponential(kd=%.2f) = %v, want strictly less than previous %v", kd, e, prev)
		}
		prev = e
	}
}

func TestAmplitude_SquaredMagnitudeIsRate(t *testing.T) {
	target, err := NewAtomTarget(0.5, 1, 0, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewAtomTarget: %v", err)
	}
	builder := NewAmplitudeBuilder(target, PrefixSet{Pre: true}, 0.05, 0, 1.0, 1.0, false)

	amp := builder.Amplitude(0.01, 0.02, 0.2, 0, 1.0)
	rate := real(amp)*real(amp) + imag(amp)*imag(amp)
	if rate < 0 {
		t.Fatalf("rate = %v, want non-negative", rate)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		t.Fatalf("rate = %v, want finite", rate)
	}
}

func TestAmplitude_NoPrefixIsPureExponentialTimesSqrtDelta(t *testing.T) {
	target, err := NewAtomTarget(0.5, 1, 0, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewAtomTarget: %v", err)
	}
	builder := NewAmplitudeBuilder(target, PrefixSet{}, 0.05, 0, 1.0, 1.0, false)

	sqrtDelta := 0.3
	amp := builder.Amplitude(0.01, 0.02, 0.2, 0, sqrtDelta)
	want := sqrtDelta * builder.Exponential(0.2, 0)
	if math.Abs(real(amp)-want) > 1e-12 || math.Abs(imag(amp)) > 1e-12 {
		t.Errorf("Amplitude with no prefix selected = %v, want real %v", amp, want)
	}
}

func TestAmplitude_JacobianFactorScalesBySqrtField(t *testing.T) {
	target, err := NewAtomTarget(0.5, 1, 0, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewAtomTarget: %v", err)
	}
	plain := NewAmplitudeBuilder(target, PrefixSet{}, 0.05, 0, 1.0, 1.0, false)
	withJac := NewAmplitudeBuilder(target, PrefixSet{Jac: true}, 0.05, 0, 1.0, 1.0, false)

	a1 := plain.Amplitude(0.01, 0.02, 0.2, 0, 1.0)
	a2 := withJac.Amplitude(0.01, 0.02, 0.2, 0, 1.0)

	ratio := cAbs(a2) / cAbs(a1)
	want := math.Sqrt(plain.Field())
	if math.Abs(ratio-want) > 1e-9 {
		t.Errorf("Jacobian ratio = %v, want sqrt(field) = %v", ratio, want)
	}
}
