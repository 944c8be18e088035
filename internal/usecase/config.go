package usecase

import (
	"fmt"
	"log"

	"github.com/strongfield/adk-sampler/internal/domain"
)

// PhaseMethod selects the trajectory phase convention (GLOSSARY): CTMC
// carries no phase, QTMC and SCTS both carry an initial quantum phase
// arg(amp) and so both widen the emitted row by one column.
type PhaseMethod int

const (
	CTMC PhaseMethod = iota
	QTMC
	SCTS
)

func (m PhaseMethod) valid() bool { return m >= CTMC && m <= SCTS }

// SamplingMode selects how birth times and (kd,kz) candidates are
// enumerated within a batch.
type SamplingMode int

const (
	Grid SamplingMode = iota
	MonteCarlo
)

func (m SamplingMode) valid() bool { return m == Grid || m == MonteCarlo }

// SamplerConfig is the validated, immutable configuration of a Sampler
// (spec 3, SamplerConfig). It is built exclusively through
// NewSamplerConfig, which performs every invariant check and the
// PreCC-to-Pre capability downgrade.
type SamplerConfig struct {
	tStart, tEnd float64
	nT           int
	cutoff       float64
	phaseMethod  PhaseMethod
	prefix       domain.PrefixSet
	dimension    int
	mode         SamplingMode

	kdMax float64
	nKd   int
	kzMax float64
	nKz   int
	nKt   int
}

// NewSamplerConfig validates and constructs a SamplerConfig. pulse is
// consulted only to decide the PreCC->Pre capability downgrade (spec 7);
// it is not retained.
func NewSamplerConfig(
	pulse domain.Pulse,
	tStart, tEnd float64,
	nT int,
	cutoff float64,
	phaseMethod PhaseMethod,
	prefix domain.PrefixSet,
	dimension int,
	mode SamplingMode,
	kdMax float64, nKd int,
	kzMax float64, nKz int,
	nKt int,
) (*SamplerConfig, error) {
	if !(tStart < tEnd) {
		return nil, wrapConfigErr("birth-time start must be before end")
	}
	if nT <= 0 {
		return nil, wrapConfigErr("birth-time sample count must be positive")
	}
	if cutoff < 0 {
		return nil, wrapConfigErr("cutoff must be non-negative")
	}
	if !phaseMethod.valid() {
		return nil, wrapConfigErr(fmt.Sprintf("unknown phase method %d", phaseMethod))
	}
	if !mode.valid() {
		return nil, wrapConfigErr(fmt.Sprintf("unknown sampling mode %d", mode))
	}
	if dimension != 2 && dimension != 3 {
		return nil, wrapConfigErr("dimension must be 2 or 3")
	}
	if prefix.Pre && prefix.PreCC {
		return nil, wrapConfigErr("rate-prefix set may not request both Pre and PreCC")
	}
	if kdMax < 0 || kzMax < 0 {
		return nil, wrapConfigErr("kd_max and kz_max must be non-negative")
	}
	if kdMax == 0 && kzMax == 0 {
		return nil, wrapConfigErr("at least one of kd_max, kz_max must be positive")
	}
	if dimension == 2 && kzMax != 0 {
		return nil, wrapConfigErr("2D sampling requires kz_max=0 (kz fixed at 0)")
	}

	switch mode {
	case Grid:
		if nKd <= 0 || nKz <= 0 {
			return nil, wrapConfigErr("grid mode requires positive N_kd and N_kz")
		}
		if dimension == 2 && nKz != 1 {
			return nil, wrapConfigErr("2D grid sampling requires N_kz=1 (kz fixed at 0)")
		}
	case MonteCarlo:
		if nKt <= 0 {
			return nil, wrapConfigErr("monte carlo mode requires positive N_kt")
		}
	}

	if prefix.PreCC && !pulse.Monochromatic() {
		log.Printf("usecase: PreCC requested with a non-monochromatic pulse, downgrading to Pre")
		prefix.PreCC = false
		prefix.Pre = true
	}

	return &SamplerConfig{
		tStart: tStart, tEnd: tEnd, nT: nT,
		cutoff: cutoff, phaseMethod: phaseMethod, prefix: prefix,
		dimension: dimension, mode: mode,
		kdMax: kdMax, nKd: nKd, kzMax: kzMax, nKz: nKz, nKt: nKt,
	}, nil
}

func (c *SamplerConfig) batchMaxSize() int {
	if c.mode == Grid {
		return c.nKd * c.nKz
	}
	return c.nKt
}
