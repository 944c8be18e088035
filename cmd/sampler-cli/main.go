// Package main runs a one-shot trajectory-seed sampling job and writes
// the emitted rows to stdout as CSV.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/strongfield/adk-sampler/internal/adapter/rng"
	"github.com/strongfield/adk-sampler/internal/adapter/target"
	"github.com/strongfield/adk-sampler/internal/domain"
	"github.com/strongfield/adk-sampler/internal/usecase"
)

func main() {
	var (
		pulseShape  string
		i0          float64
		lambda      float64
		cycles      float64
		cyclesOn    float64
		cyclesConst float64
		cyclesOff   float64
		ellip       float64
		azimuth     float64
		cep         float64
		tshift      float64

		orbitalFile string
		ip          float64
		z           float64
		l           int
		m           int
		coeff       float64
		theta       float64
		phi         float64

		tStart, tEnd float64
		nT           int
		cutoff       float64
		phaseMethod  string
		samplingMode string
		prefixPre    bool
		prefixPreCC  bool
		prefixJac    bool
		dimension    int
		kdMax        float64
		nKd          int
		kzMax        float64
		nKz          int
		nKt          int
		seed         int64
	)

	flag.StringVar(&pulseShape, "pulse", "cos2", "pulse shape: cos2 | cos4 | trapezoidal")
	flag.Float64Var(&i0, "i0", 4e14, "peak intensity, W/cm^2")
	flag.Float64Var(&lambda, "lambda", 800, "wavelength, nm")
	flag.Float64Var(&cycles, "cycles", 8, "cycle count (cos2/cos4)")
	flag.Float64Var(&cyclesOn, "cycles_on", 2, "ramp-on cycles (trapezoidal)")
	flag.Float64Var(&cyclesConst, "cycles_const", 4, "plateau cycles (trapezoidal)")
	flag.Float64Var(&cyclesOff, "cycles_off", 2, "ramp-off cycles (trapezoidal)")
	flag.Float64Var(&ellip, "ellipticity", 0, "ellipticity in [-1,1]")
	flag.Float64Var(&azimuth, "azimuth", 0, "principal-axis azimuth, rad")
	flag.Float64Var(&cep, "cep", 0, "carrier-envelope phase, rad")
	flag.Float64Var(&tshift, "tshift", 0, "pulse time shift, a.u.")

	flag.StringVar(&orbitalFile, "orbital_file", "", "path to a molecular-orbital JSON coefficient table")
	flag.Float64Var(&ip, "ip", 0.5, "ionization potential, a.u. (single-active-electron target)")
	flag.Float64Var(&z, "z", 1, "asymptotic charge")
	flag.IntVar(&l, "l", 0, "orbital angular momentum l")
	flag.IntVar(&m, "m", 0, "orbital magnetic number m")
	flag.Float64Var(&coeff, "coeff", 1, "orbital expansion coefficient")
	flag.Float64Var(&theta, "theta", 0, "target polar orientation, rad")
	flag.Float64Var(&phi, "phi", 0, "target azimuthal orientation, rad")

	flag.Float64Var(&tStart, "t_start", -1, "birth-time window start, a.u.")
	flag.Float64Var(&tEnd, "t_end", 1, "birth-time window end, a.u.")
	flag.IntVar(&nT, "n_t", 64, "number of birth-time samples")
	flag.Float64Var(&cutoff, "cutoff", 0, "rate cutoff")
	flag.StringVar(&phaseMethod, "phase", "ctmc", "phase method: ctmc | qtmc | scts")
	flag.StringVar(&samplingMode, "mode", "grid", "sampling mode: grid | monte-carlo")
	flag.BoolVar(&prefixPre, "prefix_pre", false, "include the static ADK prefactor")
	flag.BoolVar(&prefixPreCC, "prefix_precc", false, "include the Coulomb-corrected prefactor")
	flag.BoolVar(&prefixJac, "prefix_jac", false, "include the sampling Jacobian factor")
	flag.IntVar(&dimension, "dimension", 2, "transverse momentum dimension: 2 | 3")
	flag.Float64Var(&kdMax, "kd_max", 1.0, "transverse drift momentum half-width")
	flag.IntVar(&nKd, "n_kd", 41, "number of kd grid samples")
	flag.Float64Var(&kzMax, "kz_max", 0, "out-of-plane drift momentum half-width")
	flag.IntVar(&nKz, "n_kz", 1, "number of kz grid samples")
	flag.IntVar(&nKt, "n_kt", 1000, "number of Monte Carlo draws per batch")
	flag.Int64Var(&seed, "seed", 1, "root RNG seed")
	flag.Parse()

	pulse, err := buildPulse(pulseShape, i0, lambda, cycles, cyclesOn, cyclesConst, cyclesOff, ellip, azimuth, cep, tshift)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulse configuration: %v\n", err)
		os.Exit(1)
	}

	tgt, err := buildTarget(orbitalFile, ip, z, l, m, coeff, theta, phi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "target configuration: %v\n", err)
		os.Exit(1)
	}

	pm, err := parsePhaseMethod(phaseMethod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	mode, err := parseSamplingMode(samplingMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	config, err := usecase.NewSamplerConfig(
		pulse, tStart, tEnd, nT, cutoff, pm,
		domain.PrefixSet{Pre: prefixPre, PreCC: prefixPreCC, Jac: prefixJac},
		dimension, mode,
		kdMax, nKd, kzMax, nKz, nKt,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sampler configuration: %v\n", err)
		os.Exit(1)
	}

	rootRNG := rng.NewSplitMix64RNG(seed)

	sampler, err := usecase.NewSampler(pulse, tgt, config, rootRNG)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sampler init: %v\n", err)
		os.Exit(1)
	}

	results, err := sampler.Run(context.Background(), rootRNG)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sampler run failed: %v\n", err)
		os.Exit(1)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := rowHeader(dimension, pm)
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "writing header: %v\n", err)
		os.Exit(1)
	}

	for batch := range results {
		for _, row := range batch.Rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := w.Write(record); err != nil {
				fmt.Fprintf(os.Stderr, "writing row: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func buildPulse(shape string, i0, lambda, cycles, cyclesOn, cyclesConst, cyclesOff, ellip, azimuth, cep, tshift float64) (domain.Pulse, error) {
	switch shape {
	case "cos2":
		return domain.NewCos2Pulse(i0, lambda, cycles, ellip, azimuth, cep, tshift)
	case "cos4":
		return domain.NewCos4Pulse(i0, lambda, cycles, ellip, azimuth, cep, tshift)
	case "trapezoidal":
		return domain.NewTrapezoidalPulse(i0, lambda, cyclesOn, cyclesConst, cyclesOff, ellip, azimuth, cep, tshift)
	default:
		return nil, fmt.Errorf("unknown pulse shape %q", shape)
	}
}

func buildTarget(orbitalFile string, ip, z float64, l, m int, coeff, theta, phi float64) (domain.Target, error) {
	if orbitalFile != "" {
		return target.NewMolecularOrbitalFromFile(orbitalFile)
	}
	return target.NewSAEAtom(ip, z, l, m, coeff, theta, phi)
}

func parsePhaseMethod(s string) (usecase.PhaseMethod, error) {
	switch s {
	case "ctmc":
		return usecase.CTMC, nil
	case "qtmc":
		return usecase.QTMC, nil
	case "scts":
		return usecase.SCTS, nil
	default:
		return 0, fmt.Errorf("unknown phase method %q", s)
	}
}

func parseSamplingMode(s string) (usecase.SamplingMode, error) {
	switch s {
	case "grid":
		return usecase.Grid, nil
	case "monte-carlo", "mc":
		return usecase.MonteCarlo, nil
	default:
		return 0, fmt.Errorf("unknown sampling mode %q", s)
	}
}

func rowHeader(dimension int, phaseMethod usecase.PhaseMethod) []string {
	header := []string{"x0", "y0"}
	if dimension == 3 {
		header = append(header, "z0")
	}
	header = append(header, "kx", "ky")
	if dimension == 3 {
		header = append(header, "kz")
	}
	header = append(header, "tr", "rate")
	if phaseMethod != usecase.CTMC {
		header = append(header, "phase")
	}
	return header
}
