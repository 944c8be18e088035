// Package main provides the trajectory-seed sampler HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/strongfield/adk-sampler/internal/adapter/rng"
	"github.com/strongfield/adk-sampler/internal/adapter/target"
	"github.com/strongfield/adk-sampler/internal/domain"
	httpHandler "github.com/strongfield/adk-sampler/internal/http"
	"github.com/strongfield/adk-sampler/internal/observability"
	"github.com/strongfield/adk-sampler/internal/usecase"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}
	if *showVersion {
		fmt.Printf("adk-sampler version %s\n", version)
		return
	}

	port := getEnv("PORT", "8080")
	seed := getEnvInt64("SEED", 1)

	log.Printf("Starting ADK trajectory-seed sampler server...")
	log.Printf("Port: %s", port)

	pulse, err := buildPulse()
	if err != nil {
		log.Fatalf("pulse configuration: %v", err)
	}

	tgt, err := buildTarget()
	if err != nil {
		log.Fatalf("target configuration: %v", err)
	}

	rootRNG := rng.NewSplitMix64RNG(seed)

	config, err := buildConfig(pulse)
	if err != nil {
		log.Fatalf("sampler configuration: %v", err)
	}

	sampler, err := usecase.NewSampler(pulse, tgt, config, rootRNG)
	if err != nil {
		log.Fatalf("sampler init: %v", err)
	}

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Fatalf("metrics init: %v", err)
	}
	sampler.SetRecorder(collector)

	router := httpHandler.SetupRouter(sampler, seed, collector)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Batch count: %d, max batch size: %d", sampler.BatchCount(), sampler.BatchMaxSize())
	log.Printf("API endpoints:")
	log.Printf("  - GET  /healthz")
	log.Printf("  - GET  /metrics")
	log.Printf("  - GET  /v1/batches/count")
	log.Printf("  - POST /v1/batches/:index")

	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func buildPulse() (domain.Pulse, error) {
	shape := getEnv("PULSE_SHAPE", "cos2")
	i0 := getEnvFloat("PEAK_INTENSITY", 4e14)
	lambda := getEnvFloat("WAVELENGTH_NM", 800)
	ellip := getEnvFloat("ELLIPTICITY", 0)
	azimuth := getEnvFloat("AZIMUTH", 0)
	cep := getEnvFloat("CEP", 0)
	tshift := getEnvFloat("TIME_SHIFT", 0)

	switch shape {
	case "cos2":
		return domain.NewCos2Pulse(i0, lambda, getEnvFloat("CYCLES", 8), ellip, azimuth, cep, tshift)
	case "cos4":
		return domain.NewCos4Pulse(i0, lambda, getEnvFloat("CYCLES", 8), ellip, azimuth, cep, tshift)
	case "trapezoidal":
		return domain.NewTrapezoidalPulse(
			i0, lambda,
			getEnvFloat("CYCLES_ON", 2), getEnvFloat("CYCLES_CONST", 4), getEnvFloat("CYCLES_OFF", 2),
			ellip, azimuth, cep, tshift,
		)
	default:
		return nil, fmt.Errorf("unknown PULSE_SHAPE %q", shape)
	}
}

func buildTarget() (domain.Target, error) {
	if path := os.Getenv("ORBITAL_FILE"); path != "" {
		return target.NewMolecularOrbitalFromFile(path)
	}
	return target.NewSAEAtom(
		getEnvFloat("TARGET_IP", 0.5),
		getEnvFloat("TARGET_Z", 1),
		getEnvInt("ORBITAL_L", 0),
		getEnvInt("ORBITAL_M", 0),
		getEnvFloat("ORBITAL_COEFF", 1),
		getEnvFloat("ORBITAL_THETA", 0),
		getEnvFloat("ORBITAL_PHI", 0),
	)
}

func buildConfig(pulse domain.Pulse) (*usecase.SamplerConfig, error) {
	phaseMethod, err := parsePhaseMethod(getEnv("PHASE_METHOD", "ctmc"))
	if err != nil {
		return nil, err
	}
	mode, err := parseSamplingMode(getEnv("SAMPLING_MODE", "grid"))
	if err != nil {
		return nil, err
	}

	prefix := domain.PrefixSet{
		Pre:   getEnvBool("PREFIX_PRE", false),
		PreCC: getEnvBool("PREFIX_PRECC", false),
		Jac:   getEnvBool("PREFIX_JAC", false),
	}

	return usecase.NewSamplerConfig(
		pulse,
		getEnvFloat("T_START", -pulse.Period()),
		getEnvFloat("T_END", pulse.Period()),
		getEnvInt("N_T", 64),
		getEnvFloat("CUTOFF", 0),
		phaseMethod,
		prefix,
		getEnvInt("DIMENSION", 2),
		mode,
		getEnvFloat("KD_MAX", 1.0), getEnvInt("N_KD", 41),
		getEnvFloat("KZ_MAX", 0), getEnvInt("N_KZ", 1),
		getEnvInt("N_KT", 1000),
	)
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
		return 0, fmt.Errorf("unknown PHASE_METHOD %q", s)
	}
}

func parseSamplingMode(s string) (usecase.SamplingMode, error) {
	switch s {
	case "grid":
		return usecase.Grid, nil
	case "monte-carlo", "mc":
		return usecase.MonteCarlo, nil
	default:
		return 0, fmt.Errorf("unknown SAMPLING_MODE %q", s)
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func printUsage() {
	fmt.Printf("ADK Trajectory-Seed Sampler Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  sampler-server [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  SEED                    Root RNG seed (default: 1)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  PULSE_SHAPE             cos2 | cos4 | trapezoidal (default: cos2)")
	fmt.Println("  PEAK_INTENSITY          I0 in W/cm^2 (default: 4e14)")
	fmt.Println("  WAVELENGTH_NM           lambda in nm (default: 800)")
	fmt.Println("  ELLIPTICITY             epsilon in [-1,1] (default: 0)")
	fmt.Println("  AZIMUTH, CEP, TIME_SHIFT")
	fmt.Println("  CYCLES                  cos2/cos4 cycle count (default: 8)")
	fmt.Println("  CYCLES_ON, CYCLES_CONST, CYCLES_OFF   trapezoidal ramp cycles")
	fmt.Println("  ORBITAL_FILE            path to a molecular-orbital JSON table")
	fmt.Println("  TARGET_IP, TARGET_Z, ORBITAL_L, ORBITAL_M, ORBITAL_COEFF, ORBITAL_THETA, ORBITAL_PHI")
	fmt.Println("  T_START, T_END, N_T, CUTOFF")
	fmt.Println("  PHASE_METHOD            ctmc | qtmc | scts (default: ctmc)")
	fmt.Println("  SAMPLING_MODE           grid | monte-carlo (default: grid)")
	fmt.Println("  PREFIX_PRE, PREFIX_PRECC, PREFIX_JAC")
	fmt.Println("  DIMENSION               2 or 3 (default: 2)")
	fmt.Println("  KD_MAX, N_KD, KZ_MAX, N_KZ, N_KT")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /healthz                  Health check")
	fmt.Println("  GET  /metrics                  Prometheus metrics")
	fmt.Println("  GET  /v1/batches/count          Batch count and max batch size")
	fmt.Println("  POST /v1/batches/:index         Generate one birth-time batch")
	fmt.Println()
}
