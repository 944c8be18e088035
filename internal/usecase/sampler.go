package usecase

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/strongfield/adk-sampler/internal/domain"
)

// BatchResult is one birth-time batch's emitted rows (spec C7,
// generate_batch). Empty is the EmptyBatch sentinel of spec 7: it is not
// an error, just a batch with zero surviving candidates.
type BatchResult struct {
	Index int
	Rows  []SeedRow
	Empty bool
}

type candidate struct {
	kd, kz, delta float64
}

// Sampler is the C7 driver. It owns the immutable pulse, target, and
// config, and the birth-time sample set built once at construction; a
// batch itself is a pure function of (pulse, target, config, i, rng) per
// spec 5, computed fresh by GenerateBatch every call.
type Sampler struct {
	pulse  domain.Pulse
	target domain.Target
	config *SamplerConfig
	writer *RowWriter

	tSamples []float64
	workers  int
	recorder Recorder
}

// SetRecorder installs an observability.Recorder. Passing nil restores
// the no-op default.
func (s *Sampler) SetRecorder(r Recorder) {
	if r == nil {
		r = nilRecorder{}
	}
	s.recorder = r
}

// NewSampler constructs a Sampler, logging spec 7's Advisory warnings
// for the Keldysh parameter. rng is consulted once, synchronously, to
// build the birth-time sample set when config's mode is MonteCarlo; it
// is not retained.
func NewSampler(pulse domain.Pulse, target domain.Target, config *SamplerConfig, rng RNG) (*Sampler, error) {
	gamma := pulse.Keldysh(target.Ip())
	switch {
	case gamma >= 1.0:
		logAdvisory("Keldysh parameter %.3f is >= 1.0, outside the tunneling regime", gamma)
	case gamma >= 0.6:
		logAdvisory("Keldysh parameter %.3f is >= 0.6, tunneling regime marginal", gamma)
	}

	return &Sampler{
		pulse:    pulse,
		target:   target,
		config:   config,
		writer:   NewRowWriter(config.dimension, config.phaseMethod),
		tSamples: buildTimeSamples(config, rng),
		workers:  runtime.GOMAXPROCS(0),
		recorder: nilRecorder{},
	}, nil
}

func buildTimeSamples(config *SamplerConfig, rng RNG) []float64 {
	t := make([]float64, config.nT)
	if config.mode == Grid {
		if config.nT == 1 {
			t[0] = (config.tStart + config.tEnd) / 2
			return t
		}
		floats.Span(t, config.tStart, config.tEnd)
		return t
	}
	span := config.tEnd - config.tStart
	for i := range t {
		t[i] = config.tStart + rng.Uniform()*span
	}
	sort.Float64s(t)
	return t
}

// BatchCount returns N_t, the number of birth-time batches.
func (s *Sampler) BatchCount() int { return len(s.tSamples) }

// BatchMaxSize returns the maximum number of candidates a single batch
// can enumerate, before discards: N_kd*N_kz (grid) or N_kt (Monte Carlo).
func (s *Sampler) BatchMaxSize() int { return s.config.batchMaxSize() }

// tStep returns the birth-time sample-volume weight. In grid mode this is
// the step of the closed linspace buildTimeSamples lays tSamples out
// with: (tEnd-tStart)/(nT-1), or the whole window when nT==1 (a single
// sample stands in for the full window). In Monte Carlo mode birth times
// are drawn uniformly rather than gridded, so the mean spacing
// (tEnd-tStart)/nT is the right weight instead.
func (s *Sampler) tStep() float64 {
	width := s.config.tEnd - s.config.tStart
	if s.config.mode == Grid {
		if s.config.nT == 1 {
			return width
		}
		return width / float64(s.config.nT-1)
	}
	return width / float64(s.config.nT)
}

// GenerateBatch evaluates batch i standalone: fetches the birth time,
// derives the field-frame geometry and amplitude builder, enumerates
// (kd,kz) candidates, and filters+packs the surviving rows.
func (s *Sampler) GenerateBatch(ctx context.Context, rng RNG, i int) (BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}
	if i < 0 || i >= len(s.tSamples) {
		return BatchResult{}, errors.New("usecase: batch index out of range")
	}

	tr := s.tSamples[i]
	fx := real(s.pulse.Fx(complex(tr, 0)))
	fy := real(s.pulse.Fy(complex(tr, 0)))
	envelope := s.pulse.UnitEnvelope(tr)
	_, phiExit := domain.ExitGeometry(fx, fy)

	builder := domain.NewAmplitudeBuilder(
		s.target, s.config.prefix, fx, fy,
		s.pulse.Omega(), envelope, s.pulse.Monochromatic(),
	)
	ip := s.target.Ip()
	field := builder.Field()

	rows := make([]SeedRow, 0, s.BatchMaxSize())
	for _, cand := range s.candidates(rng) {
		row, ok := s.evaluateCandidate(builder, cand, tr, ip, field, phiExit)
		if ok {
			rows = append(rows, row)
		}
	}

	return BatchResult{Index: i, Rows: rows, Empty: len(rows) == 0}, nil
}

func (s *Sampler) evaluateCandidate(builder *domain.AmplitudeBuilder, cand candidate, tr, ip, field, phiExit float64) (SeedRow, bool) {
	kd, kz := cand.kd, cand.kz
	if math.Abs(kd) < domain.KdCutoff {
		s.recorder.SampleDiscarded("kd_cutoff")
		return nil, false
	}

	kx := -kd * math.Sin(phiExit)
	ky := kd * math.Cos(phiExit)

	r0 := (ip + (kd*kd+kz*kz)/2) / field
	x0 := r0 * math.Cos(phiExit)
	y0 := r0 * math.Sin(phiExit)

	amp := builder.Amplitude(kx, ky, kd, kz, math.Sqrt(cand.delta))
	rate := real(amp)*real(amp) + imag(amp)*imag(amp)
	if math.IsNaN(rate) {
		s.recorder.SampleDiscarded("nan_rate")
		return nil, false
	}
	if rate < s.config.cutoff {
		s.recorder.SampleDiscarded("below_cutoff")
		return nil, false
	}

	phase := 0.0
	if s.config.phaseMethod != CTMC {
		phase = math.Atan2(imag(amp), real(amp))
	}
	return s.writer.Write(x0, y0, 0, kx, ky, kz, tr, rate, phase), true
}

func (s *Sampler) candidates(rng RNG) []candidate {
	if s.config.mode == Grid {
		return s.gridCandidates()
	}
	return s.mcCandidates(rng)
}

func (s *Sampler) gridCandidates() []candidate {
	c := s.config
	kdVals := axisValues(c.nKd, c.kdMax)
	dkd := gridStep(kdVals)

	if c.dimension == 2 {
		delta := s.tStep() * dkd
		out := make([]candidate, len(kdVals))
		for i, kd := range kdVals {
			out[i] = candidate{kd: kd, kz: 0, delta: delta}
		}
		return out
	}

	kzVals := axisValues(c.nKz, c.kzMax)
	dkz := gridStep(kzVals)
	delta := s.tStep() * dkd * dkz

	out := make([]candidate, 0, len(kdVals)*len(kzVals))
	for _, kd := range kdVals {
		for _, kz := range kzVals {
			out = append(out, candidate{kd: kd, kz: kz, delta: delta})
		}
	}
	return out
}

func axisValues(n int, max float64) []float64 {
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = 0
		return vals
	}
	floats.Span(vals, -math.Abs(max), math.Abs(max))
	return vals
}

func gridStep(vals []float64) float64 {
	if len(vals) < 2 {
		return 1
	}
	return vals[1] - vals[0]
}

func (s *Sampler) mcCandidates(rng RNG) []candidate {
	c := s.config
	kdWidth, kzWidth := 1.0, 1.0
	if c.kdMax > 0 {
		kdWidth = 2 * c.kdMax
	}
	if c.kzMax > 0 {
		kzWidth = 2 * c.kzMax
	}
	delta := s.tStep() * kdWidth * kzWidth / float64(c.nKt)

	out := make([]candidate, c.nKt)
	for i := range out {
		var kd, kz float64
		switch {
		case c.kdMax > 0 && c.kzMax > 0:
			kd = (2*rng.Uniform() - 1) * c.kdMax
			kz = (2*rng.Uniform() - 1) * c.kzMax
		case c.kdMax > 0:
			kd = (2*rng.Uniform() - 1) * c.kdMax
		case c.kzMax > 0:
			kz = (2*rng.Uniform() - 1) * c.kzMax
		}
		out[i] = candidate{kd: kd, kz: kz, delta: delta}
	}
	return out
}

// Run fans the batches out over a fixed-size worker pool (GOMAXPROCS by
// default), each worker deriving its own RNG stream from rootRNG, and
// reassembles the results in batch-index order before returning them on
// the channel. A cancelled context yields the batches completed before
// cancellation plus context.Canceled.
func (s *Sampler) Run(ctx context.Context, rootRNG RNG) (<-chan BatchResult, error) {
	n := s.BatchCount()
	results := make([]*BatchResult, n)

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	workers := s.workers
	if workers < 1 {
		workers = 1
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		workerRNG := rootRNG.Derive(uint64(w))
		go func(rng RNG) {
			defer wg.Done()
			for i := range indices {
				if ctx.Err() != nil {
					return
				}
				start := time.Now()
				s.recorder.BatchStarted(i)
				res, err := s.GenerateBatch(ctx, rng, i)
				if err != nil {
					return
				}
				s.recorder.BatchFinished(i, len(res.Rows), s.BatchMaxSize()-len(res.Rows), time.Since(start))
				mu.Lock()
				results[i] = &res
				mu.Unlock()
			}
		}(workerRNG)
	}
	wg.Wait()

	out := make(chan BatchResult, n)
	for _, r := range results {
		if r == nil {
			close(out)
			return out, context.Canceled
		}
		out <- *r
	}
	close(out)
	return out, nil
}
