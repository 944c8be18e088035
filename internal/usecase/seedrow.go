package usecase

// SeedRow is a packed trajectory seed of width 6, 7, 8, or 9 (spec 3),
// column layout decided once by the RowWriter that produced it.
type SeedRow []float64

// RowWriter knows the active row width for a given (dimension,
// phaseMethod) pair, so the sampler driver never branches on width
// inline more than once.
type RowWriter struct {
	dimension int
	withPhase bool
	width     int
}

// NewRowWriter builds a RowWriter for the given dimension and phase
// method.
func NewRowWriter(dimension int, phaseMethod PhaseMethod) *RowWriter {
	withPhase := phaseMethod != CTMC
	width := 6
	if dimension == 3 {
		width = 8
	}
	if withPhase {
		width++
	}
	return &RowWriter{dimension: dimension, withPhase: withPhase, width: width}
}

// Width returns the row width this writer produces.
func (w *RowWriter) Width() int { return w.width }

// Write packs one seed row: (x0,y0[,z0], kx,ky[,kz], tr, rate[, phase]).
func (w *RowWriter) Write(x0, y0, z0, kx, ky, kz, tr, rate, phase float64) SeedRow {
	row := make(SeedRow, w.width)
	i := 0
	row[i] = x0
	i++
	row[i] = y0
	i++
	if w.dimension == 3 {
		row[i] = z0
		i++
	}
	row[i] = kx
	i++
	row[i] = ky
	i++
	if w.dimension == 3 {
		row[i] = kz
		i++
	}
	row[i] = tr
	i++
	row[i] = rate
	i++
	if w.withPhase {
		row[i] = phase
	}
	return row
}
