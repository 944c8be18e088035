package domain

import "errors"

// ErrInvalidPulse is the sentinel wrapped by every pulse construction
// failure (non-positive intensity/wavelength/cycle count, ellipticity out
// of range, and similar configuration errors).
var ErrInvalidPulse = errors.New("domain: invalid pulse configuration")

// ErrInvalidTarget is the sentinel wrapped by target construction
// failures (non-positive ionization potential, malformed coefficient
// tables).
var ErrInvalidTarget = errors.New("domain: invalid target configuration")
