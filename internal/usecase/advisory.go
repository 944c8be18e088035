package usecase

import "log"

// logAdvisory logs the spec 7 Advisory class of warnings (Keldysh regime
// checks): non-fatal, continue processing.
func logAdvisory(format string, args ...interface{}) {
	log.Printf("usecase: advisory: "+format, args...)
}
