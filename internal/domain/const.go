// Package domain implements the pure, I/O-free core of the strong-field
// ionization sampler: laser pulse models, target orbital descriptions,
// field-frame geometry, angular kernels, and ADK/MO-ADK amplitude assembly.
package domain

// Fundamental conversion constants, bit-exact where the spec requires it.
const (
	// OmegaPerNanometer converts wavelength in nanometers to angular
	// frequency in atomic units: omega = OmegaPerNanometer / lambda.
	OmegaPerNanometer = 45.563352525

	// IntensityAtomicUnit converts peak intensity in W/cm^2 to the
	// square of the peak field in atomic units.
	IntensityAtomicUnit = 3.50944521e16

	// EulerNumber is Euler's constant e, used in the instantaneous
	// Keldysh term of the Coulomb-corrected prefactor.
	EulerNumber = 2.71828182845904523

	// minEnvelope floors the unit envelope before it is used as a
	// divisor, so the instantaneous Keldysh parameter in PreCC never
	// produces +Inf/NaN at envelope zeros (spec Open Question c).
	minEnvelope = 1e-12

	// KdCutoff is the minimum transverse drift momentum magnitude a
	// candidate must carry to survive the sampler's discard filter.
	KdCutoff = 1e-4
)
