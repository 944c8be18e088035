package domain

import "math"

// Tables holds the per-batch memoized angular kernels of C5: the Wigner-D
// matrix elements at the batch's fixed Euler angles, stored as a dense
// flat array of size (lMax+1)*(2lMax+1)*(2lMax+1) per the design note, and
// the factorial table the Wigner small-d formula draws on. A Tables value
// is owned by exactly one worker and rebuilt once per batch (Precompute),
// never shared across goroutines.
type Tables struct {
	lMax    int
	kappa   float64
	wignerD []complex128
	fact    []float64
}

// NewTables allocates the flat tables for angular-momentum targets up to
// lMax, scaled by kappa = sqrt(2*Ip).
func NewTables(lMax int, kappa float64) *Tables {
	width := 2*lMax + 1
	t := &Tables{
		lMax:    lMax,
		kappa:   kappa,
		wignerD: make([]complex128, (lMax+1)*width*width),
		fact:    make([]float64, 2*lMax+3),
	}
	for n := range t.fact {
		t.fact[n] = math.Gamma(float64(n) + 1)
	}
	return t
}

func (t *Tables) index(l, mPrime, m int) int {
	width := 2*t.lMax + 1
	return l*width*width + (mPrime+t.lMax)*width + (m + t.lMax)
}

// Precompute fills the Wigner-D table D^l_{m',m}(alpha,beta,gamma) for
// every l in [0,lMax] and every valid (m',m), to be reused across the
// whole (kd,kz) grid of the current batch.
func (t *Tables) Precompute(alpha, beta, gamma float64) {
	for l := 0; l <= t.lMax; l++ {
		for mPrime := -l; mPrime <= l; mPrime++ {
			for m := -l; m <= l; m++ {
				d := t.smallD(l, mPrime, m, beta)
				phase := complex(math.Cos(float64(mPrime)*alpha), -math.Sin(float64(mPrime)*alpha)) *
					complex(math.Cos(float64(m)*gamma), -math.Sin(float64(m)*gamma))
				t.wignerD[t.index(l, mPrime, m)] = complex(d, 0) * phase
			}
		}
	}
}

// WignerD returns the memoized D^l_{m',m}(alpha,beta,gamma) filled by the
// most recent Precompute call.
func (t *Tables) WignerD(l, mPrime, m int) complex128 {
	return t.wignerD[t.index(l, mPrime, m)]
}

// smallD evaluates the Wigner small-d matrix element d^l_{m',m}(beta) via
// the general Jacobi-polynomial sum.
func (t *Tables) smallD(l, mPrime, m int, beta float64) float64 {
	kmin := 0
	if d := m - mPrime; d > kmin {
		kmin = d
	}
	kmax := l + m
	if d := l - mPrime; d < kmax {
		kmax = d
	}
	if kmin > kmax {
		return 0
	}
	pre := math.Sqrt(t.fact[l+m] * t.fact[l-m] * t.fact[l+mPrime] * t.fact[l-mPrime])
	cosHalf := math.Cos(beta / 2)
	sinHalf := math.Sin(beta / 2)
	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		denom := t.fact[l+m-k] * t.fact[k] * t.fact[l-k-mPrime] * t.fact[k-m+mPrime]
		sign := 1.0
		if (k-m+mPrime)%2 != 0 {
			sign = -1.0
		}
		term := sign * pre / denom *
			math.Pow(cosHalf, float64(2*l-2*k+m-mPrime)) *
			math.Pow(sinHalf, float64(2*k-m+mPrime))
		sum += term
	}
	return sum
}

// Y evaluates the real spherical-harmonic-like angular kernel at the
// complex direction (x,y,z), scaled by kappa as spec requires ("arguments
// are scaled momentum components in units of kappa"). It is implemented
// as a regular solid harmonic via the Cartesian recursion of Helgaker,
// Jørgensen & Olsen, which needs only r^2 = x^2+y^2+z^2 (never r itself),
// so it stays analytic for the complex sub-barrier momenta C6 feeds it.
func (t *Tables) Y(l, m int, x, y, z complex128) complex128 {
	kappa := complex(t.kappa, 0)
	xs, ys, zs := x/kappa, y/kappa, z/kappa

	absM := m
	if absM < 0 {
		absM = -absM
	}
	c, s := solidHarmonicCS(l, absM, xs, ys, zs)
	if m >= 0 {
		return c
	}
	return s
}

// solidHarmonicCS returns the cosine- and sine-type regular solid
// harmonics C_l^m and S_l^m at (x,y,z), for m >= 0, via the standard
// three-term Cartesian recursion.
func solidHarmonicCS(l, m int, x, y, z complex128) (c, s complex128) {
	r2 := x*x + y*y + z*z

	cDiag := make([]complex128, m+1)
	sDiag := make([]complex128, m+1)
	cDiag[0] = 1
	sDiag[0] = 0
	for mm := 1; mm <= m; mm++ {
		scale := complex(1/math.Sqrt(float64(2*mm)), 0)
		cDiag[mm] = scale * (x*cDiag[mm-1] - y*sDiag[mm-1])
		sDiag[mm] = scale * (x*sDiag[mm-1] + y*cDiag[mm-1])
	}
	if l == m {
		return cDiag[m], sDiag[m]
	}

	cPrev2, sPrev2 := complex128(0), complex128(0)
	cPrev1, sPrev1 := cDiag[m], sDiag[m]
	for ll := m + 1; ll <= l; ll++ {
		denom := math.Sqrt(float64((ll - m) * (ll + m)))
		cur := complex(float64(2*ll-1)/denom, 0)
		var cNext, sNext complex128
		cNext = cur*z*cPrev1 - termFactor(ll, m)*r2*cPrev2
		sNext = cur*z*sPrev1 - termFactor(ll, m)*r2*sPrev2
		cPrev2, sPrev2 = cPrev1, sPrev1
		cPrev1, sPrev1 = cNext, sNext
	}
	return cPrev1, sPrev1
}

func termFactor(l, m int) complex128 {
	if l < 2 {
		return 0
	}
	num := math.Sqrt(float64((l + m - 1) * (l - m - 1)))
	denom := math.Sqrt(float64((l - m) * (l + m)))
	return complex(num/denom, 0)
}
