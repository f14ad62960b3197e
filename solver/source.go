package solver

import (
	"math"
	"math/cmplx"

	"github.com/filamentlab/go-filament/medium"
)

// source holds the two Adams-Bashforth generations of the nonlinear term
// w = dz*(kerr*|E|^2 + mpa*|E|^(2K-2))*E. Exactly two generations exist at
// all times; the engine rotates them between half-steps and never reads a
// generation while writing it.
type source struct {
	old [][]complex128
	cur [][]complex128

	kerr complex128
	mpa  complex128
	exp  float64
	dz   complex128
}

func newSource(nr, nt int, c *medium.Coefficients, dz float64) *source {
	return &source{
		old:  makePlane(nr, nt),
		cur:  makePlane(nr, nt),
		kerr: c.KerrCoef,
		mpa:  c.MPACoef,
		exp:  c.MPAExponent,
		dz:   complex(dz, 0),
	}
}

// evalInto writes the instantaneous nonlinear source for field into dst.
func (s *source) evalInto(dst, field [][]complex128) {
	for i := range field {
		di, fi := dst[i], field[i]
		for l, e := range fi {
			a := cmplx.Abs(e)
			di[l] = s.dz * (s.kerr*complex(a*a, 0) + s.mpa*complex(math.Pow(a, s.exp), 0)) * e
		}
	}
}

// seed evaluates both generations from the same field. This is the
// first-step bootstrap: no true prior step exists, so the history starts
// with old == cur, a first-order approximation used only at step 0.
func (s *source) seed(field [][]complex128) {
	s.evalInto(s.old, field)
	s.evalInto(s.cur, field)
}

// advance rotates the generations (old takes the previous cur) and
// evaluates a fresh cur from field.
func (s *source) advance(field [][]complex128) {
	s.old, s.cur = s.cur, s.old
	s.evalInto(s.cur, field)
}

// update applies the per-step policy: bootstrap at step 0, rotate-and-
// evaluate afterwards.
func (s *source) update(step int, field [][]complex128) {
	if step == 0 {
		s.seed(field)
		return
	}
	s.advance(field)
}

// extrapolate returns the AB2 contribution weight*(3*cur - old) at (i, l).
// The weight is 0.25 when the scheme evaluates the source twice per
// propagation step (ADI) and 0.5 when once (spectral), yielding second-order
// accuracy in the step size once the history is warm.
func (s *source) extrapolate(i, l int, weight float64) complex128 {
	return complex(weight, 0) * (3*s.cur[i][l] - s.old[i][l])
}

func makePlane(nr, nt int) [][]complex128 {
	p := make([][]complex128, nr)
	for i := range p {
		p[i] = make([]complex128, nt)
	}
	return p
}
