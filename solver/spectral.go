package solver

import (
	"github.com/mjibson/go-dsp/fft"
)

// stepSpectral advances the field one propagation step with the Fourier
// Crank-Nicolson scheme: the temporal dispersion half-step is applied
// exactly in the frequency domain per radial line, then a single implicit
// radial solve with the AB2 nonlinear contribution advances each time line.
// One implicit solve and one source evaluation per step.
func (e *engine) stepSpectral(k int) error {
	w := e.opts.Workers

	// Half-step A: exact dispersion propagator. Per-frequency factors are
	// precomputed; the transform pair is the only discretization involved.
	if err := forEachLine(e.nr, w, func(i int) error {
		spec := fft.FFT(e.field[i])
		for l := range spec {
			spec[l] *= e.disp[l]
		}
		copy(e.inter[i], fft.IFFT(spec))
		return nil
	}); err != nil {
		return err
	}
	if err := checkFinite(e.inter, k); err != nil {
		return err
	}

	// Half-step B: diffraction and nonlinearity. The source is evaluated
	// from the dispersion-stepped field, once per step, so the AB2 weight
	// doubles relative to the ADI scheme.
	e.src.update(k, e.inter)

	if err := forEachLine(e.nt, w, func(l int) error {
		col := make([]complex128, e.nr)
		f := make([]complex128, e.nr)
		for i := 0; i < e.nr; i++ {
			col[i] = e.inter[i][l]
		}
		e.rightR.Apply(f, col)
		for i := 0; i < e.nr; i++ {
			f[i] += e.src.extrapolate(i, l, 0.5)
		}
		if err := e.leftR.Solve(f, f); err != nil {
			return err
		}
		for i := 0; i < e.nr; i++ {
			e.field[i][l] = f[i]
		}
		return nil
	}); err != nil {
		return err
	}
	return checkFinite(e.field, k)
}
