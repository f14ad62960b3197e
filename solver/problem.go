// Package solver implements the operator-split propagation engine for the
// scalar envelope equation: diffraction, second-order dispersion, Kerr
// refraction and multiphoton absorption.
//
// Two interchangeable schemes advance the (radial x time) envelope plane
// along z. Both are Crank-Nicolson based and share the two-step
// Adams-Bashforth integrator for the nonlinear terms:
//
//   - ADI: alternating-direction-implicit finite differences, one implicit
//     radial and one implicit temporal half-step per propagation step.
//   - Spectral: the temporal dispersion half-step is replaced by the exact
//     per-frequency propagator in the Fourier domain, followed by a single
//     implicit radial solve.
package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/filamentlab/go-filament/grid"
	"github.com/filamentlab/go-filament/medium"
	"github.com/filamentlab/go-filament/operator"
	"github.com/filamentlab/go-filament/pulse"
)

// Scheme selects the propagation scheme.
type Scheme string

const (
	ADI      Scheme = "adi"
	Spectral Scheme = "fcn"
)

// ParseScheme maps a configuration string to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case ADI, Spectral:
		return Scheme(s), nil
	}
	return "", fmt.Errorf("solver: unknown scheme %q (want %q or %q)", s, ADI, Spectral)
}

// Problem is the immutable description of one propagation run.
type Problem struct {
	Grid     *grid.Grid
	Geometry operator.Geometry
	Coef     *medium.Coefficients
	Initial  pulse.Envelope
}

// NewProblem validates the pieces of a run. The grid and coefficients are
// shared read-only with the engine; the initial condition may be any
// function with the Envelope signature.
func NewProblem(g *grid.Grid, geo operator.Geometry, c *medium.Coefficients, ic pulse.Envelope) (*Problem, error) {
	if g == nil {
		return nil, fmt.Errorf("solver: nil grid")
	}
	if c == nil {
		return nil, fmt.Errorf("solver: nil coefficients")
	}
	if ic == nil {
		return nil, fmt.Errorf("solver: nil initial condition")
	}
	if geo != operator.Planar && geo != operator.Cylindrical {
		return nil, fmt.Errorf("solver: invalid geometry %d", int(geo))
	}
	if geo == operator.Cylindrical && g.Spec.RadialMin != 0 {
		return nil, fmt.Errorf("solver: cylindrical geometry requires the radial axis to start at 0, got %g",
			g.Spec.RadialMin)
	}
	return &Problem{Grid: g, Geometry: geo, Coef: c, Initial: ic}, nil
}

// Options contains engine configuration.
type Options struct {
	Scheme Scheme

	// Workers bounds the goroutines used for the per-line solves within a
	// half-step. Zero means one worker per CPU.
	Workers int

	// ProgressEvery logs a progress line every that many committed steps
	// through Logger. Zero disables progress logging.
	ProgressEvery int
	Logger        *zerolog.Logger
}

// DefaultOptions returns the default engine configuration: the ADI scheme,
// one worker per CPU, no progress logging.
func DefaultOptions() *Options {
	return &Options{Scheme: ADI}
}
