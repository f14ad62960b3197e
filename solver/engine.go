package solver

import (
	"fmt"
	"math/cmplx"

	"github.com/filamentlab/go-filament/operator"
)

// engine owns the field state, the operator set, the nonlinear history and
// the on-axis trace for one run. All buffers are allocated once at
// construction and reused across steps; the field plane is only replaced
// wholesale when a step commits.
type engine struct {
	prob *Problem
	opts *Options

	nr, nt int
	steps  int

	field [][]complex128 // committed plane, (radial, time)
	inter [][]complex128 // intra-step scratch plane
	rhs   [][]complex128 // explicit-operator products

	src   *source
	trace [][]complex128 // row k = axis slice after k committed steps

	leftR, rightR *operator.Operator
	leftT, rightT *operator.Operator // ADI only
	disp          []complex128       // spectral only: per-frequency half-step factor
}

// Solve runs prob to completion under opts and returns the final field and
// on-axis trace. On instability the returned error wraps ErrUnstable and
// reports the last committed step; no partial Solution is returned.
func Solve(prob *Problem, opts *Options) (*Solution, error) {
	if prob == nil {
		return nil, fmt.Errorf("solver: nil problem")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if _, err := ParseScheme(string(opts.Scheme)); err != nil {
		return nil, err
	}

	e, err := newEngine(prob, opts)
	if err != nil {
		return nil, err
	}
	return e.run()
}

func newEngine(prob *Problem, opts *Options) (*engine, error) {
	g := prob.Grid
	c := prob.Coef

	e := &engine{
		prob:  prob,
		opts:  opts,
		nr:    g.Spec.RadialNodes,
		nt:    g.Spec.TimeNodes,
		steps: g.Spec.DistSteps,
	}

	// Crank-Nicolson coefficients: i*deltaR for diffraction and i*deltaT for
	// dispersion, with deltaR = dz/(4*k*dr^2) and deltaT = -dz*k''/(4*dt^2).
	deltaR := 0.25 * g.DistStep / (c.Wavenumber * g.RadialStep * g.RadialStep)
	deltaT := -0.25 * g.DistStep * c.GVDCoef / (g.TimeStep * g.TimeStep)
	coefR := complex(0, deltaR)
	coefT := complex(0, deltaT)

	var err error
	if e.leftR, err = operator.New(operator.Radial, prob.Geometry, operator.Left, e.nr, coefR); err != nil {
		return nil, err
	}
	if e.rightR, err = operator.New(operator.Radial, prob.Geometry, operator.Right, e.nr, -coefR); err != nil {
		return nil, err
	}

	switch opts.Scheme {
	case ADI:
		if e.leftT, err = operator.New(operator.Temporal, operator.Planar, operator.Left, e.nt, coefT); err != nil {
			return nil, err
		}
		if e.rightT, err = operator.New(operator.Temporal, operator.Planar, operator.Right, e.nt, -coefT); err != nil {
			return nil, err
		}
	case Spectral:
		if g.Freq == nil {
			return nil, fmt.Errorf("solver: spectral scheme requires an even time node count, got %d", e.nt)
		}
		e.disp = make([]complex128, e.nt)
		for l, w := range g.Freq {
			wt := w * g.TimeStep
			e.disp[l] = cmplx.Exp(complex(0, -2*deltaT*wt*wt))
		}
	}

	e.field = makePlane(e.nr, e.nt)
	e.inter = makePlane(e.nr, e.nt)
	e.rhs = makePlane(e.nr, e.nt)
	e.src = newSource(e.nr, e.nt, c, g.DistStep)

	for i, r := range g.Radial {
		for l, t := range g.Time {
			e.field[i][l] = prob.Initial(r, t)
		}
	}

	e.trace = makePlane(e.steps+1, e.nt)
	copy(e.trace[0], e.field[g.AxisNode])

	return e, nil
}

func (e *engine) run() (*Solution, error) {
	step := e.stepADI
	if e.opts.Scheme == Spectral {
		step = e.stepSpectral
	}

	for k := 0; k < e.steps; k++ {
		if err := step(k); err != nil {
			return nil, err
		}
		// Commit: trace row k+1 is the axis slice of the field after k+1
		// completed steps, for either scheme.
		copy(e.trace[k+1], e.field[e.prob.Grid.AxisNode])
		e.logProgress(k + 1)
	}

	return &Solution{
		Grid:   e.prob.Grid,
		Scheme: e.opts.Scheme,
		Field:  e.field,
		Trace:  e.trace,
	}, nil
}

func (e *engine) logProgress(done int) {
	if e.opts.Logger == nil || e.opts.ProgressEvery <= 0 {
		return
	}
	if done%e.opts.ProgressEvery != 0 && done != e.steps {
		return
	}
	e.opts.Logger.Info().
		Int("step", done).
		Int("of", e.steps).
		Float64("z", e.prob.Grid.Dist[done]).
		Msg("propagation")
}

// checkFinite scans a plane for NaN or Inf after a half-step. step is the
// propagation step being computed when the scan runs.
func checkFinite(plane [][]complex128, step int) error {
	for _, row := range plane {
		for _, v := range row {
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				return &InstabilityError{Step: step}
			}
		}
	}
	return nil
}
