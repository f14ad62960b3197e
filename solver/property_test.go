package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"

	"github.com/filamentlab/go-filament/grid"
	"github.com/filamentlab/go-filament/operator"
)

// Pure diffraction of a beam vanishing at the slab edges is a unitary
// Cayley transform, so the transverse power of a temporal slice must be
// conserved over many steps.
func TestLinearDiffractionConservesPower(t *testing.T) {
	s := grid.Spec{
		RadialMin: -1, RadialMax: 1, RadialNodes: 101,
		DistMin: 0, DistMax: 0.4, DistSteps: 40,
		TimeMin: -1, TimeMax: 1, TimeNodes: 16,
	}
	g, err := grid.New(s)
	require.NoError(t, err)

	ic := gaussian(0.2)
	prob, err := NewProblem(g, operator.Planar, testCoef(0, 0, 0), ic)
	require.NoError(t, err)

	sol, err := Solve(prob, &Options{Scheme: ADI, Workers: 4})
	require.NoError(t, err)

	l := g.PeakNode
	initial := make([]float64, s.RadialNodes)
	for i, r := range g.Radial {
		a := real(ic(r, g.Time[l]))
		initial[i] = a * a
	}
	want := integrate.Trapezoidal(g.Radial, initial)
	got := sol.TransversePower(l, false)

	require.Greater(t, want, 0.0)
	require.InEpsilon(t, want, got, 1e-3,
		"transverse power drifted over %d diffraction steps", s.DistSteps)
}

// With dispersion and absorption off, the ADI and spectral schemes differ
// only in how the Kerr source enters the right-hand side; their on-axis
// peak-intensity trajectories must stay within a small relative band.
func TestSchemesAgreeOnKerrTrajectory(t *testing.T) {
	s := grid.Spec{
		RadialMin: 0, RadialMax: 1, RadialNodes: 80,
		DistMin: 0, DistMax: 0.2, DistSteps: 20,
		TimeMin: -1, TimeMax: 1, TimeNodes: 16,
	}
	coef := testCoef(complex(0, 0.05), 0, 0)
	ic := gaussian(0.3)

	trajectories := make(map[Scheme][]float64)
	for _, scheme := range []Scheme{ADI, Spectral} {
		g, err := grid.New(s)
		require.NoError(t, err)
		prob, err := NewProblem(g, operator.Cylindrical, coef, ic)
		require.NoError(t, err)
		sol, err := Solve(prob, &Options{Scheme: scheme, Workers: 4})
		require.NoError(t, err)
		trajectories[scheme] = sol.PeakIntensity()
	}

	adi := trajectories[ADI]
	fcn := trajectories[Spectral]
	require.Len(t, fcn, len(adi))
	for k := range adi {
		require.InEpsilon(t, adi[k], fcn[k], 0.02,
			"peak intensity diverged between schemes at step %d", k)
	}
}

// The focusing Kerr term must raise the on-axis peak intensity of a beam
// carrying finite power, and multiphoton absorption must lower it again.
func TestKerrFocusesAndMPAAbsorbs(t *testing.T) {
	s := grid.Spec{
		RadialMin: 0, RadialMax: 1, RadialNodes: 80,
		DistMin: 0, DistMax: 0.3, DistSteps: 30,
		TimeMin: -1, TimeMax: 1, TimeNodes: 16,
	}
	ic := gaussian(0.3)

	run := func(kerr, mpa complex128) []float64 {
		g, err := grid.New(s)
		require.NoError(t, err)
		prob, err := NewProblem(g, operator.Cylindrical, testCoef(kerr, mpa, 0), ic)
		require.NoError(t, err)
		sol, err := Solve(prob, &Options{Scheme: ADI, Workers: 4})
		require.NoError(t, err)
		return sol.PeakIntensity()
	}

	linear := run(0, 0)
	kerr := run(complex(0, 0.5), 0)
	absorbed := run(complex(0, 0.5), complex(-0.5, 0))

	last := len(linear) - 1
	require.Greater(t, kerr[last], linear[last],
		"Kerr self-focusing should beat pure diffraction on axis")
	require.Less(t, absorbed[last], kerr[last],
		"multiphoton absorption should drain the focused peak")
	require.False(t, math.IsNaN(kerr[last]))
}
