package solver

import (
	"math/cmplx"

	"gonum.org/v1/gonum/integrate"

	"github.com/filamentlab/go-filament/grid"
)

// Solution holds the committed output of a completed run. Trace row k is
// the on-axis temporal slice of the field after k completed propagation
// steps; row 0 is the initial condition's axis slice.
type Solution struct {
	Grid   *grid.Grid
	Scheme Scheme
	Field  [][]complex128 // final plane, (radial node, time node)
	Trace  [][]complex128 // (step, time node)
}

// PeakIntensity returns, per propagation step, the maximum on-axis
// intensity over the temporal window.
func (s *Solution) PeakIntensity() []float64 {
	out := make([]float64, len(s.Trace))
	for k, row := range s.Trace {
		peak := 0.0
		for _, v := range row {
			a := cmplx.Abs(v)
			if a*a > peak {
				peak = a * a
			}
		}
		out[k] = peak
	}
	return out
}

// AxisIntensity returns the on-axis intensity profile |E|^2 over time after
// k completed steps.
func (s *Solution) AxisIntensity(k int) []float64 {
	out := make([]float64, len(s.Trace[k]))
	for l, v := range s.Trace[k] {
		a := cmplx.Abs(v)
		out[l] = a * a
	}
	return out
}

// Fluence returns the time-integrated intensity of the final plane per
// radial node.
func (s *Solution) Fluence() []float64 {
	out := make([]float64, len(s.Field))
	intensity := make([]float64, len(s.Grid.Time))
	for i, row := range s.Field {
		for l, v := range row {
			a := cmplx.Abs(v)
			intensity[l] = a * a
		}
		out[i] = integrate.Trapezoidal(s.Grid.Time, intensity)
	}
	return out
}

// TransversePower returns the transverse integral of |E|^2 at the given
// temporal node of the final plane. In cylindrical geometry the integrand
// carries the r weight of the area element.
func (s *Solution) TransversePower(l int, cylindrical bool) float64 {
	intensity := make([]float64, len(s.Field))
	for i, row := range s.Field {
		a := cmplx.Abs(row[l])
		intensity[i] = a * a
		if cylindrical {
			intensity[i] *= s.Grid.Radial[i]
		}
	}
	return integrate.Trapezoidal(s.Grid.Radial, intensity)
}
