// Package grid defines the immutable computational grid for a propagation
// run: the radial, propagation and temporal axes, their spacings, and the
// DFT-ordered angular-frequency axis used by the spectral scheme.
package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spec describes the extents and resolution of the computational domain.
// Radial bounds may be negative for planar (slab) geometry; cylindrical
// runs require RadialMin == 0, which the solver enforces.
type Spec struct {
	RadialMin   float64 `json:"radialMin"`
	RadialMax   float64 `json:"radialMax"`
	RadialNodes int     `json:"radialNodes"`

	DistMin   float64 `json:"distMin"`
	DistMax   float64 `json:"distMax"`
	DistSteps int     `json:"distSteps"`

	TimeMin   float64 `json:"timeMin"`
	TimeMax   float64 `json:"timeMax"`
	TimeNodes int     `json:"timeNodes"`
}

// Validate checks the spec without building axes.
func (s Spec) Validate() error {
	if s.RadialNodes < 3 {
		return fmt.Errorf("grid: radial nodes must be >= 3, got %d", s.RadialNodes)
	}
	if s.TimeNodes < 3 {
		return fmt.Errorf("grid: time nodes must be >= 3, got %d", s.TimeNodes)
	}
	if s.DistSteps < 1 {
		return fmt.Errorf("grid: propagation steps must be >= 1, got %d", s.DistSteps)
	}
	if s.RadialMax <= s.RadialMin {
		return fmt.Errorf("grid: radial extent [%g, %g] is empty", s.RadialMin, s.RadialMax)
	}
	if s.DistMax <= s.DistMin {
		return fmt.Errorf("grid: propagation extent [%g, %g] is empty", s.DistMin, s.DistMax)
	}
	if s.TimeMax <= s.TimeMin {
		return fmt.Errorf("grid: time extent [%g, %g] is empty", s.TimeMin, s.TimeMax)
	}
	return nil
}

// Grid holds the constructed axes. Immutable after New: the engine and all
// line solves share one instance for the duration of a run.
type Grid struct {
	Spec Spec

	Radial []float64 // radial coordinate per node
	Dist   []float64 // propagation coordinate per step boundary (DistSteps+1 values)
	Time   []float64 // temporal coordinate per node

	// Freq is the angular-frequency axis in DFT order: non-negative
	// frequencies first, then negative. Nil when TimeNodes is odd; the
	// spectral scheme requires an even node count.
	Freq []float64

	RadialStep float64
	DistStep   float64
	TimeStep   float64
	FreqStep   float64

	AxisNode int // node index of the symmetry axis (r = 0)
	PeakNode int // node index of the pulse peak time
}

// New validates the spec and builds the axes.
func New(s Spec) (*Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{Spec: s}
	g.RadialStep = (s.RadialMax - s.RadialMin) / float64(s.RadialNodes-1)
	g.DistStep = (s.DistMax - s.DistMin) / float64(s.DistSteps)
	g.TimeStep = (s.TimeMax - s.TimeMin) / float64(s.TimeNodes-1)

	g.Radial = floats.Span(make([]float64, s.RadialNodes), s.RadialMin, s.RadialMax)
	g.Dist = floats.Span(make([]float64, s.DistSteps+1), s.DistMin, s.DistMax)
	g.Time = floats.Span(make([]float64, s.TimeNodes), s.TimeMin, s.TimeMax)

	axis := int(math.Round(-s.RadialMin / g.RadialStep))
	if axis < 0 {
		axis = 0
	}
	if axis > s.RadialNodes-1 {
		axis = s.RadialNodes - 1
	}
	g.AxisNode = axis
	g.PeakNode = s.TimeNodes / 2

	if s.TimeNodes%2 == 0 {
		nt := s.TimeNodes
		g.FreqStep = 2 * math.Pi / (float64(nt) * g.TimeStep)
		nyquist := math.Pi / g.TimeStep
		pos := floats.Span(make([]float64, nt/2), 0, nyquist-g.FreqStep)
		neg := floats.Span(make([]float64, nt/2), -nyquist, -g.FreqStep)
		g.Freq = append(pos, neg...)
	}

	return g, nil
}
