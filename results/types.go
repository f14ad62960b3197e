// Package results defines the structured output artifact of a propagation
// run: grid and medium metadata, the final envelope plane, the on-axis
// trace, and derived analysis.
package results

import (
	"time"

	"github.com/filamentlab/go-filament/grid"
	"github.com/filamentlab/go-filament/medium"
)

const SchemaVersion = "1.0.0"

// Results contains the complete output of one simulation. It is only built
// for runs that completed successfully; aborted runs produce no artifact.
type Results struct {
	Version  string         `json:"version"`
	Metadata Metadata       `json:"metadata"`
	Grid     GridInfo       `json:"grid"`
	Medium   MediumInfo     `json:"medium"`
	Field    *ComplexMatrix `json:"field,omitempty"`
	Trace    *ComplexMatrix `json:"trace,omitempty"`
	Analysis *Analysis      `json:"analysis,omitempty"`
}

// Metadata contains execution information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Scheme      string    `json:"scheme"`
	Status      string    `json:"status"` // success only; partial runs are never written
	ComputeTime float64   `json:"computeTime"`
}

// GridInfo records the domain bounds and the derived node indices needed to
// interpret the field and trace matrices.
type GridInfo struct {
	RadialMin   float64 `json:"radialMin"`
	RadialMax   float64 `json:"radialMax"`
	RadialNodes int     `json:"radialNodes"`
	DistMin     float64 `json:"distMin"`
	DistMax     float64 `json:"distMax"`
	DistSteps   int     `json:"distSteps"`
	TimeMin     float64 `json:"timeMin"`
	TimeMax     float64 `json:"timeMax"`
	TimeNodes   int     `json:"timeNodes"`
	AxisNode    int     `json:"axisNode"`
	PeakNode    int     `json:"peakNode"`
}

// MediumInfo records the physical constants the run was performed with.
type MediumInfo struct {
	LinearIndex    float64 `json:"linearIndex"`
	NonlinearIndex float64 `json:"nonlinearIndex"`
	GVDCoef        float64 `json:"gvdCoef"`
	PhotonCount    int     `json:"photonCount"`
	BetaCoef       float64 `json:"betaCoef"`
}

// ComplexMatrix is the JSON encoding of a complex matrix as separate real
// and imaginary parts.
type ComplexMatrix struct {
	Re [][]float64 `json:"re"`
	Im [][]float64 `json:"im"`
}

// NewComplexMatrix splits a complex matrix into its JSON encoding.
func NewComplexMatrix(m [][]complex128) *ComplexMatrix {
	cm := &ComplexMatrix{
		Re: make([][]float64, len(m)),
		Im: make([][]float64, len(m)),
	}
	for i, row := range m {
		cm.Re[i] = make([]float64, len(row))
		cm.Im[i] = make([]float64, len(row))
		for j, v := range row {
			cm.Re[i][j] = real(v)
			cm.Im[i][j] = imag(v)
		}
	}
	return cm
}

// Complex reassembles the complex matrix.
func (m *ComplexMatrix) Complex() [][]complex128 {
	out := make([][]complex128, len(m.Re))
	for i := range m.Re {
		out[i] = make([]complex128, len(m.Re[i]))
		for j := range m.Re[i] {
			out[i][j] = complex(m.Re[i][j], m.Im[i][j])
		}
	}
	return out
}

// Analysis contains derived insights computed from the trace and field.
type Analysis struct {
	// Distance and PeakIntensity form the on-axis peak-intensity
	// trajectory, one value per committed propagation step.
	Distance      []float64 `json:"distance"`
	PeakIntensity []float64 `json:"peakIntensity"`

	MaxIntensity  float64 `json:"maxIntensity"`
	MaxIntensityZ float64 `json:"maxIntensityZ"`

	// Fluence is the time-integrated intensity of the final plane per
	// radial node.
	Fluence     []float64 `json:"fluence,omitempty"`
	PeakFluence float64   `json:"peakFluence"`

	// SelfFocusing reports whether the on-axis peak exceeded its initial
	// value anywhere along the propagation range.
	SelfFocusing bool `json:"selfFocusing"`
}

func newGridInfo(g *grid.Grid) GridInfo {
	s := g.Spec
	return GridInfo{
		RadialMin: s.RadialMin, RadialMax: s.RadialMax, RadialNodes: s.RadialNodes,
		DistMin: s.DistMin, DistMax: s.DistMax, DistSteps: s.DistSteps,
		TimeMin: s.TimeMin, TimeMax: s.TimeMax, TimeNodes: s.TimeNodes,
		AxisNode: g.AxisNode, PeakNode: g.PeakNode,
	}
}

func newMediumInfo(m medium.Medium) MediumInfo {
	return MediumInfo{
		LinearIndex:    m.LinearIndex,
		NonlinearIndex: m.NonlinearIndex,
		GVDCoef:        m.GVDCoef,
		PhotonCount:    m.PhotonCount,
		BetaCoef:       m.BetaCoef,
	}
}
