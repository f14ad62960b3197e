package results

import (
	"time"

	"github.com/filamentlab/go-filament/medium"
	"github.com/filamentlab/go-filament/solver"
)

// Builder constructs a Results artifact from solver output.
type Builder struct {
	r   Results
	sol *solver.Solution
}

// NewBuilder creates a results builder.
func NewBuilder() *Builder {
	return &Builder{
		r: Results{
			Version: SchemaVersion,
			Metadata: Metadata{
				Timestamp: time.Now(),
			},
		},
	}
}

// WithMedium records the physical constants of the run.
func (b *Builder) WithMedium(m medium.Medium) *Builder {
	b.r.Medium = newMediumInfo(m)
	return b
}

// WithSolution records a successfully completed run.
func (b *Builder) WithSolution(sol *solver.Solution, computeTime float64) *Builder {
	b.sol = sol
	b.r.Metadata.Scheme = string(sol.Scheme)
	b.r.Metadata.Status = "success"
	b.r.Metadata.ComputeTime = computeTime
	b.r.Grid = newGridInfo(sol.Grid)
	b.r.Field = NewComplexMatrix(sol.Field)
	b.r.Trace = NewComplexMatrix(sol.Trace)
	return b
}

// WithAnalysis computes the derived analysis from the recorded solution.
// Must follow WithSolution.
func (b *Builder) WithAnalysis() *Builder {
	if b.sol == nil {
		return b
	}
	b.r.Analysis = analyze(b.sol)
	return b
}

// WithDownsampledAnalysis thins the peak-intensity trajectory to at most
// target points, keeping the distance axis aligned. The scalar insights
// (max intensity, fluence profile) are left at full resolution. Must follow
// WithAnalysis; a target below 2 keeps everything.
func (b *Builder) WithDownsampledAnalysis(target int) *Builder {
	a := b.r.Analysis
	if a == nil || target < 2 {
		return b
	}
	a.Distance = Downsample(a.Distance, target)
	a.PeakIntensity = Downsample(a.PeakIntensity, target)
	return b
}

// Build returns the assembled artifact.
func (b *Builder) Build() *Results {
	return &b.r
}

// Downsample reduces xs to at most target points, keeping the first and
// last. A target below 2 or above the input length returns the input.
func Downsample(xs []float64, target int) []float64 {
	if target < 2 || len(xs) <= target {
		return xs
	}
	out := make([]float64, 0, target)
	step := float64(len(xs)-1) / float64(target-1)
	for i := 0; i < target; i++ {
		out = append(out, xs[int(float64(i)*step+0.5)])
	}
	out[len(out)-1] = xs[len(xs)-1]
	return out
}
