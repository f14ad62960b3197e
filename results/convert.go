package results

import (
	"fmt"

	"github.com/filamentlab/go-filament/grid"
	"github.com/filamentlab/go-filament/solver"
)

// Solution reconstructs a solver.Solution from an archived artifact so the
// plotting and analysis helpers can run on stored results.
func (r *Results) Solution() (*solver.Solution, error) {
	gi := r.Grid
	g, err := grid.New(grid.Spec{
		RadialMin: gi.RadialMin, RadialMax: gi.RadialMax, RadialNodes: gi.RadialNodes,
		DistMin: gi.DistMin, DistMax: gi.DistMax, DistSteps: gi.DistSteps,
		TimeMin: gi.TimeMin, TimeMax: gi.TimeMax, TimeNodes: gi.TimeNodes,
	})
	if err != nil {
		return nil, fmt.Errorf("results: rebuild grid: %w", err)
	}

	sol := &solver.Solution{Grid: g, Scheme: solver.Scheme(r.Metadata.Scheme)}
	if r.Field != nil {
		sol.Field = r.Field.Complex()
	}
	if r.Trace != nil {
		sol.Trace = r.Trace.Complex()
	}

	if sol.Field != nil && len(sol.Field) != gi.RadialNodes {
		return nil, fmt.Errorf("results: field has %d radial rows, grid has %d nodes",
			len(sol.Field), gi.RadialNodes)
	}
	if sol.Trace != nil && len(sol.Trace) != gi.DistSteps+1 {
		return nil, fmt.Errorf("results: trace has %d rows, want %d",
			len(sol.Trace), gi.DistSteps+1)
	}
	return sol, nil
}
