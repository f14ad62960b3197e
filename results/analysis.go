package results

import (
	"fmt"

	"github.com/filamentlab/go-filament/solver"
)

func analyze(sol *solver.Solution) *Analysis {
	a := &Analysis{
		Distance:      sol.Grid.Dist,
		PeakIntensity: sol.PeakIntensity(),
		Fluence:       sol.Fluence(),
	}

	for k, v := range a.PeakIntensity {
		if v > a.MaxIntensity {
			a.MaxIntensity = v
			a.MaxIntensityZ = a.Distance[k]
		}
	}
	if len(a.PeakIntensity) > 1 {
		a.SelfFocusing = a.MaxIntensity > a.PeakIntensity[0]
	}
	for _, f := range a.Fluence {
		if f > a.PeakFluence {
			a.PeakFluence = f
		}
	}
	return a
}

// ComparePeakIntensity returns the maximum relative deviation between the
// on-axis peak-intensity trajectories of two artifacts. Both must carry an
// analysis over the same number of steps.
func ComparePeakIntensity(a, b *Results) (float64, error) {
	if a.Analysis == nil || b.Analysis == nil {
		return 0, fmt.Errorf("results: both artifacts need analysis data to compare")
	}
	pa, pb := a.Analysis.PeakIntensity, b.Analysis.PeakIntensity
	if len(pa) != len(pb) {
		return 0, fmt.Errorf("results: trajectory lengths differ (%d vs %d)", len(pa), len(pb))
	}

	maxDev := 0.0
	for k := range pa {
		ref := pa[k]
		if pb[k] > ref {
			ref = pb[k]
		}
		if ref == 0 {
			continue
		}
		dev := (pa[k] - pb[k]) / ref
		if dev < 0 {
			dev = -dev
		}
		if dev > maxDev {
			maxDev = dev
		}
	}
	return maxDev, nil
}
