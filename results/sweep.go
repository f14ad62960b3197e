package results

import (
	"fmt"
	"sort"
)

// SweepResults contains the outcome of a one-parameter sweep.
type SweepResults struct {
	Version   string         `json:"version"`
	Objective string         `json:"objective"`
	Parameter ParameterSweep `json:"parameter"`
	Variants  []Variant      `json:"variants"`
	Best      *Variant       `json:"best,omitempty"`
	Worst     *Variant       `json:"worst,omitempty"`
	Summary   SweepSummary   `json:"summary"`
}

// ParameterSweep describes the swept parameter.
type ParameterSweep struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Variant contains the outcome for one parameter value.
type Variant struct {
	ID      int     `json:"id"`
	Value   float64 `json:"value"`
	Metrics Metrics `json:"metrics"`
	Score   float64 `json:"score"` // lower is better
	Rank    int     `json:"rank"`
	Error   string  `json:"error,omitempty"`
}

// Metrics contains the key numbers extracted from one run.
type Metrics struct {
	MaxIntensity  float64 `json:"maxIntensity"`
	MaxIntensityZ float64 `json:"maxIntensityZ"`
	PeakFluence   float64 `json:"peakFluence"`
	ComputeTime   float64 `json:"computeTime"`
}

// SweepSummary provides an overview of the sweep.
type SweepSummary struct {
	TotalVariants int     `json:"totalVariants"`
	SuccessCount  int     `json:"successCount"`
	FailureCount  int     `json:"failureCount"`
	BestScore     float64 `json:"bestScore"`
	WorstScore    float64 `json:"worstScore"`
}

// ObjectiveFunc scores one artifact; lower is better.
type ObjectiveFunc func(*Results) (float64, error)

// Objectives maps objective names to scoring functions.
var Objectives = map[string]ObjectiveFunc{
	"max_intensity": func(r *Results) (float64, error) {
		if r.Analysis == nil {
			return 0, fmt.Errorf("no analysis data")
		}
		return -r.Analysis.MaxIntensity, nil
	},
	"min_intensity": func(r *Results) (float64, error) {
		if r.Analysis == nil {
			return 0, fmt.Errorf("no analysis data")
		}
		return r.Analysis.MaxIntensity, nil
	},
	"max_fluence": func(r *Results) (float64, error) {
		if r.Analysis == nil {
			return 0, fmt.Errorf("no analysis data")
		}
		return -r.Analysis.PeakFluence, nil
	},
}

// ObjectiveNames lists the available objectives in stable order.
func ObjectiveNames() []string {
	names := make([]string, 0, len(Objectives))
	for name := range Objectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MetricsFrom extracts sweep metrics from an artifact.
func MetricsFrom(r *Results) Metrics {
	m := Metrics{ComputeTime: r.Metadata.ComputeTime}
	if r.Analysis != nil {
		m.MaxIntensity = r.Analysis.MaxIntensity
		m.MaxIntensityZ = r.Analysis.MaxIntensityZ
		m.PeakFluence = r.Analysis.PeakFluence
	}
	return m
}

// Rank orders the successful variants by score, fills in ranks, and
// completes the summary. Failed variants keep rank 0.
func (s *SweepResults) Rank() {
	idx := make([]int, 0, len(s.Variants))
	for i, v := range s.Variants {
		if v.Error == "" {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		return s.Variants[idx[a]].Score < s.Variants[idx[b]].Score
	})
	for rank, i := range idx {
		s.Variants[i].Rank = rank + 1
	}

	s.Summary = SweepSummary{
		TotalVariants: len(s.Variants),
		SuccessCount:  len(idx),
		FailureCount:  len(s.Variants) - len(idx),
	}
	if len(idx) > 0 {
		best := s.Variants[idx[0]]
		worst := s.Variants[idx[len(idx)-1]]
		s.Best = &best
		s.Worst = &worst
		s.Summary.BestScore = best.Score
		s.Summary.WorstScore = worst.Score
	}
}
