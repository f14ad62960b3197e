package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/filamentlab/go-filament/results"
	"github.com/filamentlab/go-filament/solver"
)

// applyParam returns a copy of cfg with the swept beam parameter set.
func applyParam(cfg *Config, param string, value float64) (*Config, error) {
	out := *cfg
	switch param {
	case "energy":
		out.Beam.Energy = value
	case "waist":
		out.Beam.Waist = value
	case "chirp":
		out.Beam.Chirp = value
	case "focalLength":
		out.Beam.FocalLength = value
	case "peakTime":
		out.Beam.PeakTime = value
	default:
		return nil, fmt.Errorf("unknown sweep parameter %q (want energy, waist, chirp, focalLength or peakTime)", param)
	}
	return &out, nil
}

func sweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	config := fs.String("config", "", "Base configuration file (required)")
	param := fs.String("param", "energy", "Beam parameter to sweep")
	valueList := fs.String("values", "", "Comma-separated parameter values (required)")
	scheme := fs.String("scheme", "adi", "Propagation scheme: adi or fcn")
	objective := fs.String("objective", "max_intensity", "Objective: "+strings.Join(results.ObjectiveNames(), ", "))
	workers := fs.Int("workers", 0, "Parallel line solves per half-step (0 = one per CPU)")
	output := fs.String("output", "", "Output file for the sweep report (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament sweep [options]

Run the simulation once per parameter value and rank the variants by the
chosen objective.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Which pulse energy focuses hardest?
  filament sweep --config water.json --param energy \
      --values "1e-6,2.2e-6,4e-6" --objective max_intensity --output sweep.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *config == "" || *valueList == "" || *output == "" {
		fs.Usage()
		return fmt.Errorf("--config, --values and --output required")
	}

	obj, ok := results.Objectives[*objective]
	if !ok {
		return fmt.Errorf("unknown objective %q (want one of %s)",
			*objective, strings.Join(results.ObjectiveNames(), ", "))
	}
	sch, err := solver.ParseScheme(*scheme)
	if err != nil {
		return err
	}

	base, err := loadConfig(*config)
	if err != nil {
		return err
	}

	var values []float64
	for _, tok := range strings.Split(*valueList, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return fmt.Errorf("parse value %q: %w", tok, err)
		}
		values = append(values, v)
	}

	report := &results.SweepResults{
		Version:   results.SchemaVersion,
		Objective: *objective,
		Parameter: results.ParameterSweep{Name: *param, Values: values},
	}

	for id, value := range values {
		variant := results.Variant{ID: id, Value: value}

		cfg, err := applyParam(base, *param, value)
		if err != nil {
			return err
		}

		res, err := runVariant(cfg, sch, *workers)
		if err != nil {
			variant.Error = err.Error()
			report.Variants = append(report.Variants, variant)
			fmt.Printf("  %s=%g: failed: %v\n", *param, value, err)
			continue
		}

		variant.Metrics = results.MetricsFrom(res)
		if variant.Score, err = obj(res); err != nil {
			variant.Error = err.Error()
		}
		report.Variants = append(report.Variants, variant)
		fmt.Printf("  %s=%g: max intensity %.4e at z=%.4e\n",
			*param, value, variant.Metrics.MaxIntensity, variant.Metrics.MaxIntensityZ)
	}

	report.Rank()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sweep report: %w", err)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("write sweep report: %w", err)
	}

	fmt.Printf("Sweep complete: %d/%d variants succeeded, report in %s\n",
		report.Summary.SuccessCount, report.Summary.TotalVariants, *output)
	if report.Best != nil {
		fmt.Printf("Best variant: %s=%g\n", *param, report.Best.Value)
	}
	return nil
}

func runVariant(cfg *Config, sch solver.Scheme, workers int) (*results.Results, error) {
	prob, err := buildProblem(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sol, err := solver.Solve(prob, &solver.Options{Scheme: sch, Workers: workers})
	if err != nil {
		return nil, err
	}

	return results.NewBuilder().
		WithMedium(cfg.Medium).
		WithSolution(sol, time.Since(start).Seconds()).
		WithAnalysis().
		Build(), nil
}
