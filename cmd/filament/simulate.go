package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/filamentlab/go-filament/results"
	"github.com/filamentlab/go-filament/solver"
	"github.com/filamentlab/go-filament/store"
)

func simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	config := fs.String("config", "", "Configuration file (required)")
	scheme := fs.String("scheme", "adi", "Propagation scheme: adi or fcn")
	output := fs.String("output", "", "Output file for results (required)")
	workers := fs.Int("workers", 0, "Parallel line solves per half-step (0 = one per CPU)")
	progress := fs.Int("progress", 0, "Log a progress line every N steps (0 = quiet)")
	analyze := fs.Bool("analyze", true, "Compute automatic analysis")
	downsample := fs.Int("downsample", 0, "Target number of trajectory points in the analysis (0 = keep all)")
	archive := fs.String("archive", "", "Also save the run to this SQLite archive")
	name := fs.String("name", "", "Run name for the archive (defaults to the config filename)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament simulate [options]

Propagate the configured pulse through the nonlinear medium and write the
result artifact.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Reference ADI run
  filament simulate --config water.json --output run.json

  # Spectral scheme with progress logging
  filament simulate --config water.json --scheme fcn --progress 100 --output run.json

  # Keep a copy in the run archive
  filament simulate --config water.json --output run.json --archive runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *config == "" {
		fs.Usage()
		return fmt.Errorf("--config required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	cfg, err := loadConfig(*config)
	if err != nil {
		return err
	}
	prob, err := buildProblem(cfg)
	if err != nil {
		return err
	}

	sch, err := solver.ParseScheme(*scheme)
	if err != nil {
		return err
	}

	opts := &solver.Options{Scheme: sch, Workers: *workers}
	if *progress > 0 {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts.ProgressEvery = *progress
		opts.Logger = &logger
	}

	start := time.Now()
	sol, err := solver.Solve(prob, opts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := time.Since(start).Seconds()

	builder := results.NewBuilder().
		WithMedium(cfg.Medium).
		WithSolution(sol, elapsed)
	if *analyze {
		builder.WithAnalysis().WithDownsampledAnalysis(*downsample)
	}
	res := builder.Build()

	if err := results.WriteJSON(res, *output); err != nil {
		return err
	}
	fmt.Printf("Simulation complete: %d steps in %.2fs, results in %s\n",
		cfg.Grid.DistSteps, elapsed, *output)

	if *archive != "" {
		db, err := store.New(*archive)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer db.Close()

		runName := *name
		if runName == "" {
			runName = *config
		}
		id, err := db.SaveRun(runName, cfg.Geometry, res)
		if err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		fmt.Printf("Archived as %s\n", id)
	}
	return nil
}
