package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/filamentlab/go-filament/grid"
	"github.com/filamentlab/go-filament/medium"
	"github.com/filamentlab/go-filament/operator"
	"github.com/filamentlab/go-filament/pulse"
	"github.com/filamentlab/go-filament/solver"
)

// Config is the on-disk run description: physical constants, beam
// parameters, the computational grid and the transverse geometry.
type Config struct {
	Medium   medium.Medium `json:"medium"`
	Beam     medium.Beam   `json:"beam"`
	Grid     grid.Spec     `json:"grid"`
	Geometry string        `json:"geometry"`
}

// defaultConfig returns the reference run: a 2.2 uJ chirped 800 nm pulse
// focused into water, on a cylindrical grid.
func defaultConfig() *Config {
	return &Config{
		Medium: medium.Water(),
		Beam:   medium.ReferenceBeam(),
		Grid: grid.Spec{
			RadialMin: 0, RadialMax: 25e-4, RadialNodes: 1500,
			DistMin: 0, DistMax: 3e-2, DistSteps: 1000,
			TimeMin: -250e-15, TimeMax: 250e-15, TimeNodes: 1024,
		},
		Geometry: "cylindrical",
	}
}

// loadConfig reads and normalizes a configuration file. A zero focal length
// means a collimated beam (no lens phase); a zero intensity factor selects
// envelope units.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Beam.FocalLength == 0 {
		cfg.Beam.FocalLength = math.Inf(1)
	}
	if cfg.Medium.IntensityFactor == 0 {
		cfg.Medium.IntensityFactor = 1
	}
	return &cfg, nil
}

// buildProblem assembles the solver inputs from a configuration.
func buildProblem(cfg *Config) (*solver.Problem, error) {
	geo, err := operator.ParseGeometry(cfg.Geometry)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Grid)
	if err != nil {
		return nil, err
	}
	coef, err := medium.Derive(cfg.Medium, cfg.Beam)
	if err != nil {
		return nil, err
	}
	ic := pulse.ChirpedGaussian(cfg.Beam, coef)
	return solver.NewProblem(g, geo, coef, ic)
}

func create(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	output := fs.String("output", "", "Output file for the configuration (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament create [options]

Write the reference configuration (800 nm chirped pulse in water) to a file,
ready to edit.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	data, err := json.MarshalIndent(defaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote reference configuration to %s\n", *output)
	return nil
}

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament validate <config.json>

Check that a configuration file describes a well-posed run: grid extents and
node counts, medium and beam constants, and the geometry flag.
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("config file required")
	}

	cfg, err := loadConfig(fs.Arg(0))
	if err != nil {
		return err
	}

	if _, err := operator.ParseGeometry(cfg.Geometry); err != nil {
		return err
	}
	g, err := grid.New(cfg.Grid)
	if err != nil {
		return err
	}
	coef, err := medium.Derive(cfg.Medium, cfg.Beam)
	if err != nil {
		return err
	}
	if _, err := buildProblem(cfg); err != nil {
		return err
	}

	fmt.Printf("Configuration OK\n")
	fmt.Printf("  Geometry:       %s\n", cfg.Geometry)
	fmt.Printf("  Grid:           %d radial x %d time nodes, %d steps of %.3e m\n",
		g.Spec.RadialNodes, g.Spec.TimeNodes, g.Spec.DistSteps, g.DistStep)
	fmt.Printf("  Peak power:     %.3e W (%.2f x critical)\n",
		coef.Power, coef.Power/coef.CriticalPower)
	fmt.Printf("  Peak intensity: %.3e\n", coef.Intensity)
	return nil
}
