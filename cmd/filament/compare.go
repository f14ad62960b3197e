package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/filamentlab/go-filament/plotter"
	"github.com/filamentlab/go-filament/results"
)

func compare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	tolerance := fs.Float64("tolerance", 0.05, "Maximum allowed relative deviation")
	output := fs.String("output", "", "Optional SVG with both trajectories")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament compare <a.json> <b.json> [options]

Compare the on-axis peak-intensity trajectories of two result artifacts,
e.g. an ADI run against a spectral run on the same grid.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("two results files required")
	}

	a, err := results.ReadJSON(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read %s: %w", fs.Arg(0), err)
	}
	b, err := results.ReadJSON(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("read %s: %w", fs.Arg(1), err)
	}

	dev, err := results.ComparePeakIntensity(a, b)
	if err != nil {
		return err
	}

	fmt.Printf("Trajectory comparison\n")
	fmt.Printf("  %s: scheme %s\n", fs.Arg(0), a.Metadata.Scheme)
	fmt.Printf("  %s: scheme %s\n", fs.Arg(1), b.Metadata.Scheme)
	fmt.Printf("  Max relative deviation: %.4e (tolerance %.4e)\n", dev, *tolerance)

	if *output != "" {
		labelA := a.Metadata.Scheme
		labelB := b.Metadata.Scheme
		if labelA == labelB {
			labelA, labelB = fs.Arg(0), fs.Arg(1)
		}
		svg, _ := plotter.PlotTrajectories(a.Analysis.Distance, map[string][]float64{
			labelA: a.Analysis.PeakIntensity,
			labelB: b.Analysis.PeakIntensity,
		}, []string{labelA, labelB}, 800, 600, "Trajectory comparison")
		if err := os.WriteFile(*output, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		fmt.Printf("  Plot written to %s\n", *output)
	}

	if dev > *tolerance {
		return fmt.Errorf("trajectories deviate by %.4e, above tolerance %.4e", dev, *tolerance)
	}
	fmt.Println("  Within tolerance")
	return nil
}
