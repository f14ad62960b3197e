package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/filamentlab/go-filament/plotter"
	"github.com/filamentlab/go-filament/results"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	kind := fs.String("kind", "trajectory", "Plot kind: trajectory, fluence or temporal")
	step := fs.Int("step", -1, "Propagation step for --kind temporal (-1 = final)")
	output := fs.String("output", "", "Output SVG file (required)")
	title := fs.String("title", "", "Plot title")
	width := fs.Float64("width", 800, "Plot width in pixels")
	height := fs.Float64("height", 600, "Plot height in pixels")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament plot <results.json> [options]

Generate an SVG plot from a result artifact.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # On-axis peak-intensity trajectory (log scale)
  filament plot run.json --kind trajectory --output peak.svg

  # Radial fluence profile of the final plane
  filament plot run.json --kind fluence --output fluence.svg

  # On-axis temporal profile after the final step
  filament plot run.json --kind temporal --output profile.svg
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	res, err := results.ReadJSON(fs.Arg(0))
	if err != nil {
		return err
	}
	sol, err := res.Solution()
	if err != nil {
		return err
	}

	var svg string
	switch *kind {
	case "trajectory":
		if sol.Trace == nil {
			return fmt.Errorf("artifact carries no trace data")
		}
		svg, _ = plotter.PlotPeakIntensity(sol, *width, *height, *title)
	case "fluence":
		if sol.Field == nil {
			return fmt.Errorf("artifact carries no field data")
		}
		svg, _ = plotter.PlotFluence(sol, *width, *height, *title)
	case "temporal":
		if sol.Trace == nil {
			return fmt.Errorf("artifact carries no trace data")
		}
		k := *step
		if k < 0 {
			k = len(sol.Trace) - 1
		}
		if k >= len(sol.Trace) {
			return fmt.Errorf("step %d out of range (run has %d committed steps)", k, len(sol.Trace)-1)
		}
		svg, _ = plotter.PlotAxisIntensity(sol, k, *width, *height, *title)
	default:
		return fmt.Errorf("unknown plot kind %q (want trajectory, fluence or temporal)", *kind)
	}

	if err := os.WriteFile(*output, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}
	fmt.Printf("Wrote %s plot to %s\n", *kind, *output)
	return nil
}
