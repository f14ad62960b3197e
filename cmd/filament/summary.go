package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/filamentlab/go-filament/results"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament summary <results.json>

Display a quick summary of a result artifact.
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("results file required")
	}

	res, err := results.ReadJSON(fs.Arg(0))
	if err != nil {
		return err
	}

	g := res.Grid
	fmt.Printf("Run summary (%s)\n", fs.Arg(0))
	fmt.Printf("  Schema:         %s\n", res.Version)
	fmt.Printf("  Scheme:         %s\n", res.Metadata.Scheme)
	fmt.Printf("  Status:         %s\n", res.Metadata.Status)
	fmt.Printf("  Compute time:   %.2fs\n", res.Metadata.ComputeTime)
	fmt.Printf("  Grid:           %d radial x %d time nodes, %d steps\n",
		g.RadialNodes, g.TimeNodes, g.DistSteps)
	fmt.Printf("  Domain:         r [%.3e, %.3e] m, z [%.3e, %.3e] m, t [%.3e, %.3e] s\n",
		g.RadialMin, g.RadialMax, g.DistMin, g.DistMax, g.TimeMin, g.TimeMax)
	fmt.Printf("  Axis/peak node: %d / %d\n", g.AxisNode, g.PeakNode)
	fmt.Printf("  Medium:         n0=%.4f, n2=%.3e, K=%d\n",
		res.Medium.LinearIndex, res.Medium.NonlinearIndex, res.Medium.PhotonCount)

	if a := res.Analysis; a != nil {
		fmt.Printf("  Max intensity:  %.4e at z = %.4e m\n", a.MaxIntensity, a.MaxIntensityZ)
		fmt.Printf("  Peak fluence:   %.4e\n", a.PeakFluence)
		if a.SelfFocusing {
			fmt.Printf("  Self-focusing:  yes\n")
		} else {
			fmt.Printf("  Self-focusing:  no\n")
		}
	}
	return nil
}
