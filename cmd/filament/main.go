package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "create":
		if err := create(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "simulate":
		if err := simulate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compare":
		if err := compare(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := sweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "runs":
		if err := runs(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("filament version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`filament - nonlinear pulse propagation simulator

Usage:
  filament <command> [options]

Commands:
  create     Write a reference configuration file
  validate   Validate a configuration file
  simulate   Propagate a pulse through the configured medium
  plot       Generate SVG plots from simulation results
  summary    Display quick summary of results
  compare    Compare two simulation results
  sweep      Parameter sweep and optimization
  runs       Browse the SQLite run archive
  help       Show this help message
  version    Show version information

Examples:
  # Write the reference water configuration
  filament create --output water.json

  # Run the ADI scheme and keep the artifact
  filament simulate --config water.json --scheme adi --output run.json

  # Plot the on-axis peak-intensity trajectory
  filament plot run.json --kind trajectory --output peak.svg

  # Check both schemes against each other
  filament compare adi.json fcn.json --tolerance 0.05

For command-specific help, run:
  filament <command> --help`)
}
