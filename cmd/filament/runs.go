package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/filamentlab/go-filament/results"
	"github.com/filamentlab/go-filament/store"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	db := fs.String("db", "runs.db", "SQLite archive path")
	limit := fs.Int("limit", 20, "Maximum runs to list (0 = all)")
	show := fs.String("show", "", "Export the artifact of this run ID")
	output := fs.String("output", "", "Output file for --show (required with --show)")
	del := fs.String("delete", "", "Delete this run ID")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filament runs [options]

Browse the SQLite run archive: list recent runs, export an archived
artifact, or delete one.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # List the last 20 archived runs
  filament runs --db runs.db

  # Export an archived artifact back to JSON
  filament runs --db runs.db --show <id> --output run.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := store.New(*db)
	if err != nil {
		return err
	}
	defer s.Close()

	switch {
	case *del != "":
		if err := s.DeleteRun(*del); err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", *del)
		return nil

	case *show != "":
		if *output == "" {
			return fmt.Errorf("--output required with --show")
		}
		var res results.Results
		if err := s.GetRun(*show, &res); err != nil {
			return err
		}
		if err := results.WriteJSON(&res, *output); err != nil {
			return err
		}
		fmt.Printf("Exported run %s to %s\n", *show, *output)
		return nil

	default:
		infos, err := s.ListRuns(*limit)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No archived runs")
			return nil
		}
		fmt.Printf("%-36s  %-19s  %-6s  %-12s  %-12s  %s\n",
			"ID", "CREATED", "SCHEME", "GEOMETRY", "MAX INTENS", "NAME")
		for _, info := range infos {
			fmt.Printf("%-36s  %-19s  %-6s  %-12s  %-12.4e  %s\n",
				info.ID, info.CreatedAt.Format("2006-01-02 15:04:05"),
				info.Scheme, info.Geometry, info.MaxIntensity, info.Name)
		}
		return nil
	}
}
