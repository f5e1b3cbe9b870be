package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pipetrak/pipetrak/internal/seed"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		out      = flag.String("out", "takeoff.xlsx", "output file path (.xlsx or .csv)")
		seedVal  = flag.Int64("seed", 1, "random seed; the same seed always yields the same file")
		drawings = flag.Int("drawings", 12, "number of drawings")
		spools   = flag.Int("spools", 3, "spools per drawing (each brings two supports)")
		welds    = flag.Int("welds", 5, "field welds per drawing")
	)
	flag.Parse()

	cfg := seed.DefaultConfig()
	cfg.Seed = *seedVal
	cfg.Drawings = *drawings
	cfg.SpoolsPerDrawing = *spools
	cfg.WeldsPerDrawing = *welds
	cfg.WithProgress = false // a generated sheet is a fresh takeoff

	ds := seed.Generate(cfg)

	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasSuffix(strings.ToLower(*out), ".csv"):
		data, err = seed.WriteCSV(ds)
	case strings.HasSuffix(strings.ToLower(*out), ".xlsx"):
		data, err = seed.WriteXLSX(ds)
	default:
		printError("Error: --out must end in .xlsx or .csv\n")
		os.Exit(1)
	}
	if err != nil {
		printError("Error: generating %s: %v\n", *out, err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s: %d rows, %d welders\n", *out, len(ds.Rows), len(ds.Welders))
}
