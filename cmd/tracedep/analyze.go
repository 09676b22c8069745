// analyze.go implements the 'tracedep analyze' command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kolkov/tracedep/depstats"
	"github.com/kolkov/tracedep/internal/report"
)

// analyzeCommand implements the 'tracedep analyze' command.
//
// Flow:
//  1. Parse flags and the trace file argument
//  2. Load the trace and build both dependency maps
//  3. Classify reads and writes, simulate hot writes
//  4. Render the text report to stdout
func analyzeCommand(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	check := fs.Bool("check", false, "validate dependency map invariants before analysis")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracedep analyze [-check] [-verbose] <trace file>")
		os.Exit(1)
	}

	if err := runAnalyze(fs.Arg(0), *check, *verbose, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runAnalyze runs the full pipeline and writes the report to w.
func runAnalyze(path string, check, verbose bool, w io.Writer) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	var opts []depstats.Option
	if check {
		opts = append(opts, depstats.WithValidation())
	}

	start := time.Now()
	res, err := depstats.AnalyzeFile(path, opts...)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"file":        path,
		"requests":    res.Requests,
		"fingerprint": fmt.Sprintf("%016x", res.Fingerprint),
		"elapsed":     time.Since(start).Round(time.Microsecond),
	}).Info("analysis complete")

	return report.Render(w, res)
}
