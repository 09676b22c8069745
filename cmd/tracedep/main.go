// Package main implements the tracedep CLI tool.
//
// The tracedep tool computes dependency statistics over a block I/O trace:
//
//  1. Loading the trace file (one request per line, `R|W,start,length`)
//  2. Building the read-centric and write-centric dependency maps
//  3. Classifying every request as independent / singly- / multiply-dependent
//  4. Simulating per-page read counts for every write that is read back
//
// Usage:
//
//	tracedep analyze trace.csv    # Run the full analysis
//	tracedep version              # Show version information
package main

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/kolkov/tracedep/depstats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "analyze":
		analyzeCommand(os.Args[2:])
	case "version", "--version", "-v":
		versionCommand()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// versionCommand prints tool and trace format version information.
func versionCommand() {
	info := depstats.GetInfo()
	fmt.Printf("tracedep version %s\n", info.Version)
	fmt.Printf("trace format %s (major %s)\n", info.TraceFormat, semver.Major(info.TraceFormat))
	fmt.Printf("page size %d blocks\n", info.PageSize)
}

func printUsage() {
	fmt.Print(`tracedep - Block I/O Trace Dependency Analyzer

USAGE:
    tracedep <command> [arguments]

COMMANDS:
    analyze    Compute dependency statistics over a trace file
    version    Show version information
    help       Show this help message

EXAMPLES:
    # Analyze a trace
    tracedep analyze trace.csv

    # Validate the dependency maps before analysis
    tracedep analyze -check trace.csv

    # Verbose progress logging
    tracedep analyze -verbose trace.csv

ABOUT:
    tracedep classifies every read by how many writes feed it and every
    write by how many reads consume it, and measures, for each write that
    is read back, how many distinct reads overlap each written page before
    the data is overwritten.

    Overlap accounting is done at page granularity over logical block
    addresses. The trace format and page size are reported by the version
    command.
`)
}
