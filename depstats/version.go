package depstats

import "github.com/kolkov/tracedep/internal/trace"

// Version information for the trace dependency analyzer.
const (
	// Version is the current version of the analyzer.
	Version = "0.1.0"
)

// Info provides runtime information about the analyzer.
type Info struct {
	// Version is the analyzer version string.
	Version string

	// TraceFormat is the newest trace file format version understood
	// by the loader.
	TraceFormat string

	// PageSize is the number of logical blocks per page used for all
	// overlap accounting.
	PageSize int64
}

// GetInfo returns information about the analyzer.
//
// Example:
//
//	info := depstats.GetInfo()
//	fmt.Printf("tracedep %s (trace format %s)\n", info.Version, info.TraceFormat)
func GetInfo() Info {
	return Info{
		Version:     Version,
		TraceFormat: trace.FormatVersion,
		PageSize:    trace.PageSize,
	}
}
