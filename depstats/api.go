package depstats

import (
	"fmt"
	"io"

	"github.com/kolkov/tracedep/internal/classify"
	"github.com/kolkov/tracedep/internal/depmap"
	"github.com/kolkov/tracedep/internal/hotwrite"
	"github.com/kolkov/tracedep/internal/trace"
)

// Request describes one trace operation for in-memory analysis.
//
// Requests are identified by their position in the slice passed to
// [Analyze]; there is no explicit id field.
type Request struct {
	// IsRead is true for read operations, false for writes.
	IsRead bool

	// Start is the first logical block address touched.
	Start int64

	// Length is the number of blocks touched, must be >= 1.
	Length int64
}

// Breakdown partitions the requests of one direction by how many
// opposite-kind requests overlap them. The three counts sum to the total
// number of requests of that direction.
type Breakdown struct {
	Independent int // no overlapping opposite-kind request
	Single      int // exactly one
	Multi       int // more than one
}

// Histogram is the hot-write result: parallel slices of distinct per-page
// read-count values (ascending) and their (write, page) occurrence totals.
type Histogram struct {
	Counts      []int
	Occurrences []int64
}

// Results holds the three statistic outputs of one analysis run.
type Results struct {
	// ReadBreakdown classifies reads by how many writes feed them.
	ReadBreakdown Breakdown

	// WriteBreakdown classifies writes by how many reads consume them.
	WriteBreakdown Breakdown

	// HotWrite is the per-page read-count histogram over all writes
	// that were read at least once.
	HotWrite Histogram

	// Requests, Reads and Writes are the trace totals.
	Requests int
	Reads    int
	Writes   int

	// Fingerprint is the xxhash of the raw trace bytes. Zero for
	// in-memory analysis via Analyze.
	Fingerprint uint64
}

// Option configures an analysis run.
type Option func(*config)

type config struct {
	validate bool
}

// WithValidation enables an explicit invariant check of the dependency
// maps before analysis: ids in range, non-empty dependent sets, no self
// references, directions matching each map's orientation.
//
// Maps built by this package always pass. The check exists to fail fast
// with a descriptive error instead of silently wrong statistics should a
// map producer ever violate its contract.
func WithValidation() Option {
	return func(c *config) { c.validate = true }
}

// Analyze runs the full analysis over an in-memory request sequence.
//
// Both centric dependency maps are built from the requests, then the
// classifier runs once per direction and the hot-write simulation once
// over the write-centric map. Lengths must be >= 1; this is a documented
// precondition, not a checked one.
func Analyze(reqs []Request, opts ...Option) (*Results, error) {
	t := make(trace.Trace, len(reqs))
	for i, r := range reqs {
		t[i] = trace.Request{ID: i, IsRead: r.IsRead, Start: r.Start, Length: r.Length}
	}
	return run(t, 0, opts)
}

// AnalyzeFile loads the trace file at path and runs the full analysis.
func AnalyzeFile(path string, opts ...Option) (*Results, error) {
	loaded, err := trace.Load(path)
	if err != nil {
		return nil, err
	}
	return run(loaded.Trace, loaded.Fingerprint, opts)
}

// AnalyzeReader parses a trace from r and runs the full analysis. The
// name is used only in error messages.
func AnalyzeReader(name string, r io.Reader, opts ...Option) (*Results, error) {
	loaded, err := trace.Read(name, r)
	if err != nil {
		return nil, err
	}
	return run(loaded.Trace, loaded.Fingerprint, opts)
}

// run is the driver: build both maps, classify each direction against its
// own map, then fold the hot-write simulation into a fresh accumulator.
func run(t trace.Trace, fingerprint uint64, opts []Option) (*Results, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	maps := depmap.Build(t)
	if cfg.validate {
		if err := maps.Validate(t); err != nil {
			return nil, fmt.Errorf("dependency map invariant violated: %w", err)
		}
	}

	var acc hotwrite.Accumulator
	hotwrite.NewSimulator(t).Run(maps.WriteCentric, &acc)
	hist := acc.Histogram()

	reads := t.Reads()
	return &Results{
		ReadBreakdown:  breakdown(classify.Classify(t, maps.ReadCentric, true)),
		WriteBreakdown: breakdown(classify.Classify(t, maps.WriteCentric, false)),
		HotWrite:       Histogram{Counts: hist.Counts, Occurrences: hist.Occurrences},
		Requests:       len(t),
		Reads:          reads,
		Writes:         len(t) - reads,
		Fingerprint:    fingerprint,
	}, nil
}

func breakdown(b classify.Breakdown) Breakdown {
	return Breakdown{Independent: b.Independent, Single: b.Single, Multi: b.Multi}
}
