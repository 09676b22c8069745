// Package depstats computes aggregate dependency statistics over a block
// I/O trace.
//
// Two independent analyses run over every trace:
//
//   - Dependency breakdown: each read is classified by how many writes
//     feed it, and each write by how many reads consume it — independent
//     (none), singly-dependent (one) or multiply-dependent (more).
//   - Hot-write histogram: for every write whose data is read back, the
//     number of distinct reads overlapping each written page, aggregated
//     into a histogram of per-page read counts.
//
// # Quick Start
//
// The tracedep tool runs the full pipeline from a trace file:
//
//	$ tracedep analyze trace.csv
//
// For embedding, analyze a file or an in-memory request sequence:
//
//	res, err := depstats.AnalyzeFile("trace.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.ReadBreakdown.Independent)
//
// # Trace format
//
// Trace files are plain text, one request per line, `R|W,start,length`
// with addresses and lengths in logical blocks. Lines starting with '#'
// are comments; an optional `# format: vX.Y.Z` header declares the file
// format version. Overlap accounting uses fixed-size pages; the page size
// in blocks is reported by [GetInfo].
//
// # Determinism
//
// Analysis is a single synchronous pass over read-only inputs. Re-running
// on the same input always produces identical results.
package depstats
