// Package trace defines the block-level I/O trace model shared by every
// analysis stage.
//
// A trace is an ordered sequence of read/write requests against a logical
// block address space. The position of a request in the sequence is its
// identity: ids are dense, zero-based and never reused. Pages group
// PageSize consecutive blocks and are the granularity used for all overlap
// accounting, so every stage computes page spans through this package to
// agree on page boundaries.
package trace

// PageSize is the number of logical blocks per page.
//
// Dependency map construction and hot-write simulation both round request
// address ranges to this granularity.
const PageSize = 4096

// Request is a single storage operation from the trace.
type Request struct {
	// ID is the request's position in the trace. Dense, zero-based,
	// never reused.
	ID int

	// IsRead is true for read operations, false for writes.
	IsRead bool

	// Start is the first logical block address touched.
	Start int64

	// Length is the number of blocks touched, always >= 1.
	Length int64
}

// PageSpan returns the inclusive page range [first, last] touched by the
// request.
//
// The upper bound rounds the end address Start+Length down to a page, so a
// request whose end address lands exactly on a page boundary still claims
// that page. Every request spans at least one page.
func (r Request) PageSpan() (first, last int64) {
	first = r.Start / PageSize
	last = (r.Start + r.Length) / PageSize
	return first, last
}

// PageCount returns the number of pages in the request's span.
func (r Request) PageCount() int64 {
	first, last := r.PageSpan()
	return last - first + 1
}

// Trace is an ordered request sequence indexable by request id.
//
// A trace is immutable once built; every analysis stage reads it
// concurrently-safe by virtue of never writing to it.
type Trace []Request

// Reads returns the number of read requests in the trace.
func (t Trace) Reads() int {
	n := 0
	for _, r := range t {
		if r.IsRead {
			n++
		}
	}
	return n
}

// Writes returns the number of write requests in the trace.
func (t Trace) Writes() int {
	return len(t) - t.Reads()
}
