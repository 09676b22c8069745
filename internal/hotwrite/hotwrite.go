// Package hotwrite measures how often written pages are read back.
//
// A hot write is a write whose data is consumed by at least one read, i.e.
// a key of the write-centric dependency map. For each hot write the
// simulator counts, per page of the write's own span, how many distinct
// dependent reads overlap that page. The per-page counts of every hot
// write are folded into a caller-owned Accumulator and summarized as a
// histogram of read-count occurrences: how many (write, page) pairs saw
// exactly k overlapping reads before the data was overwritten.
package hotwrite

import (
	"sort"

	"github.com/kolkov/tracedep/internal/depmap"
	"github.com/kolkov/tracedep/internal/trace"
)

// Accumulator collects the per-page read counts observed across all
// simulated writes.
//
// The zero value is ready to use. The accumulator is owned by the caller
// and carries no hidden state between runs; folding the same simulation
// into a fresh accumulator always yields the same histogram.
type Accumulator struct {
	counts []int
}

// Observe records one (write, page) read count.
func (a *Accumulator) Observe(count int) {
	a.counts = append(a.counts, count)
}

// Len returns the number of (write, page) pairs observed so far.
//
// After a full simulation this equals the sum of the page-span lengths of
// every write keyed in the write-centric map.
func (a *Accumulator) Len() int {
	return len(a.counts)
}

// Reset discards all observations, keeping the backing storage.
func (a *Accumulator) Reset() {
	a.counts = a.counts[:0]
}

// Histogram summarizes the observations as two parallel slices: the
// distinct read-count values in ascending order, and the number of
// (write, page) pairs that experienced each value.
func (a *Accumulator) Histogram() Histogram {
	totals := make(map[int]int64, len(a.counts))
	for _, c := range a.counts {
		totals[c]++
	}

	values := make([]int, 0, len(totals))
	for v := range totals {
		values = append(values, v)
	}
	sort.Ints(values)

	occ := make([]int64, len(values))
	for i, v := range values {
		occ[i] = totals[v]
	}
	return Histogram{Counts: values, Occurrences: occ}
}

// Histogram is the aggregated hot-write result.
type Histogram struct {
	// Counts holds the distinct per-page read-count values, ascending.
	Counts []int

	// Occurrences holds, parallel to Counts, how many (write, page)
	// pairs observed each value.
	Occurrences []int64
}

// Total returns the number of (write, page) pairs the histogram covers.
func (h Histogram) Total() int64 {
	var n int64
	for _, o := range h.Occurrences {
		n += o
	}
	return n
}

// Simulator replays dependent reads over each hot write's page span.
//
// The per-write counter buffer is reused across writes, grown once to the
// largest span seen and fully reset before each write, so simulating many
// writes does not churn allocations. A Simulator is not safe for
// concurrent use; each goroutine needs its own.
type Simulator struct {
	trace   trace.Trace
	scratch []int
}

// NewSimulator creates a simulator over the given trace.
func NewSimulator(t trace.Trace) *Simulator {
	return &Simulator{trace: t}
}

// Run simulates every write keyed in writeCentric and folds the resulting
// per-page read counts into acc.
//
// Map iteration order does not affect the outcome: each write's
// contribution is independent, and the accumulator's histogram is
// insensitive to observation order.
func (s *Simulator) Run(writeCentric depmap.Map, acc *Accumulator) {
	for writeID, readers := range writeCentric {
		s.simulateWrite(writeID, readers, acc)
	}
}

// simulateWrite counts, per page of one write's span, the distinct
// dependent reads overlapping that page, then observes every counter.
func (s *Simulator) simulateWrite(writeID int, readers depmap.IDSet, acc *Accumulator) {
	first, last := s.trace[writeID].PageSpan()
	counts := s.buffer(int(last - first + 1))

	for readID := range readers {
		rFirst, rLast := s.trace[readID].PageSpan()

		// A read may start before the write's span and end after it;
		// only the intersection is counted. Each read increments a page
		// at most once, however far its own span continues.
		lo := max(first, rFirst)
		hi := min(last, rLast)

		// By map construction the spans always intersect. A read that
		// somehow misses the span entirely yields an empty range here
		// and moves no counters.
		for p := lo; p <= hi; p++ {
			counts[p-first]++
		}
	}

	// One observation per page of the write's span, zeros included.
	for _, c := range counts {
		acc.Observe(c)
	}
}

// buffer returns the scratch slice resized to n and zeroed.
func (s *Simulator) buffer(n int) []int {
	if cap(s.scratch) < n {
		s.scratch = make([]int, n)
	}
	s.scratch = s.scratch[:n]
	for i := range s.scratch {
		s.scratch[i] = 0
	}
	return s.scratch
}
