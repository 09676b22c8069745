// Package classify partitions trace requests by dependency cardinality.
//
// Every request of one direction falls into exactly one of three buckets,
// decided solely by the size of its entry in the matching centric map:
// absent means independent, a single dependent means singly-dependent,
// and anything larger means multiply-dependent. The classifier trusts the
// map's cardinality directly and never reasons about address ranges; two
// requests overlapping a third in different patterns are still counted
// individually.
package classify

import (
	"github.com/kolkov/tracedep/internal/depmap"
	"github.com/kolkov/tracedep/internal/trace"
)

// Breakdown partitions the requests of one direction by how many
// opposite-kind requests overlap them.
//
// The three counts always sum to the number of requests of the classified
// direction in the trace.
type Breakdown struct {
	// Independent counts requests with no entry in the centric map.
	Independent int

	// Single counts requests whose entry holds exactly one dependent.
	Single int

	// Multi counts requests whose entry holds more than one dependent.
	Multi int
}

// Total returns the sum of the three buckets.
func (b Breakdown) Total() int {
	return b.Independent + b.Single + b.Multi
}

// Classify counts the requests of the selected direction by dependent-set
// cardinality.
//
// The centric map must be keyed by the same direction it classifies: reads
// against the read-centric map, writes against the write-centric map.
// Pairing them inversely produces well-formed but meaningless counts; the
// pairing is the caller's contract and cannot be detected here.
//
// An empty set under a present key violates the map invariant; it is
// indistinguishable from an absent key and counts as independent.
func Classify(t trace.Trace, centric depmap.Map, isRead bool) Breakdown {
	var b Breakdown
	for _, req := range t {
		if req.IsRead != isRead {
			continue
		}
		switch deps := centric[req.ID]; {
		case len(deps) == 0:
			b.Independent++
		case len(deps) == 1:
			b.Single++
		default:
			b.Multi++
		}
	}
	return b
}
