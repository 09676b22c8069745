// Package depmap builds the two centric dependency maps over a trace.
//
// A centric map is keyed by one request kind and maps each key to the set
// of opposite-kind requests that overlap it via shared pages:
//
//   - read-centric:  read id  -> writes whose data the read consumes
//   - write-centric: write id -> reads that consume the write's data
//
// Construction walks the trace in order, maintaining a last-writer index
// per page. A read links to the most recent write of every page it spans;
// a later write to a page replaces the last writer, so reads arriving
// after the overwrite link to the new write, not the overwritten one.
//
// Both maps satisfy the invariants the analysis stages rely on: a key is
// present only with a non-empty set, no entry references its own key, and
// every linked pair shares at least one page.
package depmap

import (
	"fmt"

	"github.com/kolkov/tracedep/internal/trace"
)

// IDSet is a set of request ids.
type IDSet map[int]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Map is a centric dependency map: request id -> dependent request ids.
//
// Lookup uses plain indexing; an absent key yields a nil set with length
// zero, which every consumer treats as "no dependents".
type Map map[int]IDSet

// add inserts dep into key's set, creating the set on first use. Sets are
// therefore never empty, keeping the non-empty-value invariant by
// construction.
func (m Map) add(key, dep int) {
	s, ok := m[key]
	if !ok {
		s = make(IDSet)
		m[key] = s
	}
	s[dep] = struct{}{}
}

// Maps bundles both centric maps built from one trace.
type Maps struct {
	// ReadCentric maps each dependent read to the writes feeding it.
	ReadCentric Map

	// WriteCentric maps each consumed write to the reads it feeds.
	WriteCentric Map
}

// Build constructs both centric maps from the trace in a single ordered
// pass.
//
// The page granularity of the index matches trace.PageSize, the same
// granularity the hot-write simulation uses, so a pair linked here is
// guaranteed to intersect in at least one page during simulation.
func Build(t trace.Trace) Maps {
	maps := Maps{
		ReadCentric:  make(Map),
		WriteCentric: make(Map),
	}

	// lastWriter tracks, per page, the most recent write that touched it.
	lastWriter := make(map[int64]int)

	for _, req := range t {
		first, last := req.PageSpan()
		if req.IsRead {
			for p := first; p <= last; p++ {
				w, ok := lastWriter[p]
				if !ok {
					continue
				}
				maps.ReadCentric.add(req.ID, w)
				maps.WriteCentric.add(w, req.ID)
			}
		} else {
			for p := first; p <= last; p++ {
				lastWriter[p] = req.ID
			}
		}
	}

	return maps
}

// Validate checks the invariants the analysis stages assume: every key and
// member id is within the trace, every set is non-empty, no set contains
// its own key, and key/member directions match the map's orientation.
//
// Maps produced by Build always pass. The check exists for maps supplied
// by other producers; analysis itself never re-checks these invariants.
func (m Maps) Validate(t trace.Trace) error {
	if err := m.ReadCentric.validate(t, true); err != nil {
		return fmt.Errorf("read-centric map: %w", err)
	}
	if err := m.WriteCentric.validate(t, false); err != nil {
		return fmt.Errorf("write-centric map: %w", err)
	}
	return nil
}

func (m Map) validate(t trace.Trace, keyIsRead bool) error {
	for key, deps := range m {
		if key < 0 || key >= len(t) {
			return fmt.Errorf("key %d out of range (trace has %d requests)", key, len(t))
		}
		if t[key].IsRead != keyIsRead {
			return fmt.Errorf("key %d has wrong direction", key)
		}
		if len(deps) == 0 {
			return fmt.Errorf("key %d has an empty dependent set", key)
		}
		for dep := range deps {
			if dep < 0 || dep >= len(t) {
				return fmt.Errorf("key %d references id %d out of range", key, dep)
			}
			if dep == key {
				return fmt.Errorf("key %d references itself", key)
			}
			if t[dep].IsRead == keyIsRead {
				return fmt.Errorf("key %d references same-direction id %d", key, dep)
			}
		}
	}
	return nil
}
