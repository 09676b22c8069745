package trace

import "testing"

// TestPageSpan tests block-to-page rounding of request address ranges.
func TestPageSpan(t *testing.T) {
	tests := []struct {
		name      string
		start     int64
		length    int64
		wantFirst int64
		wantLast  int64
	}{
		{
			name:      "single block in first page",
			start:     0,
			length:    1,
			wantFirst: 0,
			wantLast:  0,
		},
		{
			name:      "fills first page minus one block",
			start:     0,
			length:    PageSize - 1,
			wantFirst: 0,
			wantLast:  0,
		},
		{
			name:      "end address on page boundary claims next page",
			start:     0,
			length:    PageSize,
			wantFirst: 0,
			wantLast:  1,
		},
		{
			name:      "two pages",
			start:     0,
			length:    2*PageSize - 1,
			wantFirst: 0,
			wantLast:  1,
		},
		{
			name:      "offset into later pages",
			start:     10 * PageSize,
			length:    1,
			wantFirst: 10,
			wantLast:  10,
		},
		{
			name:      "unaligned start crossing a boundary",
			start:     PageSize - 1,
			length:    2,
			wantFirst: 0,
			wantLast:  1,
		},
		{
			name:      "large span",
			start:     PageSize + 1,
			length:    5 * PageSize,
			wantFirst: 1,
			wantLast:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{Start: tt.start, Length: tt.length}
			first, last := r.PageSpan()
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("Request{Start: %d, Length: %d}.PageSpan() = [%d, %d], want [%d, %d]",
					tt.start, tt.length, first, last, tt.wantFirst, tt.wantLast)
			}
			if got, want := r.PageCount(), tt.wantLast-tt.wantFirst+1; got != want {
				t.Errorf("PageCount() = %d, want %d", got, want)
			}
		})
	}
}

// TestPageCountAlwaysPositive checks that any request with a positive
// length spans at least one page.
func TestPageCountAlwaysPositive(t *testing.T) {
	for _, r := range []Request{
		{Start: 0, Length: 1},
		{Start: PageSize - 1, Length: 1},
		{Start: 123456789, Length: 1},
	} {
		if r.PageCount() < 1 {
			t.Errorf("Request{Start: %d, Length: %d}.PageCount() = %d, want >= 1",
				r.Start, r.Length, r.PageCount())
		}
	}
}

// TestTraceDirectionCounts tests the read/write totals.
func TestTraceDirectionCounts(t *testing.T) {
	tr := Trace{
		{ID: 0, IsRead: false, Start: 0, Length: 1},
		{ID: 1, IsRead: true, Start: 0, Length: 1},
		{ID: 2, IsRead: true, Start: 8, Length: 4},
		{ID: 3, IsRead: false, Start: 16, Length: 2},
		{ID: 4, IsRead: true, Start: 0, Length: 1},
	}

	if got := tr.Reads(); got != 3 {
		t.Errorf("Reads() = %d, want 3", got)
	}
	if got := tr.Writes(); got != 2 {
		t.Errorf("Writes() = %d, want 2", got)
	}
	if got := tr.Reads() + tr.Writes(); got != len(tr) {
		t.Errorf("Reads() + Writes() = %d, want %d", got, len(tr))
	}
}
