// Package report renders analysis results as tab-separated text tables.
//
// The layout follows the classic breakdown format: a header row naming the
// three dependency buckets, a value row per direction, and the hot-write
// histogram as two parallel rows (count values, then occurrence totals).
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/kolkov/tracedep/depstats"
)

// Render writes the full text report for res to w.
func Render(w io.Writer, res *depstats.Results) error {
	if err := renderBreakdown(w, "[Read BD]", res.ReadBreakdown); err != nil {
		return err
	}
	if err := renderBreakdown(w, "[Write BD]", res.WriteBreakdown); err != nil {
		return err
	}
	if err := renderHistogram(w, res.HotWrite); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal: %s requests (%s reads, %s writes)\n",
		humanize.Comma(int64(res.Requests)),
		humanize.Comma(int64(res.Reads)),
		humanize.Comma(int64(res.Writes)))
	return err
}

// renderBreakdown writes one direction's three-bucket partition.
func renderBreakdown(w io.Writer, label string, b depstats.Breakdown) error {
	if _, err := fmt.Fprintf(w, "%s\tIndependent\tDep_Short\tDep_Long\n", label); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d\t%d\t%d\n", b.Independent, b.Single, b.Multi)
	return err
}

// renderHistogram writes the hot-write histogram as two parallel rows.
func renderHistogram(w io.Writer, h depstats.Histogram) error {
	if _, err := fmt.Fprintln(w, "[HotWrite]"); err != nil {
		return err
	}
	for _, c := range h.Counts {
		if _, err := fmt.Fprintf(w, "%d\t", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, o := range h.Occurrences {
		if _, err := fmt.Fprintf(w, "%d\t", o); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
