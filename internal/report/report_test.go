package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/tracedep/depstats"
)

func TestRender(t *testing.T) {
	res := &depstats.Results{
		ReadBreakdown:  depstats.Breakdown{Independent: 12, Single: 3, Multi: 1},
		WriteBreakdown: depstats.Breakdown{Independent: 7, Single: 2, Multi: 0},
		HotWrite: depstats.Histogram{
			Counts:      []int{0, 1, 3},
			Occurrences: []int64{5, 2, 1},
		},
		Requests: 25,
		Reads:    16,
		Writes:   9,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, res))

	want := "[Read BD]\tIndependent\tDep_Short\tDep_Long\n" +
		"12\t3\t1\n" +
		"[Write BD]\tIndependent\tDep_Short\tDep_Long\n" +
		"7\t2\t0\n" +
		"[HotWrite]\n" +
		"0\t1\t3\t\n" +
		"5\t2\t1\t\n" +
		"\nTotal: 25 requests (16 reads, 9 writes)\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderHumanizesLargeTotals(t *testing.T) {
	res := &depstats.Results{
		Requests: 1234567,
		Reads:    1000000,
		Writes:   234567,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, res))

	assert.Contains(t, buf.String(), "1,234,567 requests")
	assert.Contains(t, buf.String(), "1,000,000 reads")
	assert.Contains(t, buf.String(), "234,567 writes")
}

func TestRenderEmptyHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &depstats.Results{}))

	assert.Contains(t, buf.String(), "[HotWrite]\n\n\n")
}
