package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvbench/internal/bench"
)

func row(label, suiteName, op string, rps, p50 float64) bench.Record {
	return bench.Record{Label: label, SuiteName: suiteName, Op: op, RPS: rps, P50: p50}
}

func TestUniqueLabels(t *testing.T) {
	rows := []bench.Record{
		row("A", "s", "SET", 1, 1),
		row("B", "s", "SET", 1, 1),
		row("A", "s", "GET", 1, 1),
		row("C", "s", "SET", 1, 1),
		row("B", "s", "GET", 1, 1),
	}

	assert.Equal(t, []string{"A", "B", "C"}, UniqueLabels(rows))
}

func TestCompareImprovement(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "OP", 100, 10.0),
		row("v2", "S", "OP", 150, 8.0),
	}

	comps, hasTarget := Compare(rows, "v1", "v2")
	require.True(t, hasTarget)
	require.Len(t, comps, 1)

	c := comps[0]
	assert.InDelta(t, 50.0, c.RPSDelta, 0.001)
	assert.True(t, c.RPSDeltaValid)
	assert.True(t, c.RPSImproved())

	assert.InDelta(t, -20.0, c.LatDelta, 0.001)
	assert.True(t, c.LatDeltaValid)
	assert.True(t, c.LatImproved())
}

func TestCompareRegression(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "OP", 100, 10.0),
		row("v2", "S", "OP", 80, 12.0),
	}

	comps, _ := Compare(rows, "v1", "v2")
	require.Len(t, comps, 1)

	assert.False(t, comps[0].RPSImproved())
	assert.False(t, comps[0].LatImproved())
}

func TestCompareZeroBaseline(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "OP", 0, 0),
		row("v2", "S", "OP", 150, 8.0),
	}

	comps, _ := Compare(rows, "v1", "v2")
	require.Len(t, comps, 1)

	assert.False(t, comps[0].RPSDeltaValid)
	assert.False(t, comps[0].LatDeltaValid)
}

func TestCompareUnmatchedTargetDropped(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "SET", 100, 10),
		row("v2", "S", "GET", 150, 8), // no SET/GET overlap
	}

	comps, hasTarget := Compare(rows, "v1", "v2")
	assert.True(t, hasTarget)
	assert.Empty(t, comps)
}

func TestCompareNoTargetRows(t *testing.T) {
	rows := []bench.Record{row("v1", "S", "SET", 100, 10)}

	comps, hasTarget := Compare(rows, "v1", "v9")
	assert.False(t, hasTarget)
	assert.Empty(t, comps)
}

func TestCompareDuplicateBaselineLastWins(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "OP", 100, 10),
		row("v1", "S", "OP", 200, 20), // later run with the same label wins
		row("v2", "S", "OP", 300, 10),
	}

	comps, _ := Compare(rows, "v1", "v2")
	require.Len(t, comps, 1)
	assert.InDelta(t, 50.0, comps[0].RPSDelta, 0.001)
	assert.InDelta(t, -50.0, comps[0].LatDelta, 0.001)
}
