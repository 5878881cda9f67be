package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvbench/internal/bench"
)

func TestRenderEndToEnd(t *testing.T) {
	// Ping suite re-run with better numbers under a new label.
	rows := []bench.Record{
		row("v1", "Quick Sanity Check", "PING_INLINE", 50000, 0.500),
		row("v2", "Quick Sanity Check", "PING_INLINE", 60000, 0.300),
	}

	out := Render(rows, "v1", "v2")
	require.NotEmpty(t, out)

	assert.Contains(t, out, "### 📊 Report: v2 vs v1")
	assert.Contains(t, out, "| Test Name | Cmd | RPS | Δ RPS | Latency (ms) | Δ Lat |")
	assert.Contains(t, out, "| Quick Sanity Check | PING_INLINE | 60,000 | 🟢 +20.00% | 0.300 | 🟢 -40.00% |")
}

func TestRenderRegressionMarker(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "SET", 100, 1.0),
		row("v2", "S", "SET", 50, 2.0),
	}

	out := Render(rows, "v1", "v2")
	assert.Contains(t, out, "🔴 -50.00%")
	assert.Contains(t, out, "🔴 +100.00%")
}

func TestRenderZeroBaselineShowsNA(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "SET", 0, 1.0),
		row("v2", "S", "SET", 100, 0.5),
	}

	out := Render(rows, "v1", "v2")
	assert.Contains(t, out, "N/A")
}

func TestRenderMissingTargetEmpty(t *testing.T) {
	rows := []bench.Record{row("v1", "S", "SET", 100, 1.0)}
	assert.Empty(t, Render(rows, "v1", "v2"))
}

func TestRenderAll(t *testing.T) {
	rows := []bench.Record{
		row("v1", "S", "SET", 100, 1.0),
		row("v2", "S", "SET", 150, 0.8),
		row("v3", "S", "SET", 90, 1.1),
	}

	out := RenderAll(rows, "v1")

	assert.Contains(t, out, "v2 vs v1")
	assert.Contains(t, out, "v3 vs v1")
	// The baseline never gets compared with itself.
	assert.NotContains(t, out, "v1 vs v1")
	assert.Equal(t, 2, strings.Count(out, "### 📊 Report:"))
}
