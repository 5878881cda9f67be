package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvbench/internal/bench"
	"kvbench/internal/ui"
)

// seedTable writes two labeled runs of the ping suite, v2 strictly better.
func seedTable(t *testing.T) string {
	t.Helper()
	csvPath := filepath.Join(t.TempDir(), "benchmarks.csv")
	store := bench.NewStore(csvPath, func() string { return "abc1234" })

	_, err := store.Append([]bench.Sample{{Op: "PING_INLINE", RPS: 50000, P50: 0.500}}, "Quick Sanity Check", "v1")
	require.NoError(t, err)
	_, err = store.Append([]bench.Sample{{Op: "PING_INLINE", RPS: 60000, P50: 0.300}}, "Quick Sanity Check", "v2")
	require.NoError(t, err)

	return csvPath
}

func setupReportEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("benchmark.csv", seedTable(t))
}

func reportOutput(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newReportCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestReportCmdPairing(t *testing.T) {
	setupReportEnv(t)

	out, err := reportOutput(t, "--baseline", "v1", "--target", "v2", "--raw")
	require.NoError(t, err)

	assert.Contains(t, out, "v2 vs v1")
	assert.Contains(t, out, "+20.00%")
	assert.Contains(t, out, "-40.00%")
}

func TestReportCmdAll(t *testing.T) {
	setupReportEnv(t)

	out, err := reportOutput(t, "--baseline", "v1", "--all", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "v2 vs v1")
	assert.NotContains(t, out, "v1 vs v1")
}

func TestReportCmdMissingTable(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("benchmark.csv", filepath.Join(t.TempDir(), "nope.csv"))

	_, err := reportOutput(t, "--baseline", "v1", "--all")
	require.Error(t, err)
	assert.ErrorIs(t, err, bench.ErrNoTable)
}

func TestReportCmdUnknownLabel(t *testing.T) {
	setupReportEnv(t)

	_, err := reportOutput(t, "--baseline", "v9", "--all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no rows labeled "v9"`)
}

func TestReportCmdInteractiveSelection(t *testing.T) {
	setupReportEnv(t)

	// Operator picks v1 as baseline, then ALL as target.
	picks := []string{"v1", allLabel}
	origMenu := runLabelMenu
	defer func() { runLabelMenu = origMenu }()
	runLabelMenu = func(m ui.LabelMenu) (ui.LabelMenu, error) {
		m.Selected = picks[0]
		picks = picks[1:]
		return m, nil
	}

	out, err := reportOutput(t, "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "v2 vs v1")
}

func TestReportCmdSelectionAborted(t *testing.T) {
	setupReportEnv(t)

	origMenu := runLabelMenu
	defer func() { runLabelMenu = origMenu }()
	runLabelMenu = func(m ui.LabelMenu) (ui.LabelMenu, error) {
		m.Quitting = true
		return m, nil
	}

	out, err := reportOutput(t)
	require.NoError(t, err, "backing out of the menu is not an error")
	assert.NotContains(t, out, "Report:")
}
