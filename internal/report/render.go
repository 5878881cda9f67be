package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"kvbench/internal/bench"
)

// formatDelta renders a percentage change with a directional marker.
// good/bad is relative to the metric: throughput up is good, latency up
// is not.
func formatDelta(delta float64, valid, improved bool) string {
	if !valid {
		return "N/A"
	}
	icon := "🔴"
	if improved {
		icon = "🟢"
	}
	return fmt.Sprintf("%s %+.2f%%", icon, delta)
}

// Markdown renders one comparison table for a (baseline, target) pairing.
func Markdown(baseline, target string, comps []Comparison) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### 📊 Report: %s vs %s\n\n", target, baseline)
	sb.WriteString("| Test Name | Cmd | RPS | Δ RPS | Latency (ms) | Δ Lat |\n")
	sb.WriteString("| :--- | :--- | :--- | :--- | :--- | :--- |\n")

	for _, c := range comps {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %.3f | %s |\n",
			c.SuiteName,
			c.Op,
			humanize.CommafWithDigits(c.RPS, 0),
			formatDelta(c.RPSDelta, c.RPSDeltaValid, c.RPSImproved()),
			c.P50,
			formatDelta(c.LatDelta, c.LatDeltaValid, c.LatImproved()),
		)
	}

	return sb.String()
}

// Render builds the markdown report for a single pairing. The empty string
// means the target label has no rows and nothing should be shown.
func Render(rows []bench.Record, baseline, target string) string {
	comps, hasTarget := Compare(rows, baseline, target)
	if !hasTarget {
		return ""
	}
	return Markdown(baseline, target, comps)
}

// RenderAll compares every non-baseline label against the baseline, in
// first-seen order, and concatenates the resulting tables.
func RenderAll(rows []bench.Record, baseline string) string {
	var sb strings.Builder
	for _, label := range UniqueLabels(rows) {
		if label == baseline {
			continue
		}
		if table := Render(rows, baseline, label); table != "" {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(table)
		}
	}
	return sb.String()
}
