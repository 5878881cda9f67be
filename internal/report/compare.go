package report

import "kvbench/internal/bench"

// Comparison is one (suite, operation) pair present under both labels.
// Deltas are percentage change relative to the baseline; a delta is only
// meaningful when its Valid flag is set (a zero baseline yields N/A).
type Comparison struct {
	SuiteName string
	Op        string
	RPS       float64
	P50       float64

	RPSDelta      float64
	RPSDeltaValid bool
	LatDelta      float64
	LatDeltaValid bool
}

// RPSImproved reports whether the throughput change counts as an
// improvement (higher or equal is better).
func (c Comparison) RPSImproved() bool { return c.RPSDelta >= 0 }

// LatImproved reports whether the latency change counts as an improvement
// (lower or equal is better).
func (c Comparison) LatImproved() bool { return c.LatDelta <= 0 }

// UniqueLabels returns the labels present in rows, deduplicated, in
// first-seen order.
func UniqueLabels(rows []bench.Record) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, r := range rows {
		if !seen[r.Label] {
			seen[r.Label] = true
			labels = append(labels, r.Label)
		}
	}
	return labels
}

type pairKey struct {
	suite string
	op    string
}

// Compare builds the row-by-row comparison of target against baseline.
// The bool result is false when no rows carry the target label at all.
// Target rows without a baseline counterpart are dropped silently.
// Duplicate baseline keys resolve last-write-wins.
func Compare(rows []bench.Record, baseline, target string) ([]Comparison, bool) {
	base := make(map[pairKey]bench.Record)
	for _, r := range rows {
		if r.Label == baseline {
			base[pairKey{r.SuiteName, r.Op}] = r
		}
	}

	hasTarget := false
	var comps []Comparison
	for _, r := range rows {
		if r.Label != target {
			continue
		}
		hasTarget = true

		b, ok := base[pairKey{r.SuiteName, r.Op}]
		if !ok {
			continue
		}

		c := Comparison{
			SuiteName: r.SuiteName,
			Op:        r.Op,
			RPS:       r.RPS,
			P50:       r.P50,
		}
		if b.RPS != 0 {
			c.RPSDelta = (r.RPS - b.RPS) / b.RPS * 100
			c.RPSDeltaValid = true
		}
		if b.P50 != 0 {
			c.LatDelta = (r.P50 - b.P50) / b.P50 * 100
			c.LatDeltaValid = true
		}
		comps = append(comps, c)
	}

	return comps, hasTarget
}
