package bench

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// resultRe matches redis-benchmark's quiet-mode summary lines, e.g.
// "SET: 244498.77 requests per second, p50=1.843 msec". This shape is the
// contract with the external tool; anything else (banners, progress ticks)
// is skipped.
var resultRe = regexp.MustCompile(`([A-Z_]+):\s+([\d\.]+)\s+requests per second,\s+p50=([\d\.]+)\s+msec`)

// Parse scans raw benchmark output and extracts one Sample per matching
// line. A nil slice means the output contained no parseable data and
// nothing should be persisted.
func Parse(output string) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		m := resultRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		rps, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing rps for %s: %w", m[1], err)
		}
		p50, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing p50 for %s: %w", m[1], err)
		}

		samples = append(samples, Sample{Op: m[1], RPS: rps, P50: p50})
	}

	return samples, scanner.Err()
}
