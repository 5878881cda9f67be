package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Captured from redis-benchmark -q; the banner and warning lines must not
// produce samples.
const quietOutput = `WARNING: Could not fetch server CONFIG
====== SET ======
SET: 244498.77 requests per second, p50=1.843 msec
GET: 257731.95 requests per second, p50=1.711 msec
LPUSH: 241545.89 requests per second, p50=1.887 msec
100000 requests completed in 0.41 seconds
`

func TestParse(t *testing.T) {
	samples, err := Parse(quietOutput)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, Sample{Op: "SET", RPS: 244498.77, P50: 1.843}, samples[0])
	assert.Equal(t, Sample{Op: "GET", RPS: 257731.95, P50: 1.711}, samples[1])
	assert.Equal(t, "LPUSH", samples[2].Op)
}

func TestParseUnderscoreOp(t *testing.T) {
	samples, err := Parse("PING_INLINE: 50000.00 requests per second, p50=0.500 msec\n")
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "PING_INLINE", samples[0].Op)
	assert.Equal(t, 50000.0, samples[0].RPS)
	assert.Equal(t, 0.5, samples[0].P50)
}

func TestParseNoData(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"empty", ""},
		{"banner only", "====== SET ======\n100000 requests completed\n"},
		{"missing latency", "SET: 1000.00 requests per second\n"},
		{"lowercase op", "set: 1000.00 requests per second, p50=1.000 msec\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Parse(tt.output)
			assert.NoError(t, err)
			assert.Empty(t, samples)
		})
	}
}

func TestParseMalformedNumber(t *testing.T) {
	_, err := Parse("SET: 12..34 requests per second, p50=1.000 msec\n")
	assert.Error(t, err)
}
