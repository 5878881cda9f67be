package bench

// Sample is one operation's figures parsed from a benchmark run.
type Sample struct {
	Op  string  // e.g. SET, GET, PING_INLINE
	RPS float64 // requests per second
	P50 float64 // median latency in milliseconds
}

// Record is one persisted row of the results table.
type Record struct {
	Timestamp string
	Revision  string
	Label     string
	SuiteName string
	Op        string
	RPS       float64
	P50       float64
}
