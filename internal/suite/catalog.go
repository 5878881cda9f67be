package suite

import "sort"

// Definition describes one preset invocation of the external benchmark tool.
// Args holds the argument vector passed to the executable; the executable
// itself is configured on the runner.
type Definition struct {
	Key  string
	Name string
	Desc string
	Args []string
}

// Catalog is an immutable, key-ordered set of suite definitions.
type Catalog struct {
	defs map[string]Definition
	keys []string
}

// NewCatalog builds a catalog from the given definitions. Later definitions
// with a duplicate key replace earlier ones.
func NewCatalog(defs ...Definition) *Catalog {
	c := &Catalog{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, ok := c.defs[d.Key]; !ok {
			c.keys = append(c.keys, d.Key)
		}
		c.defs[d.Key] = d
	}
	sort.Strings(c.keys)
	return c
}

// Default returns the stock redis-benchmark presets.
func Default() *Catalog {
	return NewCatalog(
		Definition{
			Key:  "1",
			Name: "Quick Sanity Check",
			Desc: "Simple PING to ensure server is alive (No Load)",
			Args: []string{"-t", "ping", "-n", "1000", "-q"},
		},
		Definition{
			Key:  "2",
			Name: "Regular Load (Baseline)",
			Desc: "Standard 50 clients, no pipelining. Good for baseline latency.",
			Args: []string{"-t", "set,get", "-n", "200000", "-q"},
		},
		Definition{
			Key:  "3",
			Name: "High Concurrency & Throughput (Mixed)",
			Desc: "2000 Clients, Pipeline 32, 1 Million Requests.",
			Args: []string{
				"-t", "set,get,lpush,lpop",
				"-c", "2000",
				"-P", "32",
				"-n", "1000000",
				"-r", "100000",
				"-q",
			},
		},
		Definition{
			Key:  "4",
			Name: "Heavy Payload Saturation (4KB)",
			Desc: "High Concurrency + 4KB Payloads. Tests bandwidth.",
			Args: []string{
				"-t", "set,get",
				"-c", "1000",
				"-P", "16",
				"-d", "4096",
				"-n", "500000",
				"-r", "100000",
				"-q",
			},
		},
	)
}

// Get looks up a definition by key.
func (c *Catalog) Get(key string) (Definition, bool) {
	d, ok := c.defs[key]
	return d, ok
}

// Keys returns the suite keys in ascending order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All returns the definitions in ascending key order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.defs[k])
	}
	return out
}

// Len reports the number of suites.
func (c *Catalog) Len() int { return len(c.keys) }
