package stats

import "sort"

// EntityCount pairs an entity with its occurrence count.
type EntityCount struct {
	Entity string
	Count  int
}

// Counts is an entity frequency map that remembers first-encounter order,
// so descending sorts break ties stably and repeated renders produce
// identical rankings.
type Counts struct {
	counts map[string]int
	order  []string
}

// NewCounts returns an empty Counts.
func NewCounts() *Counts {
	return &Counts{counts: make(map[string]int)}
}

// Add records one occurrence of an entity.
func (c *Counts) Add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// Len returns the number of distinct entities.
func (c *Counts) Len() int { return len(c.order) }

// Get returns the count for one entity, zero when absent.
func (c *Counts) Get(name string) int { return c.counts[name] }

// Top returns the n most frequent entities, count descending, ties in
// first-encountered order. n <= 0 or n beyond the distinct count returns
// everything; there is no padding.
func (c *Counts) Top(n int) []EntityCount {
	out := make([]EntityCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, EntityCount{Entity: name, Count: c.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// All returns every entity, sorted like Top.
func (c *Counts) All() []EntityCount { return c.Top(0) }
