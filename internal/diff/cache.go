package diff

// Cache memoizes ComputeSeries by exact input equality. It sits outside
// the pure engine so the engine stays trivially testable; callers that
// recompute on every parameter change (the interactive mode) use it to
// skip identical sweeps. Not safe for concurrent use.
type Cache struct {
	entries []cacheEntry
}

type cacheEntry struct {
	hs     StepSizes
	eps    float64
	series Series
}

func NewCache() *Cache {
	return &Cache{entries: make([]cacheEntry, 0)}
}

func (c *Cache) ComputeSeries(hs StepSizes, eps float64) (Series, error) {
	for _, e := range c.entries {
		if e.eps == eps && e.hs.Equal(hs) {
			return e.series, nil
		}
	}

	series, err := ComputeSeries(hs, eps)
	if err != nil {
		return nil, err
	}

	c.entries = append(c.entries, cacheEntry{hs: hs.Clone(), eps: eps, series: series})
	return series, nil
}

func (c *Cache) Len() int { return len(c.entries) }

func (c *Cache) Reset() { c.entries = c.entries[:0] }
