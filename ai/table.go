package ai

type boundType byte

const (
	exactBound boundType = iota
	lowerBound
	upperBound
)

func (b boundType) String() string {
	switch b {
	case lowerBound:
		return "lower"
	case upperBound:
		return "upper"
	default:
		return "exact"
	}
}

type tableEntry struct {
	depth int
	value float64
	bound boundType
}

// Cache memoizes evaluated positions for one search. Entries are keyed
// by the packed position and only match a lookup with the same number
// of plies remaining. Within a search every disc adds one ply, so the
// packed value also fixes the side to move.
type Cache struct {
	entries map[uint64]tableEntry
	hits    uint64
}

func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]tableEntry)}
}

func (c *Cache) Reset() {
	if c == nil {
		return
	}
	clear(c.entries)
	c.hits = 0
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *Cache) Hits() uint64 {
	if c == nil {
		return 0
	}
	return c.hits
}

// Get returns the exact value stored for key at depth.
func (c *Cache) Get(key uint64, depth int) (float64, bool) {
	te, ok := c.get(key, depth)
	if !ok || te.bound != exactBound {
		return 0, false
	}
	return te.value, true
}

// Put stores an exact value.
func (c *Cache) Put(key uint64, depth int, value float64) {
	c.put(key, depth, value, exactBound)
}

func (c *Cache) get(key uint64, depth int) (tableEntry, bool) {
	if c == nil {
		return tableEntry{}, false
	}
	te, ok := c.entries[key]
	if !ok || te.depth != depth {
		return tableEntry{}, false
	}
	return te, true
}

// probe returns a stored value that decides a search of key with
// window (α, β).
func (c *Cache) probe(key uint64, depth int, α, β float64) (float64, bool) {
	te, ok := c.get(key, depth)
	if !ok {
		return 0, false
	}
	switch {
	case te.bound == exactBound,
		te.bound == lowerBound && te.value >= β,
		te.bound == upperBound && te.value <= α:
		c.hits++
		return te.value, true
	}
	return 0, false
}

func (c *Cache) put(key uint64, depth int, value float64, bound boundType) {
	if c == nil {
		return
	}
	c.entries[key] = tableEntry{depth: depth, value: value, bound: bound}
}
