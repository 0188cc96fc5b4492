package overlay

// StringCache deduplicates strings materialized from column rows. Splice
// outputs are frequently repetitive (constant inputs, small value domains),
// so interning short values avoids allocating the same string once per row.
//
// A cache is not safe for concurrent use; give each goroutine its own.
type StringCache struct {
	// Intern map for strings under the threshold. Keeping only short strings
	// in the map bounds its memory while still capturing the common values.
	internMap map[string]string

	// Strings at or above this length bypass interning to avoid memory bloat
	// from large one-off values.
	smallStringThreshold int

	// Statistics for monitoring.
	hits   int
	misses int
}

// NewStringCache creates a new string cache.
func NewStringCache() *StringCache {
	return &StringCache{
		internMap:            make(map[string]string, 2048),
		smallStringThreshold: 64,
	}
}

// Get returns a canonical copy of value, interning it if it is small.
func (sc *StringCache) Get(value string) string {
	if value == "" {
		return ""
	}
	if len(value) < sc.smallStringThreshold {
		if cached, ok := sc.internMap[value]; ok {
			sc.hits++
			return cached
		}
		sc.internMap[value] = value
		sc.misses++
		return value
	}
	sc.misses++
	return value
}

// GetFromBytes converts a byte slice to a string, returning the interned copy
// without allocating when the value has been seen before.
func (sc *StringCache) GetFromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if len(b) < sc.smallStringThreshold {
		// Map lookup by []byte key does not allocate.
		if cached, ok := sc.internMap[string(b)]; ok {
			sc.hits++
			return cached
		}
		value := string(b)
		sc.internMap[value] = value
		sc.misses++
		return value
	}
	sc.misses++
	return string(b)
}

// Reset clears the cache, releasing all interned strings.
func (sc *StringCache) Reset() {
	sc.internMap = make(map[string]string, 2048)
	sc.hits = 0
	sc.misses = 0
}

// Stats returns the hit and miss counters.
func (sc *StringCache) Stats() (hits, misses int) {
	return sc.hits, sc.misses
}
