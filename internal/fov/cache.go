package fov

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache memoises visible sets by origin and parameters.
// Entries may be evicted or refused at any time; a miss simply recomputes.
type Cache struct {
	c *ristretto.Cache[uint64, []bool]
}

// NewCache creates a cache bounded to roughly maxBytes of visible sets.
func NewCache(maxBytes int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[uint64, []bool]{
		NumCounters: 10000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("fov: create cache: %w", err)
	}
	return &Cache{c: c}, nil
}

// Get returns the stored visible set for key. The slice must not be modified.
func (c *Cache) Get(key uint64) ([]bool, bool) {
	return c.c.Get(key)
}

// Set stores vis under key, costed by its length.
func (c *Cache) Set(key uint64, vis []bool) {
	c.c.Set(key, vis, int64(len(vis)))
	c.c.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.c.Close()
}

func cacheKey(width, ox, oy, radius int, lightWalls bool, algo Algorithm) uint64 {
	k := uint64(uint32(oy*width+ox)) << 32
	k |= uint64(uint16(radius)) << 16
	if lightWalls {
		k |= 1 << 8
	}
	return k | uint64(algo)
}
