package chaincache

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/robokeys/movement"
	"golang.org/x/exp/maps"
)

// Depth returns the chain depth the cache was built for.
func (c *Cache) Depth() int { return c.depth }

// Scope returns the scope the cache covers.
func (c *Cache) Scope() int { return c.scope }

// Len returns the number of cached movements.
func (c *Cache) Len() int { return len(c.costs) }

// Cost returns the cached press count of m.
func (c *Cache) Cost(m movement.OrderedMovement) (uint64, bool) {
	v, ok := c.costs[m]
	return v, ok
}

// MinCost returns the cheapest cached cost among candidates.
// Every candidate must be cached; the first missing one fails with ErrNotCached.
func (c *Cache) MinCost(candidates []movement.OrderedMovement) (uint64, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	var best uint64
	for i, m := range candidates {
		v, ok := c.costs[m]
		if !ok {
			return 0, fmt.Errorf("%w: %v (scope %d, depth %d)", ErrNotCached, m, c.scope, c.depth)
		}
		if i == 0 || v < best {
			best = v
		}
	}
	return best, nil
}

// Movements returns the cached movements ordered by traversal order, rows, then cols.
func (c *Cache) Movements() []movement.OrderedMovement {
	keys := maps.Keys(c.costs)
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Rows != b.Rows {
			return a.Rows < b.Rows
		}
		return a.Cols < b.Cols
	})
	return keys
}
