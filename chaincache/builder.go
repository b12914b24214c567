package chaincache

import (
	"fmt"

	"github.com/katalvlaran/robokeys/internal/checked"
	"github.com/katalvlaran/robokeys/keypad"
	"github.com/katalvlaran/robokeys/movement"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Builder builds chain caches over a fixed movement scope, routing every
// robot layer through the directional keypad.
type Builder struct {
	scope   int
	domain  []movement.OrderedMovement
	keypad  *keypad.Keypad
	options Options
}

// NewBuilder prepares a builder whose caches cover per-axis deltas below scope.
// The scope is not checked against any keypad: an undersized scope surfaces as
// ErrNotCached when a lookup falls outside it.
func NewBuilder(scope int, opts ...Option) (*Builder, error) {
	if scope < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScope, scope)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{
		scope:   scope,
		domain:  movement.Domain(scope),
		keypad:  keypad.Directional(),
		options: cfg,
	}, nil
}

// Scope returns the builder's scope.
func (b *Builder) Scope() int { return b.scope }

// Domain returns a copy of the movements every cache of this builder holds.
func (b *Builder) Domain() []movement.OrderedMovement { return slices.Clone(b.domain) }

// Build returns the cache for a chain of chainLength directional robots.
// Only the previous and the current layer are kept while building.
//
// Complexity: O(chainLength × scope²) cost computations.
func (b *Builder) Build(chainLength int) (*Cache, error) {
	if chainLength < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadChainLength, chainLength)
	}
	cache, err := b.layer(humanLayer, nil)
	if err != nil {
		return nil, err
	}
	for depth := 1; depth <= chainLength; depth++ {
		if cache, err = b.layer(robotLayer, cache); err != nil {
			return nil, fmt.Errorf("chaincache: depth %d: %w", depth, err)
		}
	}
	return cache, nil
}

// layer computes one cache generation. Costs are written into a slice indexed
// like b.domain so workers never share a map.
func (b *Builder) layer(kind layerKind, prev *Cache) (*Cache, error) {
	depth := 0
	if prev != nil {
		depth = prev.depth + 1
	}

	n := len(b.domain)
	costs := make([]uint64, n)
	chunk := (n + b.options.Workers - 1) / b.options.Workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				c, err := b.cost(kind, b.domain[i], prev)
				if err != nil {
					return err
				}
				costs[i] = c
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := make(map[movement.OrderedMovement]uint64, n)
	for i, mv := range b.domain {
		m[mv] = costs[i]
	}
	return &Cache{depth: depth, scope: b.scope, costs: m}, nil
}

func (b *Builder) cost(kind layerKind, m movement.OrderedMovement, prev *Cache) (uint64, error) {
	switch kind {
	case humanLayer:
		return uint64(m.Magnitude()) + 1, nil
	case robotLayer:
		return b.robotCost(m, prev)
	default:
		return 0, fmt.Errorf("chaincache: unknown layer kind %d", kind)
	}
}

// robotCost types m's keystrokes and the final confirm on the directional
// keypad, starting from 'A', pricing each transition with prev.
func (b *Builder) robotCost(m movement.OrderedMovement, prev *Cache) (uint64, error) {
	buttons := m.Buttons()
	presses := make([]rune, 0, len(buttons)+1)
	for _, d := range buttons {
		presses = append(presses, rune(d))
	}
	presses = append(presses, keypad.Activate)

	var total uint64
	current := rune(keypad.Activate)
	for _, next := range presses {
		candidates, err := b.keypad.OrderedMovements(current, next)
		if err != nil {
			return 0, err
		}
		step, err := prev.MinCost(candidates)
		if err != nil {
			return 0, err
		}
		if total, err = checked.Add(total, step); err != nil {
			return 0, fmt.Errorf("%w: costing %v", err, m)
		}
		current = next
	}
	return total, nil
}

// RequiredScope returns the smallest scope covering every displacement
// between two buttons of the given keypads.
func RequiredScope(keypads ...*keypad.Keypad) int {
	scope := 1
	for _, k := range keypads {
		rows, cols := k.MaxDisplacement()
		scope = max(scope, rows+1, cols+1)
	}
	return scope
}
