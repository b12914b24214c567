package chaincache_test

import (
	"testing"

	"github.com/katalvlaran/robokeys/chaincache"
	"github.com/katalvlaran/robokeys/keypad"
	"github.com/katalvlaran/robokeys/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceScope = 6

func build(t *testing.T, scope, depth int, opts ...chaincache.Option) *chaincache.Cache {
	t.Helper()
	b, err := chaincache.NewBuilder(scope, opts...)
	require.NoError(t, err)
	c, err := b.Build(depth)
	require.NoError(t, err)
	return c
}

func TestNewBuilder_Errors(t *testing.T) {
	_, err := chaincache.NewBuilder(0)
	assert.ErrorIs(t, err, chaincache.ErrBadScope)

	b, err := chaincache.NewBuilder(referenceScope)
	require.NoError(t, err)
	_, err = b.Build(-1)
	assert.ErrorIs(t, err, chaincache.ErrBadChainLength)

	assert.PanicsWithValue(t, chaincache.ErrBadWorkers.Error(), func() {
		_, _ = chaincache.NewBuilder(referenceScope, chaincache.WithWorkers(0))
	})
}

// TestBaseLayer checks cost = magnitude + 1 for every movement at depth 0.
func TestBaseLayer(t *testing.T) {
	c := build(t, referenceScope, 0)
	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, referenceScope, c.Scope())

	for _, m := range c.Movements() {
		v, ok := c.Cost(m)
		require.True(t, ok)
		require.Equal(t, uint64(m.Magnitude()+1), v, "cost(%v)", m)
	}
	for _, order := range []movement.Order{movement.RowThenCol, movement.ColThenRow} {
		v, ok := c.Cost(movement.OrderedMovement{Order: order})
		require.True(t, ok)
		assert.Equal(t, uint64(1), v)
	}
}

// TestConfirmOnlyStaysOne: pressing 'A' from 'A' costs one press at any depth.
func TestConfirmOnlyStaysOne(t *testing.T) {
	for depth := 0; depth <= 6; depth++ {
		c := build(t, referenceScope, depth)
		v, ok := c.Cost(movement.OrderedMovement{})
		require.True(t, ok)
		assert.Equal(t, uint64(1), v, "depth %d", depth)
	}
}

func TestKnownCosts(t *testing.T) {
	c := build(t, referenceScope, 1)
	// '^' then 'A' typed from 'A': "<A" + ">A".
	v, ok := c.Cost(movement.OrderedMovement{Rows: -1})
	require.True(t, ok)
	assert.Equal(t, uint64(4), v)

	// '<' then 'A' typed from 'A': "v<<A" + ">>^A".
	v, ok = c.Cost(movement.OrderedMovement{Cols: -1})
	require.True(t, ok)
	assert.Equal(t, uint64(8), v)
}

// TestOrderSensitivity: the two orders of one displacement can differ once
// typed through a robot.
func TestOrderSensitivity(t *testing.T) {
	c := build(t, referenceScope, 2)
	rowFirst, _ := c.Cost(movement.OrderedMovement{Rows: -1, Cols: -2, Order: movement.RowThenCol})
	colFirst, _ := c.Cost(movement.OrderedMovement{Rows: -1, Cols: -2, Order: movement.ColThenRow})
	assert.NotEqual(t, rowFirst, colFirst)
}

// TestMonotonicity: for a fixed movement the cost never drops as the chain grows.
func TestMonotonicity(t *testing.T) {
	b, err := chaincache.NewBuilder(referenceScope)
	require.NoError(t, err)

	prev, err := b.Build(0)
	require.NoError(t, err)
	for depth := 1; depth <= 5; depth++ {
		cur, err := b.Build(depth)
		require.NoError(t, err)
		for _, m := range b.Domain() {
			p, _ := prev.Cost(m)
			c, _ := cur.Cost(m)
			require.GreaterOrEqual(t, c, p, "%v at depth %d", m, depth)
		}
		prev = cur
	}
}

// TestCoverage: every in-scope movement has an entry and lookups never miss.
func TestCoverage(t *testing.T) {
	for _, scope := range []int{3, 4, referenceScope} {
		for _, depth := range []int{0, 1, 3} {
			b, err := chaincache.NewBuilder(scope)
			require.NoError(t, err)
			c, err := b.Build(depth)
			require.NoError(t, err)

			domain := b.Domain()
			require.Equal(t, len(domain), c.Len())
			require.Equal(t, 2*(2*scope-1)*(2*scope-1), c.Len())
			for _, m := range domain {
				_, err := c.MinCost([]movement.OrderedMovement{m})
				require.NoError(t, err)
			}
		}
	}
}

func TestMinCost(t *testing.T) {
	c := build(t, referenceScope, 0)

	v, err := c.MinCost([]movement.OrderedMovement{{Rows: 2, Cols: 2}, {Rows: 1}})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	_, err = c.MinCost(nil)
	assert.ErrorIs(t, err, chaincache.ErrNoCandidates)

	_, err = c.MinCost([]movement.OrderedMovement{{Rows: 1}, {Rows: referenceScope}})
	assert.ErrorIs(t, err, chaincache.ErrNotCached)
}

// TestUndersizedScope: a scope too small for a numeric displacement surfaces
// as ErrNotCached at lookup, and one too small for the directional keypad
// fails the first robot layer.
func TestUndersizedScope(t *testing.T) {
	c := build(t, 3, 2)
	moves, err := keypad.Numeric().OrderedMovements('A', '7')
	require.NoError(t, err)
	_, err = c.MinCost(moves)
	assert.ErrorIs(t, err, chaincache.ErrNotCached)

	b, err := chaincache.NewBuilder(2)
	require.NoError(t, err)
	_, err = b.Build(0)
	require.NoError(t, err)
	_, err = b.Build(1)
	assert.ErrorIs(t, err, chaincache.ErrNotCached)
}

// TestWorkersAgree: the per-layer fan-out never changes results.
func TestWorkersAgree(t *testing.T) {
	seq := build(t, referenceScope, 10, chaincache.WithWorkers(1))
	par := build(t, referenceScope, 10, chaincache.WithWorkers(7))
	require.Equal(t, seq.Len(), par.Len())
	for _, m := range seq.Movements() {
		a, _ := seq.Cost(m)
		b, _ := par.Cost(m)
		require.Equal(t, a, b, "%v", m)
	}
}

func TestRequiredScope(t *testing.T) {
	assert.Equal(t, 4, chaincache.RequiredScope(keypad.Numeric()))
	assert.Equal(t, 3, chaincache.RequiredScope(keypad.Directional()))
	assert.Equal(t, 4, chaincache.RequiredScope(keypad.Numeric(), keypad.Directional()))
	assert.Equal(t, 1, chaincache.RequiredScope())
}

func TestMovementsOrdering(t *testing.T) {
	c := build(t, 2, 0)
	got := c.Movements()
	require.Len(t, got, 18)
	assert.Equal(t, movement.OrderedMovement{Rows: -1, Cols: -1, Order: movement.RowThenCol}, got[0])
	assert.Equal(t, movement.OrderedMovement{Rows: 1, Cols: 1, Order: movement.ColThenRow}, got[17])
}
