package complexity

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/robokeys/chaincache"
	"github.com/katalvlaran/robokeys/internal/checked"
	"github.com/katalvlaran/robokeys/keypad"
	"golang.org/x/sync/errgroup"
)

var codePattern = regexp.MustCompile(`^(\d+)A$`)

// Calculator owns one chain cache and prices codes against it.
type Calculator struct {
	scope       int
	chainLength int
	keypad      *keypad.Keypad
	cache       *chaincache.Cache
	options     Options
}

// New builds the chain cache for chainLength robots at the given scope.
// A scope below chaincache.RequiredScope of the two keypads is rejected up
// front; the error matches both ErrScopeTooSmall and chaincache.ErrNotCached.
func New(scope, chainLength int, opts ...Option) (*Calculator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	num := keypad.Numeric()
	if required := chaincache.RequiredScope(num, keypad.Directional()); scope < required {
		return nil, fmt.Errorf("%w: scope %d, need at least %d: %w",
			ErrScopeTooSmall, scope, required, chaincache.ErrNotCached)
	}

	b, err := chaincache.NewBuilder(scope, chaincache.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	cache, err := b.Build(chainLength)
	if err != nil {
		return nil, err
	}

	return &Calculator{
		scope:       scope,
		chainLength: chainLength,
		keypad:      num,
		cache:       cache,
		options:     cfg,
	}, nil
}

// ChainLength returns the number of directional robots in the chain.
func (c *Calculator) ChainLength() int { return c.chainLength }

// Scope returns the cache scope.
func (c *Calculator) Scope() int { return c.scope }

// CacheSize returns the number of cached ordered movements.
func (c *Calculator) CacheSize() int { return c.cache.Len() }

// Evaluate prices a single code.
func (c *Calculator) Evaluate(code string) (Result, error) {
	value, err := numericValue(code)
	if err != nil {
		return Result{}, err
	}

	var presses uint64
	current := rune(keypad.Activate)
	for _, next := range code {
		candidates, err := c.keypad.OrderedMovements(current, next)
		if err != nil {
			return Result{}, err
		}
		step, err := c.cache.MinCost(candidates)
		if err != nil {
			return Result{}, err
		}
		if presses, err = checked.Add(presses, step); err != nil {
			return Result{}, fmt.Errorf("%w: presses of %q", err, code)
		}
		current = next
	}

	total, err := checked.Mul(presses, value)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %d × %d for %q", err, presses, value, code)
	}
	return Result{Code: code, Presses: presses, Value: value, Complexity: total}, nil
}

// SolveDetailed prices every code and sums the complexities.
// Codes are evaluated concurrently; results keep input order.
func (c *Calculator) SolveDetailed(codes []string) (Report, error) {
	results := make([]Result, len(codes))

	var g errgroup.Group
	g.SetLimit(c.options.Workers)
	for i, code := range codes {
		g.Go(func() error {
			r, err := c.Evaluate(code)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var total uint64
	var err error
	for _, r := range results {
		if total, err = checked.Add(total, r.Complexity); err != nil {
			return Report{}, fmt.Errorf("%w: summing complexities", err)
		}
	}
	return Report{ChainLength: c.chainLength, Scope: c.scope, Results: results, Total: total}, nil
}

// Solve returns the total complexity of codes.
func (c *Calculator) Solve(codes []string) (uint64, error) {
	r, err := c.SolveDetailed(codes)
	if err != nil {
		return 0, err
	}
	return r.Total, nil
}

// ComputeTotalComplexity builds a Calculator and solves codes in one call.
func ComputeTotalComplexity(codes []string, chainLength, scope int) (uint64, error) {
	c, err := New(scope, chainLength)
	if err != nil {
		return 0, err
	}
	return c.Solve(codes)
}

func numericValue(code string) (uint64, error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodeFormat, code)
	}
	v, err := strconv.ParseUint(m[1], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: numeric part of %q", ErrArithmeticOverflow, code)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCodeFormat, code, err)
	}
	return v, nil
}
