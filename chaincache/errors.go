package chaincache

import (
	"errors"

	"github.com/katalvlaran/robokeys/internal/checked"
)

var (
	// ErrBadScope indicates a scope below 1; even the empty movement needs scope 1.
	ErrBadScope = errors.New("chaincache: scope must be positive")
	// ErrBadChainLength indicates a negative chain length.
	ErrBadChainLength = errors.New("chaincache: chain length must be non-negative")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("chaincache: workers must be positive")

	// ErrNotCached indicates a movement outside the cache scope was looked up.
	ErrNotCached = errors.New("chaincache: movement not cached")
	// ErrNoCandidates indicates MinCost received an empty candidate list.
	ErrNoCandidates = errors.New("chaincache: no candidate movements")
)

// ErrArithmeticOverflow is the checked-arithmetic sentinel, shared across packages
// so errors.Is matches regardless of where the overflow happened.
var ErrArithmeticOverflow = checked.ErrOverflow
