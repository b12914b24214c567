package complexity

import (
	"errors"

	"github.com/katalvlaran/robokeys/internal/checked"
)

var (
	// ErrInvalidCodeFormat indicates a code not of the form <digits>A.
	ErrInvalidCodeFormat = errors.New("complexity: invalid code format")
	// ErrScopeTooSmall indicates a scope that cannot cover every numeric keypad
	// displacement. It is always reported together with chaincache.ErrNotCached.
	ErrScopeTooSmall = errors.New("complexity: scope too small for keypad layouts")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("complexity: workers must be positive")
)

// ErrArithmeticOverflow is the shared checked-arithmetic sentinel.
var ErrArithmeticOverflow = checked.ErrOverflow
