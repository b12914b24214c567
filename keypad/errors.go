package keypad

import "errors"

var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all layout rows must have the same length")
	// ErrGapCount indicates the layout does not contain exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must contain exactly one gap")
	// ErrDuplicateButton indicates a button rune appears more than once.
	ErrDuplicateButton = errors.New("keypad: duplicate button")

	// ErrButtonMissing indicates a requested button is not part of the layout.
	ErrButtonMissing = errors.New("keypad: button missing")
	// ErrSafetyCheckCritical indicates a simulated trajectory left the grid.
	ErrSafetyCheckCritical = errors.New("keypad: critical error during safety check")
	// ErrNoSafeOrderedMovements indicates every candidate movement crosses the gap.
	ErrNoSafeOrderedMovements = errors.New("keypad: no safe ordered movements")
)
