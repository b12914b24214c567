// Package keypad models fixed button grids with a single forbidden gap cell
// and enumerates the safe ways of moving an arm between two buttons.
//
// What:
//
//   - Keypad wraps a rectangular grid of button runes; the space rune marks
//     the gap, which no trajectory may cross.
//   - Numeric and Directional return the two process-wide layouts:
//
//     numeric          directional
//     +---+---+---+        +---+---+
//     | 7 | 8 | 9 |        | ^ | A |
//     +---+---+---+    +---+---+---+
//     | 4 | 5 | 6 |    | < | v | > |
//     +---+---+---+    +---+---+---+
//     | 1 | 2 | 3 |
//     +---+---+---+
//     | 0 | A |
//     +---+---+
//
//   - OrderedMovements returns the row-first and column-first movements from
//     one button to another, dropping those whose trajectory visits the gap.
//
// Complexity:
//
//   - New: O(W×H) time and memory.
//   - OrderedMovements: O(W+H) per call.
//
// Errors:
//
//   - ErrEmptyLayout, ErrNonRectangular, ErrGapCount, ErrDuplicateButton: invalid layout.
//   - ErrButtonMissing: origin or target is not on the keypad.
//   - ErrSafetyCheckCritical: a simulated trajectory left the grid or missed
//     its target (a decomposition bug, never an input property).
//   - ErrNoSafeOrderedMovements: both candidate orders cross the gap.
package keypad
