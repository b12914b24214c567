// Package movement models a two-dimensional displacement on a keypad together
// with the order in which its two axes are traversed.
//
// What:
//
//   - Delta is a signed per-axis displacement (positive = down / right).
//   - OrderedMovement commits a displacement to RowThenCol or ColThenRow.
//     The two orders of the same displacement are distinct values: once a
//     movement is typed through further robots, the orders can cost differently.
//   - Buttons expands a movement into directional keystrokes ('^', 'v', '<', '>'),
//     without the trailing confirm press.
//   - UnitSteps expands a movement into single-cell steps for trajectory checks.
//
// Why:
//
//   - OrderedMovement is comparable and is used directly as a map key by the
//     chaincache package.
//
// Complexity:
//
//   - Magnitude: O(1). Buttons, UnitSteps: O(|rows| + |cols|).
//   - Domain(scope): O(scope²) movements.
package movement
