// Package chaincache computes, for a chain of robots typing on directional
// keypads, the minimum number of human presses needed to realise every
// ordered movement in a bounded scope.
//
// What:
//
//   - Depth 0 is the human on the physical directional keypad: an ordered
//     movement M costs |M| + 1 presses (one per step plus the confirm).
//   - Depth k+1 types M's keystrokes (plus the confirm) on a directional
//     keypad steered through depth k: starting from 'A', every transition
//     costs the cheapest depth-k entry among its safe ordered movements.
//   - Build repeats the inductive step chainLength times and returns the
//     final, immutable Cache.
//
// Why:
//
//   - Simulating nested robots directly grows exponentially with the chain
//     length. The layered cache is polynomial: O(chainLength × scope²) cost
//     computations, each O(1) lookups, with only two layers alive at a time.
//
// Options:
//
//   - WithWorkers(n): number of goroutines sharing the cost computations of
//     one layer. Layers are still built strictly one after another.
//
// Errors:
//
//   - ErrBadScope, ErrBadChainLength, ErrBadWorkers: invalid arguments.
//   - ErrNotCached: a lookup fell outside the scope the cache was built for.
//   - ErrNoCandidates: MinCost was asked to choose among nothing.
//   - ErrArithmeticOverflow: a cost no longer fits in uint64.
//   - keypad errors are propagated unchanged (wrapped with the failing depth).
package chaincache
