// Package complexity totals the complexity of door codes typed through a
// chain of directional-keypad robots onto the numeric keypad.
//
// The complexity of a code is the minimum number of human presses needed to
// type it through the whole chain, multiplied by the code's numeric prefix
// ("029A" → 29). A Calculator builds its chain cache once, at construction,
// and then only reads it, so one Calculator can serve many Solve calls.
//
// All arithmetic is checked: any overflow, malformed code or cache miss
// aborts the whole batch. There are no partial totals.
package complexity
