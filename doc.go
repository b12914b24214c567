// Package robokeys computes how many button presses it takes to type door
// codes when every press travels through a chain of robots.
//
// A human presses a directional keypad that steers a robotic arm, which
// presses another directional keypad steering a further arm, and so on, until
// the last arm types the code on a numeric keypad. The number of presses grows
// exponentially with the chain length if simulated directly; the packages
// below keep it polynomial with a layered cost cache.
//
// Under the hood, everything is organized under these subpackages:
//
//	movement/    — ordered 2-D movements and their keystroke expansion
//	keypad/      — the numeric and directional layouts, gap-safe movements
//	chaincache/  — layer-by-layer minimum press counts for a robot chain
//	complexity/  — per-code press counts × numeric value, batch totals
//	codes/       — reading code files
//	config/      — YAML configuration of the keypadchain command
//	report/      — text and JSON rendering of totals
//
// Quick example:
//
//	total, err := complexity.ComputeTotalComplexity(
//	    []string{"029A", "980A", "179A", "456A", "379A"}, 2, complexity.DefaultScope)
//	// total == 126384
//
// The command in cmd/keypadchain wires the packages together:
//
//	go run ./cmd/keypadchain codes.txt
package robokeys
