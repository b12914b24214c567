package complexity

import "runtime"

// DefaultScope is the reference cache scope. It exceeds the minimum derived
// from the keypad layouts (see chaincache.RequiredScope).
const DefaultScope = 6

// Result is the breakdown for one code.
type Result struct {
	Code       string `json:"code"`
	Presses    uint64 `json:"presses"`
	Value      uint64 `json:"value"`
	Complexity uint64 `json:"complexity"`
}

// Report collects the results of one batch in input order.
type Report struct {
	ChainLength int      `json:"chain_length"`
	Scope       int      `json:"scope"`
	Results     []Result `json:"codes"`
	Total       uint64   `json:"total"`
}

// Options configures a Calculator.
type Options struct {
	// Workers bounds the goroutines used both for cache layers and per-code work.
	Workers int
}

// Option is a functional option for New.
type Option func(*Options)

// WithWorkers sets the worker count. Panics with ErrBadWorkers when n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns Options with Workers = runtime.NumCPU().
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
