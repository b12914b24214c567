package chaincache

import (
	"runtime"

	"github.com/katalvlaran/robokeys/movement"
)

// Cache maps every ordered movement of a scope to its minimum press count at
// one chain depth. It is never mutated after Build returns it.
type Cache struct {
	depth int
	scope int
	costs map[movement.OrderedMovement]uint64
}

// Options configures a Builder.
type Options struct {
	// Workers is the number of goroutines computing one layer.
	Workers int
}

// Option is a functional option for NewBuilder.
type Option func(*Options)

// WithWorkers sets the number of goroutines used per layer.
// Panics with ErrBadWorkers when n < 1.
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

// layerKind selects how a layer interprets the cost of a movement.
type layerKind uint8

const (
	// humanLayer: the human presses the directional keypad directly.
	humanLayer layerKind = iota
	// robotLayer: keystrokes are typed through the previous layer.
	robotLayer
)
