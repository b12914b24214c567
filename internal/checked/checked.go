// Package checked provides overflow-checked arithmetic on unsigned integers.
package checked

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow indicates that an addition or multiplication wrapped around.
var ErrOverflow = errors.New("checked: arithmetic overflow")

// Add returns a+b or ErrOverflow when the sum does not fit in T.
func Add[T constraints.Unsigned](a, b T) (T, error) {
	s := a + b
	if s < a {
		return 0, ErrOverflow
	}
	return s, nil
}

// Mul returns a*b or ErrOverflow when the product does not fit in T.
func Mul[T constraints.Unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/a != b {
		return 0, ErrOverflow
	}
	return p, nil
}

// Sum folds values with Add, failing on the first overflow.
func Sum[T constraints.Unsigned](values ...T) (T, error) {
	var total T
	var err error
	for _, v := range values {
		if total, err = Add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
