package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MinNum returns the smaller of a and b. Unlike math.Min and the min builtin, a NaN
// operand is ignored and the other operand returned (IEEE-754 minNum). The slab test
// relies on this: a 0/0 term from a ray lying on a slab plane drops out of the chain.
func MinNum[T constraints.Float](a, b T) T {
	if math.IsNaN(float64(a)) {
		return b
	}
	if math.IsNaN(float64(b)) {
		return a
	}
	if b < a {
		return b
	}
	return a
}

// MaxNum returns the larger of a and b, ignoring a NaN operand like MinNum.
func MaxNum[T constraints.Float](a, b T) T {
	if math.IsNaN(float64(a)) {
		return b
	}
	if math.IsNaN(float64(b)) {
		return a
	}
	if b > a {
		return b
	}
	return a
}
