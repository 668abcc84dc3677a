package datastructure

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	EPS = 1e-6
)

// equal operator
func Eq[T constraints.Float](a, b T) bool {
	return math.Abs(float64(a-b)) <= EPS
}

// less than operator
func Lt[T constraints.Float](a, b T) bool {
	return a+EPS < b
}

// greater than or equal than operator
func Ge[T constraints.Float](a, b T) bool {
	return Le(b, a)
}

func Gt[T constraints.Float](a, b T) bool {
	return Lt(b, a)
}

// less than or equal operator
func Le[T constraints.Float](a, b T) bool {
	return a <= b+EPS
}
