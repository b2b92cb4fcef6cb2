package aoc

import "golang.org/x/exp/constraints"

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Max returns the largest of the numbers, or the zero value if there are
// none.
func Max[T Number](nums ...T) T {
	var max T
	for i, v := range nums {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
