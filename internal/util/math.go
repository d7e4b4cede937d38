package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp restricts value to the inclusive range [lower, upper].
func Clamp[T constraints.Ordered](value T, lower T, upper T) T {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

// Round rounds to the nearest integer, halves away from zero.
func Round(value float64) int {
	return int(math.Round(value))
}
