// Package utils implements generic helpers over ordered slices.
package utils

import "golang.org/x/exp/constraints"

// IsStrictlyIncreasing returns true if v[i] < v[i+1] for all i.
func IsStrictlyIncreasing[V constraints.Ordered](v []V) bool {
	for i := 1; i < len(v); i++ {
		if v[i-1] >= v[i] {
			return false
		}
	}
	return true
}

// IsNonDecreasing returns true if v[i] <= v[i+1] for all i.
func IsNonDecreasing[V constraints.Ordered](v []V) bool {
	for i := 1; i < len(v); i++ {
		if v[i-1] > v[i] {
			return false
		}
	}
	return true
}

// Reverse reverses v in place.
func Reverse[V any](v []V) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
