// Package sorting implements elementary in-place sorting algorithms.
package sorting

import "cmp"

// Sorter sorts a slice in place into ascending order.
type Sorter[T cmp.Ordered] interface {
	Sort(s []T)
}

// Bubble is bubble sort. It stops early once a pass makes no swaps.
type Bubble[T cmp.Ordered] struct{}

func (Bubble[T]) Sort(s []T) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if s[i] < s[i-1] {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion is insertion sort.
type Insertion[T cmp.Ordered] struct{}

func (Insertion[T]) Sort(s []T) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// InPlaceMerge is a merge sort which merges by rotation, using no storage
// beyond the recursion.
type InPlaceMerge[T cmp.Ordered] struct{}

func (InPlaceMerge[T]) Sort(s []T) {
	if len(s) < 2 {
		return
	}
	m := len(s) / 2
	InPlaceMerge[T]{}.Sort(s[:m])
	InPlaceMerge[T]{}.Sort(s[m:])
	merge(s, m)
}

// merge merges the sorted runs s[:m] and s[m:].
func merge[T cmp.Ordered](s []T, m int) {
	if m == 0 || m == len(s) || s[m-1] <= s[m] {
		return
	}
	if len(s) == 2 {
		s[0], s[1] = s[1], s[0]
		return
	}
	// Split the longer run in half, find where its midpoint belongs in the
	// other run, and rotate the middle so both halves can merge separately.
	var i, j int
	if m >= len(s)-m {
		i = m / 2
		j = m + lowerBound(s[m:], s[i])
	} else {
		j = m + (len(s)-m)/2
		i = upperBound(s[:m], s[j])
	}
	rotate(s[i:j], m-i)
	k := i + j - m
	merge(s[:k], i)
	merge(s[k:], j-k)
}

// lowerBound returns the index of the first element of s not less than v.
func lowerBound[T cmp.Ordered](s []T, v T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the index of the first element of s greater than v.
func upperBound[T cmp.Ordered](s []T, v T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// rotate moves s[k:] before s[:k].
func rotate[T any](s []T, k int) {
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
