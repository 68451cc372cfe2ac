// Package slice implements set operations over the validator index lists
// carried by attestations.
package slice

import "sort"

// IntersectionUint64 of two uint64 slices with time
// complexity of approximately O(n) leveraging a map to
// check for element existence off by a constant factor
// of underlying map efficiency.
func IntersectionUint64(a []uint64, b []uint64) []uint64 {
	set := make([]uint64, 0)
	m := make(map[uint64]bool)

	for i := 0; i < len(a); i++ {
		m[a[i]] = true
	}
	for i := 0; i < len(b); i++ {
		if found := m[b[i]]; found {
			set = append(set, b[i])
			m[b[i]] = false
		}
	}
	return set
}

// SortedIntersectionUint64 returns the intersection of a and b in ascending order.
func SortedIntersectionUint64(a []uint64, b []uint64) []uint64 {
	set := IntersectionUint64(a, b)
	sort.Slice(set, func(i, j int) bool {
		return set[i] < set[j]
	})
	return set
}

// IsInUint64 returns true if a is in b and False otherwise.
func IsInUint64(a uint64, b []uint64) bool {
	for _, v := range b {
		if a == v {
			return true
		}
	}
	return false
}

// IsUint64SortedUnique returns true if every element is strictly greater
// than the one before it.
func IsUint64SortedUnique(a []uint64) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] >= a[i] {
			return false
		}
	}
	return true
}
