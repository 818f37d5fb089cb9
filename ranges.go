package codepoints

import "slices"

// BinarySearchRange performs a binary search on a flat table of triplets
// [start, end, value, start, end, value, ...] sorted by start with no
// overlapping intervals. It returns the value of the interval containing key,
// or defaultValue if there is none.
func BinarySearchRange(key int32, ranges []int32, defaultValue int32) int32 {
	// Run a binary search.
	from := 0
	to := len(ranges) / 3
	for to > from {
		middle := (from + to) / 2
		i := middle * 3
		if key < ranges[i] {
			to = middle
			continue
		}
		if key > ranges[i+1] {
			from = middle + 1
			continue
		}
		return ranges[i+2]
	}
	return defaultValue
}

// IsCodepointInRanges reports whether c falls into one of the ranges encoded
// by a flat ascending table of boundaries, where even positions start a range
// and odd positions end it. A boundary value itself is always in range.
//
// The table must not contain duplicate values.
func IsCodepointInRanges(c Codepoint, ranges []int32) bool {
	pos, found := slices.BinarySearch(ranges, int32(c))
	if found {
		return true
	}
	return pos > 0 && (pos-1)%2 == 0
}
