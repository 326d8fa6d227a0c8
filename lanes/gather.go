package lanes

// Scattered-index loads and stores. Unlike the contiguous New/Load and
// Store paths, these address src/dst through an explicit index per lane.
// Indices must be in range for the buffer; an out-of-range index is caller
// misuse and panics via the usual bounds check.

// GatherIndex loads one lane per index: result lane i is src[idx[i]].
// The resulting block has len(idx) lanes.
func GatherIndex[T Element](src []T, idx []int) Vec[T] {
	result := make([]T, len(idx))
	for i, j := range idx {
		result[i] = src[j]
	}
	return Vec[T]{data: result}
}

// ScatterIndex stores one lane per index: dst[idx[i]] = v lane i.
// It panics if fewer indices are given than the block has lanes.
func ScatterIndex[T Element](v Vec[T], dst []T, idx []int) {
	for i, x := range v.data {
		dst[idx[i]] = x
	}
}
