package lanes

import "fmt"

// Vec is a block of lanes holding elements of type T. It has value
// semantics: operations return new blocks rather than mutating in place,
// and a block never aliases the buffer it was loaded from.
//
// The lane count is fixed when the block is constructed. Constructors in
// this package either take it explicitly (New, Splat, Zero, Iota) or use
// MaxLanes for the current machine (Load, Set).
type Vec[T Element] struct {
	// data holds the lane values. Methods use value receivers; the
	// backing array is shared between copies of the same block.
	data []T
}

// New builds a block of exactly width lanes from src, copying the
// elements. It panics if len(src) differs from width; use Load for a
// length-tolerant load at the machine width.
func New[T Element](width int, src []T) Vec[T] {
	if len(src) != width {
		panic(fmt.Sprintf("lanes: creating block from the wrong sized slice (expected %d, got %d)", width, len(src)))
	}
	data := make([]T, width)
	copy(data, src)
	return Vec[T]{data: data}
}

// Splat builds a block of width lanes with every lane set to value.
func Splat[T Element](width int, value T) Vec[T] {
	data := make([]T, width)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero builds a block of width lanes, all zero.
func Zero[T Element](width int) Vec[T] {
	return Vec[T]{data: make([]T, width)}
}

// Iota builds a block of width lanes holding [0, 1, 2, ...].
func Iota[T Element](width int) Vec[T] {
	data := make([]T, width)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Load creates a block by loading up to MaxLanes elements from src.
func Load[T Element](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Set creates a block of MaxLanes lanes with all lanes set to value.
func Set[T Element](value T) Vec[T] {
	return Splat(MaxLanes[T](), value)
}

// NumLanes returns the number of lanes in this block.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the block's lane storage. The slice aliases the block:
// writes through it are visible to every copy of the block.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the block's lanes to dst, stopping at the shorter of the two.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// At returns lane i.
func (v Vec[T]) At(i int) T {
	return v.data[i]
}

// SetAt sets lane i to value. Copies of the block share lane storage, so
// the write is visible through all of them.
func (v Vec[T]) SetAt(i int, value T) {
	v.data[i] = value
}
