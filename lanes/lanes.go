// Package lanes provides fixed-width blocks of numeric elements and the
// width-selection machinery used to process flat buffers in hardware-sized
// chunks.
//
// A block is a Vec[T]: a small, copyable aggregate of lanes that is loaded
// from, and stored back to, contiguous memory. The number of lanes a block
// should carry on the current machine is reported by MaxLanes, which is
// derived from the detected SIMD register width (AVX-512, AVX2, SSE2, NEON,
// or a scalar fallback).
//
// Basic usage:
//
//	width := lanes.MaxLanes[float32]()
//	v := lanes.New(width, data[:width])
//	v = lanes.Add(v, lanes.Splat(width, float32(1)))
//	v.Store(data[:width])
//
// Iteration over whole buffers, including buffers whose length is not a
// multiple of the lane count, lives in the vectorize subpackage.
package lanes

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer types.
// Go integers wrap on overflow, so these cover both the plain and the
// wrap-around numeric kinds of other languages.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for all types that can populate block lanes.
// Every Element is trivially copyable and safe to share across goroutines.
type Element interface {
	Floats | Integers
}

// One returns the multiplicative identity of T.
func One[T Element]() T {
	return T(1)
}
