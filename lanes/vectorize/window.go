package vectorize

import (
	"fmt"
	"unsafe"

	"github.com/gosimd/go-lanes/lanes"
)

const maxInt = int(^uint(0) >> 1)

// window returns the idx-th width-lane window of the region starting at
// base, aliasing the original memory. This is the only routine in the
// package doing raw address arithmetic.
//
// Preconditions (not checked): idx >= 0, base points at a live region of
// at least (idx+1)*width elements, and the region is neither freed nor
// resized while the returned slice is in use. Source constructors verify
// the region's byte length fits the signed address space, which keeps the
// offset computation below in range.
func window[E lanes.Element](base *E, width, idx int) []E {
	var zero E
	offset := uintptr(idx) * uintptr(width) * unsafe.Sizeof(zero)
	return unsafe.Slice((*E)(unsafe.Add(unsafe.Pointer(base), offset)), width)
}

// checkAddressable panics if n elements of E would exceed the signed
// address-space limit the window arithmetic relies on. Relevant on 32-bit
// platforms; on 64-bit platforms slices cannot get this big.
func checkAddressable[E lanes.Element](n int) {
	var zero E
	if n > 0 && uintptr(n) > uintptr(maxInt)/unsafe.Sizeof(zero) {
		panic(fmt.Sprintf("vectorize: slice of %d elements exceeds the addressable byte range", n))
	}
}
