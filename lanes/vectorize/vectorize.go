package vectorize

import (
	"fmt"
	"unsafe"

	"github.com/gosimd/go-lanes/lanes"
)

// Vectorizer produces the result for any block index in [0, blockCount).
//
// Get does not bounds-check. Callers must keep idx inside the block count
// reported when the vectorizer was created, and must not call Get more
// than once per idx from any single consumer. Distinct indices address
// disjoint memory, so a vectorizer may be shared across goroutines as long
// as each goroutine sticks to its own index range (for the mutable path
// this disjointness is the only thing making concurrent use safe).
type Vectorizer[R any] interface {
	Get(idx int) R
}

// Vectorizable is a source of fixed-width blocks: a slice, a mutable
// slice, or a zip of other sources. R is the per-block result type and P
// the padding type. Values are cheap descriptors; build them with Slice,
// MutSlice and Zip.
type Vectorizable[R, P any] struct {
	create func(pad *P) (Vectorizer[R], int, *R)
}

// Vectorize returns an iterator over the source's blocks. The source
// length must be an exact multiple of the lane width; call VectorizePad
// for unaligned sources.
func (v Vectorizable[R, P]) Vectorize() *Iter[R] {
	vz, blocks, _ := v.create(nil)
	return &Iter[R]{vectorizer: vz, right: blocks}
}

// VectorizePad returns an iterator over the source's blocks. If the
// source length is not a multiple of the lane width, the trailing
// elements are placed in the leading lanes of a copy of pad, and that
// block is yielded after all full blocks.
func (v Vectorizable[R, P]) VectorizePad(pad P) *Iter[R] {
	vz, blocks, partial := v.create(&pad)
	return &Iter[R]{vectorizer: vz, right: blocks, partial: partial}
}

// Blocks returns the per-index accessor and the number of full blocks
// without wrapping them in an iterator. The source length must be an
// exact multiple of the lane width. This is the entry point for consumers
// that split the index range across goroutines; see Vectorizer for the
// disjointness requirement.
func (v Vectorizable[R, P]) Blocks() (Vectorizer[R], int) {
	vz, blocks, _ := v.create(nil)
	return vz, blocks
}

// Slice builds a read-only source over src yielding width-lane blocks.
// A width of 0 or less selects lanes.MaxLanes for the element type.
func Slice[E lanes.Element](src []E, width int) Vectorizable[lanes.Vec[E], lanes.Vec[E]] {
	width = resolveWidth[E](width)
	checkAddressable[E](len(src))
	return Vectorizable[lanes.Vec[E], lanes.Vec[E]]{
		create: func(pad *lanes.Vec[E]) (Vectorizer[lanes.Vec[E]], int, *lanes.Vec[E]) {
			main, rest := split(len(src), width)
			var partial *lanes.Vec[E]
			if rest != 0 {
				p := clonePad(pad, width, len(src))
				copy(p.Data()[:rest], src[main:])
				partial = &p
			}
			vz := ReadVectorizer[E]{start: unsafe.SliceData(src), width: width}
			return vz, main / width, partial
		},
	}
}

// MutSlice builds a mutable source over src yielding *MutProxy values.
// A width of 0 or less selects lanes.MaxLanes for the element type.
func MutSlice[E lanes.Element](src []E, width int) Vectorizable[*MutProxy[E], lanes.Vec[E]] {
	width = resolveWidth[E](width)
	checkAddressable[E](len(src))
	return Vectorizable[*MutProxy[E], lanes.Vec[E]]{
		create: func(pad *lanes.Vec[E]) (Vectorizer[*MutProxy[E]], int, **MutProxy[E]) {
			main, rest := split(len(src), width)
			var partial **MutProxy[E]
			if rest != 0 {
				p := clonePad(pad, width, len(src))
				restore := src[main:]
				copy(p.Data()[:rest], restore)
				// The proxy's restore region is the genuine tail only, so
				// padding lanes are never flushed past the buffer's end.
				proxy := &MutProxy[E]{Block: p, restore: restore}
				partial = &proxy
			}
			vz := WriteVectorizer[E]{start: unsafe.SliceData(src), width: width}
			return vz, main / width, partial
		},
	}
}

// Zip combines two sources into one that yields synchronized pairs. The
// sources must decompose into the same number of full blocks, and padding
// must be supplied for both sides or neither. A zipped source is itself a
// Vectorizable, so zips nest.
func Zip[RA, PA, RB, PB any](a Vectorizable[RA, PA], b Vectorizable[RB, PB]) Vectorizable[Pair[RA, RB], Pair[PA, PB]] {
	return Vectorizable[Pair[RA, RB], Pair[PA, PB]]{
		create: func(pad *Pair[PA, PB]) (Vectorizer[Pair[RA, RB]], int, *Pair[RA, RB]) {
			var pa *PA
			var pb *PB
			if pad != nil {
				pa, pb = &pad.A, &pad.B
			}
			va, na, ppa := a.create(pa)
			vb, nb, ppb := b.create(pb)
			if na != nb {
				panic(fmt.Sprintf("vectorize: zipped sources yield different block counts (%d vs %d)", na, nb))
			}
			var partial *Pair[RA, RB]
			switch {
			case ppa != nil && ppb != nil:
				partial = &Pair[RA, RB]{A: *ppa, B: *ppb}
			case ppa == nil && ppb == nil:
				// Both sides aligned, or no padding requested.
			default:
				panic("vectorize: trailing partial present on only one zipped source")
			}
			return pairVectorizer[RA, RB]{a: va, b: vb}, na, partial
		},
	}
}

// Pair is the result and padding type of zipped sources.
type Pair[A, B any] struct {
	A A
	B B
}

// PairOf builds a Pair, keeping call sites free of type arguments.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

// release propagates release to whichever halves need it, so mutable
// proxies inside pairs flush no matter how deeply zips are nested.
func (p Pair[A, B]) release() {
	if rel, ok := any(p.A).(releaser); ok {
		rel.release()
	}
	if rel, ok := any(p.B).(releaser); ok {
		rel.release()
	}
}

type pairVectorizer[RA, RB any] struct {
	a Vectorizer[RA]
	b Vectorizer[RB]
}

func (p pairVectorizer[RA, RB]) Get(idx int) Pair[RA, RB] {
	return Pair[RA, RB]{A: p.a.Get(idx), B: p.b.Get(idx)}
}

func resolveWidth[E lanes.Element](width int) int {
	if width <= 0 {
		return lanes.MaxLanes[E]()
	}
	return width
}

// split decomposes a source length into its block-aligned prefix and the
// remainder.
func split(length, width int) (main, rest int) {
	rest = length % width
	return length - rest, rest
}

// clonePad validates the padding block and returns a private copy of it,
// so filling in the tail never mutates the caller's block. A nil pad here
// means the caller vectorized an unaligned source without opting into
// padding, which is fatal.
func clonePad[E lanes.Element](pad *lanes.Vec[E], width, length int) lanes.Vec[E] {
	if pad == nil {
		panic(fmt.Sprintf("vectorize: data length %d not divisible by %d lanes", length, width))
	}
	if pad.NumLanes() != width {
		panic(fmt.Sprintf("vectorize: padding block has %d lanes, want %d", pad.NumLanes(), width))
	}
	return lanes.New(width, pad.Data())
}
