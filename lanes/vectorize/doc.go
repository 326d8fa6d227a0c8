// Package vectorize turns flat numeric buffers into sequences of
// fixed-width blocks, so loops can process whole lanes at a time without
// hand-writing the remainder handling.
//
// A source is built from a slice and a lane width, then vectorized into an
// iterator of blocks:
//
//	total := uint16(0)
//	it := vectorize.Slice(data, 8).VectorizePad(lanes.Zero[uint16](8))
//	for v := range it.All() {
//	    total += lanes.ReduceSum(v)
//	}
//
// When the buffer length is not a multiple of the width, a padding block
// must be supplied; its first lanes are overwritten with the true tail and
// the padded block is yielded last. Without padding, an unaligned length
// panics: every misuse in this package is a programming error and is
// reported as close to the offending call as possible rather than being
// silently degraded.
//
// The mutable path yields *MutProxy values whose mutations are flushed
// back into the source buffer when the proxy is released. Release happens
// automatically between iterations of All (and on Close), and only the
// genuine elements of the trailing partial are ever written back, so the
// flush cannot write past the end of the buffer:
//
//	it := vectorize.MutSlice(dst, 4).VectorizePad(lanes.Zero[uint32](4))
//	for p := range it.All() {
//	    p.Block = lanes.Add(p.Block, ones)
//	}
//
// Two sources walk in lockstep with Zip, which yields pairs and composes
// recursively:
//
//	zipped := vectorize.Zip(vectorize.MutSlice(dst, 4), vectorize.Slice(src, 4))
//	for pair := range zipped.Vectorize().All() {
//	    pair.A.Block = lanes.Add(pair.A.Block, pair.B)
//	}
package vectorize
