package vectorize

import (
	"fmt"
	"iter"
)

// releaser is implemented by results that must reconcile state once the
// consumer is done with them: the mutable write-back proxy, and pairs
// that may contain one.
type releaser interface {
	release()
}

// Iter is a single-pass, fused cursor over a vectorized source: the full
// blocks in [left, right) plus at most one trailing partial. In sequence
// order the partial is always last, so Next yields it after the full
// blocks and NextBack yields it first.
//
// Iterators are not safe for concurrent use. For the mutable path, the
// previously yielded proxy is released whenever the cursor moves on
// (Next, NextBack, Nth, Close); callers stepping the cursor by hand must
// finish with Close so the last proxy and an unconsumed partial still
// flush. The All and Backward loops handle all of that themselves.
type Iter[R any] struct {
	vectorizer Vectorizer[R]
	left       int
	right      int
	partial    *R

	pending    R
	hasPending bool
}

// Next yields the next block in sequence order. It returns false once the
// iterator is exhausted, and keeps returning false afterwards.
func (it *Iter[R]) Next() (R, bool) {
	it.releasePending()
	if it.left < it.right {
		r := it.vectorizer.Get(it.left)
		it.left++
		it.setPending(r)
		return r, true
	}
	if p, ok := it.takePartial(); ok {
		it.setPending(p)
		return p, true
	}
	var zero R
	return zero, false
}

// NextBack yields the next block from the tail end: the partial first if
// present, then the full blocks in reverse order.
func (it *Iter[R]) NextBack() (R, bool) {
	it.releasePending()
	if p, ok := it.takePartial(); ok {
		it.setPending(p)
		return p, true
	}
	if it.left < it.right {
		it.right--
		r := it.vectorizer.Get(it.right)
		it.setPending(r)
		return r, true
	}
	var zero R
	return zero, false
}

// Len returns the exact number of blocks still to be yielded.
func (it *Iter[R]) Len() int {
	n := it.right - it.left
	if it.partial != nil {
		n++
	}
	return n
}

// Nth skips n blocks and yields the one after them, so Nth(0) is Next.
// The partial is yielded only once all full blocks are consumed; a skip
// that overshoots the remaining full blocks consumes the partial without
// yielding it and exhausts the iterator (for the mutable path the
// partial's unmodified tail still flushes at that point). A negative
// skip count is fatal: it would otherwise move the cursor before the
// region's start and bypass the window precondition.
func (it *Iter[R]) Nth(n int) (R, bool) {
	if n < 0 {
		panic(fmt.Sprintf("vectorize: negative skip count %d", n))
	}
	if it.right-it.left >= n {
		it.left += n
		return it.Next()
	}
	it.releasePending()
	it.left = it.right
	if p, ok := it.takePartial(); ok {
		releaseValue(p)
	}
	var zero R
	return zero, false
}

// Count consumes the iterator and returns how many blocks were left.
// Blocks are counted by index arithmetic, not yielded; an outstanding
// proxy and an unconsumed mutable partial are still flushed.
func (it *Iter[R]) Count() int {
	n := it.Len()
	it.Close()
	return n
}

// Last consumes the iterator and yields its final block in sequence
// order. Skipped-over full blocks are never materialized.
func (it *Iter[R]) Last() (R, bool) {
	r, ok := it.NextBack()
	it.left = it.right
	return r, ok
}

// Close exhausts the iterator, releasing the outstanding result and any
// unconsumed partial. It is safe to call repeatedly. Dropping an iterator
// without Close leaks no memory but skips the pending write-backs of the
// mutable path.
func (it *Iter[R]) Close() {
	it.releasePending()
	if p, ok := it.takePartial(); ok {
		releaseValue(p)
	}
	it.left = it.right
}

// All returns a forward range-over-func view. Each yielded value is
// released after the loop body finishes with it, and Close runs when the
// loop ends for any reason, so mutable blocks flush on break and panic
// paths too.
func (it *Iter[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		defer it.Close()
		for {
			r, ok := it.Next()
			if !ok {
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Backward is All's counterpart over NextBack.
func (it *Iter[R]) Backward() iter.Seq[R] {
	return func(yield func(R) bool) {
		defer it.Close()
		for {
			r, ok := it.NextBack()
			if !ok {
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

func (it *Iter[R]) setPending(r R) {
	it.pending = r
	it.hasPending = true
}

func (it *Iter[R]) releasePending() {
	if !it.hasPending {
		return
	}
	it.hasPending = false
	releaseValue(it.pending)
	var zero R
	it.pending = zero
}

func (it *Iter[R]) takePartial() (R, bool) {
	if it.partial == nil {
		var zero R
		return zero, false
	}
	p := *it.partial
	it.partial = nil
	return p, true
}

func releaseValue(v any) {
	if rel, ok := v.(releaser); ok {
		rel.release()
	}
}
