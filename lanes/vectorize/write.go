package vectorize

import "github.com/gosimd/go-lanes/lanes"

// WriteVectorizer is the per-index accessor for mutable sources. Like
// ReadVectorizer it is a stateless, non-owning descriptor, but its Get
// wraps each block in a MutProxy carrying the write-back obligation.
//
// Sharing it across goroutines is safe only when every goroutine calls
// Get with its own disjoint index range; overlapping ranges alias the
// same memory through the proxies' restore regions.
type WriteVectorizer[E lanes.Element] struct {
	start *E
	width int
}

// Get loads the idx-th block into a fresh MutProxy. See Vectorizer for
// the preconditions.
func (w WriteVectorizer[E]) Get(idx int) *MutProxy[E] {
	win := window(w.start, w.width, idx)
	return &MutProxy[E]{Block: lanes.New(w.width, win), restore: win}
}

// MutProxy stages mutation of one block. Block is a private copy of the
// source elements; the caller mutates it (through its lane storage, or by
// replacing the field with a derived block) and the first len(restore)
// lanes are copied back into the source when the proxy is released.
//
// Release is automatic for the common consumption patterns: Iter flushes
// an outstanding proxy whenever the cursor moves on and when it is
// closed, and the All loop flushes after every iteration, early exits and
// panics included. Flush may also be called directly and is idempotent.
//
// Block values are staged rather than written in place because blocks
// have value semantics; the flush is the single write path back into the
// source. For a trailing partial the restore region is the genuine tail
// only, so padding lanes are never written back.
type MutProxy[E lanes.Element] struct {
	Block   lanes.Vec[E]
	restore []E
}

// Flush copies the leading lanes of Block back into the source region the
// proxy was read from.
func (p *MutProxy[E]) Flush() {
	copy(p.restore, p.Block.Data()[:len(p.restore)])
}

func (p *MutProxy[E]) release() {
	p.Flush()
}
