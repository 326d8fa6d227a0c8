package vectorize

import "github.com/gosimd/go-lanes/lanes"

// ReadVectorizer is the per-index accessor for read-only sources. It is a
// stateless descriptor: copying it is free, and it never owns the region
// it reads, so the source slice must outlive it.
//
// Concurrent Get calls are safe as long as nothing mutates the region;
// see Vectorizer for the contract.
type ReadVectorizer[E lanes.Element] struct {
	start *E
	width int
}

// Get loads the idx-th block. See Vectorizer for the preconditions.
func (r ReadVectorizer[E]) Get(idx int) lanes.Vec[E] {
	return lanes.New(r.width, window(r.start, r.width, idx))
}
