package traverse

import "github.com/scenephys/scenephys/scene"

// RangeIterator walks one subtree range in depth-first pre-order. All
// five operations map directly onto the backing range's own cursor.
type RangeIterator struct {
	rng  *scene.PrimRange
	iter *scene.PrimRangeIterator
}

// NewRangeIterator returns an iterator over rng, positioned at its
// first prim.
func NewRangeIterator(rng *scene.PrimRange) *RangeIterator {
	it := &RangeIterator{rng: rng}
	it.Reset()
	return it
}

func (it *RangeIterator) Reset() {
	it.iter = it.rng.Begin()
}

func (it *RangeIterator) AtEnd() bool {
	return it.iter.IsAtEnd()
}

func (it *RangeIterator) Current() *scene.Prim {
	return it.iter.Prim()
}

func (it *RangeIterator) Next() {
	if !it.iter.IsAtEnd() {
		it.iter.Advance()
	}
}

// PruneChildren delegates to the backing cursor, guarded so a prune past
// the end stays a no-op.
func (it *RangeIterator) PruneChildren() {
	if !it.AtEnd() {
		it.iter.PruneChildren()
	}
}
