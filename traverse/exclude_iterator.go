package traverse

import "github.com/scenephys/scenephys/scene"

// ExcludeListIterator walks a subtree range while suppressing every prim
// whose path is in an exclude list, together with that prim's whole
// descendant branch. The consumer never observes an excluded prim: on
// first encounter its children are pruned and the cursor keeps moving.
//
// Filtering happens only while advancing. The initial position after
// Reset is yielded unfiltered even if its path is excluded.
type ExcludeListIterator struct {
	rng     *scene.PrimRange
	iter    *scene.PrimRangeIterator
	pathSet map[scene.Path]struct{}
}

// NewExcludeListIterator returns an iterator over rng that skips the
// given paths and their descendants. The paths are copied into an
// internal set; the caller's slice is not retained.
func NewExcludeListIterator(rng *scene.PrimRange, excludePaths []scene.Path) *ExcludeListIterator {
	it := &ExcludeListIterator{
		rng:     rng,
		pathSet: make(map[scene.Path]struct{}, len(excludePaths)),
	}
	for _, p := range excludePaths {
		it.pathSet[p] = struct{}{}
	}
	it.Reset()
	return it
}

func (it *ExcludeListIterator) Reset() {
	it.iter = it.rng.Begin()
}

func (it *ExcludeListIterator) AtEnd() bool {
	return it.iter.IsAtEnd()
}

func (it *ExcludeListIterator) Current() *scene.Prim {
	return it.iter.Prim()
}

// PruneChildren delegates caller-driven pruning to the inner cursor,
// independent of exclusion-driven pruning.
func (it *ExcludeListIterator) PruneChildren() {
	it.iter.PruneChildren()
}

// Next steps the inner cursor until it lands on the range end, an
// invalid prim, or a valid prim that is not excluded. An excluded prim
// is pruned and skipped without being yielded, so its descendants are
// never visited either.
func (it *ExcludeListIterator) Next() {
	if it.iter.IsAtEnd() {
		return
	}
	for {
		it.iter.Advance()
		if it.iter.IsAtEnd() {
			return
		}
		prim := it.iter.Prim()
		if !prim.IsValid() {
			// Invalid prims are a valid stop; downstream consumers
			// guard against acting on them.
			return
		}
		if _, excluded := it.pathSet[prim.Path()]; excluded {
			it.iter.PruneChildren()
			continue
		}
		return
	}
}
