package traverse

import "github.com/scenephys/scenephys/scene"

// MapRangeIterator presents a path-ordered collection of subtree roots
// as one seamless pre-order sequence, advancing from the end of one
// root's subtree to the start of the next transparently. Roots are
// visited strictly in path order, never insertion order, so repeated
// runs are deterministic. This is what lets newly added subtrees be
// processed in a single traversal.
//
// Two degenerate behaviors are part of the contract:
//
//   - Reset binds the cursor to the first root even when that root's
//     subtree is empty; it does not skip ahead. The first Next performs
//     the root-to-root transition.
//   - The transition check runs once per Next, so a subsequent root with
//     an empty subtree leaves the cursor parked at that empty range
//     (Current returns nil) until a further Next pushes past it.
type MapRangeIterator struct {
	primMap *scene.PrimMap
	mapIdx  int
	iter    *scene.PrimRangeIterator
	atEnd   bool
}

// NewMapRangeIterator returns an iterator over the roots in primMap,
// positioned at the first root's first prim. The map is borrowed and
// must stay unmodified while the iterator is in use.
func NewMapRangeIterator(primMap *scene.PrimMap) *MapRangeIterator {
	it := &MapRangeIterator{primMap: primMap}
	it.Reset()
	return it
}

// Reset rewinds to the first root in path order. The first root's range
// descends into instance proxies; ranges bound during later transitions
// do not.
func (it *MapRangeIterator) Reset() {
	it.atEnd = true
	it.mapIdx = 0
	it.iter = nil

	if it.primMap.Len() > 0 {
		entry := it.primMap.Entries()[0]
		it.iter = scene.NewPrimRangeProxies(entry.Prim).Begin()
		it.atEnd = false
	}
}

func (it *MapRangeIterator) AtEnd() bool {
	return it.atEnd
}

func (it *MapRangeIterator) Current() *scene.Prim {
	if it.iter == nil {
		return nil
	}
	return it.iter.Prim()
}

func (it *MapRangeIterator) PruneChildren() {
	if !it.AtEnd() {
		it.iter.PruneChildren()
	}
}

// Next advances the active subtree cursor; when that cursor reaches its
// own end the map cursor moves to the next root. Emptiness of the new
// root is deliberately not re-checked here.
func (it *MapRangeIterator) Next() {
	if it.atEnd {
		return
	}
	if !it.iter.IsAtEnd() {
		it.iter.Advance()
	}
	if it.iter.IsAtEnd() {
		it.mapIdx++
		if it.mapIdx >= it.primMap.Len() {
			it.atEnd = true
		} else {
			entry := it.primMap.Entries()[it.mapIdx]
			it.iter = scene.NewPrimRange(entry.Prim).Begin()
		}
	}
}
