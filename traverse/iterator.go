// Package traverse provides resumable, prunable iteration over scene
// hierarchies: a single subtree, a path-ordered collection of subtrees
// presented as one sequence, or a subtree with whole branches excluded
// by path. Consumers drive every variant through the same PrimIterator
// contract and stay oblivious to which one they hold.
package traverse

import "github.com/scenephys/scenephys/scene"

// PrimIterator is the minimal capability a traversal source exposes.
// A generic extraction driver walks any variant as
//
//	for !it.AtEnd() {
//		prim := it.Current()
//		// inspect prim, optionally it.PruneChildren()
//		it.Next()
//	}
//
// At any time exactly one of "Current returns a usable position" and
// "AtEnd is true" holds. Calling Current past the end is a contract
// violation; callers must check AtEnd first. Iterators borrow their
// backing stage and mapping: the caller keeps them alive and unmodified
// for the iterator's lifetime. No iterator is safe for concurrent use.
type PrimIterator interface {
	// Reset rewinds to the initial position.
	Reset()

	// AtEnd reports whether no current prim exists.
	AtEnd() bool

	// Current returns the prim at the current position.
	Current() *scene.Prim

	// Next moves to the next prim in traversal order; no-op at end.
	Next()

	// PruneChildren marks the current prim's descendants as skipped for
	// all future advances; no-op at end. The prune takes effect on the
	// following Next, which moves to the current prim's
	// sibling-or-ancestor continuation.
	PruneChildren()
}

var (
	_ PrimIterator = (*RangeIterator)(nil)
	_ PrimIterator = (*MapRangeIterator)(nil)
	_ PrimIterator = (*ExcludeListIterator)(nil)
)
