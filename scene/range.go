package scene

// PrimRange is a depth-first pre-order traversal range over one subtree.
// The default range does not descend below instanceable prims; the
// proxy-traversing variant does. Inactive prims hide their whole
// subtree in both variants.
type PrimRange struct {
	root    *Prim
	proxies bool
}

// NewPrimRange returns the default range rooted at root. A nil, invalid
// or inactive root yields an empty range.
func NewPrimRange(root *Prim) *PrimRange {
	return &PrimRange{root: root}
}

// NewPrimRangeProxies returns a range that also descends into the
// children of instanceable prims.
func NewPrimRangeProxies(root *Prim) *PrimRange {
	return &PrimRange{root: root, proxies: true}
}

// Begin returns a cursor positioned at the range's first prim.
func (r *PrimRange) Begin() *PrimRangeIterator {
	it := &PrimRangeIterator{r: r}
	if r != nil && r.root.IsValid() && r.root.IsActive() {
		it.stack = append(it.stack, r.root)
	}
	return it
}

// IsEmpty reports whether the range contains no prims at all.
func (r *PrimRange) IsEmpty() bool {
	return r.Begin().IsAtEnd()
}

// PrimRangeIterator is the mutable cursor of a PrimRange. The stack
// holds the current prim on top, with pending right siblings of every
// ancestor below it.
type PrimRangeIterator struct {
	r     *PrimRange
	stack []*Prim
	prune bool
}

// IsAtEnd reports whether the cursor has moved past the last prim.
func (it *PrimRangeIterator) IsAtEnd() bool {
	return len(it.stack) == 0
}

// Prim returns the prim at the cursor, or nil past the end.
func (it *PrimRangeIterator) Prim() *Prim {
	if len(it.stack) == 0 {
		return nil
	}
	return it.stack[len(it.stack)-1]
}

// Advance moves the cursor to the next prim in pre-order. Advancing past
// the end is a no-op.
func (it *PrimRangeIterator) Advance() {
	if len(it.stack) == 0 {
		return
	}
	cur := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if !it.prune {
		kids := it.traversableChildren(cur)
		for i := len(kids) - 1; i >= 0; i-- {
			it.stack = append(it.stack, kids[i])
		}
	}
	it.prune = false
}

// PruneChildren marks the current prim's subtree as skipped: the next
// Advance moves to its sibling-or-ancestor continuation. Past the end
// this is a no-op.
func (it *PrimRangeIterator) PruneChildren() {
	if len(it.stack) > 0 {
		it.prune = true
	}
}

func (it *PrimRangeIterator) traversableChildren(p *Prim) []*Prim {
	if p.IsInstanceable() && !it.r.proxies {
		return nil
	}
	all := p.Children()
	kids := make([]*Prim, 0, len(all))
	for _, c := range all {
		if c.IsActive() {
			kids = append(kids, c)
		}
	}
	return kids
}
