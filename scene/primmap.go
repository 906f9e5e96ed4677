package scene

import "sort"

// PrimMapEntry is one root in a PrimMap.
type PrimMapEntry struct {
	Path Path
	Prim *Prim
}

// PrimMap maps prim paths to prim handles, iterated strictly in path
// order regardless of insertion order. It collects independent subtree
// roots that are traversed as one combined sequence. Entries may hold
// invalid prims; the map stores whatever the caller resolved.
type PrimMap struct {
	entries []PrimMapEntry
}

// Set inserts or replaces the prim stored under path.
func (m *PrimMap) Set(path Path, prim *Prim) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Path.Compare(path) >= 0
	})
	if i < len(m.entries) && m.entries[i].Path == path {
		m.entries[i].Prim = prim
		return
	}
	m.entries = append(m.entries, PrimMapEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = PrimMapEntry{Path: path, Prim: prim}
}

// Get returns the prim stored under path.
func (m *PrimMap) Get(path Path) (*Prim, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Path.Compare(path) >= 0
	})
	if i < len(m.entries) && m.entries[i].Path == path {
		return m.entries[i].Prim, true
	}
	return nil, false
}

// Len returns the number of roots.
func (m *PrimMap) Len() int {
	return len(m.entries)
}

// Entries returns the roots in path order. The slice is owned by the
// map and must not be mutated.
func (m *PrimMap) Entries() []PrimMapEntry {
	return m.entries
}
