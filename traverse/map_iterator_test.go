package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenephys/scenephys/scene"
)

func primMapOf(t *testing.T, stage *scene.Stage, paths ...string) *scene.PrimMap {
	t.Helper()
	var m scene.PrimMap
	for _, p := range paths {
		path := scene.MustPath(p)
		m.Set(path, stage.PrimAtPath(path))
	}
	return &m
}

func TestMapRangeIteratorSeamlessSequence(t *testing.T) {
	stage := buildStage(t,
		"/A", "/A/A1", "/A/A2",
		"/B",
		"/C", "/C/C1",
	)
	it := NewMapRangeIterator(primMapOf(t, stage, "/A", "/B", "/C"))
	assert.Equal(t, []string{"/A", "/A/A1", "/A/A2", "/B", "/C", "/C/C1"}, drain(it))
}

func TestMapRangeIteratorOrderIsByPathNotInsertion(t *testing.T) {
	stage := buildStage(t, "/A", "/A/A1", "/B", "/C")
	for _, insertion := range [][]string{
		{"/A", "/B", "/C"},
		{"/C", "/A", "/B"},
		{"/B", "/C", "/A"},
	} {
		it := NewMapRangeIterator(primMapOf(t, stage, insertion...))
		assert.Equal(t, []string{"/A", "/A/A1", "/B", "/C"}, drain(it),
			"insertion order %v", insertion)
	}
}

func TestMapRangeIteratorEmptyMap(t *testing.T) {
	it := NewMapRangeIterator(&scene.PrimMap{})
	assert.True(t, it.AtEnd())
	it.Next()
	it.PruneChildren()
	assert.True(t, it.AtEnd())
	assert.Nil(t, it.Current())
}

func TestMapRangeIteratorFirstRootTraversesProxies(t *testing.T) {
	stage := buildStage(t, "/A", "/A/Proto", "/A/Proto/Mesh", "/B", "/B/Proto", "/B/Proto/Mesh")
	stage.PrimAtPath(scene.MustPath("/A/Proto")).SetInstanceable(true)
	stage.PrimAtPath(scene.MustPath("/B/Proto")).SetInstanceable(true)

	// Only the first root's range descends below instanceable prims;
	// ranges bound during transitions do not.
	it := NewMapRangeIterator(primMapOf(t, stage, "/A", "/B"))
	assert.Equal(t, []string{
		"/A", "/A/Proto", "/A/Proto/Mesh",
		"/B", "/B/Proto",
	}, drain(it))
}

func TestMapRangeIteratorEmptyFirstRoot(t *testing.T) {
	stage := buildStage(t, "/A", "/B", "/B/B1")
	stage.PrimAtPath(scene.MustPath("/A")).SetActive(false)

	it := NewMapRangeIterator(primMapOf(t, stage, "/A", "/B"))
	// Reset binds the empty first root without skipping ahead.
	require.False(t, it.AtEnd())
	assert.Nil(t, it.Current())

	// The first advance performs the root-to-root transition.
	it.Next()
	require.False(t, it.AtEnd())
	assert.Equal(t, "/B", it.Current().Path().String())
	it.Next()
	assert.Equal(t, "/B/B1", it.Current().Path().String())
	it.Next()
	assert.True(t, it.AtEnd())
}

func TestMapRangeIteratorEmptyMiddleRoot(t *testing.T) {
	stage := buildStage(t, "/A", "/B", "/C")
	stage.PrimAtPath(scene.MustPath("/B")).SetActive(false)

	it := NewMapRangeIterator(primMapOf(t, stage, "/A", "/B", "/C"))
	require.Equal(t, "/A", it.Current().Path().String())

	// The transition check runs once per advance: the empty middle root
	// parks the cursor on its empty range for one step.
	it.Next()
	require.False(t, it.AtEnd())
	assert.Nil(t, it.Current())

	it.Next()
	require.False(t, it.AtEnd())
	assert.Equal(t, "/C", it.Current().Path().String())
	it.Next()
	assert.True(t, it.AtEnd())
}

func TestMapRangeIteratorPruneWithinRoot(t *testing.T) {
	stage := buildStage(t, "/A", "/A/A1", "/A/A1/Deep", "/B")
	it := NewMapRangeIterator(primMapOf(t, stage, "/A", "/B"))
	it.Next() // /A/A1
	require.Equal(t, "/A/A1", it.Current().Path().String())
	it.PruneChildren()
	it.Next()
	assert.Equal(t, "/B", it.Current().Path().String())
}

func TestMapRangeIteratorReset(t *testing.T) {
	stage := buildStage(t, "/A", "/A/A1", "/B")
	it := NewMapRangeIterator(primMapOf(t, stage, "/A", "/B"))
	full := drain(it)
	require.True(t, it.AtEnd())

	it.Reset()
	assert.Equal(t, full, drain(it))
}

func TestMapRangeIteratorAtEndIsIdempotent(t *testing.T) {
	stage := buildStage(t, "/A")
	it := NewMapRangeIterator(primMapOf(t, stage, "/A"))
	for i := 0; i < 3; i++ {
		assert.False(t, it.AtEnd())
	}
	it.Next()
	for i := 0; i < 3; i++ {
		assert.True(t, it.AtEnd())
	}
}
