package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenephys/scenephys/scene"
)

// buildStage defines prims at the given paths on a fresh stage.
func buildStage(t *testing.T, paths ...string) *scene.Stage {
	t.Helper()
	stage := scene.NewStage()
	for _, p := range paths {
		_, err := stage.DefinePrim(scene.MustPath(p), "Xform")
		require.NoError(t, err)
	}
	return stage
}

// drain walks any iterator variant through the capability contract and
// returns the visited paths as strings.
func drain(it PrimIterator) []string {
	var out []string
	for !it.AtEnd() {
		if prim := it.Current(); prim.IsValid() {
			out = append(out, prim.Path().String())
		} else {
			out = append(out, "<invalid>")
		}
		it.Next()
	}
	return out
}

func worldRange(stage *scene.Stage) *scene.PrimRange {
	return scene.NewPrimRange(stage.PrimAtPath(scene.MustPath("/World")))
}

func TestRangeIteratorVisitsEveryPrimOnce(t *testing.T) {
	stage := buildStage(t,
		"/World",
		"/World/A",
		"/World/A/A1",
		"/World/A/A2",
		"/World/B",
		"/World/B/B1",
	)
	it := NewRangeIterator(worldRange(stage))
	visited := drain(it)
	assert.Equal(t, []string{
		"/World", "/World/A", "/World/A/A1", "/World/A/A2", "/World/B", "/World/B/B1",
	}, visited)
	assert.True(t, it.AtEnd())
}

func TestRangeIteratorPruneSkipsDescendants(t *testing.T) {
	stage := buildStage(t,
		"/World",
		"/World/A",
		"/World/A/A1",
		"/World/A/A1/Deep",
		"/World/A/A2",
		"/World/B",
	)
	it := NewRangeIterator(worldRange(stage))
	it.Next() // /World/A
	require.Equal(t, "/World/A", it.Current().Path().String())
	it.PruneChildren()
	it.Next()
	// Pruning removes every descendant of A; the next prim is A's
	// sibling-or-ancestor continuation.
	assert.Equal(t, "/World/B", it.Current().Path().String())
	it.Next()
	assert.True(t, it.AtEnd())
}

func TestRangeIteratorPruneBeforeNextDoesNotMoveCurrent(t *testing.T) {
	stage := buildStage(t, "/World", "/World/A", "/World/A/A1")
	it := NewRangeIterator(worldRange(stage))
	it.Next()
	it.PruneChildren()
	assert.Equal(t, "/World/A", it.Current().Path().String())
}

func TestRangeIteratorAtEndIsIdempotent(t *testing.T) {
	stage := buildStage(t, "/World")
	it := NewRangeIterator(worldRange(stage))
	for i := 0; i < 3; i++ {
		assert.False(t, it.AtEnd())
	}
	it.Next()
	for i := 0; i < 3; i++ {
		assert.True(t, it.AtEnd())
	}
	it.Next()          // no-op past the end
	it.PruneChildren() // no-op past the end
	assert.True(t, it.AtEnd())
}

func TestRangeIteratorResetRestoresInitialSequence(t *testing.T) {
	stage := buildStage(t, "/World", "/World/A", "/World/A/A1", "/World/B")
	it := NewRangeIterator(worldRange(stage))
	full := drain(it)

	it.Reset()
	it.Next()
	it.PruneChildren()
	it.Next()
	it.Reset()
	assert.Equal(t, full, drain(it))
}

func TestRangeIteratorEmptyRange(t *testing.T) {
	it := NewRangeIterator(scene.NewPrimRange(nil))
	assert.True(t, it.AtEnd())
	it.Next()
	it.PruneChildren()
	assert.True(t, it.AtEnd())
}
