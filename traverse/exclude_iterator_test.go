package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenephys/scenephys/scene"
)

func TestExcludeListIteratorSkipsBranch(t *testing.T) {
	stage := buildStage(t,
		"/World",
		"/World/E",
		"/World/E/E1",
		"/World/E/E2",
		"/World/Keep",
		"/World/Keep/K1",
	)
	it := NewExcludeListIterator(worldRange(stage), []scene.Path{scene.MustPath("/World/E")})
	// The excluded prim and its whole branch vanish; everything else
	// keeps its relative order.
	assert.Equal(t, []string{"/World", "/World/Keep", "/World/Keep/K1"}, drain(it))
}

func TestExcludeListIteratorMultipleExcludes(t *testing.T) {
	stage := buildStage(t,
		"/World",
		"/World/A", "/World/A/A1",
		"/World/B",
		"/World/C", "/World/C/C1",
	)
	excludes := []scene.Path{scene.MustPath("/World/A"), scene.MustPath("/World/C")}
	it := NewExcludeListIterator(worldRange(stage), excludes)
	assert.Equal(t, []string{"/World", "/World/B"}, drain(it))
}

func TestExcludeListIteratorDescendantsNotListedIndividually(t *testing.T) {
	stage := buildStage(t, "/World", "/World/E", "/World/E/E1", "/World/E/E1/Deep")
	it := NewExcludeListIterator(worldRange(stage), []scene.Path{scene.MustPath("/World/E")})
	assert.Equal(t, []string{"/World"}, drain(it))
}

func TestExcludeListIteratorCallerPruneStillApplies(t *testing.T) {
	stage := buildStage(t,
		"/World",
		"/World/A",
		"/World/A/A1",
		"/World/B",
	)
	it := NewExcludeListIterator(worldRange(stage), []scene.Path{scene.MustPath("/World/B")})
	it.Next() // /World/A
	require.Equal(t, "/World/A", it.Current().Path().String())
	// Caller-driven pruning is independent of exclusion-driven pruning.
	it.PruneChildren()
	it.Next()
	assert.True(t, it.AtEnd())
}

func TestExcludeListIteratorInitialPositionUnfiltered(t *testing.T) {
	stage := buildStage(t, "/World", "/World/A")
	it := NewExcludeListIterator(worldRange(stage), []scene.Path{scene.MustPath("/World")})
	// Filtering happens only while advancing: an excluded root is still
	// yielded as the initial position.
	require.False(t, it.AtEnd())
	assert.Equal(t, "/World", it.Current().Path().String())
}

func TestExcludeListIteratorEmptyExcludeList(t *testing.T) {
	stage := buildStage(t, "/World", "/World/A")
	it := NewExcludeListIterator(worldRange(stage), nil)
	assert.Equal(t, []string{"/World", "/World/A"}, drain(it))
}

func TestExcludeListIteratorReset(t *testing.T) {
	stage := buildStage(t, "/World", "/World/E", "/World/Keep")
	it := NewExcludeListIterator(worldRange(stage), []scene.Path{scene.MustPath("/World/E")})
	full := drain(it)
	it.Reset()
	assert.Equal(t, full, drain(it))
}
