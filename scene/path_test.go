package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathParseTestcase struct {
	in    string
	valid bool
}

var pathParseTests = []pathParseTestcase{
	{"/", true},
	{"/World", true},
	{"/World/Robot_01/Arm", true},
	{"/_private", true},
	{"", false},
	{"World", false},
	{"/World/", false},
	{"//World", false},
	{"/World/1stArm", false},
	{"/World/Arm-Left", false},
	{"/World/Arm Left", false},
}

func TestNewPath(t *testing.T) {
	for _, tt := range pathParseTests {
		p, err := NewPath(tt.in)
		if tt.valid {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.in, p.String())
		} else {
			assert.Error(t, err, tt.in)
		}
	}
}

func TestPathParentName(t *testing.T) {
	p := MustPath("/World/Robot/Arm")
	assert.Equal(t, "Arm", p.Name())
	assert.Equal(t, MustPath("/World/Robot"), p.Parent())
	assert.Equal(t, MustPath("/World"), p.Parent().Parent())
	assert.Equal(t, RootPath, MustPath("/World").Parent())
	assert.Equal(t, RootPath, RootPath.Parent())
	assert.Equal(t, "", RootPath.Name())
}

func TestPathAppendChild(t *testing.T) {
	p, err := RootPath.AppendChild("World")
	require.NoError(t, err)
	p, err = p.AppendChild("Box")
	require.NoError(t, err)
	assert.Equal(t, "/World/Box", p.String())

	_, err = p.AppendChild("bad name")
	assert.Error(t, err)
	_, err = EmptyPath.AppendChild("World")
	assert.Error(t, err)
}

func TestPathHasPrefix(t *testing.T) {
	p := MustPath("/World/Robot/Arm")
	assert.True(t, p.HasPrefix(p))
	assert.True(t, p.HasPrefix(MustPath("/World/Robot")))
	assert.True(t, p.HasPrefix(MustPath("/World")))
	assert.True(t, p.HasPrefix(RootPath))
	assert.False(t, p.HasPrefix(MustPath("/World/Rob")))
	assert.False(t, MustPath("/World").HasPrefix(p))
	assert.False(t, p.HasPrefix(EmptyPath))
}

func TestPathCompareOrdersAncestorsFirst(t *testing.T) {
	ordered := []Path{
		MustPath("/World"),
		MustPath("/World/Box"),
		MustPath("/World/Box/Lid"),
		MustPath("/World/Box2"),
		MustPath("/World2"),
	}
	for i := 0; i < len(ordered)-1; i++ {
		assert.Negative(t, ordered[i].Compare(ordered[i+1]),
			"%s should sort before %s", ordered[i], ordered[i+1])
	}
}
