package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestDefinePrimCreatesAncestors(t *testing.T) {
	stage := NewStage()
	prim, err := stage.DefinePrim(MustPath("/World/Robot/Arm"), "Xform")
	require.NoError(t, err)
	assert.Equal(t, "Xform", prim.TypeName())

	robot := stage.PrimAtPath(MustPath("/World/Robot"))
	require.True(t, robot.IsValid())
	assert.Equal(t, "", robot.TypeName())
	assert.Equal(t, robot, prim.Parent())

	// Redefining fills in the type and keeps the handle.
	again, err := stage.DefinePrim(MustPath("/World/Robot"), "Xform")
	require.NoError(t, err)
	assert.Equal(t, robot, again)
	assert.Equal(t, "Xform", robot.TypeName())
}

func TestDefinePrimRejectsRootAndEmpty(t *testing.T) {
	stage := NewStage()
	_, err := stage.DefinePrim(RootPath, "Xform")
	assert.Error(t, err)
	_, err = stage.DefinePrim(EmptyPath, "Xform")
	assert.Error(t, err)
}

func TestPrimAtPathMissing(t *testing.T) {
	stage := NewStage()
	prim := stage.PrimAtPath(MustPath("/Nope"))
	assert.False(t, prim.IsValid())
	assert.Equal(t, EmptyPath, prim.Path())
	assert.Equal(t, "", prim.TypeName())
}

func TestInvalidPrimAccessorsAreSafe(t *testing.T) {
	var prim *Prim
	assert.False(t, prim.IsValid())
	assert.False(t, prim.IsActive())
	assert.Nil(t, prim.Children())
	assert.False(t, prim.HasAPI("PhysicsRigidBodyAPI"))
	_, ok := prim.AttrFloat("radius")
	assert.False(t, ok)
	assert.Nil(t, prim.Rel("physics:body0"))
	prim.SetAttr("radius", 1.0) // must not panic
}

const stageYAML = `
upAxis: Y
metersPerUnit: 0.01
prims:
  - path: /World
    type: Xform
  - path: /World/Box
    type: Cube
    apiSchemas: [PhysicsRigidBodyAPI, PhysicsCollisionAPI]
    attributes:
      size: 2.0
      physics:velocity: [1, 0, 0]
    relationships:
      physics:simulationOwner: [/World/Scene]
  - path: /World/Hidden
    type: Xform
    active: false
`

func TestReadStage(t *testing.T) {
	stage, err := ReadStage(strings.NewReader(stageYAML))
	require.NoError(t, err)

	assert.Equal(t, UpAxisY, stage.UpAxis())
	assert.Equal(t, 0.01, stage.MetersPerUnit())

	box := stage.PrimAtPath(MustPath("/World/Box"))
	require.True(t, box.IsValid())
	assert.Equal(t, "Cube", box.TypeName())
	assert.True(t, box.HasAPI("PhysicsRigidBodyAPI"))
	assert.True(t, box.HasAPI("PhysicsCollisionAPI"))

	size, ok := box.AttrFloat("size")
	require.True(t, ok)
	assert.Equal(t, 2.0, size)
	vel, ok := box.AttrVec3("physics:velocity")
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 1}, vel)
	assert.Equal(t, []Path{MustPath("/World/Scene")}, box.Rel("physics:simulationOwner"))

	assert.False(t, stage.PrimAtPath(MustPath("/World/Hidden")).IsActive())
}

func TestReadStageErrors(t *testing.T) {
	for name, in := range map[string]string{
		"badPath":   "prims:\n  - path: World\n",
		"badAxis":   "upAxis: W\n",
		"badField":  "primz: []\n",
		"badSyntax": "prims: [\n",
	} {
		_, err := ReadStage(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestPrimString(t *testing.T) {
	stage, err := ReadStage(strings.NewReader(stageYAML))
	require.NoError(t, err)
	out := stage.PrimAtPath(MustPath("/World")).String()
	assert.Equal(t, "World <Xform>\n| Box <Cube>\n| Hidden <Xform>", out)
}
