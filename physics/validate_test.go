package physics

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenephys/scenephys/scene"
)

func tokensOf(findings []*ValidationError) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Token
	}
	return out
}

func TestCheckRigidBodies(t *testing.T) {
	stage := scene.NewStage()
	definePrim(t, stage, "/World/Outer", "Xform", APIRigidBody)
	definePrim(t, stage, "/World/Outer/Inner", "Xform", APIRigidBody)
	definePrim(t, stage, "/World/Instance", "Xform", APIRigidBody).SetInstanceable(true)
	definePrim(t, stage, "/World/Joint", TypeFixedJoint, APIRigidBody)

	findings := CheckRigidBodies(stage)
	assert.ElementsMatch(t, []string{
		ErrNestedRigidBody,
		ErrRigidBodyNonInstanceable,
		ErrRigidBodyNonXformable,
	}, tokensOf(findings))
}

func TestCheckRigidBodyOrientationScale(t *testing.T) {
	stage := scene.NewStage()
	body := definePrim(t, stage, "/World/Slab", "Xform", APIRigidBody)
	body.SetAttr(AttrScale, []float64{1, 2, 1})
	body.SetAttr(AttrOrient, []float64{0.707, 0, 0.707, 0})

	findings := CheckRigidBodies(stage)
	require.Len(t, findings, 1)
	assert.Equal(t, ErrRigidBodyOrientationScale, findings[0].Token)
	assert.Equal(t, scene.MustPath("/World/Slab"), findings[0].Path)
}

func TestCheckColliders(t *testing.T) {
	stage := scene.NewStage()
	ball := definePrim(t, stage, "/World/Ball", TypeSphere, APICollision)
	ball.SetAttr(AttrScale, []float64{1, 2, 1})
	definePrim(t, stage, "/World/Foam", TypePoints, APICollision)
	box := definePrim(t, stage, "/World/Box", TypeCube, APICollision)
	box.SetAttr(AttrScale, []float64{1, 2, 3}) // cubes may scale freely

	findings := CheckColliders(stage)
	assert.ElementsMatch(t, []string{
		ErrColliderNonUniformScale,
		ErrColliderSpherePointsDataMissing,
	}, tokensOf(findings))
}

func TestCheckJoints(t *testing.T) {
	stage := scene.NewStage()
	definePrim(t, stage, "/World/Body", "Xform", APIRigidBody)
	joint := definePrim(t, stage, "/World/Hinge", TypeRevoluteJoint)
	joint.SetRel(RelBody0, []scene.Path{scene.MustPath("/World/Gone")})
	joint.SetRel(RelBody1, []scene.Path{
		scene.MustPath("/World/Body"),
		scene.MustPath("/World/Body"),
	})

	findings := CheckJoints(stage)
	assert.ElementsMatch(t, []string{
		ErrJointInvalidPrimRel,
		ErrJointMultiplePrimsRel,
	}, tokensOf(findings))
}

func TestCheckArticulations(t *testing.T) {
	stage := scene.NewStage()
	definePrim(t, stage, "/Robot", "Xform", APIArticulationRoot)
	definePrim(t, stage, "/Robot/Sub", "Xform", APIArticulationRoot)
	definePrim(t, stage, "/World/Static", TypeCube, APIArticulationRoot, APICollision)
	kin := definePrim(t, stage, "/World/Kin", "Xform", APIArticulationRoot, APIRigidBody)
	kin.SetAttr(AttrKinematicEnabled, true)

	findings := CheckArticulations(stage)
	assert.ElementsMatch(t, []string{
		ErrNestedArticulation,
		ErrArticulationOnStaticBody,
		ErrArticulationOnKinematicBody,
	}, tokensOf(findings))
}

func TestValidateStageAggregates(t *testing.T) {
	stage := scene.NewStage()
	assert.NoError(t, ValidateStage(stage), "empty stage is clean")

	definePrim(t, stage, "/World/Outer", "Xform", APIRigidBody)
	definePrim(t, stage, "/World/Outer/Inner", "Xform", APIRigidBody)
	ball := definePrim(t, stage, "/World/Ball", TypeSphere, APICollision)
	ball.SetAttr(AttrScale, []float64{1, 2, 1})

	err := ValidateStage(stage)
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	var verr *ValidationError
	require.ErrorAs(t, merr.Errors[0], &verr)
	assert.Equal(t, ValidatorRigidBodyChecker, verr.Validator)
}
