package physics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/scenephys/scenephys/scene"
)

// earthGravity is the gravity magnitude substituted for the -inf
// default, in m/s^2 before unit adjustment.
const earthGravity = 9.81

func parseScene(prim *scene.Prim, stage *scene.Stage) *SceneDesc {
	desc := NewSceneDesc()
	desc.Path = prim.Path()
	if dir, ok := prim.AttrVec3(AttrGravityDirection); ok {
		desc.GravityDirection = dir
	}
	if mag, ok := prim.AttrFloat(AttrGravityMagnitude); ok {
		desc.GravityMagnitude = mag
	}

	if desc.GravityDirection == (r3.Vec{}) {
		desc.GravityDirection = downAxis(stage.UpAxis())
	}
	if desc.GravityMagnitude < -SentinelLimit {
		desc.GravityMagnitude = earthGravity / stage.MetersPerUnit()
	}
	return desc
}

func downAxis(up scene.UpAxis) r3.Vec {
	switch up {
	case scene.UpAxisX:
		return r3.Vec{X: -1}
	case scene.UpAxisY:
		return r3.Vec{Y: -1}
	default:
		return r3.Vec{Z: -1}
	}
}

func parseMaterial(prim *scene.Prim) *RigidBodyMaterialDesc {
	desc := NewRigidBodyMaterialDesc()
	desc.Path = prim.Path()
	if v, ok := prim.AttrFloat(AttrStaticFriction); ok {
		desc.StaticFriction = v
	}
	if v, ok := prim.AttrFloat(AttrDynamicFriction); ok {
		desc.DynamicFriction = v
	}
	if v, ok := prim.AttrFloat(AttrRestitution); ok {
		desc.Restitution = v
	}
	if v, ok := prim.AttrFloat(AttrDensity); ok {
		desc.Density = v
	}
	return desc
}

func parseCollisionGroup(prim *scene.Prim) *CollisionGroupDesc {
	desc := NewCollisionGroupDesc()
	desc.Path = prim.Path()
	if v, ok := prim.AttrBool(AttrInvertFilteredGroups); ok {
		desc.InvertFilteredGroups = v
	}
	if v, ok := prim.AttrString(AttrMergeGroup); ok {
		desc.MergeGroupName = v
	}
	desc.FilteredGroups = prim.Rel(RelFilteredGroups)
	return desc
}

func (ctx *parseContext) parseRigidBody(prim *scene.Prim) *RigidBodyDesc {
	desc := NewRigidBodyDesc()
	desc.Path = prim.Path()

	world := ctx.xform.WorldTransform(prim)
	desc.Position = world.Position
	desc.Rotation = world.Rotation
	desc.Scale = world.Scale

	if v, ok := prim.AttrBool(AttrRigidBodyEnabled); ok {
		desc.RigidBodyEnabled = v
	}
	if v, ok := prim.AttrBool(AttrKinematicEnabled); ok {
		desc.KinematicBody = v
	}
	if v, ok := prim.AttrBool(AttrStartsAsleep); ok {
		desc.StartsAsleep = v
	}
	if v, ok := prim.AttrVec3(AttrVelocity); ok {
		desc.LinearVelocity = v
	}
	if v, ok := prim.AttrVec3(AttrAngularVelocity); ok {
		desc.AngularVelocity = v
	}
	desc.SimulationOwners = prim.Rel(RelSimulationOwner)
	if prim.HasAPI(APIFilteredPairs) {
		desc.FilteredCollisions = prim.Rel(RelFilteredPairs)
	}
	return desc
}

func parseArticulation(prim *scene.Prim) *ArticulationDesc {
	desc := NewArticulationDesc()
	desc.Path = prim.Path()
	desc.RootPrims = []scene.Path{prim.Path()}
	if prim.HasAPI(APIFilteredPairs) {
		desc.FilteredCollisions = prim.Rel(RelFilteredPairs)
	}
	return desc
}
