// Package physics extracts physics descriptors from a scene hierarchy.
// An extraction walk visits prims through the traverse iterators, builds
// a typed descriptor per recognized prim, resolves cross-prim
// relationships in a finalize pass and reports batches of descriptors
// per object type through a caller callback.
package physics

import (
	"math"

	"github.com/scenephys/scenephys/scene"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// SentinelLimit is the threshold above which a force or torque limit is
// treated as "none".
const SentinelLimit = 0.5e308

// ObjectType enumerates every descriptor kind an extraction can report.
type ObjectType int

const (
	ObjectUndefined ObjectType = iota

	ObjectScene

	ObjectRigidBody

	ObjectSphereShape
	ObjectCubeShape
	ObjectCapsuleShape
	ObjectCylinderShape
	ObjectConeShape
	ObjectMeshShape
	ObjectPlaneShape
	ObjectCustomShape
	ObjectSpherePointsShape

	ObjectFixedJoint
	ObjectRevoluteJoint
	ObjectPrismaticJoint
	ObjectSphericalJoint
	ObjectDistanceJoint
	ObjectD6Joint
	ObjectCustomJoint

	ObjectRigidBodyMaterial

	ObjectArticulation

	ObjectCollisionGroup

	objectTypeCount
)

var objectTypeNames = map[ObjectType]string{
	ObjectUndefined:         "Undefined",
	ObjectScene:             "Scene",
	ObjectRigidBody:         "RigidBody",
	ObjectSphereShape:       "SphereShape",
	ObjectCubeShape:         "CubeShape",
	ObjectCapsuleShape:      "CapsuleShape",
	ObjectCylinderShape:     "CylinderShape",
	ObjectConeShape:         "ConeShape",
	ObjectMeshShape:         "MeshShape",
	ObjectPlaneShape:        "PlaneShape",
	ObjectCustomShape:       "CustomShape",
	ObjectSpherePointsShape: "SpherePointsShape",
	ObjectFixedJoint:        "FixedJoint",
	ObjectRevoluteJoint:     "RevoluteJoint",
	ObjectPrismaticJoint:    "PrismaticJoint",
	ObjectSphericalJoint:    "SphericalJoint",
	ObjectDistanceJoint:     "DistanceJoint",
	ObjectD6Joint:           "D6Joint",
	ObjectCustomJoint:       "CustomJoint",
	ObjectRigidBodyMaterial: "RigidBodyMaterial",
	ObjectArticulation:      "Articulation",
	ObjectCollisionGroup:    "CollisionGroup",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Axis names a principal axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// JointDOF names a joint degree of freedom.
type JointDOF int

const (
	JointDOFDistance JointDOF = iota
	JointDOFTransX
	JointDOFTransY
	JointDOFTransZ
	JointDOFRotX
	JointDOFRotY
	JointDOFRotZ
)

// Desc is implemented by every descriptor. Each descriptor embeds
// ObjectDesc, which carries the type tag, the source prim path and the
// validity flag.
type Desc interface {
	DescType() ObjectType
	DescPath() scene.Path
	DescValid() bool
}

// ObjectDesc is the common head of every descriptor. Parsing may
// succeed yet leave a descriptor flagged invalid; consumers check Valid
// before acting on it.
type ObjectDesc struct {
	Type  ObjectType
	Path  scene.Path
	Valid bool
}

func (d *ObjectDesc) DescType() ObjectType { return d.Type }
func (d *ObjectDesc) DescPath() scene.Path { return d.Path }
func (d *ObjectDesc) DescValid() bool      { return d.Valid }

// SceneDesc describes a physics scene prim. A zero gravity direction
// means "negative up axis"; a gravity magnitude of -inf means Earth
// gravity adjusted by the stage's meters-per-unit.
type SceneDesc struct {
	ObjectDesc
	GravityDirection r3.Vec
	GravityMagnitude float64
}

func NewSceneDesc() *SceneDesc {
	return &SceneDesc{
		ObjectDesc:       ObjectDesc{Type: ObjectScene, Valid: true},
		GravityMagnitude: math.Inf(-1),
	}
}

// RigidBodyMaterialDesc describes a physics material.
type RigidBodyMaterialDesc struct {
	ObjectDesc
	StaticFriction  float64
	DynamicFriction float64
	Restitution     float64
	Density         float64
}

func NewRigidBodyMaterialDesc() *RigidBodyMaterialDesc {
	return &RigidBodyMaterialDesc{
		ObjectDesc: ObjectDesc{Type: ObjectRigidBodyMaterial, Valid: true},
		Density:    -1,
	}
}

// CollisionGroupDesc describes a collision group and its filtering.
type CollisionGroupDesc struct {
	ObjectDesc
	InvertFilteredGroups bool
	FilteredGroups       []scene.Path
	MergeGroupName       string
	MergedGroups         []scene.Path
}

func NewCollisionGroupDesc() *CollisionGroupDesc {
	return &CollisionGroupDesc{
		ObjectDesc: ObjectDesc{Type: ObjectCollisionGroup, Valid: true},
	}
}

// ShapeDesc is the common part of every collision shape descriptor.
// Shape sizes already contain accumulated scale; only mesh collisions
// report a separate geometry scale.
type ShapeDesc struct {
	ObjectDesc
	RigidBody          scene.Path // owning body; unset means a static collider
	LocalPos           r3.Vec
	LocalRot           quat.Number
	LocalScale         r3.Vec
	Materials          []scene.Path
	SimulationOwners   []scene.Path
	FilteredCollisions []scene.Path
	CollisionGroups    []scene.Path
	CollisionEnabled   bool
}

func newShapeDesc(typ ObjectType) ShapeDesc {
	return ShapeDesc{
		ObjectDesc:       ObjectDesc{Type: typ, Valid: true},
		LocalRot:         quat.Number{Real: 1},
		LocalScale:       r3.Vec{X: 1, Y: 1, Z: 1},
		CollisionEnabled: true,
	}
}

// SphereShapeDesc describes a sphere collision shape.
type SphereShapeDesc struct {
	ShapeDesc
	Radius float64
}

func NewSphereShapeDesc() *SphereShapeDesc {
	return &SphereShapeDesc{ShapeDesc: newShapeDesc(ObjectSphereShape)}
}

// CubeShapeDesc describes a box collision shape.
type CubeShapeDesc struct {
	ShapeDesc
	HalfExtents r3.Vec
}

func NewCubeShapeDesc() *CubeShapeDesc {
	return &CubeShapeDesc{
		ShapeDesc:   newShapeDesc(ObjectCubeShape),
		HalfExtents: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// CapsuleShapeDesc describes a capsule collision shape.
type CapsuleShapeDesc struct {
	ShapeDesc
	Radius     float64
	HalfHeight float64
	Axis       Axis
}

func NewCapsuleShapeDesc() *CapsuleShapeDesc {
	return &CapsuleShapeDesc{ShapeDesc: newShapeDesc(ObjectCapsuleShape)}
}

// CylinderShapeDesc describes a cylinder collision shape.
type CylinderShapeDesc struct {
	ShapeDesc
	Radius     float64
	HalfHeight float64
	Axis       Axis
}

func NewCylinderShapeDesc() *CylinderShapeDesc {
	return &CylinderShapeDesc{ShapeDesc: newShapeDesc(ObjectCylinderShape)}
}

// ConeShapeDesc describes a cone collision shape.
type ConeShapeDesc struct {
	ShapeDesc
	Radius     float64
	HalfHeight float64
	Axis       Axis
}

func NewConeShapeDesc() *ConeShapeDesc {
	return &ConeShapeDesc{ShapeDesc: newShapeDesc(ObjectConeShape)}
}

// PlaneShapeDesc describes an infinite plane collision shape.
type PlaneShapeDesc struct {
	ShapeDesc
	Axis Axis
}

func NewPlaneShapeDesc() *PlaneShapeDesc {
	return &PlaneShapeDesc{ShapeDesc: newShapeDesc(ObjectPlaneShape)}
}

// MeshShapeDesc describes a mesh collision shape.
type MeshShapeDesc struct {
	ShapeDesc
	Approximation string
	MeshScale     r3.Vec
	DoubleSided   bool
}

func NewMeshShapeDesc() *MeshShapeDesc {
	return &MeshShapeDesc{
		ShapeDesc: newShapeDesc(ObjectMeshShape),
		MeshScale: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// CustomShapeDesc describes a collision shape of a custom geometry type
// registered through CustomTokens.
type CustomShapeDesc struct {
	ShapeDesc
	CustomGeometryToken string
}

func NewCustomShapeDesc() *CustomShapeDesc {
	return &CustomShapeDesc{ShapeDesc: newShapeDesc(ObjectCustomShape)}
}

// SpherePoint is one sphere of a sphere-points shape.
type SpherePoint struct {
	Center r3.Vec
	Radius float64
}

// SpherePointsShapeDesc describes a collection of spheres populated
// from a points primitive.
type SpherePointsShapeDesc struct {
	ShapeDesc
	SpherePoints []SpherePoint
}

func NewSpherePointsShapeDesc() *SpherePointsShapeDesc {
	return &SpherePointsShapeDesc{ShapeDesc: newShapeDesc(ObjectSpherePointsShape)}
}

// RigidBodyDesc describes a dynamic, kinematic or static rigid body.
type RigidBodyDesc struct {
	ObjectDesc
	Collisions         []scene.Path
	FilteredCollisions []scene.Path
	SimulationOwners   []scene.Path
	Position           r3.Vec
	Rotation           quat.Number
	Scale              r3.Vec

	RigidBodyEnabled bool
	KinematicBody    bool
	StartsAsleep     bool
	LinearVelocity   r3.Vec
	AngularVelocity  r3.Vec
}

func NewRigidBodyDesc() *RigidBodyDesc {
	return &RigidBodyDesc{
		ObjectDesc:       ObjectDesc{Type: ObjectRigidBody, Valid: true},
		Rotation:         quat.Number{Real: 1},
		Scale:            r3.Vec{X: 1, Y: 1, Z: 1},
		RigidBodyEnabled: true,
	}
}

// JointLimit bounds one joint degree of freedom. The two bounds are
// angles, linear positions or distances depending on the DOF.
type JointLimit struct {
	Enabled bool
	Lower   float64
	Upper   float64
}

func NewJointLimit() JointLimit {
	return JointLimit{Lower: 90, Upper: -90}
}

// JointDrive describes a drive on one joint degree of freedom with
// force = stiffness*(targetPosition-position) + damping*(targetVelocity-velocity).
type JointDrive struct {
	Enabled        bool
	TargetPosition float64
	TargetVelocity float64
	ForceLimit     float64
	Stiffness      float64
	Damping        float64
	Acceleration   bool
}

func NewJointDrive() JointDrive {
	return JointDrive{ForceLimit: math.MaxFloat64}
}

// JointDesc is the common part of every joint descriptor.
type JointDesc struct {
	ObjectDesc
	Rel0                    scene.Path
	Rel1                    scene.Path
	Body0                   scene.Path
	Body1                   scene.Path
	LocalPose0Position      r3.Vec
	LocalPose0Orientation   quat.Number
	LocalPose1Position      r3.Vec
	LocalPose1Orientation   quat.Number
	JointEnabled            bool
	BreakForce              float64
	BreakTorque             float64
	ExcludeFromArticulation bool
	CollisionEnabled        bool
}

func newJointDesc(typ ObjectType) JointDesc {
	return JointDesc{
		ObjectDesc:            ObjectDesc{Type: typ, Valid: true},
		LocalPose0Orientation: quat.Number{Real: 1},
		LocalPose1Orientation: quat.Number{Real: 1},
		JointEnabled:          true,
		BreakForce:            math.MaxFloat64,
		BreakTorque:           math.MaxFloat64,
	}
}

// FixedJointDesc locks all degrees of freedom.
type FixedJointDesc struct {
	JointDesc
}

func NewFixedJointDesc() *FixedJointDesc {
	return &FixedJointDesc{JointDesc: newJointDesc(ObjectFixedJoint)}
}

// RevoluteJointDesc describes a hinge joint.
type RevoluteJointDesc struct {
	JointDesc
	Axis  Axis
	Limit JointLimit
	Drive JointDrive
}

func NewRevoluteJointDesc() *RevoluteJointDesc {
	return &RevoluteJointDesc{
		JointDesc: newJointDesc(ObjectRevoluteJoint),
		Limit:     NewJointLimit(),
		Drive:     NewJointDrive(),
	}
}

// PrismaticJointDesc describes a sliding joint.
type PrismaticJointDesc struct {
	JointDesc
	Axis  Axis
	Limit JointLimit
	Drive JointDrive
}

func NewPrismaticJointDesc() *PrismaticJointDesc {
	return &PrismaticJointDesc{
		JointDesc: newJointDesc(ObjectPrismaticJoint),
		Limit:     NewJointLimit(),
		Drive:     NewJointDrive(),
	}
}

// SphericalJointDesc describes a ball joint with a cone limit.
type SphericalJointDesc struct {
	JointDesc
	Axis  Axis
	Limit JointLimit
}

func NewSphericalJointDesc() *SphericalJointDesc {
	return &SphericalJointDesc{
		JointDesc: newJointDesc(ObjectSphericalJoint),
		Limit:     NewJointLimit(),
	}
}

// DistanceJointDesc keeps two bodies within a distance band.
type DistanceJointDesc struct {
	JointDesc
	MinEnabled bool
	MaxEnabled bool
	Limit      JointLimit
}

func NewDistanceJointDesc() *DistanceJointDesc {
	return &DistanceJointDesc{
		JointDesc: newJointDesc(ObjectDistanceJoint),
		Limit:     NewJointLimit(),
	}
}

// D6JointLimit pairs one DOF with its limit.
type D6JointLimit struct {
	DOF   JointDOF
	Limit JointLimit
}

// D6JointDrive pairs one DOF with its drive.
type D6JointDrive struct {
	DOF   JointDOF
	Drive JointDrive
}

// D6JointDesc describes a generic joint with per-DOF limits and drives.
type D6JointDesc struct {
	JointDesc
	JointLimits []D6JointLimit
	JointDrives []D6JointDrive
}

func NewD6JointDesc() *D6JointDesc {
	return &D6JointDesc{JointDesc: newJointDesc(ObjectD6Joint)}
}

// CustomJointDesc describes a joint of a custom type registered through
// CustomTokens.
type CustomJointDesc struct {
	JointDesc
}

func NewCustomJointDesc() *CustomJointDesc {
	return &CustomJointDesc{JointDesc: newJointDesc(ObjectCustomJoint)}
}

// ArticulationDesc describes a reduced-coordinate articulation and the
// joints and bodies eligible to belong to it.
type ArticulationDesc struct {
	ObjectDesc
	RootPrims          []scene.Path
	FilteredCollisions []scene.Path
	ArticulatedJoints  []scene.Path
	ArticulatedBodies  []scene.Path
}

func NewArticulationDesc() *ArticulationDesc {
	return &ArticulationDesc{
		ObjectDesc: ObjectDesc{Type: ObjectArticulation, Valid: true},
	}
}
