package physics

// Validator name tokens. Plugin-provided validator names carry the
// "scenephys:" prefix.
const (
	ValidatorRigidBodyChecker    = "scenephys:RigidBodyChecker"
	ValidatorColliderChecker     = "scenephys:ColliderChecker"
	ValidatorPhysicsJointChecker = "scenephys:PhysicsJointChecker"
	ValidatorArticulationChecker = "scenephys:ArticulationChecker"
)

// ValidatorKeywordPhysics groups every validator in this package.
const ValidatorKeywordPhysics = "PhysicsValidators"

// Validation error identifier tokens.
const (
	ErrNestedRigidBody                 = "NestedRigidBody"
	ErrNestedArticulation              = "NestedArticulation"
	ErrArticulationOnStaticBody        = "ArticulationOnStaticBody"
	ErrArticulationOnKinematicBody     = "ArticulationOnKinematicBody"
	ErrRigidBodyOrientationScale       = "RigidBodyOrientationScale"
	ErrRigidBodyNonXformable           = "RigidBodyNonXformable"
	ErrRigidBodyNonInstanceable        = "RigidBodyNonInstanceable"
	ErrJointInvalidPrimRel             = "JointInvalidPrimRel"
	ErrJointMultiplePrimsRel           = "JointMultiplePrimsRel"
	ErrColliderNonUniformScale         = "ColliderNonUniformScale"
	ErrColliderSpherePointsDataMissing = "ColliderSpherePointsDataMissing"
)
