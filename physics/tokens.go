package physics

// Schema type tokens recognized on prims.
const (
	TypePhysicsScene   = "PhysicsScene"
	TypeCollisionGroup = "PhysicsCollisionGroup"
	TypeMaterial       = "Material"

	TypeFixedJoint     = "PhysicsFixedJoint"
	TypeRevoluteJoint  = "PhysicsRevoluteJoint"
	TypePrismaticJoint = "PhysicsPrismaticJoint"
	TypeSphericalJoint = "PhysicsSphericalJoint"
	TypeDistanceJoint  = "PhysicsDistanceJoint"
	TypeD6Joint        = "PhysicsJoint"

	TypeSphere   = "Sphere"
	TypeCube     = "Cube"
	TypeCapsule  = "Capsule"
	TypeCylinder = "Cylinder"
	TypeCone     = "Cone"
	TypeMesh     = "Mesh"
	TypePlane    = "Plane"
	TypePoints   = "Points"
)

// Applied API schema tokens.
const (
	APIRigidBody        = "PhysicsRigidBodyAPI"
	APICollision        = "PhysicsCollisionAPI"
	APIMeshCollision    = "PhysicsMeshCollisionAPI"
	APIMaterial         = "PhysicsMaterialAPI"
	APIArticulationRoot = "PhysicsArticulationRootAPI"
	APIFilteredPairs    = "PhysicsFilteredPairsAPI"
)

// Attribute tokens.
const (
	AttrRigidBodyEnabled     = "physics:rigidBodyEnabled"
	AttrKinematicEnabled     = "physics:kinematicEnabled"
	AttrStartsAsleep         = "physics:startsAsleep"
	AttrVelocity             = "physics:velocity"
	AttrAngularVelocity      = "physics:angularVelocity"
	AttrCollisionEnabled     = "physics:collisionEnabled"
	AttrDensity              = "physics:density"
	AttrStaticFriction       = "physics:staticFriction"
	AttrDynamicFriction      = "physics:dynamicFriction"
	AttrRestitution          = "physics:restitution"
	AttrGravityDirection     = "physics:gravityDirection"
	AttrGravityMagnitude     = "physics:gravityMagnitude"
	AttrInvertFilteredGroups = "physics:invertFilteredGroups"
	AttrMergeGroup           = "physics:mergeGroup"
	AttrApproximation        = "physics:approximation"

	AttrJointEnabled            = "physics:jointEnabled"
	AttrJointAxis               = "physics:axis"
	AttrJointLowerLimit         = "physics:lowerLimit"
	AttrJointUpperLimit         = "physics:upperLimit"
	AttrJointConeAngle0Limit    = "physics:coneAngle0Limit"
	AttrJointConeAngle1Limit    = "physics:coneAngle1Limit"
	AttrJointMinDistance        = "physics:minDistance"
	AttrJointMaxDistance        = "physics:maxDistance"
	AttrJointBreakForce         = "physics:breakForce"
	AttrJointBreakTorque        = "physics:breakTorque"
	AttrJointCollisionEnabled   = "physics:jointCollisionEnabled"
	AttrExcludeFromArticulation = "physics:excludeFromArticulation"
	AttrLocalPos0               = "physics:localPos0"
	AttrLocalRot0               = "physics:localRot0"
	AttrLocalPos1               = "physics:localPos1"
	AttrLocalRot1               = "physics:localRot1"

	AttrRadius      = "radius"
	AttrHeight      = "height"
	AttrSize        = "size"
	AttrAxis        = "axis"
	AttrDoubleSided = "doubleSided"
	AttrPoints      = "points"
	AttrWidths      = "widths"

	AttrTranslate = "xformOp:translate"
	AttrOrient    = "xformOp:orient"
	AttrScale     = "xformOp:scale"
)

// Relationship tokens.
const (
	RelSimulationOwner       = "physics:simulationOwner"
	RelMaterialBinding       = "material:binding:physics"
	RelFilteredGroups        = "physics:filteredGroups"
	RelFilteredPairs         = "physics:filteredPairs"
	RelCollisionGroupMembers = "collection:colliders:includes"
	RelBody0                 = "physics:body0"
	RelBody1                 = "physics:body1"
)

// Drive namespaces. A drive attribute is composed as
// "drive:<dof>:physics:<field>", e.g. "drive:angular:physics:stiffness".
const (
	DriveAngular = "angular"
	DriveLinear  = "linear"

	DriveFieldTargetPosition = "targetPosition"
	DriveFieldTargetVelocity = "targetVelocity"
	DriveFieldMaxForce       = "maxForce"
	DriveFieldStiffness      = "stiffness"
	DriveFieldDamping        = "damping"
	DriveFieldAcceleration   = "acceleration"

	LimitFieldLow  = "low"
	LimitFieldHigh = "high"
)

// DriveAttr composes the attribute token for one drive field.
func DriveAttr(dof, field string) string {
	return "drive:" + dof + ":physics:" + field
}

// LimitAttr composes the attribute token for one limit field, e.g.
// "limit:rotX:physics:low".
func LimitAttr(dof, field string) string {
	return "limit:" + dof + ":physics:" + field
}

// D6 DOF namespace tokens used in limit/drive attribute names.
const (
	DOFTransX   = "transX"
	DOFTransY   = "transY"
	DOFTransZ   = "transZ"
	DOFRotX     = "rotX"
	DOFRotY     = "rotY"
	DOFRotZ     = "rotZ"
	DOFDistance = "distance"
)
