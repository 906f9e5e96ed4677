package physics

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/scenephys/scenephys/scene"
	"github.com/scenephys/scenephys/traverse"
)

// ValidationError is one rule violation found on a prim. Token is one
// of the validation error identifier tokens.
type ValidationError struct {
	Validator string
	Token     string
	Path      scene.Path
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: [%s] %s: %s", e.Validator, e.Token, e.Path, e.Message)
}

// ValidateStage runs every physics checker over the whole stage and
// returns the aggregated findings, or nil when the stage is clean.
func ValidateStage(stage *scene.Stage) error {
	var result *multierror.Error
	checkers := []func(*scene.Stage) []*ValidationError{
		CheckRigidBodies,
		CheckColliders,
		CheckJoints,
		CheckArticulations,
	}
	for _, check := range checkers {
		for _, finding := range check(stage) {
			result = multierror.Append(result, finding)
		}
	}
	return result.ErrorOrNil()
}

func walkStage(stage *scene.Stage, visit func(prim *scene.Prim)) {
	it := traverse.NewRangeIterator(scene.NewPrimRange(stage.PseudoRoot()))
	for !it.AtEnd() {
		if prim := it.Current(); prim.IsValid() {
			visit(prim)
		}
		it.Next()
	}
}

// CheckRigidBodies flags nested bodies, bodies on instanceable prims
// and bodies whose orientation is combined with non-uniform scale.
func CheckRigidBodies(stage *scene.Stage) []*ValidationError {
	var findings []*ValidationError
	xform := NewXformCache()
	walkStage(stage, func(prim *scene.Prim) {
		if !prim.HasAPI(APIRigidBody) {
			return
		}
		for p := prim.Parent(); p.IsValid(); p = p.Parent() {
			if p.HasAPI(APIRigidBody) {
				findings = append(findings, &ValidationError{
					Validator: ValidatorRigidBodyChecker,
					Token:     ErrNestedRigidBody,
					Path:      prim.Path(),
					Message:   fmt.Sprintf("rigid body nested under rigid body %s", p.Path()),
				})
				break
			}
		}
		switch prim.TypeName() {
		case TypePhysicsScene, TypeCollisionGroup, TypeMaterial,
			TypeFixedJoint, TypeRevoluteJoint, TypePrismaticJoint,
			TypeSphericalJoint, TypeDistanceJoint, TypeD6Joint:
			findings = append(findings, &ValidationError{
				Validator: ValidatorRigidBodyChecker,
				Token:     ErrRigidBodyNonXformable,
				Path:      prim.Path(),
				Message:   fmt.Sprintf("rigid body on non-xformable prim type %s", prim.TypeName()),
			})
		}
		if prim.IsInstanceable() {
			findings = append(findings, &ValidationError{
				Validator: ValidatorRigidBodyChecker,
				Token:     ErrRigidBodyNonInstanceable,
				Path:      prim.Path(),
				Message:   "rigid body on an instanceable prim",
			})
		}
		world := xform.WorldTransform(prim)
		if !isUniform(world.Scale) && world.Rotation.Real != 1 {
			findings = append(findings, &ValidationError{
				Validator: ValidatorRigidBodyChecker,
				Token:     ErrRigidBodyOrientationScale,
				Path:      prim.Path(),
				Message:   "orientation combined with non-uniform scale",
			})
		}
	})
	return findings
}

// CheckColliders flags non-uniform scale on shapes that cannot express
// it and sphere-points colliders missing point data.
func CheckColliders(stage *scene.Stage) []*ValidationError {
	var findings []*ValidationError
	xform := NewXformCache()
	walkStage(stage, func(prim *scene.Prim) {
		if !prim.HasAPI(APICollision) {
			return
		}
		switch prim.TypeName() {
		case TypeSphere, TypeCapsule, TypeCylinder, TypeCone:
			if !isUniform(xform.WorldTransform(prim).Scale) {
				findings = append(findings, &ValidationError{
					Validator: ValidatorColliderChecker,
					Token:     ErrColliderNonUniformScale,
					Path:      prim.Path(),
					Message:   fmt.Sprintf("%s collider cannot express non-uniform scale", prim.TypeName()),
				})
			}
		case TypePoints:
			points, okPoints := prim.AttrVec3Slice(AttrPoints)
			widths, okWidths := prim.AttrFloatSlice(AttrWidths)
			if !okPoints || !okWidths || len(points) != len(widths) {
				findings = append(findings, &ValidationError{
					Validator: ValidatorColliderChecker,
					Token:     ErrColliderSpherePointsDataMissing,
					Path:      prim.Path(),
					Message:   "points collider is missing points or widths data",
				})
			}
		}
	})
	return findings
}

var jointTypeNames = map[string]struct{}{
	TypeFixedJoint:     {},
	TypeRevoluteJoint:  {},
	TypePrismaticJoint: {},
	TypeSphericalJoint: {},
	TypeDistanceJoint:  {},
	TypeD6Joint:        {},
}

// CheckJoints flags joint body relationships that do not resolve or
// hold multiple targets.
func CheckJoints(stage *scene.Stage) []*ValidationError {
	var findings []*ValidationError
	walkStage(stage, func(prim *scene.Prim) {
		if _, ok := jointTypeNames[prim.TypeName()]; !ok {
			return
		}
		for _, rel := range []string{RelBody0, RelBody1} {
			targets := prim.Rel(rel)
			if len(targets) > 1 {
				findings = append(findings, &ValidationError{
					Validator: ValidatorPhysicsJointChecker,
					Token:     ErrJointMultiplePrimsRel,
					Path:      prim.Path(),
					Message:   fmt.Sprintf("%s has %d targets", rel, len(targets)),
				})
			}
			for _, target := range targets {
				if !stage.PrimAtPath(target).IsValid() {
					findings = append(findings, &ValidationError{
						Validator: ValidatorPhysicsJointChecker,
						Token:     ErrJointInvalidPrimRel,
						Path:      prim.Path(),
						Message:   fmt.Sprintf("%s target %s does not resolve", rel, target),
					})
				}
			}
		}
	})
	return findings
}

// CheckArticulations flags nested articulation roots and roots placed
// on static or kinematic bodies.
func CheckArticulations(stage *scene.Stage) []*ValidationError {
	var findings []*ValidationError
	walkStage(stage, func(prim *scene.Prim) {
		if !prim.HasAPI(APIArticulationRoot) {
			return
		}
		for p := prim.Parent(); p.IsValid(); p = p.Parent() {
			if p.HasAPI(APIArticulationRoot) {
				findings = append(findings, &ValidationError{
					Validator: ValidatorArticulationChecker,
					Token:     ErrNestedArticulation,
					Path:      prim.Path(),
					Message:   fmt.Sprintf("articulation root nested under %s", p.Path()),
				})
				break
			}
		}
		if prim.HasAPI(APICollision) && !prim.HasAPI(APIRigidBody) {
			findings = append(findings, &ValidationError{
				Validator: ValidatorArticulationChecker,
				Token:     ErrArticulationOnStaticBody,
				Path:      prim.Path(),
				Message:   "articulation root on a static collider",
			})
		}
		if prim.HasAPI(APIRigidBody) {
			if kinematic, ok := prim.AttrBool(AttrKinematicEnabled); ok && kinematic {
				findings = append(findings, &ValidationError{
					Validator: ValidatorArticulationChecker,
					Token:     ErrArticulationOnKinematicBody,
					Path:      prim.Path(),
					Message:   "articulation root on a kinematic body",
				})
			}
		}
	})
	return findings
}
