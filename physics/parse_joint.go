package physics

import (
	"github.com/sirupsen/logrus"

	"github.com/scenephys/scenephys/scene"
)

// parseJointPrim builds a joint descriptor when the prim's type is one
// of the joint schemas or a registered custom joint token; it returns
// nil otherwise.
func (ctx *parseContext) parseJointPrim(prim *scene.Prim) jointHolder {
	var holder jointHolder
	switch prim.TypeName() {
	case TypeFixedJoint:
		holder = NewFixedJointDesc()
	case TypeRevoluteJoint:
		desc := NewRevoluteJointDesc()
		desc.Axis = jointAxisAttr(prim)
		desc.Limit = angularLimit(prim)
		desc.Drive = driveAttrs(prim, DriveAngular)
		holder = desc
	case TypePrismaticJoint:
		desc := NewPrismaticJointDesc()
		desc.Axis = jointAxisAttr(prim)
		desc.Limit = linearLimit(prim)
		desc.Drive = driveAttrs(prim, DriveLinear)
		holder = desc
	case TypeSphericalJoint:
		desc := NewSphericalJointDesc()
		desc.Axis = jointAxisAttr(prim)
		desc.Limit = coneLimit(prim)
		holder = desc
	case TypeDistanceJoint:
		desc := NewDistanceJointDesc()
		if v, ok := prim.AttrFloat(AttrJointMinDistance); ok && v >= 0 {
			desc.MinEnabled = true
			desc.Limit.Enabled = true
			desc.Limit.Lower = v
		}
		if v, ok := prim.AttrFloat(AttrJointMaxDistance); ok && v >= 0 {
			desc.MaxEnabled = true
			desc.Limit.Enabled = true
			desc.Limit.Upper = v
		}
		holder = desc
	case TypeD6Joint:
		holder = parseD6Joint(prim)
	default:
		holder = ctx.customJoint(prim)
	}
	if holder == nil {
		return nil
	}

	joint := holder.joint()
	joint.Path = prim.Path()
	joint.Rel0 = singleRelTarget(prim, RelBody0)
	joint.Rel1 = singleRelTarget(prim, RelBody1)
	if v, ok := prim.AttrBool(AttrJointEnabled); ok {
		joint.JointEnabled = v
	}
	if v, ok := prim.AttrFloat(AttrJointBreakForce); ok {
		joint.BreakForce = v
	}
	if v, ok := prim.AttrFloat(AttrJointBreakTorque); ok {
		joint.BreakTorque = v
	}
	if v, ok := prim.AttrBool(AttrJointCollisionEnabled); ok {
		joint.CollisionEnabled = v
	}
	if v, ok := prim.AttrBool(AttrExcludeFromArticulation); ok {
		joint.ExcludeFromArticulation = v
	}
	if v, ok := prim.AttrVec3(AttrLocalPos0); ok {
		joint.LocalPose0Position = v
	}
	if q, ok := prim.AttrQuat(AttrLocalRot0); ok {
		joint.LocalPose0Orientation = q
	}
	if v, ok := prim.AttrVec3(AttrLocalPos1); ok {
		joint.LocalPose1Position = v
	}
	if q, ok := prim.AttrQuat(AttrLocalRot1); ok {
		joint.LocalPose1Orientation = q
	}
	return holder
}

func (ctx *parseContext) customJoint(prim *scene.Prim) jointHolder {
	if ctx.opts.CustomTokens == nil {
		return nil
	}
	for _, token := range ctx.opts.CustomTokens.JointTokens {
		if prim.TypeName() == token {
			return NewCustomJointDesc()
		}
	}
	return nil
}

// singleRelTarget reads a relationship expected to hold one target. A
// multi-target relationship keeps its first target; validators report it
// separately.
func singleRelTarget(prim *scene.Prim, rel string) scene.Path {
	targets := prim.Rel(rel)
	if len(targets) == 0 {
		return scene.EmptyPath
	}
	if len(targets) > 1 {
		logrus.WithFields(logrus.Fields{
			"prim": prim.Path().String(),
			"rel":  rel,
		}).Warn("relationship has multiple targets, using the first")
	}
	return targets[0]
}

func jointAxisAttr(prim *scene.Prim) Axis {
	v, ok := prim.AttrString(AttrJointAxis)
	if !ok {
		return AxisX
	}
	switch v {
	case "X":
		return AxisX
	case "Y":
		return AxisY
	case "Z":
		return AxisZ
	}
	return AxisX
}

func angularLimit(prim *scene.Prim) JointLimit {
	limit := NewJointLimit()
	if v, ok := prim.AttrFloat(AttrJointLowerLimit); ok {
		limit.Enabled = true
		limit.Lower = v
	}
	if v, ok := prim.AttrFloat(AttrJointUpperLimit); ok {
		limit.Enabled = true
		limit.Upper = v
	}
	return limit
}

func linearLimit(prim *scene.Prim) JointLimit {
	limit := NewJointLimit()
	if v, ok := prim.AttrFloat(AttrJointLowerLimit); ok {
		limit.Enabled = true
		limit.Lower = v
	}
	if v, ok := prim.AttrFloat(AttrJointUpperLimit); ok {
		limit.Enabled = true
		limit.Upper = v
	}
	return limit
}

func coneLimit(prim *scene.Prim) JointLimit {
	limit := NewJointLimit()
	if v, ok := prim.AttrFloat(AttrJointConeAngle0Limit); ok {
		limit.Enabled = true
		limit.Lower = v
	}
	if v, ok := prim.AttrFloat(AttrJointConeAngle1Limit); ok {
		limit.Enabled = true
		limit.Upper = v
	}
	return limit
}

func driveAttrs(prim *scene.Prim, dof string) JointDrive {
	drive := NewJointDrive()
	read := func(field string) (float64, bool) {
		return prim.AttrFloat(DriveAttr(dof, field))
	}
	if v, ok := read(DriveFieldTargetPosition); ok {
		drive.Enabled = true
		drive.TargetPosition = v
	}
	if v, ok := read(DriveFieldTargetVelocity); ok {
		drive.Enabled = true
		drive.TargetVelocity = v
	}
	if v, ok := read(DriveFieldMaxForce); ok {
		drive.ForceLimit = v
	}
	if v, ok := read(DriveFieldStiffness); ok {
		drive.Enabled = true
		drive.Stiffness = v
	}
	if v, ok := read(DriveFieldDamping); ok {
		drive.Enabled = true
		drive.Damping = v
	}
	if v, ok := prim.AttrBool(DriveAttr(dof, DriveFieldAcceleration)); ok {
		drive.Acceleration = v
	}
	return drive
}

var d6DOFTokens = []struct {
	token string
	dof   JointDOF
}{
	{DOFDistance, JointDOFDistance},
	{DOFTransX, JointDOFTransX},
	{DOFTransY, JointDOFTransY},
	{DOFTransZ, JointDOFTransZ},
	{DOFRotX, JointDOFRotX},
	{DOFRotY, JointDOFRotY},
	{DOFRotZ, JointDOFRotZ},
}

func parseD6Joint(prim *scene.Prim) *D6JointDesc {
	desc := NewD6JointDesc()
	for _, entry := range d6DOFTokens {
		limit := NewJointLimit()
		if v, ok := prim.AttrFloat(LimitAttr(entry.token, LimitFieldLow)); ok {
			limit.Enabled = true
			limit.Lower = v
		}
		if v, ok := prim.AttrFloat(LimitAttr(entry.token, LimitFieldHigh)); ok {
			limit.Enabled = true
			limit.Upper = v
		}
		if limit.Enabled {
			desc.JointLimits = append(desc.JointLimits, D6JointLimit{DOF: entry.dof, Limit: limit})
		}

		drive := driveAttrs(prim, entry.token)
		if drive.Enabled {
			desc.JointDrives = append(desc.JointDrives, D6JointDrive{DOF: entry.dof, Drive: drive})
		}
	}
	return desc
}
