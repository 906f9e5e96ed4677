package physics

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/scenephys/scenephys/scene"
)

// parseShape builds a shape descriptor from a prim carrying the
// collision API. The prim's geometry type picks the concrete shape;
// unknown types fall back to custom shapes when registered, otherwise
// the prim is skipped with a warning.
func (ctx *parseContext) parseShape(prim *scene.Prim) shapeHolder {
	world := ctx.xform.WorldTransform(prim)

	var holder shapeHolder
	switch prim.TypeName() {
	case TypeSphere:
		desc := NewSphereShapeDesc()
		desc.Radius = attrOr(prim, AttrRadius, 1) * maxScale(world.Scale)
		holder = desc
	case TypeCube:
		desc := NewCubeShapeDesc()
		size := attrOr(prim, AttrSize, 2)
		desc.HalfExtents = r3.Vec{
			X: size / 2 * world.Scale.X,
			Y: size / 2 * world.Scale.Y,
			Z: size / 2 * world.Scale.Z,
		}
		holder = desc
	case TypeCapsule:
		desc := NewCapsuleShapeDesc()
		desc.Axis = axisAttr(prim)
		desc.Radius = attrOr(prim, AttrRadius, 0.5) * radialScale(world.Scale, desc.Axis)
		desc.HalfHeight = attrOr(prim, AttrHeight, 1) / 2 * axialScale(world.Scale, desc.Axis)
		holder = desc
	case TypeCylinder:
		desc := NewCylinderShapeDesc()
		desc.Axis = axisAttr(prim)
		desc.Radius = attrOr(prim, AttrRadius, 0.5) * radialScale(world.Scale, desc.Axis)
		desc.HalfHeight = attrOr(prim, AttrHeight, 1) / 2 * axialScale(world.Scale, desc.Axis)
		holder = desc
	case TypeCone:
		desc := NewConeShapeDesc()
		desc.Axis = axisAttr(prim)
		desc.Radius = attrOr(prim, AttrRadius, 0.5) * radialScale(world.Scale, desc.Axis)
		desc.HalfHeight = attrOr(prim, AttrHeight, 1) / 2 * axialScale(world.Scale, desc.Axis)
		holder = desc
	case TypePlane:
		desc := NewPlaneShapeDesc()
		desc.Axis = axisAttr(prim)
		holder = desc
	case TypeMesh:
		desc := NewMeshShapeDesc()
		desc.MeshScale = world.Scale
		if prim.HasAPI(APIMeshCollision) {
			if v, ok := prim.AttrString(AttrApproximation); ok {
				desc.Approximation = v
			}
		}
		if v, ok := prim.AttrBool(AttrDoubleSided); ok {
			desc.DoubleSided = v
		}
		holder = desc
	case TypePoints:
		desc := NewSpherePointsShapeDesc()
		points, okPoints := prim.AttrVec3Slice(AttrPoints)
		widths, okWidths := prim.AttrFloatSlice(AttrWidths)
		if okPoints && okWidths && len(points) == len(widths) {
			scale := maxScale(world.Scale)
			desc.SpherePoints = make([]SpherePoint, len(points))
			for i := range points {
				desc.SpherePoints[i] = SpherePoint{
					Center: points[i],
					Radius: widths[i] / 2 * scale,
				}
			}
		} else {
			// Reported anyway so validators can flag the missing data.
			desc.Valid = false
		}
		holder = desc
	default:
		holder = ctx.customShape(prim)
		if holder == nil {
			logrus.WithFields(logrus.Fields{
				"prim": prim.Path().String(),
				"type": prim.TypeName(),
			}).Warn("collision on unsupported geometry type, skipping")
			return nil
		}
	}

	shape := holder.shape()
	shape.Path = prim.Path()
	if v, ok := prim.AttrBool(AttrCollisionEnabled); ok {
		shape.CollisionEnabled = v
	}
	shape.Materials = prim.Rel(RelMaterialBinding)
	shape.SimulationOwners = prim.Rel(RelSimulationOwner)
	if prim.HasAPI(APIFilteredPairs) {
		shape.FilteredCollisions = prim.Rel(RelFilteredPairs)
	}

	// Shape poses become body-relative during finalize; until then keep
	// the world pose. Static colliders keep it as their final pose.
	shape.LocalPos = world.Position
	shape.LocalRot = world.Rotation
	shape.LocalScale = world.Scale
	return holder
}

func (ctx *parseContext) customShape(prim *scene.Prim) shapeHolder {
	if ctx.opts.CustomTokens == nil {
		return nil
	}
	for _, token := range ctx.opts.CustomTokens.ShapeTokens {
		if prim.TypeName() == token {
			desc := NewCustomShapeDesc()
			desc.CustomGeometryToken = token
			return desc
		}
	}
	return nil
}

func attrOr(prim *scene.Prim, name string, fallback float64) float64 {
	if v, ok := prim.AttrFloat(name); ok {
		return v
	}
	return fallback
}

func axisAttr(prim *scene.Prim) Axis {
	v, ok := prim.AttrString(AttrAxis)
	if !ok {
		return AxisZ
	}
	switch v {
	case "X":
		return AxisX
	case "Y":
		return AxisY
	case "Z":
		return AxisZ
	}
	logrus.WithFields(logrus.Fields{
		"prim": prim.Path().String(),
		"axis": v,
	}).Warn("unknown axis token, using Z")
	return AxisZ
}

func maxScale(s r3.Vec) float64 {
	m := absf(s.X)
	if absf(s.Y) > m {
		m = absf(s.Y)
	}
	if absf(s.Z) > m {
		m = absf(s.Z)
	}
	return m
}

func axialScale(s r3.Vec, axis Axis) float64 {
	switch axis {
	case AxisX:
		return absf(s.X)
	case AxisY:
		return absf(s.Y)
	default:
		return absf(s.Z)
	}
}

func radialScale(s r3.Vec, axis Axis) float64 {
	switch axis {
	case AxisX:
		return maxScale(r3.Vec{Y: s.Y, Z: s.Z})
	case AxisY:
		return maxScale(r3.Vec{X: s.X, Z: s.Z})
	default:
		return maxScale(r3.Vec{X: s.X, Y: s.Y})
	}
}
