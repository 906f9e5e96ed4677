package physics

import (
	"github.com/scenephys/scenephys/scene"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a decomposed TRS transform. Shear introduced by rotating
// non-uniform scale is not representable and is dropped, matching the
// descriptor model where shapes carry plain scale vectors.
type Transform struct {
	Position r3.Vec
	Rotation quat.Number
	Scale    r3.Vec
}

func identityTransform() Transform {
	return Transform{
		Rotation: quat.Number{Real: 1},
		Scale:    r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// rotate applies the unit quaternion q to v.
func rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// compose concatenates a parent and a local transform.
func compose(parent, local Transform) Transform {
	scaled := r3.Vec{
		X: local.Position.X * parent.Scale.X,
		Y: local.Position.Y * parent.Scale.Y,
		Z: local.Position.Z * parent.Scale.Z,
	}
	return Transform{
		Position: r3.Add(parent.Position, rotate(parent.Rotation, scaled)),
		Rotation: quat.Mul(parent.Rotation, local.Rotation),
		Scale: r3.Vec{
			X: parent.Scale.X * local.Scale.X,
			Y: parent.Scale.Y * local.Scale.Y,
			Z: parent.Scale.Z * local.Scale.Z,
		},
	}
}

// relativeTransform expresses world in the frame of base, assuming the
// two share the same rotation handedness. Used to compute shape poses
// relative to their owning body.
func relativeTransform(base, world Transform) Transform {
	inv := quat.Conj(base.Rotation)
	delta := r3.Sub(world.Position, base.Position)
	local := rotate(inv, delta)
	return Transform{
		Position: r3.Vec{
			X: safeDiv(local.X, base.Scale.X),
			Y: safeDiv(local.Y, base.Scale.Y),
			Z: safeDiv(local.Z, base.Scale.Z),
		},
		Rotation: quat.Mul(inv, world.Rotation),
		Scale: r3.Vec{
			X: safeDiv(world.Scale.X, base.Scale.X),
			Y: safeDiv(world.Scale.Y, base.Scale.Y),
			Z: safeDiv(world.Scale.Z, base.Scale.Z),
		},
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return a
	}
	return a / b
}

// XformCache memoizes world transforms per prim path. It reads the
// prim's translate/orient/scale attributes and composes them down the
// hierarchy on demand.
type XformCache struct {
	cache map[scene.Path]Transform
}

func NewXformCache() *XformCache {
	return &XformCache{cache: map[scene.Path]Transform{}}
}

// LocalTransform reads the prim's own TRS attributes.
func LocalTransform(prim *scene.Prim) Transform {
	t := identityTransform()
	if !prim.IsValid() {
		return t
	}
	if v, ok := prim.AttrVec3(AttrTranslate); ok {
		t.Position = v
	}
	if q, ok := prim.AttrQuat(AttrOrient); ok {
		t.Rotation = q
	}
	if s, ok := prim.AttrVec3(AttrScale); ok {
		t.Scale = s
	}
	return t
}

// WorldTransform returns the prim's transform composed from the root
// down, caching every intermediate result.
func (c *XformCache) WorldTransform(prim *scene.Prim) Transform {
	if !prim.IsValid() {
		return identityTransform()
	}
	if t, ok := c.cache[prim.Path()]; ok {
		return t
	}
	local := LocalTransform(prim)
	var world Transform
	if parent := prim.Parent(); parent.IsValid() {
		world = compose(c.WorldTransform(parent), local)
	} else {
		world = local
	}
	c.cache[prim.Path()] = world
	return world
}

func isUniform(s r3.Vec) bool {
	const eps = 1e-6
	return absf(s.X-s.Y) < eps && absf(s.Y-s.Z) < eps
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
