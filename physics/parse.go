package physics

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scenephys/scenephys/scene"
	"github.com/scenephys/scenephys/traverse"
)

// ReportFn receives one batch of descriptors per object type. paths[i]
// is the source prim of descs[i]. userData is handed through from the
// load options untouched.
type ReportFn func(typ ObjectType, paths []scene.Path, descs []Desc, userData interface{})

// CustomTokens registers prim type tokens that the walk should report
// as custom joints or shapes, and instancer tokens whose subtrees are
// pruned and left for a dedicated instancing pass.
type CustomTokens struct {
	JointTokens     []string
	ShapeTokens     []string
	InstancerTokens []string
}

// Options tune a physics load.
type Options struct {
	// ExcludePaths prune the listed prims and their subtrees from the
	// traversal before any extraction happens.
	ExcludePaths []scene.Path
	// CustomTokens extends the recognized prim type set.
	CustomTokens *CustomTokens
	// SimulationOwners keeps only objects owned by one of the listed
	// scenes. An EmptyPath entry additionally keeps unowned objects.
	// Nil disables owner filtering.
	SimulationOwners []scene.Path
	// UserData is forwarded to every report call.
	UserData interface{}
}

// Option mutates Options.
type Option func(*Options)

func WithExcludePaths(paths ...scene.Path) Option {
	return func(o *Options) { o.ExcludePaths = append(o.ExcludePaths, paths...) }
}

func WithCustomTokens(tokens *CustomTokens) Option {
	return func(o *Options) { o.CustomTokens = tokens }
}

func WithSimulationOwners(owners ...scene.Path) Option {
	return func(o *Options) {
		if o.SimulationOwners == nil {
			o.SimulationOwners = []scene.Path{}
		}
		o.SimulationOwners = append(o.SimulationOwners, owners...)
	}
}

func WithUserData(data interface{}) Option {
	return func(o *Options) { o.UserData = data }
}

// LoadPhysicsFromRange extracts physics descriptors from the subtrees
// rooted at includePaths and reports them batched per object type. An
// empty includePaths parses the whole stage. Roots are walked in path
// order regardless of the order given.
func LoadPhysicsFromRange(stage *scene.Stage, includePaths []scene.Path, reportFn ReportFn, opts ...Option) error {
	if stage == nil {
		return errors.New("nil stage")
	}
	if reportFn == nil {
		return errors.New("nil report function")
	}
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(includePaths) == 0 {
		includePaths = []scene.Path{scene.RootPath}
	}
	var primMap scene.PrimMap
	for _, path := range includePaths {
		prim := stage.PrimAtPath(path)
		if !prim.IsValid() {
			logrus.WithField("prim", path.String()).Warn("include path does not resolve, skipping")
			continue
		}
		primMap.Set(path, prim)
	}
	if primMap.Len() == 0 {
		return errors.New("no include path resolved to a prim")
	}

	ctx := newParseContext(stage, o)
	if len(o.ExcludePaths) > 0 {
		// Exclusion filtering wraps one range at a time, so each root
		// gets its own filtered walk.
		for _, entry := range primMap.Entries() {
			it := traverse.NewExcludeListIterator(
				scene.NewPrimRangeProxies(entry.Prim), o.ExcludePaths)
			ctx.walk(it)
		}
	} else {
		ctx.walk(traverse.NewMapRangeIterator(&primMap))
	}

	ctx.finalize()
	ctx.report(reportFn)
	return nil
}

// parseContext accumulates descriptors over one load.
type parseContext struct {
	stage *scene.Stage
	opts  *Options
	xform *XformCache

	scenes    []*SceneDesc
	materials []*RigidBodyMaterialDesc
	groups    []*CollisionGroupDesc
	bodies    []*RigidBodyDesc
	shapes    []shapeHolder
	joints    []jointHolder
	artics    []*ArticulationDesc

	bodyByPath map[scene.Path]*RigidBodyDesc
}

type shapeHolder interface {
	Desc
	shape() *ShapeDesc
}

func (s *ShapeDesc) shape() *ShapeDesc { return s }

type jointHolder interface {
	Desc
	joint() *JointDesc
}

func (j *JointDesc) joint() *JointDesc { return j }

func newParseContext(stage *scene.Stage, opts *Options) *parseContext {
	return &parseContext{
		stage:      stage,
		opts:       opts,
		xform:      NewXformCache(),
		bodyByPath: map[scene.Path]*RigidBodyDesc{},
	}
}

// walk drives any iterator variant through the uniform capability
// contract, inspecting each visited prim and pruning where whole
// subtrees are handled elsewhere.
func (ctx *parseContext) walk(it traverse.PrimIterator) {
	for !it.AtEnd() {
		prim := it.Current()
		if prim.IsValid() {
			if ctx.visitPrim(prim) {
				it.PruneChildren()
			}
		}
		it.Next()
	}
}

// visitPrim extracts descriptors for one prim. It returns true when the
// prim's subtree must be pruned.
func (ctx *parseContext) visitPrim(prim *scene.Prim) bool {
	switch prim.TypeName() {
	case TypePhysicsScene:
		ctx.scenes = append(ctx.scenes, parseScene(prim, ctx.stage))
	case TypeCollisionGroup:
		ctx.groups = append(ctx.groups, parseCollisionGroup(prim))
	}

	if prim.HasAPI(APIMaterial) {
		ctx.materials = append(ctx.materials, parseMaterial(prim))
	}
	if joint := ctx.parseJointPrim(prim); joint != nil {
		ctx.joints = append(ctx.joints, joint)
	}
	if prim.HasAPI(APIRigidBody) {
		body := ctx.parseRigidBody(prim)
		ctx.bodies = append(ctx.bodies, body)
		ctx.bodyByPath[body.Path] = body
	}
	if prim.HasAPI(APICollision) {
		if shape := ctx.parseShape(prim); shape != nil {
			ctx.shapes = append(ctx.shapes, shape)
		}
	}
	if prim.HasAPI(APIArticulationRoot) {
		ctx.artics = append(ctx.artics, parseArticulation(prim))
	}

	if ctx.opts.CustomTokens != nil {
		for _, token := range ctx.opts.CustomTokens.InstancerTokens {
			if prim.TypeName() == token {
				logrus.WithField("prim", prim.Path().String()).
					Debug("pruning physics instancer subtree")
				return true
			}
		}
	}
	return false
}

// finalize resolves the cross-prim references that cannot be settled
// during the walk: shape ownership, collision group membership, merge
// groups, joint bodies and articulation population.
func (ctx *parseContext) finalize() {
	for _, holder := range ctx.shapes {
		shape := holder.shape()
		if body := ctx.ancestorBody(shape.Path); body != nil {
			shape.RigidBody = body.Path
			body.Collisions = append(body.Collisions, shape.Path)

			// Rebase the shape's world pose into the body frame.
			bodyXf := Transform{Position: body.Position, Rotation: body.Rotation, Scale: body.Scale}
			shapeXf := Transform{Position: shape.LocalPos, Rotation: shape.LocalRot, Scale: shape.LocalScale}
			rel := relativeTransform(bodyXf, shapeXf)
			shape.LocalPos = rel.Position
			shape.LocalRot = rel.Rotation
			shape.LocalScale = rel.Scale
		}
	}

	for _, group := range ctx.groups {
		members := ctx.stage.PrimAtPath(group.Path).Rel(RelCollisionGroupMembers)
		for _, holder := range ctx.shapes {
			shape := holder.shape()
			for _, member := range members {
				if shape.Path.HasPrefix(member) {
					shape.CollisionGroups = append(shape.CollisionGroups, group.Path)
					break
				}
			}
		}
	}
	ctx.mergeGroups()

	for _, holder := range ctx.joints {
		joint := holder.joint()
		joint.Body0 = ctx.resolveJointBody(joint.Rel0)
		joint.Body1 = ctx.resolveJointBody(joint.Rel1)
	}

	for _, artic := range ctx.artics {
		root := artic.Path
		for _, body := range ctx.bodies {
			if body.Path.HasPrefix(root) {
				artic.ArticulatedBodies = append(artic.ArticulatedBodies, body.Path)
			}
		}
		for _, holder := range ctx.joints {
			joint := holder.joint()
			if joint.ExcludeFromArticulation {
				continue
			}
			if joint.Body0.HasPrefix(root) || joint.Body1.HasPrefix(root) {
				artic.ArticulatedJoints = append(artic.ArticulatedJoints, joint.Path)
			}
		}
	}

	ctx.filterBySimulationOwners()
}

func (ctx *parseContext) mergeGroups() {
	byMergeName := map[string][]*CollisionGroupDesc{}
	for _, group := range ctx.groups {
		if group.MergeGroupName != "" {
			byMergeName[group.MergeGroupName] = append(byMergeName[group.MergeGroupName], group)
		}
	}
	for _, merged := range byMergeName {
		if len(merged) < 2 {
			continue
		}
		for _, group := range merged {
			for _, other := range merged {
				if other != group {
					group.MergedGroups = append(group.MergedGroups, other.Path)
				}
			}
		}
	}
}

// ancestorBody finds the nearest parsed rigid body at or above path.
func (ctx *parseContext) ancestorBody(path scene.Path) *RigidBodyDesc {
	for p := path; !p.IsEmpty(); p = p.Parent() {
		if body, ok := ctx.bodyByPath[p]; ok {
			return body
		}
		if p.IsRoot() {
			break
		}
	}
	return nil
}

// resolveJointBody maps a joint relationship target to the rigid body
// it articulates: the target itself when it is a body, otherwise its
// nearest body ancestor. An unresolvable target keeps the joint
// attached to the world frame (empty path).
func (ctx *parseContext) resolveJointBody(rel scene.Path) scene.Path {
	if rel.IsEmpty() {
		return scene.EmptyPath
	}
	if body := ctx.ancestorBody(rel); body != nil {
		return body.Path
	}
	return scene.EmptyPath
}

func (ctx *parseContext) filterBySimulationOwners() {
	if ctx.opts.SimulationOwners == nil {
		return
	}
	owners := map[scene.Path]struct{}{}
	keepUnowned := false
	for _, owner := range ctx.opts.SimulationOwners {
		if owner.IsEmpty() {
			keepUnowned = true
			continue
		}
		owners[owner] = struct{}{}
	}
	matches := func(objOwners []scene.Path) bool {
		if len(objOwners) == 0 {
			return keepUnowned
		}
		for _, o := range objOwners {
			if _, ok := owners[o]; ok {
				return true
			}
		}
		return false
	}

	kept := ctx.bodies[:0]
	for _, body := range ctx.bodies {
		if matches(body.SimulationOwners) {
			kept = append(kept, body)
		} else {
			delete(ctx.bodyByPath, body.Path)
		}
	}
	ctx.bodies = kept

	keptShapes := ctx.shapes[:0]
	for _, holder := range ctx.shapes {
		if matches(holder.shape().SimulationOwners) {
			keptShapes = append(keptShapes, holder)
		}
	}
	ctx.shapes = keptShapes
}

// report emits non-empty batches in ascending object type order.
func (ctx *parseContext) report(reportFn ReportFn) {
	batches := map[ObjectType][]Desc{}
	add := func(d Desc) {
		batches[d.DescType()] = append(batches[d.DescType()], d)
	}
	for _, d := range ctx.scenes {
		add(d)
	}
	for _, d := range ctx.bodies {
		add(d)
	}
	for _, d := range ctx.shapes {
		add(d)
	}
	for _, d := range ctx.joints {
		add(d)
	}
	for _, d := range ctx.materials {
		add(d)
	}
	for _, d := range ctx.artics {
		add(d)
	}
	for _, d := range ctx.groups {
		add(d)
	}

	for typ := ObjectType(0); typ < objectTypeCount; typ++ {
		descs := batches[typ]
		if len(descs) == 0 {
			continue
		}
		paths := make([]scene.Path, len(descs))
		for i, d := range descs {
			paths[i] = d.DescPath()
		}
		reportFn(typ, paths, descs, ctx.opts.UserData)
	}
}
