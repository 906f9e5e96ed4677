package scene

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Prim is one node of the stage hierarchy. A nil *Prim, or a prim whose
// stage entry has been removed, is an invalid handle; all read accessors
// tolerate invalid handles and return zero values.
type Prim struct {
	stage        *Stage
	path         Path
	typeName     string
	active       bool
	instanceable bool
	apiSchemas   map[string]struct{}
	attrs        map[string]interface{}
	rels         map[string][]Path

	parent   *Prim
	children []*Prim // ordered by name
}

// IsValid reports whether the handle refers to a live prim on a stage.
func (p *Prim) IsValid() bool {
	return p != nil && p.stage != nil
}

func (p *Prim) Path() Path {
	if !p.IsValid() {
		return EmptyPath
	}
	return p.path
}

func (p *Prim) Name() string {
	return p.Path().Name()
}

// TypeName returns the prim's schema type token, e.g. "Cube" or
// "PhysicsScene". Prims created implicitly as ancestors have an empty
// type.
func (p *Prim) TypeName() string {
	if !p.IsValid() {
		return ""
	}
	return p.typeName
}

func (p *Prim) Parent() *Prim {
	if !p.IsValid() {
		return nil
	}
	return p.parent
}

// Children returns the prim's direct children in name order. The
// returned slice is owned by the prim and must not be mutated.
func (p *Prim) Children() []*Prim {
	if !p.IsValid() {
		return nil
	}
	return p.children
}

// IsActive reports whether the prim participates in traversal. An
// inactive prim hides itself and its whole subtree.
func (p *Prim) IsActive() bool {
	return p.IsValid() && p.active
}

// SetActive toggles the prim's participation in traversal.
func (p *Prim) SetActive(active bool) {
	if p.IsValid() {
		p.active = active
	}
}

// IsInstanceable reports whether the prim's children are instance
// proxies. Default traversal does not descend below an instanceable
// prim; the proxy-traversing range variant does.
func (p *Prim) IsInstanceable() bool {
	return p.IsValid() && p.instanceable
}

func (p *Prim) SetInstanceable(instanceable bool) {
	if p.IsValid() {
		p.instanceable = instanceable
	}
}

// ApplyAPI records an applied API schema, e.g. "PhysicsRigidBodyAPI".
func (p *Prim) ApplyAPI(schema string) {
	if !p.IsValid() {
		return
	}
	if p.apiSchemas == nil {
		p.apiSchemas = map[string]struct{}{}
	}
	p.apiSchemas[schema] = struct{}{}
}

// HasAPI reports whether the named API schema has been applied.
func (p *Prim) HasAPI(schema string) bool {
	if !p.IsValid() {
		return false
	}
	_, ok := p.apiSchemas[schema]
	return ok
}

// AppliedAPIs returns the applied API schema tokens in sorted order.
func (p *Prim) AppliedAPIs() []string {
	if !p.IsValid() || len(p.apiSchemas) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.apiSchemas))
	for s := range p.apiSchemas {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SetAttr stores an attribute value. Values are dynamically typed;
// readers use the typed accessors below.
func (p *Prim) SetAttr(name string, value interface{}) {
	if !p.IsValid() {
		return
	}
	if p.attrs == nil {
		p.attrs = map[string]interface{}{}
	}
	p.attrs[name] = value
}

// Attr returns the raw attribute value.
func (p *Prim) Attr(name string) (interface{}, bool) {
	if !p.IsValid() {
		return nil, false
	}
	v, ok := p.attrs[name]
	return v, ok
}

// AttrFloat reads a scalar attribute, accepting any numeric encoding the
// stage loader may have produced.
func (p *Prim) AttrFloat(name string) (float64, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return 0, false
	}
	f, ok := toFloat(v)
	return f, ok
}

func (p *Prim) AttrBool(name string) (bool, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func (p *Prim) AttrString(name string) (string, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// AttrVec3 reads a three-component vector attribute stored either as an
// r3.Vec or as a numeric slice.
func (p *Prim) AttrVec3(name string) (r3.Vec, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return r3.Vec{}, false
	}
	switch t := v.(type) {
	case r3.Vec:
		return t, true
	case []interface{}:
		if len(t) != 3 {
			return r3.Vec{}, false
		}
		x, okX := toFloat(t[0])
		y, okY := toFloat(t[1])
		z, okZ := toFloat(t[2])
		if !okX || !okY || !okZ {
			return r3.Vec{}, false
		}
		return r3.Vec{X: x, Y: y, Z: z}, true
	case []float64:
		if len(t) != 3 {
			return r3.Vec{}, false
		}
		return r3.Vec{X: t[0], Y: t[1], Z: t[2]}, true
	}
	return r3.Vec{}, false
}

// AttrQuat reads a rotation attribute stored either as a quat.Number or
// as a [w, x, y, z] numeric slice.
func (p *Prim) AttrQuat(name string) (quat.Number, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return quat.Number{}, false
	}
	switch t := v.(type) {
	case quat.Number:
		return t, true
	case []interface{}:
		if len(t) != 4 {
			return quat.Number{}, false
		}
		w, okW := toFloat(t[0])
		x, okX := toFloat(t[1])
		y, okY := toFloat(t[2])
		z, okZ := toFloat(t[3])
		if !okW || !okX || !okY || !okZ {
			return quat.Number{}, false
		}
		return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}, true
	case []float64:
		if len(t) != 4 {
			return quat.Number{}, false
		}
		return quat.Number{Real: t[0], Imag: t[1], Jmag: t[2], Kmag: t[3]}, true
	}
	return quat.Number{}, false
}

// AttrVec3Slice reads an attribute holding a list of three-component
// vectors, e.g. point positions.
func (p *Prim) AttrVec3Slice(name string) ([]r3.Vec, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case []r3.Vec:
		return t, true
	case []interface{}:
		out := make([]r3.Vec, 0, len(t))
		for _, e := range t {
			elems, ok := e.([]interface{})
			if !ok || len(elems) != 3 {
				return nil, false
			}
			x, okX := toFloat(elems[0])
			y, okY := toFloat(elems[1])
			z, okZ := toFloat(elems[2])
			if !okX || !okY || !okZ {
				return nil, false
			}
			out = append(out, r3.Vec{X: x, Y: y, Z: z})
		}
		return out, true
	}
	return nil, false
}

// AttrFloatSlice reads an attribute holding a list of scalars.
func (p *Prim) AttrFloatSlice(name string) ([]float64, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case []float64:
		return t, true
	case []interface{}:
		out := make([]float64, 0, len(t))
		for _, e := range t {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	return nil, false
}

// SetRel stores a relationship: a named list of target paths.
func (p *Prim) SetRel(name string, targets []Path) {
	if !p.IsValid() {
		return
	}
	if p.rels == nil {
		p.rels = map[string][]Path{}
	}
	p.rels[name] = targets
}

// Rel returns the targets of a relationship, or nil when it is unset.
func (p *Prim) Rel(name string) []Path {
	if !p.IsValid() {
		return nil
	}
	return p.rels[name]
}

func (p *Prim) addChild(c *Prim) {
	i := sort.Search(len(p.children), func(i int) bool {
		return p.children[i].path.Name() >= c.path.Name()
	})
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = c
}

func (p *Prim) serialize(indent int) string {
	label := p.path.Name()
	if label == "" {
		label = "/"
	}
	if p.typeName != "" {
		label += " <" + p.typeName + ">"
	}
	ser := label + "\n"
	if indent > 0 {
		ser = "| " + strings.Repeat("  ", indent-1) + ser
	}
	for _, child := range p.children {
		ser += child.serialize(indent + 1)
	}
	return ser
}

// String renders the subtree rooted at p, one prim per line in pre-order,
// which keeps traversal expectations easy to state in tests.
func (p *Prim) String() string {
	if !p.IsValid() {
		return "<invalid prim>"
	}
	return strings.TrimRight(p.serialize(0), "\n")
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}
