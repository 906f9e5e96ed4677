package scene

import (
	"github.com/pkg/errors"
)

// UpAxis names the stage's vertical axis.
type UpAxis string

const (
	UpAxisX UpAxis = "X"
	UpAxisY UpAxis = "Y"
	UpAxisZ UpAxis = "Z"
)

// Stage owns a prim hierarchy and its global metadata. A stage must not
// be mutated while an iterator constructed over it is in use.
type Stage struct {
	root   *Prim
	byPath map[Path]*Prim

	upAxis           UpAxis
	metersPerUnit    float64
	kilogramsPerUnit float64
}

// NewStage creates an empty stage holding only the pseudo-root.
func NewStage() *Stage {
	s := &Stage{
		byPath:           map[Path]*Prim{},
		upAxis:           UpAxisZ,
		metersPerUnit:    1.0,
		kilogramsPerUnit: 1.0,
	}
	s.root = &Prim{stage: s, path: RootPath, active: true}
	s.byPath[RootPath] = s.root
	return s
}

// PseudoRoot returns the stage's root prim at "/".
func (s *Stage) PseudoRoot() *Prim {
	return s.root
}

// UpAxis returns the stage's vertical axis (default Z).
func (s *Stage) UpAxis() UpAxis {
	return s.upAxis
}

func (s *Stage) SetUpAxis(axis UpAxis) {
	s.upAxis = axis
}

// MetersPerUnit returns the stage's linear unit scale (default 1).
func (s *Stage) MetersPerUnit() float64 {
	return s.metersPerUnit
}

func (s *Stage) SetMetersPerUnit(m float64) {
	s.metersPerUnit = m
}

// KilogramsPerUnit returns the stage's mass unit scale (default 1).
func (s *Stage) KilogramsPerUnit() float64 {
	return s.kilogramsPerUnit
}

func (s *Stage) SetKilogramsPerUnit(kg float64) {
	s.kilogramsPerUnit = kg
}

// DefinePrim creates a prim at the given path, creating untyped ancestor
// prims as needed. Redefining an existing prim updates its type and
// returns the same handle.
func (s *Stage) DefinePrim(path Path, typeName string) (*Prim, error) {
	if path.IsEmpty() {
		return nil, errors.New("cannot define a prim at the empty path")
	}
	if path.IsRoot() {
		return nil, errors.New("cannot define a prim at the pseudo-root")
	}
	if p, ok := s.byPath[path]; ok {
		if typeName != "" {
			p.typeName = typeName
		}
		return p, nil
	}
	parent, ok := s.byPath[path.Parent()]
	if !ok {
		var err error
		parent, err = s.DefinePrim(path.Parent(), "")
		if err != nil {
			return nil, errors.Wrapf(err, "defining ancestors of %s", path)
		}
	}
	p := &Prim{
		stage:    s,
		path:     path,
		typeName: typeName,
		active:   true,
		parent:   parent,
	}
	parent.addChild(p)
	s.byPath[path] = p
	return p, nil
}

// PrimAtPath resolves a path to a prim handle. The result is an invalid
// handle (nil) when no prim exists at the path.
func (s *Stage) PrimAtPath(path Path) *Prim {
	return s.byPath[path]
}
