package scene

import (
	"strings"

	"github.com/pkg/errors"
)

// Path identifies a prim position in the scene hierarchy, e.g.
// "/World/Robot/Arm". Paths are comparable, totally ordered, and usable
// as map keys. The zero value is the empty path, which is not a valid
// prim location.
type Path struct {
	s string
}

// EmptyPath is returned where no meaningful path exists. Appending an
// empty path to a simulation-owner list marks "objects without an owner".
var EmptyPath = Path{}

// RootPath is the absolute root of every stage hierarchy.
var RootPath = Path{s: "/"}

// NewPath parses and validates an absolute prim path. Elements are
// separated by '/' and must be identifiers (letters, digits, '_', not
// starting with a digit).
func NewPath(s string) (Path, error) {
	if s == "/" {
		return RootPath, nil
	}
	if !strings.HasPrefix(s, "/") {
		return Path{}, errors.Errorf("path %q is not absolute", s)
	}
	if strings.HasSuffix(s, "/") {
		return Path{}, errors.Errorf("path %q has a trailing separator", s)
	}
	for _, elem := range strings.Split(s[1:], "/") {
		if !validPathElement(elem) {
			return Path{}, errors.Errorf("path %q contains invalid element %q", s, elem)
		}
	}
	return Path{s: s}, nil
}

// MustPath is NewPath for statically known paths; it panics on invalid
// input.
func MustPath(s string) Path {
	p, err := NewPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func validPathElement(elem string) bool {
	if elem == "" {
		return false
	}
	for i, r := range elem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return p.s
}

// IsEmpty reports whether p is the zero path.
func (p Path) IsEmpty() bool {
	return p.s == ""
}

// IsRoot reports whether p is the absolute root "/".
func (p Path) IsRoot() bool {
	return p.s == "/"
}

// Name returns the last element of the path, or "" for the root and the
// empty path.
func (p Path) Name() string {
	if p.IsEmpty() || p.IsRoot() {
		return ""
	}
	return p.s[strings.LastIndexByte(p.s, '/')+1:]
}

// Parent returns the path with its last element removed. The parent of
// a top-level prim is the root; the root and the empty path are their
// own parents.
func (p Path) Parent() Path {
	if p.IsEmpty() || p.IsRoot() {
		return p
	}
	i := strings.LastIndexByte(p.s, '/')
	if i == 0 {
		return RootPath
	}
	return Path{s: p.s[:i]}
}

// AppendChild returns the path extended by one child element.
func (p Path) AppendChild(name string) (Path, error) {
	if !validPathElement(name) {
		return Path{}, errors.Errorf("invalid path element %q", name)
	}
	if p.IsRoot() {
		return Path{s: "/" + name}, nil
	}
	if p.IsEmpty() {
		return Path{}, errors.New("cannot append to the empty path")
	}
	return Path{s: p.s + "/" + name}, nil
}

// HasPrefix reports whether prefix is p itself or an ancestor of p.
// Every non-empty path has the root as a prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if p.IsEmpty() || prefix.IsEmpty() {
		return false
	}
	if prefix.IsRoot() {
		return true
	}
	if p.s == prefix.s {
		return true
	}
	return strings.HasPrefix(p.s, prefix.s+"/")
}

// Compare totally orders paths: ancestors sort before their descendants
// and siblings sort by name. Because path elements are identifiers
// (every element byte sorts above '/'), plain string comparison realizes
// that order.
func (p Path) Compare(o Path) int {
	return strings.Compare(p.s, o.s)
}
