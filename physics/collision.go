package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/scene"
)

// Code identifies a collision sub-volume.
type Code uint8

const (
	CodeNone Code = iota
	CodeMain
	CodeRightTurret
	CodeLeftTurret
	CodeHead
	CodeBody
)

var codeNames = map[Code]string{
	CodeNone:        "",
	CodeMain:        "main",
	CodeRightTurret: "right turret",
	CodeLeftTurret:  "left turret",
	CodeHead:        "head",
	CodeBody:        "body",
}

func (c Code) String() string {
	return codeNames[c]
}

// TreeOptions describes a collision tree. Only the root needs the parents;
// children inherit them.
type TreeOptions struct {
	TopAbstractParent interface{}
	TopPhysicalParent *scene.Group
	Radius            float64
	Position          mgl64.Vec3
	Code              Code
	Children          []TreeOptions
}

// Tree is a bounding sphere with nested, tighter sub-volumes.
type Tree struct {
	Code     Code
	Radius   float64
	Position mgl64.Vec3 // relative to the parent sphere, or to the anchor group at the root

	owner    interface{}
	anchor   *scene.Group
	parent   *Tree
	children []*Tree
	depth    int
}

// NewTree builds a tree from opts.
func NewTree(opts TreeOptions) *Tree {
	return buildTree(opts, nil, opts.TopAbstractParent, opts.TopPhysicalParent)
}

func buildTree(opts TreeOptions, parent *Tree, owner interface{}, anchor *scene.Group) *Tree {
	t := &Tree{
		Code:     opts.Code,
		Radius:   opts.Radius,
		Position: opts.Position,
		owner:    owner,
		anchor:   anchor,
		parent:   parent,
	}
	if parent != nil {
		t.depth = parent.depth + 1
	}
	for _, c := range opts.Children {
		t.children = append(t.children, buildTree(c, t, owner, anchor))
	}
	return t
}

// Depth is 0 for the root sphere, 1 for its children and so on.
func (t *Tree) Depth() int {
	return t.depth
}

// TopAbstractParent returns the gameplay entity owning the tree.
func (t *Tree) TopAbstractParent() interface{} {
	return t.owner
}

// TopPhysicalParent returns the scene group the tree follows.
func (t *Tree) TopPhysicalParent() *scene.Group {
	return t.anchor
}

// Parent returns the enclosing sphere, nil at the root.
func (t *Tree) Parent() *Tree {
	return t.parent
}

// Children returns the nested sub-volumes.
func (t *Tree) Children() []*Tree {
	return t.children
}

// WorldCenter resolves the sphere center in world space.
func (t *Tree) WorldCenter() mgl64.Vec3 {
	c := t.Position
	for p := t.parent; p != nil; p = p.parent {
		c = c.Add(p.Position)
	}
	if t.anchor != nil {
		c = c.Add(t.anchor.WorldPosition())
	}
	return c
}

// Find returns the first sub-volume with the given code, searching depth first.
func (t *Tree) Find(code Code) *Tree {
	if t.Code == code {
		return t
	}
	for _, c := range t.children {
		if found := c.Find(code); found != nil {
			return found
		}
	}
	return nil
}

// Overlaps reports whether two spheres intersect or touch.
func Overlaps(a, b *Tree) bool {
	d := a.WorldCenter().Sub(b.WorldCenter())
	r := a.Radius + b.Radius
	return d.Dot(d) <= r*r
}

// Resolver handles a pair of overlapping sub-volumes. Returning true marks
// the collision event as handled and ends the walk.
type Resolver func(a, b *Tree) bool

// Detect walks both trees while their spheres overlap and offers every
// overlapping pair to resolve, outer volumes first. It reports whether any
// pair was resolved; at most one resolution happens per call.
func Detect(a, b *Tree, resolve Resolver) bool {
	if a == nil || b == nil || !Overlaps(a, b) {
		return false
	}
	if resolve(a, b) {
		return true
	}
	for _, ac := range a.children {
		if Detect(ac, b, resolve) {
			return true
		}
	}
	for _, bc := range b.children {
		if Detect(a, bc, resolve) {
			return true
		}
	}
	return false
}
