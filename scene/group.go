// Package scene is the engine-independent scene graph the gameplay code
// mutates. Renderers (three.js in the browser, ebiten in the preview tool)
// mirror it; they never own gameplay state.
package scene

import "github.com/go-gl/mathgl/mgl64"

// Group is a transform node. Only translation is modelled.
type Group struct {
	Name     string
	Position mgl64.Vec3
	Visible  bool

	// Handle is reserved for the renderer's counterpart object.
	Handle interface{}

	parent   *Group
	children []*Group
}

// NewGroup creates a visible, empty group at the origin.
func NewGroup(name string) *Group {
	return &Group{Name: name, Visible: true}
}

// Add attaches children, detaching them from any previous parent first.
func (g *Group) Add(children ...*Group) {
	for _, c := range children {
		if c == nil || c == g {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = g
		g.children = append(g.children, c)
	}
}

// Remove detaches a direct child. Unknown children are ignored.
func (g *Group) Remove(child *Group) {
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			child.parent = nil
			return
		}
	}
}

// RemoveFromParent detaches g from its parent, if any.
func (g *Group) RemoveFromParent() {
	if g.parent != nil {
		g.parent.Remove(g)
	}
}

// Parent returns the group g is attached to, or nil.
func (g *Group) Parent() *Group {
	return g.parent
}

// Children returns the attached children. The slice must not be modified.
func (g *Group) Children() []*Group {
	return g.children
}

// WorldPosition sums the positions along the parent chain.
func (g *Group) WorldPosition() mgl64.Vec3 {
	p := g.Position
	for n := g.parent; n != nil; n = n.parent {
		p = p.Add(n.Position)
	}
	return p
}

// Walk visits g and its descendants depth first. Returning false from fn
// skips the node's children.
func (g *Group) Walk(fn func(*Group) bool) {
	if !fn(g) {
		return
	}
	for _, c := range g.children {
		c.Walk(fn)
	}
}

// Clone deep-copies the subtree. The copy is detached and has no Handle.
func (g *Group) Clone() *Group {
	c := &Group{
		Name:     g.Name,
		Position: g.Position,
		Visible:  g.Visible,
	}
	for _, child := range g.children {
		c.Add(child.Clone())
	}
	return c
}
