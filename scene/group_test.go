package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_WorldPositionSumsParents(t *testing.T) {
	root := NewGroup("root")
	ship := NewGroup("ship")
	cannon := NewGroup("cannon")

	root.Position = mgl64.Vec3{1, 1, 1}
	ship.Position = mgl64.Vec3{0, 100, 0}
	cannon.Position = mgl64.Vec3{7.5, -3.8, 0}

	root.Add(ship)
	ship.Add(cannon)

	world := cannon.WorldPosition()
	assert.InDeltaSlice(t, []float64{8.5, 97.2, 1}, world[:], 1e-9)
}

func TestGroup_AddReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")

	a.Add(c)
	b.Add(c)

	assert.Empty(t, a.Children())
	require.Len(t, b.Children(), 1)
	assert.Same(t, b, c.Parent())
}

func TestGroup_AddIgnoresSelfAndNil(t *testing.T) {
	a := NewGroup("a")
	a.Add(a, nil)
	assert.Empty(t, a.Children())
}

func TestGroup_RemoveFromParent(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	a.Add(b, c)

	b.RemoveFromParent()

	assert.Equal(t, []*Group{c}, a.Children())
	assert.Nil(t, b.Parent())
	b.RemoveFromParent()
}

func TestGroup_CloneIsDeepAndDetached(t *testing.T) {
	parent := NewGroup("parent")
	g := NewGroup("ship")
	g.Handle = "three-object"
	g.Add(NewGroup("cannon"))
	parent.Add(g)

	c := g.Clone()
	c.Children()[0].Position = mgl64.Vec3{1, 2, 3}

	assert.Nil(t, c.Parent())
	assert.Nil(t, c.Handle)
	assert.Equal(t, mgl64.Vec3{}, g.Children()[0].Position)
}

func TestGroup_Walk(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	root.Add(a)
	a.Add(b)

	var names []string
	root.Walk(func(g *Group) bool {
		names = append(names, g.Name)
		return g.Name != "a"
	})

	assert.Equal(t, []string{"root", "a"}, names)
}

func TestPointCloud_Version(t *testing.T) {
	p := NewPointCloud("stars", 4)
	assert.Equal(t, 4, p.Count())
	assert.Len(t, p.Colors, 12)

	p.MarkDirty()
	p.MarkDirty()
	assert.Equal(t, uint64(2), p.Version())
}

func TestScene_RemovePoints(t *testing.T) {
	s := New()
	a := NewPointCloud("a", 1)
	b := NewPointCloud("b", 1)
	s.AddPoints(a)
	s.AddPoints(b)

	s.RemovePoints(a)

	assert.Equal(t, []*PointCloud{b}, s.Points)
}
