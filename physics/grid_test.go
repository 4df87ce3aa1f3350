package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/stretchr/testify/assert"
)

func treeAt(x, y float64) *Tree {
	g := scene.NewGroup("marker")
	g.Position = mgl64.Vec3{x, y, 0}
	return NewTree(TreeOptions{TopPhysicalParent: g, Radius: 1, Code: CodeBody})
}

func TestGrid_NearbyFindsOnlyCloseTrees(t *testing.T) {
	g := NewGrid(-200, -150, 400, 300, 20)
	near := treeAt(5, 5)
	far := treeAt(150, -120)
	g.Insert(near)
	g.Insert(far)

	got := g.Nearby(0, 0, 10, nil)

	assert.Equal(t, []*Tree{near}, got)
	assert.Equal(t, 2, g.Len())
}

func TestGrid_LargeRadiusSpansCells(t *testing.T) {
	g := NewGrid(-200, -150, 400, 300, 20)
	a := treeAt(-80, 0)
	b := treeAt(80, 0)
	g.Insert(a)
	g.Insert(b)

	got := g.Nearby(0, 0, 90, nil)

	assert.ElementsMatch(t, []*Tree{a, b}, got)
}

// TestGrid_ClampsOutsidePositions tests that out-of-area trees land in border cells
func TestGrid_ClampsOutsidePositions(t *testing.T) {
	g := NewGrid(-200, -150, 400, 300, 20)
	outside := treeAt(-1000, 1000)
	g.Insert(outside)

	assert.Equal(t, []*Tree{outside}, g.Nearby(-5000, 5000, 1, nil))
	assert.Empty(t, g.Nearby(0, 0, 10, nil))
}

func TestGrid_Clear(t *testing.T) {
	g := NewGrid(0, 0, 100, 100, 10)
	g.Insert(treeAt(50, 50))
	g.Clear()

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Nearby(50, 50, 10, nil))
}
