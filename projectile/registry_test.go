package projectile

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_AcquireUntilExhausted tests that the pool refuses past capacity
func TestRegistry_AcquireUntilExhausted(t *testing.T) {
	r := NewRegistry("enemy", 3, 0)

	for i := 0; i < 3; i++ {
		require.NotNil(t, r.Acquire(), "acquire %d", i)
	}
	assert.Nil(t, r.Acquire())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Cap())
}

// TestRegistry_IDsAreUnique tests that recycled lasers get fresh ids
func TestRegistry_IDsAreUnique(t *testing.T) {
	r := NewRegistry("enemy", 1, 0)

	a := r.Acquire()
	first := a.ID
	require.True(t, r.Release(first))
	b := r.Acquire()

	assert.NotEqual(t, first, b.ID)
	_, ok := r.Get(first)
	assert.False(t, ok, "stale id must not resolve")
}

// TestRegistry_ReleaseSwapAndPop tests that the last laser fills the freed slot
func TestRegistry_ReleaseSwapAndPop(t *testing.T) {
	r := NewRegistry("enemy", 4, 0)
	a := r.Acquire()
	b := r.Acquire()
	c := r.Acquire()

	require.True(t, r.Release(a.ID))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 0, c.PoolIndex)
	assert.Equal(t, 1, b.PoolIndex)

	got, ok := r.Get(c.ID)
	require.True(t, ok)
	assert.Same(t, c, got)

	assert.False(t, r.Release(a.ID), "double release is a no-op")
}

// TestRegistry_ForEachAllowsReleasingCurrent tests release during iteration
func TestRegistry_ForEachAllowsReleasingCurrent(t *testing.T) {
	r := NewRegistry("player", 5, 0)
	for i := 0; i < 5; i++ {
		r.Acquire()
	}

	visited := 0
	r.ForEach(func(l *Laser) bool {
		visited++
		if l.ID%2 == 0 {
			r.Release(l.ID)
		}
		return true
	})

	assert.Equal(t, 5, visited)
	assert.Equal(t, 3, r.Len())
}

// TestRegistry_UpdateMovesAndExpires tests motion and distance-based despawn
func TestRegistry_UpdateMovesAndExpires(t *testing.T) {
	r := NewRegistry("enemy", 2, 1.0)
	s := &Spawner{Speed: -0.5, Parent: scene.NewGroup("ship"), Registry: r}
	l := s.Spawn()
	require.NotNil(t, l)

	r.Update()
	assert.Equal(t, mgl64.Vec3{0, -0.5, 0}, l.Position())
	r.Update()
	assert.Equal(t, 1, r.Len(), "exactly at max distance is kept")

	r.Update()
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry("enemy", 2, 0)
	a := r.Acquire()
	r.Acquire()

	r.Clear()

	assert.Equal(t, 0, r.Len())
	_, ok := r.Get(a.ID)
	assert.False(t, ok)
}

func TestRegistry_AttachTracksVisibility(t *testing.T) {
	r := NewRegistry("player", 3, 0)
	layer := scene.NewGroup("lasers")

	r.Attach(layer)
	require.Len(t, layer.Children(), 3)
	for _, c := range layer.Children() {
		assert.False(t, c.Visible, "idle lasers are hidden")
	}

	a := r.Acquire()
	b := r.Acquire()
	assert.True(t, a.Group.Visible)
	assert.Same(t, layer, a.Group.Parent())

	r.Release(a.ID)
	assert.False(t, a.Group.Visible)

	r.Clear()
	assert.False(t, b.Group.Visible)
}
