package projectile

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawner_SpawnsAtMuzzle(t *testing.T) {
	ship := scene.NewGroup("ship")
	ship.Position = mgl64.Vec3{10, 100, 0}
	muzzle := mgl64.Vec3{-7.5, -3.8, 0}

	s := &Spawner{
		Speed:           -0.5,
		Parent:          ship,
		SpawnerPosition: &muzzle,
		Registry:        NewRegistry("enemy", 4, 0),
	}
	l := s.Spawn()
	require.NotNil(t, l)

	assert.InDelta(t, 2.5, l.Position().X(), 1e-9)
	assert.InDelta(t, 96.2, l.Position().Y(), 1e-9)
	assert.Equal(t, mgl64.Vec3{0, -0.5, 0}, l.Velocity)
	assert.Same(t, ship, l.Source)
}

func TestSpawner_FollowsMovedMuzzle(t *testing.T) {
	muzzle := mgl64.Vec3{1, 0, 0}
	s := &Spawner{Speed: 1, Parent: scene.NewGroup("ship"), SpawnerPosition: &muzzle, Registry: NewRegistry("p", 2, 0)}

	muzzle[0] = 5

	assert.Equal(t, mgl64.Vec3{5, 0, 0}, s.Spawn().Position())
}

func TestSpawner_HeadPointsForward(t *testing.T) {
	down := (&Spawner{Speed: -0.5, Registry: NewRegistry("enemy", 1, 0)}).Spawn()
	up := (&Spawner{Speed: 3, Registry: NewRegistry("player", 1, 0)}).Spawn()

	downHead := down.Tree.Find(physics.CodeHead)
	upHead := up.Tree.Find(physics.CodeHead)

	assert.Less(t, downHead.WorldCenter().Y(), down.Position().Y())
	assert.Greater(t, upHead.WorldCenter().Y(), up.Position().Y())
	assert.Same(t, down, down.Tree.TopAbstractParent())
}

func TestSpawner_FullRegistry(t *testing.T) {
	s := &Spawner{Speed: 1, Registry: NewRegistry("enemy", 0, 0)}
	assert.Nil(t, s.Spawn())
}
