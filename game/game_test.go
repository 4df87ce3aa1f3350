package game

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/enemy"
	"github.com/simukka/starship-sorades-3d/projectile"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/simukka/starship-sorades-3d/starfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Starfield.Count = 100
	g, err := NewGame(context.Background(), cfg, PlaceholderModels())
	require.NoError(t, err)
	return g
}

func onlyBeta(t *testing.T, g *Game) *enemy.ShootingBeta {
	t.Helper()
	require.Equal(t, 1, g.Enemies.Len())
	beta, ok := g.Enemies.Enemies[0].(*enemy.ShootingBeta)
	require.True(t, ok)
	return beta
}

func TestNewGame_BuildsWorld(t *testing.T) {
	g := newTestGame(t)

	beta := onlyBeta(t, g)
	assert.True(t, beta.IsShooting())
	assert.Equal(t, 1, g.Wave)
	assert.Equal(t, EnemySpawnY, beta.Position().Y())
	assert.Equal(t, 100, g.Stars.Count())
	assert.Equal(t, []*scene.PointCloud{g.Stars.Points}, g.Scene.Points)
	assert.Same(t, g.Scene.Root, g.Player.Group.Parent())
	assert.Equal(t, enemy.HullModelName, g.Resources.Hull.Name)
}

func TestNewGame_Deterministic(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	assert.Equal(t, a.Stars.Points.Positions, b.Stars.Points.Positions)
	assert.Equal(t, onlyBeta(t, a).Position(), onlyBeta(t, b).Position())
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Starfield.Direction = starfield.Direction(9)

	_, err := NewGame(context.Background(), cfg, PlaceholderModels())

	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewGame_MissingModel(t *testing.T) {
	_, err := NewGame(context.Background(), config.Default(), scene.StaticLoader{})

	assert.ErrorIs(t, err, scene.ErrModelNotFound)
	assert.Contains(t, err.Error(), "load enemy resources")
}

func TestNewGame_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGame(ctx, config.Default(), PlaceholderModels())

	assert.ErrorIs(t, err, context.Canceled)
}

// TestTick_EnemyFiresTwoLasersPerSecond tests the cadence through the frame loop
func TestTick_EnemyFiresTwoLasersPerSecond(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 59; i++ {
		g.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, 0, g.EnemyLasers.Len())

	for i := 0; i < 4; i++ {
		g.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, 2, g.EnemyLasers.Len())
}

// TestTick_ClampsFrameDelta tests that a long stall fires at most the clamped catch-up
func TestTick_ClampsFrameDelta(t *testing.T) {
	g := newTestGame(t)
	g.Config.MaxFrameDelta = config.Duration(time.Second)

	g.Tick(time.Minute)

	assert.Equal(t, 2, g.EnemyLasers.Len())
}

func TestTick_Paused(t *testing.T) {
	g := newTestGame(t)
	g.Paused = true
	before := g.Stars.Points.Version()

	g.Tick(2 * time.Second)

	assert.Equal(t, uint64(0), g.Frame)
	assert.Equal(t, before, g.Stars.Points.Version())
	assert.Equal(t, 0, g.EnemyLasers.Len())
}

func TestTick_MovesStars(t *testing.T) {
	g := newTestGame(t)

	g.Tick(16 * time.Millisecond)

	assert.Equal(t, uint64(1), g.Stars.Points.Version())
	assert.Equal(t, uint64(1), g.Frame)
}

// TestFirePlayerLaser_HitsTurret tests the full path from shot to damage
func TestFirePlayerLaser_HitsTurret(t *testing.T) {
	g := newTestGame(t)
	beta := onlyBeta(t, g)
	beta.StopShooting()

	target := beta.Position().Add(enemy.RightTurretCenter)
	l := g.FirePlayerLaser(target.X())
	require.NotNil(t, l)
	l.Group.Position = target

	g.Tick(16 * time.Millisecond)

	assert.Equal(t, enemy.ShootingBetaHealth-enemy.HitDamage, beta.Health)
	assert.Equal(t, 1, g.Stats.Hits)
	assert.Equal(t, 0, g.PlayerLasers.Len())
}

func TestTick_DestroyedEnemyStartsNextWave(t *testing.T) {
	g := newTestGame(t)
	first := onlyBeta(t, g)
	first.Health = 1

	target := first.Position().Add(enemy.LeftTurretCenter)
	l := g.FirePlayerLaser(target.X())
	require.NotNil(t, l)
	l.Group.Position = target

	g.Tick(16 * time.Millisecond)

	assert.False(t, first.Alive)
	assert.Equal(t, 2, g.Wave)
	assert.Equal(t, 1, g.Stats.Destroyed)
	second := onlyBeta(t, g)
	assert.NotSame(t, first, second)
	assert.False(t, first.IsShooting())
	assert.Equal(t, 1, g.Scheduler.Len())
}

func TestToggleEnemyFire(t *testing.T) {
	g := newTestGame(t)
	beta := onlyBeta(t, g)

	g.ToggleEnemyFire()
	assert.False(t, beta.IsShooting())
	assert.Equal(t, 0, g.Scheduler.Len())

	g.ToggleEnemyFire()
	assert.True(t, beta.IsShooting())
	assert.Equal(t, 1, g.Scheduler.Len())
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	first := onlyBeta(t, g)
	firstPos := first.Position()
	for i := 0; i < 120; i++ {
		g.Tick(16 * time.Millisecond)
	}
	g.FirePlayerLaser(50)
	require.NotZero(t, g.EnemyLasers.Len())
	g.Keys[KeyFire] = true

	g.Reset()

	assert.Equal(t, 0, g.EnemyLasers.Len())
	assert.Equal(t, 0, g.PlayerLasers.Len())
	assert.Equal(t, 1, g.Wave)
	assert.Equal(t, uint64(0), g.Frame)
	assert.False(t, first.IsShooting())
	assert.Nil(t, first.Group.Parent())
	assert.Equal(t, 1, g.Scheduler.Len())
	assert.Equal(t, firstPos, onlyBeta(t, g).Position(), "waves replay from the seed")
	assert.Equal(t, mgl64.Vec3{0, PlayerY, 0}, g.Player.Group.Position)
	assert.Empty(t, g.Keys)
}

func TestNewGame_EnemyLasersFlyDown(t *testing.T) {
	g := newTestGame(t)
	beta := onlyBeta(t, g)
	beta.Shoot()

	var lasers []mgl64.Vec3
	g.EnemyLasers.ForEach(func(l *projectile.Laser) bool {
		lasers = append(lasers, l.Velocity)
		return true
	})
	require.Len(t, lasers, 2)
	for _, v := range lasers {
		assert.Equal(t, mgl64.Vec3{0, enemy.LaserSpeed, 0}, v)
	}
}
