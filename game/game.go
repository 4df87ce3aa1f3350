// Package game wires the star-field, the enemies and both laser registries
// into one world and advances it a frame at a time.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/common"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/enemy"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/projectile"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/simukka/starship-sorades-3d/starfield"
	"github.com/simukka/starship-sorades-3d/timer"
)

// Renderer draws the scene after every simulated frame.
type Renderer interface {
	Render(s *scene.Scene)
}

// Game holds the complete game state.
type Game struct {
	Config config.Config

	// World
	Scene        *scene.Scene
	Stars        *starfield.Background
	Scheduler    *timer.Scheduler
	Enemies      *enemy.Processor
	Resources    *enemy.Resources
	EnemyLasers  *projectile.Registry
	PlayerLasers *projectile.Registry
	Player       *Player

	Paused bool
	Frame  uint64
	Wave   int

	waveRNG *common.SeededRNG

	// Input
	Keys map[int]bool

	// Animation
	Renderer         Renderer
	AnimationFrameID int
	LastFrameTime    float64

	Stats   Stats
	DebugUI *DebugUI
}

// NewGame builds the world described by cfg, loading models through loader.
func NewGame(ctx context.Context, cfg config.Config, loader scene.ModelLoader) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Config:    cfg,
		Scene:     scene.New(),
		Scheduler: timer.NewScheduler(),
		waveRNG:   common.NewSeededRNG(common.DeriveSeed(cfg.Seed, StreamWaves)),
		Keys:      make(map[int]bool),
		DebugUI:   NewDebugUI(),
	}

	starRNG := common.NewSeededRNG(common.DeriveSeed(cfg.Seed, StreamStars))
	stars, err := starfield.New(cfg.Starfield, starRNG, g.Scene)
	if err != nil {
		return nil, fmt.Errorf("create star background: %w", err)
	}
	g.Stars = stars

	res, err := enemy.LoadShootingResources(ctx, scene.NewCache(loader))
	if err != nil {
		return nil, fmt.Errorf("load enemy resources: %w", err)
	}
	g.Resources = res

	lasers := scene.NewGroup("lasers")
	g.Scene.Add(lasers)
	g.EnemyLasers = projectile.NewRegistry("enemy", cfg.Lasers.Capacity, cfg.Lasers.MaxDistance)
	g.PlayerLasers = projectile.NewRegistry("player", cfg.Lasers.Capacity, cfg.Lasers.MaxDistance)
	g.EnemyLasers.Attach(lasers)
	g.PlayerLasers.Attach(lasers)

	g.Enemies = enemy.NewProcessor(g.Scene, g.Scheduler, g.EnemyLasers, res, cfg.Enemy.Options())
	g.Enemies.Grid = physics.NewGrid(-config.PlayWidth, -config.PlayHeight, config.PlayWidth*2, config.PlayHeight*2, GridCellSize)
	g.Enemies.OnDestroyed = func(e enemy.Enemy) {
		g.Stats.Destroyed++
	}

	g.Player = NewPlayer(g.PlayerLasers, cfg.Lasers.PlayerSpeed)
	g.Scene.Add(g.Player.Group)

	g.spawnWave()
	return g, nil
}

// Tick runs one frame. dt is the wall time since the previous frame; it is
// clamped to MaxFrameDelta so a backgrounded tab does not replay a burst of
// shots on return.
func (g *Game) Tick(dt time.Duration) {
	if g.Paused {
		return
	}
	if limit := g.Config.MaxFrameDelta.Std(); dt > limit {
		dt = limit
	}
	g.Frame++

	g.Scheduler.Advance(dt)
	g.Stars.Update()
	g.Player.Update()
	g.EnemyLasers.Update()
	g.PlayerLasers.Update()
	g.Stats.Hits += g.Enemies.Update(g.PlayerLasers)

	if g.Enemies.Len() == 0 {
		g.spawnWave()
	}
}

// FirePlayerLaser moves the player to x and fires immediately, ignoring the
// reload. It returns nil when the laser pool is exhausted.
func (g *Game) FirePlayerLaser(x float64) *projectile.Laser {
	g.Player.SetX(x)
	return g.Player.Spawner.Spawn()
}

// ToggleEnemyFire stops every shooting enemy, or restarts them all when none
// is shooting.
func (g *Game) ToggleEnemyFire() {
	anyShooting := false
	for _, e := range g.Enemies.Enemies {
		if s, ok := e.(*enemy.ShootingBeta); ok && s.IsShooting() {
			anyShooting = true
		}
	}
	for _, e := range g.Enemies.Enemies {
		s, ok := e.(*enemy.ShootingBeta)
		if !ok {
			continue
		}
		if anyShooting {
			s.StopShooting()
		} else {
			s.StartShooting(g.Scheduler)
		}
	}
}

// Reset clears every projectile, removes the enemies and starts over from
// the first wave.
func (g *Game) Reset() {
	g.Enemies.Clear()
	g.Scheduler.StopAll()
	g.EnemyLasers.Clear()
	g.PlayerLasers.Clear()
	g.Player.Reset()
	g.waveRNG.Reset()

	g.Frame = 0
	g.Wave = 0
	g.Paused = false
	g.Stats = Stats{Visible: g.Stats.Visible}
	for k := range g.Keys {
		delete(g.Keys, k)
	}

	g.spawnWave()
}

// spawnWave sends in the next enemy at a seeded position along the top edge.
func (g *Game) spawnWave() {
	g.Wave++
	g.Stats.Waves++

	limit := config.PlayWidth/2 - EnemySpawnMargin
	x := g.waveRNG.RandomFloat(-limit, limit)
	g.Enemies.Spawn(enemy.KindShootingBeta, mgl64.Vec3{x, EnemySpawnY, 0})

	debug.Debug("game: wave", g.Wave, "at x", x)
}
