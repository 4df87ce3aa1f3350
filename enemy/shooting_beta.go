package enemy

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/projectile"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/simukka/starship-sorades-3d/timer"
)

// ShootingBeta tuning.
const (
	ShootingBetaHealth = 1000
	ShootingPeriod     = time.Second
	LaserSpeed         = -0.5

	MainRadius   = 90
	TurretRadius = 50
)

// Cannon mounts, relative to the ship.
var (
	RightCannonOffset = mgl64.Vec3{7.5, -3.8, 0}
	LeftCannonOffset  = mgl64.Vec3{-7.5, -3.8, 0}
	RightTurretCenter = mgl64.Vec3{55, -10, 0}
	LeftTurretCenter  = mgl64.Vec3{-55, -10, 0}
)

// Cannons holds the two wing cannons.
type Cannons struct {
	Right *Cannon
	Left  *Cannon
}

// LaserSpawners holds one spawner per wing cannon.
type LaserSpawners struct {
	Left  *projectile.Spawner
	Right *projectile.Spawner
}

// ShootingBeta is a heavy enemy with a cannon on each wing. While shooting,
// both cannons fire straight down once per ShootingPeriod.
type ShootingBeta struct {
	Ship

	CollisionTree *physics.Tree
	Cannons       Cannons
	LaserSpawners LaserSpawners

	// ShootPeriod defaults to ShootingPeriod.
	ShootPeriod time.Duration

	isShooting       bool
	shootingInterval *timer.Interval
}

// BetaOptions tweaks a ShootingBeta away from the defaults.
type BetaOptions struct {
	ShootPeriod time.Duration
	LaserSpeed  float64
	HitDamage   int
}

// NewShootingBeta assembles the ship from res, wires both cannons to
// projectiles and starts shooting on scheduler. A nil scheduler leaves the
// ship idle until StartShooting is called.
func NewShootingBeta(model *scene.Model, res *Resources, projectiles *projectile.Registry, scheduler *timer.Scheduler, opts BetaOptions) *ShootingBeta {
	if opts.ShootPeriod <= 0 {
		opts.ShootPeriod = ShootingPeriod
	}
	if opts.LaserSpeed == 0 {
		opts.LaserSpeed = LaserSpeed
	}

	e := &ShootingBeta{
		Ship:        NewShip(model, KindShootingBeta),
		ShootPeriod: opts.ShootPeriod,
	}
	e.Health = ShootingBetaHealth
	if opts.HitDamage > 0 {
		e.Damage = opts.HitDamage
	}

	res = res.forInstance()
	e.Cannons.Right = NewCannon(res.CannonModelRight)
	e.Cannons.Left = NewCannon(res.CannonModelLeft)
	e.Group.Add(e.Cannons.Right.Group, e.Cannons.Left.Group)
	e.Cannons.Right.Group.Position = RightCannonOffset
	e.Cannons.Left.Group.Position = LeftCannonOffset

	e.LaserSpawners.Left = &projectile.Spawner{
		Speed:           opts.LaserSpeed,
		Parent:          e.Group,
		SpawnerPosition: &e.Cannons.Left.Group.Position,
		Registry:        projectiles,
	}
	e.LaserSpawners.Right = &projectile.Spawner{
		Speed:           opts.LaserSpeed,
		Parent:          e.Group,
		SpawnerPosition: &e.Cannons.Right.Group.Position,
		Registry:        projectiles,
	}

	e.CollisionTree = physics.NewTree(physics.TreeOptions{
		TopAbstractParent: e,
		TopPhysicalParent: e.Group,
		Radius:            MainRadius,
		Code:              physics.CodeMain,
		Children: []physics.TreeOptions{
			{Radius: TurretRadius, Position: RightTurretCenter, Code: physics.CodeRightTurret},
			{Radius: TurretRadius, Position: LeftTurretCenter, Code: physics.CodeLeftTurret},
		},
	})

	if scheduler != nil {
		e.StartShooting(scheduler)
	}
	return e
}

// StartShooting fires both cannons every ShootPeriod. Calling it while
// already shooting does nothing.
func (e *ShootingBeta) StartShooting(scheduler *timer.Scheduler) {
	if e.isShooting {
		return
	}
	e.shootingInterval = scheduler.Every(e.ShootPeriod, e.Shoot)
	e.isShooting = true
}

// StopShooting cancels the shooting timer.
func (e *ShootingBeta) StopShooting() {
	if e.shootingInterval != nil {
		e.shootingInterval.Stop()
		e.shootingInterval = nil
	}
	e.isShooting = false
}

// Retune applies opts to a live ship. Zero fields are left as they are. A
// new period restarts the shooting timer on scheduler if it was running.
func (e *ShootingBeta) Retune(opts BetaOptions, scheduler *timer.Scheduler) {
	if opts.HitDamage > 0 {
		e.Damage = opts.HitDamage
	}
	if opts.LaserSpeed != 0 {
		e.LaserSpawners.Left.Speed = opts.LaserSpeed
		e.LaserSpawners.Right.Speed = opts.LaserSpeed
	}
	if opts.ShootPeriod > 0 && opts.ShootPeriod != e.ShootPeriod {
		e.ShootPeriod = opts.ShootPeriod
		if e.isShooting {
			e.StopShooting()
			e.StartShooting(scheduler)
		}
	}
}

// IsShooting reports whether the shooting timer is running.
func (e *ShootingBeta) IsShooting() bool {
	return e.isShooting
}

// Shoot fires the left cannon, then the right.
func (e *ShootingBeta) Shoot() {
	left := e.LaserSpawners.Left.Spawn()
	right := e.LaserSpawners.Right.Spawn()
	if left == nil || right == nil {
		debug.Debug("enemy:", e.ID.String(), "dropped a shot, projectile pool full")
	}
}

// Tree implements Enemy.
func (e *ShootingBeta) Tree() *physics.Tree {
	return e.CollisionTree
}

// Base implements Enemy.
func (e *ShootingBeta) Base() *Ship {
	return &e.Ship
}
