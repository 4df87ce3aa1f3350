package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/projectile"
	"github.com/simukka/starship-sorades-3d/scene"
)

// Player is the ship at the bottom of the play area. It slides along X and
// fires straight up.
type Player struct {
	Group   *scene.Group
	Spawner *projectile.Spawner
	Reload  int
}

// NewPlayer creates a player whose lasers fly at speed into lasers.
func NewPlayer(lasers *projectile.Registry, speed float64) *Player {
	p := &Player{Group: scene.NewGroup("player")}
	p.Group.Position = mgl64.Vec3{0, PlayerY, 0}

	muzzle := PlayerMuzzle
	p.Spawner = &projectile.Spawner{
		Speed:           speed,
		Parent:          p.Group,
		SpawnerPosition: &muzzle,
		Registry:        lasers,
	}
	return p
}

// X returns the ship's horizontal position.
func (p *Player) X() float64 {
	return p.Group.Position.X()
}

// SetX moves the ship, keeping it inside the play area.
func (p *Player) SetX(x float64) {
	limit := config.PlayWidth/2 - PlayerRadius
	if x < -limit {
		x = -limit
	}
	if x > limit {
		x = limit
	}
	p.Group.Position[0] = x
}

// Move slides the ship by dir*PlayerSpeed.
func (p *Player) Move(dir float64) {
	p.SetX(p.X() + dir*PlayerSpeed)
}

// Fire shoots when the weapon has reloaded. It returns nil otherwise, or when
// the laser pool is exhausted.
func (p *Player) Fire() *projectile.Laser {
	if p.Reload > 0 {
		return nil
	}
	l := p.Spawner.Spawn()
	if l != nil {
		p.Reload = PlayerReload
	}
	return l
}

// Update counts the reload down by one frame.
func (p *Player) Update() {
	if p.Reload > 0 {
		p.Reload--
	}
}

// Reset puts the ship back at the center, ready to fire.
func (p *Player) Reset() {
	p.Group.Position = mgl64.Vec3{0, PlayerY, 0}
	p.Reload = 0
}
