package enemy

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/projectile"
	"github.com/simukka/starship-sorades-3d/scene"
	"github.com/simukka/starship-sorades-3d/timer"
)

// Enemy is what the processor needs from every enemy type.
type Enemy interface {
	Base() *Ship
	Tree() *physics.Tree
	ResolveCollisionWithProjectile(enemyTree, projectileTree *physics.Tree) bool
	StopShooting()
}

// Compile-time interface checks
var (
	_ Enemy      = (*ShootingBeta)(nil)
	_ Damageable = (*ShootingBeta)(nil)
)

// Processor owns the live enemies: it spawns them into the scene, resolves
// player projectile hits and removes the dead.
type Processor struct {
	Scene       *scene.Scene
	Scheduler   *timer.Scheduler
	Projectiles *projectile.Registry // enemy fire
	Resources   *Resources
	Options     BetaOptions

	Enemies []Enemy

	// Grid, if set, is the broad phase for player lasers. Without it every
	// enemy is tested against every laser.
	Grid *physics.Grid
	near []*physics.Tree

	// OnDestroyed, if set, is called once per enemy as it is removed.
	OnDestroyed func(Enemy)
}

// NewProcessor creates a processor that spawns into s and fires into projectiles.
func NewProcessor(s *scene.Scene, scheduler *timer.Scheduler, projectiles *projectile.Registry, res *Resources, opts BetaOptions) *Processor {
	return &Processor{
		Scene:       s,
		Scheduler:   scheduler,
		Projectiles: projectiles,
		Resources:   res,
		Options:     opts,
		Enemies:     make([]Enemy, 0, 8),
	}
}

// Spawn creates an enemy of kind at pos and starts its behaviour.
func (p *Processor) Spawn(kind Kind, pos mgl64.Vec3) Enemy {
	var e Enemy
	switch kind {
	case KindShootingBeta:
		var hull *scene.Model
		if p.Resources != nil && p.Resources.Hull != nil {
			hull = p.Resources.Hull.Clone()
		}
		beta := NewShootingBeta(hull, p.Resources, p.Projectiles, p.Scheduler, p.Options)
		beta.SetPosition(pos)
		e = beta
	default:
		panic("enemy: unknown kind " + kind.String())
	}

	if p.Scene != nil {
		p.Scene.Add(e.Base().Group)
	}
	p.Enemies = append(p.Enemies, e)
	debug.Debug("enemy: spawned", kind.String(), e.Base().ID.String())
	return e
}

// Update resolves player lasers against every enemy, consuming each laser
// whose hit resolved, then removes enemies that died. It returns the number
// of resolved hits.
func (p *Processor) Update(playerLasers *projectile.Registry) int {
	hits := 0
	if playerLasers != nil && playerLasers.Len() > 0 {
		if p.Grid != nil {
			hits = p.resolveNearby(playerLasers)
		} else {
			hits = p.resolveAll(playerLasers)
		}
	}

	for i := len(p.Enemies) - 1; i >= 0; i-- {
		if !p.Enemies[i].Base().Alive {
			p.Remove(i)
		}
	}
	return hits
}

func (p *Processor) resolveAll(playerLasers *projectile.Registry) int {
	hits := 0
	for _, e := range p.Enemies {
		ship := e.Base()
		if !ship.Alive {
			continue
		}
		playerLasers.ForEach(func(l *projectile.Laser) bool {
			if physics.Detect(e.Tree(), l.Tree, e.ResolveCollisionWithProjectile) {
				hits++
				playerLasers.Release(l.ID)
			}
			return ship.Alive
		})
	}
	return hits
}

func (p *Processor) resolveNearby(playerLasers *projectile.Registry) int {
	p.Grid.Clear()
	playerLasers.ForEach(func(l *projectile.Laser) bool {
		p.Grid.Insert(l.Tree)
		return true
	})

	hits := 0
	for _, e := range p.Enemies {
		ship := e.Base()
		if !ship.Alive {
			continue
		}
		tree := e.Tree()
		c := tree.WorldCenter()
		p.near = p.Grid.Nearby(c.X(), c.Y(), tree.Radius+projectile.LaserRadius, p.near[:0])
		for _, t := range p.near {
			l, ok := t.TopAbstractParent().(*projectile.Laser)
			if !ok {
				continue
			}
			// consumed by an earlier enemy this frame
			if _, live := playerLasers.Get(l.ID); !live {
				continue
			}
			if physics.Detect(tree, l.Tree, e.ResolveCollisionWithProjectile) {
				hits++
				playerLasers.Release(l.ID)
			}
			if !ship.Alive {
				break
			}
		}
	}
	return hits
}

// Remove stops and detaches the enemy at index using swap-and-pop.
func (p *Processor) Remove(index int) {
	e := p.Enemies[index]
	e.StopShooting()
	e.Base().Group.RemoveFromParent()
	debug.Debug("enemy: removed", e.Base().ID.String(), "health", e.Base().Health)

	last := len(p.Enemies) - 1
	if index != last {
		p.Enemies[index] = p.Enemies[last]
	}
	p.Enemies[last] = nil
	p.Enemies = p.Enemies[:last]

	if p.OnDestroyed != nil {
		p.OnDestroyed(e)
	}
}

// Clear removes every enemy.
func (p *Processor) Clear() {
	for len(p.Enemies) > 0 {
		p.Remove(len(p.Enemies) - 1)
	}
}

// Len returns the number of live enemies.
func (p *Processor) Len() int {
	return len(p.Enemies)
}
