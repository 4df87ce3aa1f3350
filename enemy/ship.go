// Package enemy implements hostile ships: their damage model, the wing-cannon
// shooter and the processor that spawns, hits and removes them.
package enemy

import (
	"github.com/google/uuid"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/scene"
)

// HitDamage is the health a ship loses per qualifying projectile hit.
const HitDamage = 10

// Kind enumerates the enemy types the processor can spawn.
type Kind int

const (
	KindShootingBeta Kind = iota
)

// KindNames maps Kind to display names.
var KindNames = map[Kind]string{
	KindShootingBeta: "Shooting Beta",
}

func (k Kind) String() string {
	if name, ok := KindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Damageable is anything a collision can take health from.
type Damageable interface {
	TakeDamage(amount int)
}

// Ship is the state every enemy shares.
type Ship struct {
	physics.Instance

	ID     uuid.UUID
	Kind   Kind
	Health int
	Alive  bool

	// Damage is what a projectile head takes off this ship's targets.
	Damage int
}

// NewShip wraps model in a live ship of the given kind.
func NewShip(model *scene.Model, kind Kind) Ship {
	return Ship{
		Instance: physics.NewInstance(kind.String(), model),
		ID:       uuid.New(),
		Kind:     kind,
		Alive:    true,
		Damage:   HitDamage,
	}
}

// TakeDamage lowers health; a ship at or below zero is no longer alive.
func (s *Ship) TakeDamage(amount int) {
	s.Health -= amount
	if s.Health <= 0 {
		s.Alive = false
	}
}

// ResolveCollisionWithProjectile is the collision-tree callback for enemy
// versus player projectile. Only a projectile's head striking one of the
// enemy's first-level sub-volumes counts as a hit; the tree's owner then
// loses Damage. It reports whether the hit was consumed.
func (s *Ship) ResolveCollisionWithProjectile(enemyTree, projectileTree *physics.Tree) bool {
	if enemyTree.Depth() != 1 || projectileTree.Code != physics.CodeHead {
		return false
	}
	target, ok := enemyTree.TopAbstractParent().(Damageable)
	if !ok {
		return false
	}
	target.TakeDamage(s.Damage)
	return true
}

// Cannon is a weapon model mounted on a ship.
type Cannon struct {
	physics.Instance
}

// NewCannon wraps a cannon model.
func NewCannon(model *scene.Model) *Cannon {
	return &Cannon{Instance: physics.NewInstance("cannon", model)}
}
