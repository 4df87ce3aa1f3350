package projectile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/scene"
)

// Spawner emits lasers from a fixed offset on a parent group.
type Spawner struct {
	// Speed is the per-frame velocity along the parent's Y axis.
	// Negative values fire downwards.
	Speed float64

	// Parent is the group of the firing instance.
	Parent *scene.Group

	// SpawnerPosition points at the muzzle offset relative to Parent. It is
	// read on every shot, so moving a cannon moves its muzzle.
	SpawnerPosition *mgl64.Vec3

	// Registry receives the spawned lasers.
	Registry *Registry
}

// Muzzle returns the world position a laser would spawn at.
func (s *Spawner) Muzzle() mgl64.Vec3 {
	var p mgl64.Vec3
	if s.Parent != nil {
		p = s.Parent.WorldPosition()
	}
	if s.SpawnerPosition != nil {
		p = p.Add(*s.SpawnerPosition)
	}
	return p
}

// Spawn fires one laser. It returns nil when the registry is full.
func (s *Spawner) Spawn() *Laser {
	l := s.Registry.Acquire()
	if l == nil {
		return nil
	}
	l.launch(s.Muzzle(), mgl64.Vec3{0, s.Speed, 0}, s.Parent)
	return l
}
