// Package projectile implements pooled laser bolts, the spawners that emit
// them and the per-faction registry collision checks iterate over.
package projectile

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/scene"
)

// Laser dimensions in world units.
const (
	LaserRadius     = 1.5
	LaserHeadRadius = 0.75
	LaserLength     = 4.0
)

// Laser is a straight-flying bolt. Its collision tree is a body sphere with a
// head sub-volume pointing along the direction of travel.
type Laser struct {
	ID        uint32
	Velocity  mgl64.Vec3
	Travelled float64
	Source    *scene.Group // group of the instance that fired it
	Group     *scene.Group
	Tree      *physics.Tree
	PoolIndex int // Index in pool for swap-and-pop
}

func newLaser(poolIndex int) *Laser {
	l := &Laser{
		PoolIndex: poolIndex,
		Group:     scene.NewGroup("laser"),
	}
	l.Group.Visible = false
	l.Tree = physics.NewTree(physics.TreeOptions{
		TopAbstractParent: l,
		TopPhysicalParent: l.Group,
		Radius:            LaserRadius,
		Code:              physics.CodeBody,
		Children: []physics.TreeOptions{
			{Radius: LaserHeadRadius, Code: physics.CodeHead},
		},
	})
	return l
}

// Position returns the bolt's world position.
func (l *Laser) Position() mgl64.Vec3 {
	return l.Group.Position
}

// launch places the bolt and aims its head along velocity.
func (l *Laser) launch(pos, velocity mgl64.Vec3, source *scene.Group) {
	l.Group.Position = pos
	l.Velocity = velocity
	l.Travelled = 0
	l.Source = source

	head := l.Tree.Find(physics.CodeHead)
	dir := mgl64.Vec3{0, 1, 0}
	if velocity.Len() > 0 {
		dir = velocity.Normalize()
	}
	head.Position = dir.Mul(LaserLength / 2)
}

// step advances the bolt by one frame.
func (l *Laser) step() {
	l.Group.Position = l.Group.Position.Add(l.Velocity)
	l.Travelled += l.Velocity.Len()
}

// Heading returns the unit direction of travel, +Y for a resting bolt.
func (l *Laser) Heading() mgl64.Vec3 {
	if l.Velocity.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return l.Velocity.Normalize()
}

// Angle returns the heading in the XY plane, radians from +Y.
func (l *Laser) Angle() float64 {
	h := l.Heading()
	return math.Atan2(h.X(), h.Y())
}
