// Package physics holds the pieces gameplay entities share: a model-backed
// physical instance and sphere collision trees.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/scene"
)

// Instance is an entity with a presence in the scene graph.
type Instance struct {
	Model *scene.Model
	Group *scene.Group
}

// NewInstance takes ownership of model. A nil model yields an empty group,
// which is what headless tests use.
func NewInstance(name string, model *scene.Model) Instance {
	if model == nil || model.Root == nil {
		return Instance{Group: scene.NewGroup(name)}
	}
	if model.Root.Name == "" {
		model.Root.Name = name
	}
	return Instance{Model: model, Group: model.Root}
}

// Position returns the instance's world position.
func (i *Instance) Position() mgl64.Vec3 {
	return i.Group.WorldPosition()
}

// SetPosition moves the instance relative to its parent.
func (i *Instance) SetPosition(p mgl64.Vec3) {
	i.Group.Position = p
}
