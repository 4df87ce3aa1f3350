package game

import (
	"github.com/simukka/starship-sorades-3d/enemy"
	"github.com/simukka/starship-sorades-3d/scene"
)

// PlaceholderModels builds stand-in hulls for builds that have no GLTF
// assets, such as the desktop preview and tests.
func PlaceholderModels() scene.StaticLoader {
	return scene.StaticLoader{
		enemy.HullModelName: func() *scene.Group {
			hull := scene.NewGroup(enemy.HullModelName)
			hull.Add(scene.NewGroup("cockpit"))
			return hull
		},
		enemy.CannonModelName: func() *scene.Group {
			return scene.NewGroup(enemy.CannonModelName)
		},
	}
}
