package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/enemy"
)

// Player constants
const (
	PlayerRadius = 12
	PlayerReload = 6 // frames between shots
	PlayerSpeed  = 4 // x per frame

	// PlayerY is the fixed height the player ship flies at.
	PlayerY = -config.PlayHeight/2 + 20
)

// Wave constants
const (
	// EnemySpawnY is the height new enemies appear at.
	EnemySpawnY = config.PlayHeight/2 - 40

	// EnemySpawnMargin keeps spawned hulls inside the play area.
	EnemySpawnMargin = enemy.MainRadius
)

// GridCellSize is the broad-phase cell edge. Lasers are tiny so the cells
// only need to be a fraction of an enemy's main sphere.
const GridCellSize = 32.0

// RNG streams derived from the game seed.
const (
	StreamStars = iota + 1
	StreamWaves
)

// PlayerMuzzle is where player lasers leave the ship.
var PlayerMuzzle = mgl64.Vec3{0, PlayerRadius, 0}
