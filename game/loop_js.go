//go:build js

package game

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/debug"
)

// frameMillis is config.FrameDuration in requestAnimationFrame units.
var frameMillis = float64(config.FrameDuration) / float64(time.Millisecond)

// Start begins the requestAnimationFrame loop.
func (g *Game) Start() {
	debug.Debug("Start!")
	g.Paused = false

	// Cancel existing animation frame
	g.Stop()

	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()
}

// Stop cancels the pending animation frame.
func (g *Game) Stop() {
	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
		g.AnimationFrameID = 0
	}
}

// GameLoopRAF is the main game loop using requestAnimationFrame.
func (g *Game) GameLoopRAF(currentTime float64) {
	// Schedule next frame
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()

	g.Stats.UpdateFPS(currentTime)

	// Fixed timestep
	if currentTime-g.LastFrameTime < frameMillis {
		return
	}

	dt := config.FrameDuration
	if g.LastFrameTime > 0 {
		dt = time.Duration((currentTime - g.LastFrameTime) * float64(time.Millisecond))
	}
	g.LastFrameTime = currentTime

	if !g.Paused {
		g.ProcessInput()
		g.Tick(dt)
	}

	if g.Renderer != nil {
		g.Renderer.Render(g.Scene)
	}
	g.RenderStats()
}
