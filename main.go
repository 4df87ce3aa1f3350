//go:build js
// +build js

package main

import (
	"context"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/game"
	"github.com/simukka/starship-sorades-3d/scene/three"
)

// CanvasID is the element three.js draws into.
const CanvasID = "c"

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", CanvasID)
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	cfg := config.Default()
	if v := js.Global.Get("StarshipConfig"); v != nil && v != js.Undefined {
		parsed, err := config.Parse([]byte(js.Global.Get("JSON").Call("stringify", v).String()))
		if err != nil {
			debug.DebugError("config:", err.Error())
		} else {
			cfg = parsed
		}
	}

	width := js.Global.Get("innerWidth").Float()
	height := js.Global.Get("innerHeight").Float()
	models := three.NewGLTFLoader(cfg.Assets.BaseURL)
	renderer := three.NewRenderer(canvas, width, height, models)

	js.Global.Call("addEventListener", "resize", func() {
		renderer.Resize(js.Global.Get("innerWidth").Float(), js.Global.Get("innerHeight").Float())
	})

	// Model loading blocks on browser callbacks, so it must not run on the
	// main goroutine.
	go func() {
		g, err := game.NewGame(context.Background(), cfg, models)
		if err != nil {
			debug.DebugError("failed to start game:", err.Error())
			return
		}
		g.Renderer = renderer
		if debug.EnableDebug {
			renderer.AddWireframeBox(g.Stars.Box())
		}
		g.SetupInputHandlers(CanvasID)

		// Expose controls to JavaScript
		js.Global.Set("StarshipSorades3D", map[string]interface{}{
			"pause": func() {
				g.Paused = true
			},
			"resume": func() {
				g.Paused = false
			},
			"reset": func() {
				g.Reset()
			},
			"isPaused": func() bool {
				return g.Paused
			},
		})

		js.Global.Call("addEventListener", "beforeunload", func() {
			g.Stop()
		})

		g.Start()
	}()

	select {}
}
