//go:build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// SetupInputHandlers initializes keyboard event handlers. canvasID names the
// element the F key sends fullscreen.
func (g *Game) SetupInputHandlers(canvasID string) {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		rawKeyCode := event.Get("keyCode").Int()
		keyCode := TranslateKeyCode(rawKeyCode)

		if keyCode == KeyStats || rawKeyCode == KeyDebug || g.DebugUI.Visible {
			event.Call("preventDefault")
		}
		if IsGameKey(keyCode) {
			event.Call("preventDefault")
		}

		g.KeyDown(rawKeyCode)

		if keyCode == KeyFullscreen {
			requestFullscreen(doc.Call("getElementById", canvasID))
		}
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		g.KeyUp(event.Get("keyCode").Int())
	})

	// Losing focus would otherwise leave keys stuck down.
	js.Global.Call("addEventListener", "blur", func() {
		for k := range g.Keys {
			g.Keys[k] = false
		}
	})
}

func requestFullscreen(el *js.Object) {
	if el == nil || el == js.Undefined {
		return
	}
	for _, method := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		if fn := el.Get(method); fn != nil && fn != js.Undefined {
			el.Call(method)
			return
		}
	}
}
