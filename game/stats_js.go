//go:build js

package game

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// DOM elements the overlays write into.
const (
	StatsElementID = "stats"
	DebugElementID = "debug"
)

// RenderStats writes the stat lines into the overlay element and the tuning
// rows into the panel element, hiding each while it is toggled off.
func (g *Game) RenderStats() {
	renderLines(StatsElementID, g.Stats.Visible, "GAME STATS [F10]", "#00aaff", g.StatLines)
	renderLines(DebugElementID, g.DebugUI.Visible, "TUNING [F9]  Q/E section  W/S field  A/D value", "#00ff00", func() []StatLine {
		return g.DebugUI.Lines(g)
	})
}

func renderLines(id string, visible bool, title, titleColor string, lines func() []StatLine) {
	el := js.Global.Get("document").Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return
	}
	if !visible {
		el.Get("style").Set("display", "none")
		return
	}
	el.Get("style").Set("display", "block")

	var b strings.Builder
	b.WriteString(`<b style="color:`)
	b.WriteString(titleColor)
	b.WriteString(`">`)
	b.WriteString(title)
	b.WriteString(`</b><br>`)
	for _, line := range lines() {
		b.WriteString(line.Label)
		b.WriteString(`: <span style="color:`)
		b.WriteString(line.Color)
		b.WriteString(`">`)
		b.WriteString(line.Value)
		b.WriteString("</span><br>")
	}
	el.Set("innerHTML", b.String())
}
