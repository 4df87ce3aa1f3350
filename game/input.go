package game

// Canonical control codes (DOM keyCode values).
const (
	KeyLeft       = 37
	KeyUp         = 38
	KeyRight      = 39
	KeyDown       = 40
	KeyFullscreen = 70
	KeyPause      = 80
	KeyDebug      = 120 // F9
	KeyStats      = 121 // F10
	KeyFire       = 88
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	27: KeyPause, // Esc => P
	32: KeyFire,  // Space => X
	48: KeyFire,  // 0 => X
	52: KeyLeft,  // 4 => Left
	54: KeyRight, // 6 => Right
	65: KeyLeft,  // A => Left
	67: KeyFire,  // C => X
	68: KeyRight, // D => Right
	74: KeyLeft,  // J => Left
	76: KeyRight, // L => Right
	89: KeyFire,  // Y => X
	90: KeyFire,  // Z => X
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// IsGameKey reports whether the browser's default action for keyCode should
// be suppressed.
func IsGameKey(keyCode int) bool {
	return keyCode >= KeyLeft && keyCode <= KeyDown || keyCode == KeyFire
}

// KeyDown records a pressed key. Pause, the stats overlay and the tuning
// panel toggle on press rather than being polled. While the panel is open
// its controls take their keys from the game.
func (g *Game) KeyDown(rawKeyCode int) {
	if rawKeyCode == KeyDebug {
		g.DebugUI.Toggle()
		return
	}
	if g.DebugUI.Visible && g.DebugUI.HandleKey(g, rawKeyCode) {
		return
	}

	keyCode := TranslateKeyCode(rawKeyCode)
	g.Keys[keyCode] = true

	switch keyCode {
	case KeyPause:
		g.Paused = !g.Paused
	case KeyStats:
		g.Stats.Toggle()
	}
}

// KeyUp records a released key.
func (g *Game) KeyUp(rawKeyCode int) {
	g.Keys[TranslateKeyCode(rawKeyCode)] = false
}

// ProcessInput applies the held keys for this frame.
func (g *Game) ProcessInput() {
	if g.Keys[KeyFire] {
		g.Player.Fire()
	}
	if g.Keys[KeyLeft] {
		g.Player.Move(-1)
	}
	if g.Keys[KeyRight] {
		g.Player.Move(1)
	}
}
