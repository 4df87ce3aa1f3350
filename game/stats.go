package game

import "strconv"

// Stats tracks frame rate and combat counters for the overlay.
type Stats struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	Hits      int
	Destroyed int
	Waves     int
}

// Toggle toggles the stats overlay visibility
func (s *Stats) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS counts a frame at currentTime (milliseconds) and refreshes the
// FPS figure once a second.
func (s *Stats) UpdateFPS(currentTime float64) {
	s.FrameCount++

	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// StatLine is one label/value row of the overlay.
type StatLine struct {
	Label string
	Value string
	Color string
}

// StatLines lists what the overlay shows, top to bottom.
func (g *Game) StatLines() []StatLine {
	lines := []StatLine{
		{"FPS", strconv.FormatFloat(g.Stats.CurrentFPS, 'f', 1, 64), "#00ff00"},
		{"Wave", strconv.Itoa(g.Wave), "#ffffff"},
		{"Seed", strconv.FormatUint(uint64(g.Config.Seed), 10), "#aaaaaa"},
		{"Hits", strconv.Itoa(g.Stats.Hits), "#ffff00"},
		{"Destroyed", strconv.Itoa(g.Stats.Destroyed), "#ffff00"},
		{"Enemy lasers", poolUsage(g.EnemyLasers.Len(), g.EnemyLasers.Cap()), "#ff8800"},
		{"Player lasers", poolUsage(g.PlayerLasers.Len(), g.PlayerLasers.Cap()), "#44ff44"},
		{"Stars", strconv.Itoa(g.Stars.Count()), "#aaaaaa"},
	}
	for _, e := range g.Enemies.Enemies {
		ship := e.Base()
		lines = append(lines, StatLine{ship.Kind.String(), strconv.Itoa(ship.Health), healthColor(ship.Health)})
	}
	return lines
}

func poolUsage(active, size int) string {
	return strconv.Itoa(active) + "/" + strconv.Itoa(size)
}

func healthColor(health int) string {
	switch {
	case health > 500:
		return "#00ff00"
	case health > 200:
		return "#ffff00"
	}
	return "#ff0000"
}
