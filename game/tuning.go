package game

import (
	"math"
	"strconv"
	"time"

	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/enemy"
	"github.com/simukka/starship-sorades-3d/starfield"
)

// TuningSection groups the panel's fields.
type TuningSection int

const (
	SectionShootingBeta TuningSection = iota
	SectionStarfield
	SectionPlayer
	sectionCount
)

// TuningSectionNames are the panel headings.
var TuningSectionNames = map[TuningSection]string{
	SectionShootingBeta: "Shooting Beta",
	SectionStarfield:    "Starfield",
	SectionPlayer:       "Player",
}

// Tuning step sizes and floors.
const (
	ShootPeriodStep = 100 * time.Millisecond
	MinShootPeriod  = 100 * time.Millisecond
	LaserSpeedStep  = 0.1
	StarSpeedStep   = 0.5

	PlayerLaserSpeedStep = 0.5
)

// DebugUI holds the state of the live tuning panel. Changes apply to the
// running game and to g.Config, so they survive a Reset.
type DebugUI struct {
	Visible         bool
	SelectedSection TuningSection
	SelectedField   int
	FieldNames      map[TuningSection][]string
}

// NewDebugUI creates a hidden panel on the first field of the enemy section.
func NewDebugUI() *DebugUI {
	return &DebugUI{
		SelectedSection: SectionShootingBeta,
		FieldNames: map[TuningSection][]string{
			SectionShootingBeta: {"ShootPeriod", "LaserSpeed", "HitDamage"},
			SectionStarfield:    {"Speed", "Direction"},
			SectionPlayer:       {"LaserSpeed"},
		},
	}
}

// Toggle toggles the panel visibility
func (d *DebugUI) Toggle() {
	d.Visible = !d.Visible
}

// NextSection cycles to the next section
func (d *DebugUI) NextSection() {
	d.SelectedSection = (d.SelectedSection + 1) % sectionCount
	d.SelectedField = 0
}

// PrevSection cycles to the previous section
func (d *DebugUI) PrevSection() {
	d.SelectedSection = (d.SelectedSection + sectionCount - 1) % sectionCount
	d.SelectedField = 0
}

// NextField moves to the next field
func (d *DebugUI) NextField() {
	d.SelectedField = (d.SelectedField + 1) % len(d.fields())
}

// PrevField moves to the previous field
func (d *DebugUI) PrevField() {
	d.SelectedField--
	if d.SelectedField < 0 {
		d.SelectedField = len(d.fields()) - 1
	}
}

func (d *DebugUI) fields() []string {
	return d.FieldNames[d.SelectedSection]
}

// HandleKey runs the panel control bound to rawKeyCode and reports whether
// there was one: Q/E section, W/S field, A/D value.
func (d *DebugUI) HandleKey(g *Game, rawKeyCode int) bool {
	switch rawKeyCode {
	case 81: // Q
		d.PrevSection()
	case 69: // E
		d.NextSection()
	case 87: // W
		d.PrevField()
	case 83: // S
		d.NextField()
	case 65: // A
		d.AdjustValue(g, -1)
	case 68: // D
		d.AdjustValue(g, 1)
	default:
		return false
	}
	return true
}

// AdjustValue steps the selected field by delta steps and pushes the result
// into the live world.
func (d *DebugUI) AdjustValue(g *Game, delta float64) {
	field := d.fields()[d.SelectedField]

	switch d.SelectedSection {
	case SectionShootingBeta:
		cfg := &g.Config.Enemy
		switch field {
		case "ShootPeriod":
			period := cfg.ShootPeriod.Std() + time.Duration(delta)*ShootPeriodStep
			cfg.ShootPeriod = config.Duration(max(MinShootPeriod, period))
		case "LaserSpeed":
			// enemy lasers always travel down the screen
			speed := roundTenth(cfg.LaserSpeed + delta*LaserSpeedStep)
			cfg.LaserSpeed = min(-LaserSpeedStep, speed)
		case "HitDamage":
			cfg.HitDamage = max(1, cfg.HitDamage+int(delta))
		}
		g.retuneEnemies()

	case SectionStarfield:
		switch field {
		case "Speed":
			// out-of-range speeds are refused and the old one kept
			_ = g.Stars.SetSpeed(max(0, g.Stars.Speed+delta*StarSpeedStep))
			g.Config.Starfield.Speed = g.Stars.Speed
		case "Direction":
			dir := starfield.Up
			if g.Stars.Direction == starfield.Up {
				dir = starfield.Down
			}
			_ = g.Stars.SetDirection(dir)
			g.Config.Starfield.Direction = g.Stars.Direction
		}

	case SectionPlayer:
		if field == "LaserSpeed" {
			speed := max(PlayerLaserSpeedStep, g.Config.Lasers.PlayerSpeed+delta*PlayerLaserSpeedStep)
			g.Config.Lasers.PlayerSpeed = speed
			g.Player.Spawner.Speed = speed
		}
	}
}

// retuneEnemies pushes the enemy config into the processor for future waves
// and into every live ship.
func (g *Game) retuneEnemies() {
	opts := g.Config.Enemy.Options()
	g.Enemies.Options = opts
	for _, e := range g.Enemies.Enemies {
		if beta, ok := e.(*enemy.ShootingBeta); ok {
			beta.Retune(opts, g.Scheduler)
		}
	}
}

// FieldValue returns the current value of a field as a string
func (d *DebugUI) FieldValue(g *Game, section TuningSection, field string) string {
	switch section {
	case SectionShootingBeta:
		cfg := g.Config.Enemy
		switch field {
		case "ShootPeriod":
			return cfg.ShootPeriod.Std().String()
		case "LaserSpeed":
			return strconv.FormatFloat(cfg.LaserSpeed, 'f', 1, 64)
		case "HitDamage":
			return strconv.Itoa(cfg.HitDamage)
		}
	case SectionStarfield:
		switch field {
		case "Speed":
			return strconv.FormatFloat(g.Stars.Speed, 'f', 1, 64)
		case "Direction":
			return g.Stars.Direction.String()
		}
	case SectionPlayer:
		if field == "LaserSpeed" {
			return strconv.FormatFloat(g.Config.Lasers.PlayerSpeed, 'f', 1, 64)
		}
	}
	return ""
}

// Lines lists the panel rows: the section selector, then every field of the
// section with the selected one highlighted.
func (d *DebugUI) Lines(g *Game) []StatLine {
	lines := []StatLine{{"Section", "< " + TuningSectionNames[d.SelectedSection] + " >", "#ffff00"}}
	for i, field := range d.fields() {
		line := StatLine{field, d.FieldValue(g, d.SelectedSection, field), "#cccccc"}
		if i == d.SelectedField {
			line.Label = "> " + line.Label
			line.Color = "#00ff00"
		}
		lines = append(lines, line)
	}
	return lines
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
