//go:build !js

// Command preview runs the game headless of any browser and draws the XY
// projection of the world with ebiten: stars, enemy collision spheres and
// lasers. Useful for checking cadence and hit resolution without assets.
package main

import (
	"context"
	"flag"
	"image/color"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/starship-sorades-3d/config"
	"github.com/simukka/starship-sorades-3d/debug"
	"github.com/simukka/starship-sorades-3d/enemy"
	"github.com/simukka/starship-sorades-3d/game"
	"github.com/simukka/starship-sorades-3d/physics"
	"github.com/simukka/starship-sorades-3d/projectile"
	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// tuningKeys are the panel controls, by the DOM key codes game.DebugUI reads.
var tuningKeys = map[ebiten.Key]int{
	ebiten.KeyQ: 81,
	ebiten.KeyE: 69,
	ebiten.KeyW: 87,
	ebiten.KeyS: 83,
	ebiten.KeyA: 65,
	ebiten.KeyD: 68,
}

// Preview adapts game.Game to ebiten.Game.
type Preview struct {
	g    *game.Game
	star color.RGBA
}

func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.g.Paused = !p.g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.g.DebugUI.Toggle()
	}
	if p.g.DebugUI.Visible {
		for key, code := range tuningKeys {
			if inpututil.IsKeyJustPressed(key) {
				p.g.DebugUI.HandleKey(p.g, code)
			}
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		p.g.ToggleEnemyFire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		p.g.Stats.Toggle()
	}

	if !p.g.Paused {
		if ebiten.IsKeyPressed(ebiten.KeySpace) {
			p.g.Player.Fire()
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			p.g.Player.Move(-1)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			p.g.Player.Move(1)
		}
	}

	p.g.Tick(time.Second / time.Duration(ebiten.TPS()))
	p.g.Stats.CurrentFPS = ebiten.ActualFPS()
	return nil
}

func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	p.drawStars(screen)
	for _, e := range p.g.Enemies.Enemies {
		p.drawEnemy(screen, e)
	}
	p.drawLasers(screen, p.g.EnemyLasers, colornames.Red)
	p.drawLasers(screen, p.g.PlayerLasers, colornames.Cyan)

	px, py := project(p.g.Player.X(), game.PlayerY)
	vector.DrawFilledCircle(screen, px, py, game.PlayerRadius, colornames.Deepskyblue, true)

	p.drawHUD(screen)
}

func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// project maps world XY (origin centered, +Y up) to screen pixels.
func project(x, y float64) (float32, float32) {
	return float32(x + ScreenWidth/2), float32(ScreenHeight/2 - y)
}

func (p *Preview) drawStars(screen *ebiten.Image) {
	stars := p.g.Stars.Points
	for n := 0; n < stars.Count(); n++ {
		x, y, _ := p.g.Stars.Star(n)
		sx, sy := project(float64(x), float64(y))
		c := stars.Colors[n*3 : n*3+3]
		p.star.R, p.star.G, p.star.B, p.star.A = uint8(c[0]*255), uint8(c[1]*255), uint8(c[2]*255), 255
		vector.DrawFilledRect(screen, sx, sy, 1.5, 1.5, p.star, false)
	}
}

func (p *Preview) drawEnemy(screen *ebiten.Image, e enemy.Enemy) {
	drawTree(screen, e.Tree())

	if beta, ok := e.(*enemy.ShootingBeta); ok {
		for _, c := range []*enemy.Cannon{beta.Cannons.Left, beta.Cannons.Right} {
			pos := c.Position()
			cx, cy := project(pos.X(), pos.Y())
			vector.DrawFilledCircle(screen, cx, cy, 3, colornames.Gray, true)
		}
	}
}

func drawTree(screen *ebiten.Image, t *physics.Tree) {
	c := t.WorldCenter()
	cx, cy := project(c.X(), c.Y())
	clr := colornames.Orange
	if t.Depth() > 0 {
		clr = colornames.Red
	}
	vector.StrokeCircle(screen, cx, cy, float32(t.Radius), 1, clr, true)
	for _, child := range t.Children() {
		drawTree(screen, child)
	}
}

func (p *Preview) drawLasers(screen *ebiten.Image, r *projectile.Registry, clr color.Color) {
	r.ForEach(func(l *projectile.Laser) bool {
		pos := l.Position()
		tip := pos.Add(l.Heading().Mul(projectile.LaserLength))
		x0, y0 := project(pos.X(), pos.Y())
		x1, y1 := project(tip.X(), tip.Y())
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
		return true
	})
}

func (p *Preview) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	b.WriteString("Space fire  Arrows move  S enemy fire  P pause  R reset  F9 tuning  F10 stats\n")
	if p.g.Paused {
		b.WriteString("PAUSED\n")
	}
	for _, line := range p.g.StatLines() {
		if !p.g.Stats.Visible && line.Label != "Wave" && line.Label != enemy.KindShootingBeta.String() {
			continue
		}
		b.WriteString(line.Label)
		b.WriteString(": ")
		b.WriteString(line.Value)
		b.WriteString("\n")
	}
	if p.g.DebugUI.Visible {
		b.WriteString("\nTUNING  Q/E section  W/S field  A/D value\n")
		for _, line := range p.g.DebugUI.Lines(p.g) {
			b.WriteString(line.Label)
			b.WriteString(": ")
			b.WriteString(line.Value)
			b.WriteString("\n")
		}
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func main() {
	configPath := flag.String("config", "", "JSON game configuration (defaults if empty)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	debug.EnableDebug = *verbose
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	g, err := game.NewGame(context.Background(), cfg, game.PlaceholderModels())
	if err != nil {
		logger.Error("create game", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Starship Sorades 3D preview")
	if err := ebiten.RunGame(&Preview{g: g}); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
