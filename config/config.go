// Package config holds the game's tunables. Default returns a playable
// configuration; Load overlays a JSON file on top of it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/simukka/starship-sorades-3d/enemy"
	"github.com/simukka/starship-sorades-3d/starfield"
)

// World constants
const (
	// PlayWidth and PlayHeight bound the area the ships fight in.
	PlayWidth  = 400.0
	PlayHeight = 300.0

	// FrameDuration is the fixed-timestep gate of the browser loop (~60 FPS).
	FrameDuration = 16 * time.Millisecond
)

// ErrInvalid wraps every error returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Duration is a time.Duration that reads and writes as "1s", "250ms".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Enemy tunes the shooting enemies.
type Enemy struct {
	ShootPeriod Duration `json:"shootPeriod"`
	LaserSpeed  float64  `json:"laserSpeed"`
	HitDamage   int      `json:"hitDamage"`
}

// Options converts e into the form enemy.NewShootingBeta takes.
func (e Enemy) Options() enemy.BetaOptions {
	return enemy.BetaOptions{
		ShootPeriod: e.ShootPeriod.Std(),
		LaserSpeed:  e.LaserSpeed,
		HitDamage:   e.HitDamage,
	}
}

// Lasers sizes the projectile registries.
type Lasers struct {
	Capacity    int     `json:"capacity"`
	MaxDistance float64 `json:"maxDistance"`
	PlayerSpeed float64 `json:"playerSpeed"`
}

// Assets locates models and textures.
type Assets struct {
	BaseURL string `json:"baseURL"`
}

// Config is the full game configuration.
type Config struct {
	Starfield     starfield.Config `json:"starfield"`
	Enemy         Enemy            `json:"enemy"`
	Lasers        Lasers           `json:"lasers"`
	MaxFrameDelta Duration         `json:"maxFrameDelta"`
	Seed          uint32           `json:"seed"`
	Assets        Assets           `json:"assets"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Starfield: starfield.Config{
			Count:     2000,
			Width:     PlayWidth * 2,
			Height:    PlayHeight * 2,
			Depth:     400,
			Direction: starfield.Down,
			Axis:      starfield.AxisY,
			Speed:     2,
			Size:      starfield.DefaultSize,
			Sprite:    starfield.DefaultSprite,
		},
		Enemy: Enemy{
			ShootPeriod: Duration(enemy.ShootingPeriod),
			LaserSpeed:  enemy.LaserSpeed,
			HitDamage:   enemy.HitDamage,
		},
		Lasers: Lasers{
			Capacity:    256,
			MaxDistance: PlayHeight * 2,
			PlayerSpeed: 6,
		},
		MaxFrameDelta: Duration(250 * time.Millisecond),
		Seed:          12345,
		Assets: Assets{
			BaseURL: "./src/models/",
		},
	}
}

// Parse decodes JSON over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the JSON file at path. Missing keys keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Starfield.Validate(); err != nil {
		return fmt.Errorf("%w: starfield: %w", ErrInvalid, err)
	}
	if c.Enemy.ShootPeriod <= 0 {
		return fmt.Errorf("%w: enemy.shootPeriod must be positive, got %s", ErrInvalid, c.Enemy.ShootPeriod.Std())
	}
	if c.Enemy.HitDamage <= 0 {
		return fmt.Errorf("%w: enemy.hitDamage must be positive, got %d", ErrInvalid, c.Enemy.HitDamage)
	}
	if c.Lasers.Capacity <= 0 {
		return fmt.Errorf("%w: lasers.capacity must be positive, got %d", ErrInvalid, c.Lasers.Capacity)
	}
	if c.Lasers.MaxDistance < 0 {
		return fmt.Errorf("%w: lasers.maxDistance must not be negative", ErrInvalid)
	}
	if c.Lasers.PlayerSpeed <= 0 {
		return fmt.Errorf("%w: lasers.playerSpeed must be positive", ErrInvalid)
	}
	if c.MaxFrameDelta <= 0 {
		return fmt.Errorf("%w: maxFrameDelta must be positive", ErrInvalid)
	}
	return nil
}
