package starfield

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every configuration error returned by New.
var ErrInvalidConfig = errors.New("starfield: invalid config")

// Direction is the sense the stars scroll in along the chosen axis.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts "up" or "down".
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, text)
	}
	return nil
}

// Axis selects the coordinate the stars travel along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts "x", "y" or "z".
func (a *Axis) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "x":
		*a = AxisX
	case "y":
		*a = AxisY
	case "z":
		*a = AxisZ
	default:
		return fmt.Errorf("%w: unknown axis %q", ErrInvalidConfig, text)
	}
	return nil
}

// Color is a linear RGB triple in [0, 1].
type Color struct {
	R, G, B float32
}

// Config describes a star-field box.
type Config struct {
	Count     int       `json:"starCount"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Depth     float64   `json:"depth"`
	Direction Direction `json:"direction"`
	Axis      Axis      `json:"axis"`
	Speed     float64   `json:"speed"`

	Size   float64 `json:"size"`
	Color  *Color  `json:"color,omitempty"`
	Sprite string  `json:"sprite"`
}

// Defaults used when the corresponding Config field is zero.
const (
	DefaultSize   = 10
	DefaultSprite = "./src/images/star.png"
)

// DefaultColor is the star tint when Config.Color is nil.
var DefaultColor = Color{R: 1, G: 0, B: 0}

// Extent returns the box size along axis.
func (c Config) Extent(axis Axis) float64 {
	switch axis {
	case AxisX:
		return c.Width
	case AxisY:
		return c.Height
	case AxisZ:
		return c.Depth
	}
	return 0
}

// Validate checks that the box is usable for wrapping.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: negative star count %d", ErrInvalidConfig, c.Count)
	}
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return fmt.Errorf("%w: extents must be positive, got %gx%gx%g", ErrInvalidConfig, c.Width, c.Height, c.Depth)
	}
	if c.Direction != Up && c.Direction != Down {
		return fmt.Errorf("%w: unknown direction %v", ErrInvalidConfig, c.Direction)
	}
	if c.Axis < AxisX || c.Axis > AxisZ {
		return fmt.Errorf("%w: unknown axis %v", ErrInvalidConfig, c.Axis)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: negative speed %g", ErrInvalidConfig, c.Speed)
	}
	if c.Speed >= c.Extent(c.Axis) {
		return fmt.Errorf("%w: speed %g must be below the %v extent %g", ErrInvalidConfig, c.Speed, c.Axis, c.Extent(c.Axis))
	}
	return nil
}
