// Package starfield implements the parallax star background: a box of point
// sprites that scroll along one axis and wrap around at the box faces.
package starfield

import (
	"fmt"
	"math"

	"github.com/simukka/starship-sorades-3d/common"
	"github.com/simukka/starship-sorades-3d/scene"
)

// UpdateFunc advances the star whose x coordinate is stars[i] along the
// given axis offset and wraps it once it crosses the boundary. span is the
// full box extent along the axis.
//
// Two strategies exist so the per-star loop carries no direction branch.
type UpdateFunc func(axis int, speed, boundary, span float32, stars []float32, i int)

// UpdateStarUp moves a star towards +axis and wraps it at +boundary.
func UpdateStarUp(axis int, speed, boundary, span float32, stars []float32, i int) {
	stars[i+axis] += speed

	if stars[i+axis] >= boundary {
		stars[i+axis] -= span
	}
}

// UpdateStarDown moves a star towards -axis and wraps it at -boundary.
func UpdateStarDown(axis int, speed, boundary, span float32, stars []float32, i int) {
	stars[i+axis] -= speed

	if stars[i+axis] <= -boundary {
		stars[i+axis] += span
	}
}

// Background is a box of stars centered on the origin.
type Background struct {
	Width, Height, Depth float64

	Direction Direction
	Axis      Axis
	Speed     float64
	Boundary  float64

	Points *scene.PointCloud

	updateStar UpdateFunc
	rng        common.Rand
}

// New validates cfg, scatters cfg.Count stars with rng and registers the
// point cloud with sc when sc is non-nil.
func New(cfg Config, rng common.Rand, sc *scene.Scene) (*Background, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Background{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Depth:     cfg.Depth,
		Direction: cfg.Direction,
		Axis:      cfg.Axis,
		Speed:     cfg.Speed,
		Points:    scene.NewPointCloud("stars", cfg.Count),
		rng:       rng,
	}

	// cfg.Direction was validated above
	_ = b.SetDirection(cfg.Direction)

	// stars crossing this are respawned at the opposite face
	b.Boundary = cfg.Extent(cfg.Axis) / 2

	color := DefaultColor
	if cfg.Color != nil {
		color = *cfg.Color
	}
	pos := b.Points.Positions
	col := b.Points.Colors
	for j := 0; j < len(pos); j += 3 {
		pos[j] = float32(b.RandomPositionX())
		pos[j+1] = float32(b.RandomPositionY())
		pos[j+2] = float32(b.RandomPositionZ())

		col[j] = color.R
		col[j+1] = color.G
		col[j+2] = color.B
	}

	b.Points.Material = scene.PointsMaterial{
		Size:         cfg.Size,
		Sprite:       cfg.Sprite,
		VertexColors: true,
		Transparent:  true,
		Additive:     true,
	}
	if b.Points.Material.Size == 0 {
		b.Points.Material.Size = DefaultSize
	}
	if b.Points.Material.Sprite == "" {
		b.Points.Material.Sprite = DefaultSprite
	}

	if sc != nil {
		sc.AddPoints(b.Points)
	}
	return b, nil
}

// RandomPositionX returns a whole-unit x inside the box.
func (b *Background) RandomPositionX() float64 {
	return b.randomCoord(b.Width)
}

// RandomPositionY returns a whole-unit y inside the box.
func (b *Background) RandomPositionY() float64 {
	return b.randomCoord(b.Height)
}

// RandomPositionZ returns a whole-unit z inside the box.
func (b *Background) RandomPositionZ() float64 {
	return b.randomCoord(b.Depth)
}

// randomCoord picks a whole unit in [-extent/2, extent/2). Odd extents
// would otherwise floor half a unit past the lower face.
func (b *Background) randomCoord(extent float64) float64 {
	v := math.Floor(b.rng.Float64()*extent - extent/2)
	if v < -extent/2 {
		v = math.Ceil(-extent / 2)
	}
	return v
}

// Span returns the box extent along the scroll axis.
func (b *Background) Span() float64 {
	switch b.Axis {
	case AxisX:
		return b.Width
	case AxisY:
		return b.Height
	}
	return b.Depth
}

// Update advances every star by one step.
func (b *Background) Update() {
	stars := b.Points.Positions

	axis := int(b.Axis)
	span := float32(b.Span())
	speed := float32(b.Speed)
	boundary := float32(b.Boundary)

	for i := 0; i < len(stars); i += 3 {
		b.updateStar(axis, speed, boundary, span, stars, i)
	}

	b.Points.MarkDirty()
}

// SetSpeed changes the per-frame step. It takes the limits Config.Validate
// applies: not negative and below the extent along the scroll axis.
func (b *Background) SetSpeed(speed float64) error {
	if speed < 0 {
		return fmt.Errorf("%w: negative speed %g", ErrInvalidConfig, speed)
	}
	if speed >= b.Span() {
		return fmt.Errorf("%w: speed %g must be below the %v extent %g", ErrInvalidConfig, speed, b.Axis, b.Span())
	}
	b.Speed = speed
	return nil
}

// SetDirection switches the scroll strategy. Stars keep their positions.
func (b *Background) SetDirection(d Direction) error {
	switch d {
	case Up:
		b.updateStar = UpdateStarUp
	case Down:
		b.updateStar = UpdateStarDown
	default:
		return fmt.Errorf("%w: unknown direction %v", ErrInvalidConfig, d)
	}
	b.Direction = d
	return nil
}

// Box is the size of the debug wireframe drawn around the field.
type Box struct {
	Width, Height, Depth float64
}

// Box returns the field's bounding box size.
func (b *Background) Box() Box {
	return Box{Width: b.Width, Height: b.Height, Depth: b.Depth}
}

// Count returns the number of stars.
func (b *Background) Count() int {
	return b.Points.Count()
}

// Star returns the coordinates of star n.
func (b *Background) Star(n int) (x, y, z float32) {
	p := b.Points.Positions[n*3 : n*3+3]
	return p[0], p[1], p[2]
}

// RandomPosition returns a random whole-unit point inside the box.
func (b *Background) RandomPosition() (x, y, z float64) {
	return b.RandomPositionX(), b.RandomPositionY(), b.RandomPositionZ()
}
