package physics

import "math"

// Grid is a spatial hash over the XY plane used as the broad phase before
// Detect. Trees are bucketed by their world center; a query returns every
// tree in the cells a circle touches. Positions outside the covered area are
// clamped into the border cells.
type Grid struct {
	CellSize   float64
	MinX, MinY float64
	GridWidth  int
	GridHeight int
	Cells      [][]*Tree
}

// NewGrid covers the rectangle starting at (minX, minY) with the given size.
// cellSize should be roughly twice the radius of the trees being inserted.
func NewGrid(minX, minY, width, height, cellSize float64) *Grid {
	gridWidth := int(width/cellSize) + 1
	gridHeight := int(height/cellSize) + 1

	cells := make([][]*Tree, gridWidth*gridHeight)
	for i := range cells {
		cells[i] = make([]*Tree, 0, 4)
	}

	return &Grid{
		CellSize:   cellSize,
		MinX:       minX,
		MinY:       minY,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Cells:      cells,
	}
}

func (g *Grid) cellX(x float64) int {
	return clamp(int(math.Floor((x-g.MinX)/g.CellSize)), 0, g.GridWidth-1)
}

func (g *Grid) cellY(y float64) int {
	return clamp(int(math.Floor((y-g.MinY)/g.CellSize)), 0, g.GridHeight-1)
}

// Clear empties every cell, keeping capacity. Call once per frame.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = g.Cells[i][:0]
	}
}

// Insert buckets t by its current world center.
func (g *Grid) Insert(t *Tree) {
	c := t.WorldCenter()
	idx := g.cellY(c.Y())*g.GridWidth + g.cellX(c.X())
	g.Cells[idx] = append(g.Cells[idx], t)
}

// Nearby appends to dst every tree bucketed in a cell that the circle at
// (x, y) with radius r overlaps.
func (g *Grid) Nearby(x, y, r float64, dst []*Tree) []*Tree {
	x0, x1 := g.cellX(x-r), g.cellX(x+r)
	y0, y1 := g.cellY(y-r), g.cellY(y+r)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			dst = append(dst, g.Cells[cy*g.GridWidth+cx]...)
		}
	}
	return dst
}

// Len returns the number of bucketed trees.
func (g *Grid) Len() int {
	n := 0
	for _, c := range g.Cells {
		n += len(c)
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
