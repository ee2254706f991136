package engine

import (
	"math"

	"github.com/atbot/runner/internal/core"
)

// Viewport maps world units onto a grid of screen cells.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport for a world of worldW×worldH shown on a
// cols×rows screen.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
}

func (v Viewport) sx() float64 { return float64(v.Cols) / v.WorldW }
func (v Viewport) sy() float64 { return float64(v.Rows) / v.WorldH }

// ToCell converts a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx())), int(math.Floor(y * v.sy()))
}

// ToCellRect converts a world box to the cells it covers.
// Non-empty boxes always cover at least one cell.
func (v Viewport) ToCellRect(r core.FRect) core.Rect {
	x0 := int(math.Floor(r.X * v.sx()))
	y0 := int(math.Floor(r.Y * v.sy()))
	x1 := int(math.Ceil(r.Right() * v.sx()))
	y1 := int(math.Ceil(r.Bottom() * v.sy()))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld converts a cell to the world point at its centre.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.sx(), (float64(row) + 0.5) / v.sy()
}

// Columns converts a horizontal world distance to whole cells.
func (v Viewport) Columns(dx float64) int {
	return int(math.Floor(dx * v.sx()))
}
