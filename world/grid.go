package world

import (
	"math"

	"github.com/plus3/platformer/ecs"
	"github.com/plus3/platformer/vec"
)

// GridToMidPixel converts a grid cell to the world position of an entity's
// centre, with the cell's bottom-left corner at the entity's bottom-left.
// Grid y counts upward from the bottom of the level. The entity's size is
// taken from its animation; entities without one are placed as points.
func (w *World) GridToMidPixel(gx, gy float32, e ecs.Entity) vec.Vec2 {
	var size vec.Vec2
	if anim, ok := ecs.Get[ecs.Animation](w.Pool, e); ok {
		size = anim.Anim.Size
	}
	return w.midPixel(gx, gy, size)
}

func (w *World) midPixel(gx, gy float32, size vec.Vec2) vec.Vec2 {
	cell := w.Options.CellSize
	return vec.New(
		gx*cell.X+size.X/2,
		w.Options.Height-gy*cell.Y-size.Y/2,
	)
}

// PixelToGrid returns the grid cell containing a world position.
func (w *World) PixelToGrid(pos vec.Vec2) (int, int) {
	cell := w.Options.CellSize
	gx := math.Floor(float64(pos.X / cell.X))
	gy := math.Floor(float64((w.Options.Height - pos.Y) / cell.Y))
	return int(gx), int(gy)
}
