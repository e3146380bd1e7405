package slime

import "slime/internal/core"

// AddWater stamps random densities into non-wall cells of a brush region
// above the cursor, WaterAddRadius wide on each side and twice that tall.
// The horizontal bound is the screen edge rather than the field edge, so the
// brush can seed the hidden columns the flow passes also sweep.
func (w *World) AddWater(cx, cy int) {
	for qx := -core.WaterAddRadius; qx <= core.WaterAddRadius; qx++ {
		for qy := -core.WaterAddRadius * 2; qy < 0; qy++ {
			x, y := cx+qx, cy+qy
			if x <= 0 || x >= core.ScreenWidth-1 || y <= 0 || y >= core.FieldHeight {
				continue
			}
			if w.field.At(x, y) < core.WallValue {
				w.field.Set(x, y, w.rng.Uint8n(core.WaterSpawnAmount))
			}
		}
	}
}

// KillWall clears wall cells inside the square eraser brush anchored two
// cells up-left of the cursor.
func (w *World) KillWall(cx, cy int) {
	sx, sy := cx-core.EraserSize/2, cy-core.EraserSize/2
	for x := sx; x < sx+core.EraserSize; x++ {
		for y := sy; y < sy+core.EraserSize; y++ {
			if x <= 0 || x >= core.FieldWidth-1 || y <= 0 || y >= core.FieldHeight-1 {
				continue
			}
			if w.field.At(x, y) == core.WallValue {
				w.field.Set(x, y, 0)
			}
		}
	}
}

// KillWater clears water cells with the same brush. Its x bound reaches one
// column further right than KillWall's.
func (w *World) KillWater(cx, cy int) {
	sx, sy := cx-core.EraserSize/2, cy-core.EraserSize/2
	for x := sx; x < sx+core.EraserSize; x++ {
		for y := sy; y < sy+core.EraserSize; y++ {
			if x <= 0 || x >= core.FieldWidth || y <= 0 || y >= core.FieldHeight-1 {
				continue
			}
			if w.field.At(x, y) < core.WallValue {
				w.field.Set(x, y, 0)
			}
		}
	}
}

// CommitLine rasterizes the segment between the two points and marks every
// touched field cell as a wall.
func (w *World) CommitLine(x1, y1, x2, y2 int) {
	TraceLine(x1, y1, x2, y2, func(x, y int) {
		if x >= 0 && x < core.FieldWidth && y >= 0 && y < core.FieldHeight {
			w.field.Set(x, y, core.WallValue)
		}
	})
}

// TraceLine walks the segment along its major axis, stepping the minor axis
// proportionally, and calls plot for each visited point. Endpoints are
// ordered by x first, equal endpoints are a no-op, and the minor-axis
// accumulator advances before each plot.
func TraceLine(zx1, zy1, zx2, zy2 int, plot func(x, y int)) {
	x1, y1, x2, y2 := zx1, zy1, zx2, zy2
	if zx1 > zx2 {
		x1, y1, x2, y2 = zx2, zy2, zx1, zy1
	}
	if x1 == x2 && y1 == y2 {
		return
	}
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	if abs(dx) > abs(dy) {
		iy := dy / dx
		cy := float64(y1)
		for x := x1; x <= x2; x++ {
			cy += iy
			plot(x, int(cy))
		}
		return
	}
	ix := abs(dx / dy)
	cx := float64(x1)
	if y1 > y2 {
		y1, y2 = y2, y1
		ix = -ix
		cx = float64(x2)
	}
	for y := y1; y <= y2; y++ {
		cx += ix
		plot(int(cx), y)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
