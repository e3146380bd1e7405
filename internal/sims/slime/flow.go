package slime

import "slime/internal/core"

// stepFlow advances the field by one tick: a left-to-right decay pass that
// bleeds one unit toward the lowest neighbor, then a right-to-left pass that
// moves bulk water with a matching debit. Sweeping the second pass from the
// opposite side keeps the directional bias of the first from accumulating.
func (w *World) stepFlow() {
	f := w.field

	// Pass 1: decay and unit flow, bottom row upward. A drain below voids
	// the cell outright, walls included. The decremented unit is credited
	// to the lowest neighbor without a further debit, so this pass drifts
	// by one unit whenever the winner sits at MaxWater.
	for x := 1; x < core.ScreenWidth-1; x++ {
		for y := core.FieldHeight - 2; y > 0; y-- {
			if f.At(x, y+1) == core.DrainValue {
				f.Set(x, y, 0)
			}
			v := f.At(x, y)
			if v == 0 || v >= core.WallValue {
				continue
			}
			f.Set(x, y, v-1)

			u, d := f.At(x, y-1), f.At(x, y+1)
			l, r := f.At(x-1, y), f.At(x+1, y)

			// Down wins ties; then strictly lower beats it in the
			// order up, left, right.
			q, nx, ny := d, x, y+1
			if u < q {
				q, nx, ny = u, x, y-1
			}
			if l < q {
				q, nx, ny = l, x-1, y
			}
			if r < q {
				nx, ny = x+1, y
			}
			if t := f.At(nx, ny); t < core.MaxWater {
				f.Set(nx, ny, t+1)
			}
		}
	}

	// Pass 2: mass-conserving bulk flow. Same default, but strict
	// improvement runs left, right, up.
	for x := core.ScreenWidth - 2; x > 0; x-- {
		for y := core.FieldHeight - 2; y >= 1; y-- {
			v := f.At(x, y)
			if v == 0 || v >= core.WallValue {
				continue
			}
			u, d := f.At(x, y-1), f.At(x, y+1)
			l, r := f.At(x-1, y), f.At(x+1, y)

			q, nx, ny := d, x, y+1
			if l < q {
				q, nx, ny = l, x-1, y
			}
			if r < q {
				q, nx, ny = r, x+1, y
			}
			if u < q {
				nx, ny = x, y-1
			}

			flow := v
			if flow > core.DensityFlow {
				flow = core.DensityFlow
			}
			if t := f.At(nx, ny); t < core.MaxWater {
				f.Set(nx, ny, t+flow)
				f.Set(x, y, v-flow)
			}
		}
	}
}

// rain spawns a droplet at the top interior row of each column with
// probability 1/RainProbability, drawn once per column per tick.
func (w *World) rain() {
	for x := 1; x < core.FieldWidth-1; x++ {
		if w.rng.IntN(core.RainProbability) == 1 {
			w.field.Set(x, 1, core.WaterSpawnAmount)
		}
	}
}
