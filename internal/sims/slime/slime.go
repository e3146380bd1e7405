package slime

import (
	"slime/internal/core"
	pcore "slime/pkg/core"
)

// World owns the complete simulation state: the cell field, the sidebar
// controls, the mode flags, and the pointer snapshot. One value is one
// independent instance; nothing in the package is shared between worlds.
type World struct {
	cfg Config

	field    *core.Field
	state    GameState
	pointer  Pointer
	stroke   stroke
	controls []Control

	rng *pcore.RNG
}

// New returns a world using the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:   cfg,
		field: core.NewField(),
		rng:   pcore.NewRNG(cfg.Seed),
	}
	w.initialize()
	return w
}

// initialize restores startup defaults: a blank bordered field, pencil and
// line tools selected, rain off, nothing paused.
func (w *World) initialize() {
	w.field.Reset()
	w.state = GameState{}
	w.stroke = stroke{}
	w.controls = sidebarControls()
	w.selectTool(ToolPencil)
	w.selectTool(ToolLine)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "slime" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: core.ScreenWidth, H: core.ScreenHeight}
}

// Cells exposes the current field values.
func (w *World) Cells() []uint8 { return w.field.Cells() }

// Reset reinitializes the world. A zero seed falls back to the configured
// one, so Reset(0) reproduces the construction-time state.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pcore.NewRNG(effective)
	w.pointer = Pointer{}
	w.initialize()
}

// Step advances one tick using the pointer snapshot left by the previous
// frame. Headless callers drive the world through this.
func (w *World) Step() {
	w.StepFrame(w.pointer.X, w.pointer.Y, w.currentMask())
}

func (w *World) currentMask() int {
	switch {
	case w.pointer.Left:
		return ButtonPrimary
	case w.pointer.Right:
		return ButtonSecondary
	}
	return ButtonNone
}

// StepFrame advances exactly one tick. The cursor position and button mask
// are snapshotted once up front; every phase of the tick observes that one
// consistent value.
func (w *World) StepFrame(x, y, mask int) {
	w.pointer.Sync(x, y, mask)
	w.dispatch()

	if w.state.Rain && !w.state.Paused {
		w.rain()
	}

	// The secondary button always performs the brush opposite to the
	// current mode: water when drawing, the matching eraser otherwise.
	if w.pointer.Right {
		switch w.state.Eraser {
		case EraserNone:
			w.AddWater(w.pointer.X, w.pointer.Y)
		case EraserWall:
			w.KillWall(w.pointer.X, w.pointer.Y)
		case EraserWater:
			w.KillWater(w.pointer.X, w.pointer.Y)
		}
	}

	// An active eraser overrides stroke capture on the primary button.
	if w.pointer.Left {
		switch w.state.Eraser {
		case EraserWall:
			w.KillWall(w.pointer.X, w.pointer.Y)
		case EraserWater:
			w.KillWater(w.pointer.X, w.pointer.Y)
		}
	}
	if w.state.Eraser == EraserNone {
		w.captureStroke()
	}

	w.state.Frames++

	if !w.state.Paused {
		w.stepFlow()
	}
}

// captureStroke runs the primary-button drag state machine for wall drawing.
// Line mode commits one segment on release; free mode commits a short
// segment every held tick and advances the anchor behind it.
func (w *World) captureStroke() {
	edge := w.pointer.LeftEdge()
	inField := w.pointer.X < core.FieldWidth

	if w.state.Draw == DrawLine {
		if edge.Pressed && inField {
			w.stroke.active = true
			w.stroke.x1, w.stroke.y1 = w.pointer.X, w.pointer.Y
		}
		if edge.Released && w.stroke.active && inField {
			w.stroke.active = false
			w.CommitLine(w.stroke.x1, w.stroke.y1, w.pointer.X, w.pointer.Y)
		}
		return
	}

	if edge.Pressed && inField {
		w.stroke.mayDraw = true
		w.stroke.active = true
		w.stroke.x1, w.stroke.y1 = w.pointer.X, w.pointer.Y
	}
	if edge.Held && w.stroke.active && w.stroke.mayDraw {
		w.CommitLine(w.stroke.x1, w.stroke.y1, w.pointer.X, w.pointer.Y)
		w.stroke.x1, w.stroke.y1 = w.pointer.X, w.pointer.Y
	}
	if !w.pointer.Left {
		w.stroke.mayDraw = false
	}
}

// Field exposes the cell matrix.
func (w *World) Field() *core.Field { return w.field }

// State returns a copy of the current mode flags and frame counter.
func (w *World) State() GameState { return w.state }

// Controls exposes the sidebar table for rendering.
func (w *World) Controls() []Control { return w.controls }

// PointerAt reports the cursor position from the current snapshot.
func (w *World) PointerAt() (int, int) { return w.pointer.X, w.pointer.Y }

// PreviewStroke reports the segment currently being dragged in line mode.
// Callers can trace it for display without mutating the field.
func (w *World) PreviewStroke() (x1, y1, x2, y2 int, ok bool) {
	if w.state.Eraser != EraserNone || w.state.Draw != DrawLine {
		return 0, 0, 0, 0, false
	}
	if !w.stroke.active || !w.pointer.Left {
		return 0, 0, 0, 0, false
	}
	return w.stroke.x1, w.stroke.y1, w.pointer.X, w.pointer.Y, true
}

func init() {
	core.Register("slime", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
