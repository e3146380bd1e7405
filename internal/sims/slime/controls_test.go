package slime

import (
	"slices"
	"testing"

	"slime/internal/core"
)

func pressedTools(w *World) map[Tool]bool {
	out := map[Tool]bool{}
	for _, c := range w.controls {
		if c.kind == controlTool && c.Pressed {
			out[c.tool] = true
		}
	}
	return out
}

func TestInitialSelection(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})

	pressed := pressedTools(w)
	if !pressed[ToolPencil] || !pressed[ToolLine] || len(pressed) != 2 {
		t.Fatalf("initial pressed tools = %v, want pencil and line", pressed)
	}
	st := w.State()
	if st.Eraser != EraserNone || st.Draw != DrawLine || st.Rain || st.Paused {
		t.Fatalf("unexpected initial state %+v", st)
	}
}

func TestToolRadioGroups(t *testing.T) {
	cases := []struct {
		name   string
		y      int
		tool   Tool
		eraser EraserMode
	}{
		{"pencil", 30, ToolPencil, EraserNone},
		{"wall eraser", 50, ToolEraserWall, EraserWall},
		{"water eraser", 70, ToolEraserWater, EraserWater},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWithConfig(Config{Seed: 1})
			click(w, 305, tc.y)

			pressed := pressedTools(w)
			if !pressed[tc.tool] {
				t.Fatalf("tool %v not pressed after click", tc.tool)
			}
			for _, other := range []Tool{ToolPencil, ToolEraserWall, ToolEraserWater} {
				if other != tc.tool && pressed[other] {
					t.Fatalf("tool %v still pressed alongside %v", other, tc.tool)
				}
			}
			if !pressed[ToolLine] {
				t.Fatal("target-group selection disturbed the shape group")
			}
			if got := w.State().Eraser; got != tc.eraser {
				t.Fatalf("eraser mode = %v, want %v", got, tc.eraser)
			}
		})
	}
}

func TestDrawModeMirror(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})

	click(w, 305, 115)
	if got := w.State().Draw; got != DrawFree {
		t.Fatalf("draw mode = %v after freehand click, want free", got)
	}
	pressed := pressedTools(w)
	if pressed[ToolLine] || !pressed[ToolFree] {
		t.Fatal("shape radio did not flip to freehand")
	}
	if !pressed[ToolPencil] {
		t.Fatal("shape-group selection disturbed the target group")
	}

	click(w, 305, 95)
	if got := w.State().Draw; got != DrawLine {
		t.Fatalf("draw mode = %v after line click, want line", got)
	}
}

func TestTogglePauseTwice(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})
	click(w, 305, 140)
	if !w.State().Paused {
		t.Fatal("first pause click did not pause")
	}

	w.Field().Set(150, 100, 50)
	before := slices.Clone(w.Cells())
	for i := 0; i < 5; i++ {
		step(w)
	}
	if !slices.Equal(before, w.Cells()) {
		t.Fatal("field changed while paused")
	}

	click(w, 305, 140)
	if w.State().Paused {
		t.Fatal("second pause click did not resume")
	}
}

func TestActionFlashReleasesVisual(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})

	click(w, 305, 10) // rain zone
	if !w.State().Rain {
		t.Fatal("rain click did not enable rain")
	}
	if w.controls[0].Pressed {
		t.Fatal("action control stayed visually pressed after release")
	}

	click(w, 305, 10)
	if w.State().Rain {
		t.Fatal("second rain click did not disable rain")
	}
}

func TestClearWaterActionDisablesRain(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})
	w.Apply(ActionPause)
	w.Apply(ActionRain)
	f := w.Field()
	f.Set(80, 80, 33)
	f.Set(90, 90, core.WallValue)

	click(w, 305, 172)

	if f.At(80, 80) != 0 {
		t.Fatal("clear-water left water behind")
	}
	if f.At(90, 90) != core.WallValue {
		t.Fatal("clear-water removed an interior wall")
	}
	if w.State().Rain {
		t.Fatal("clear-water left rain enabled")
	}
}

func TestClearLinesAction(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})
	w.Apply(ActionPause)
	f := w.Field()
	f.Set(80, 80, core.WallValue)
	f.Set(90, 90, 33)

	click(w, 305, 162)

	if f.At(80, 80) != 0 {
		t.Fatal("clear-lines left an interior wall")
	}
	if f.At(90, 90) != 33 {
		t.Fatalf("clear-lines changed water to %d", f.At(90, 90))
	}
	if f.At(0, 80) != core.WallValue {
		t.Fatal("clear-lines touched the border")
	}
}

func TestResetAction(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})
	w.Apply(ActionRain)
	f := w.Field()
	f.Set(80, 80, core.WallValue)
	f.Set(90, 90, 33)

	click(w, 305, 190)

	for y := 1; y < core.FieldHeight-1; y++ {
		for x := 1; x < core.FieldWidth-1; x++ {
			if f.At(x, y) != 0 {
				t.Fatalf("cell (%d,%d) = %d after reset, want 0", x, y, f.At(x, y))
			}
		}
	}
	if w.State().Rain {
		t.Fatal("reset left rain enabled")
	}
	if w.State().Frames == 0 {
		t.Fatal("reset action zeroed the frame counter")
	}
}

func TestBorderSurvivesTicks(t *testing.T) {
	w := NewWithConfig(Config{Seed: 9})
	w.Apply(ActionRain)
	for i := 0; i < 60; i++ {
		step(w)
	}

	f := w.Field()
	for x := 0; x < core.FieldWidth; x++ {
		if f.At(x, 0) != core.WallValue || f.At(x, core.FieldHeight-1) != core.WallValue {
			t.Fatalf("horizontal border broken at x=%d", x)
		}
	}
	for y := 0; y < core.FieldHeight; y++ {
		if f.At(0, y) != core.WallValue || f.At(core.FieldWidth-1, y) != core.WallValue {
			t.Fatalf("vertical border broken at y=%d", y)
		}
	}
}

func TestPointerDecode(t *testing.T) {
	cases := []struct {
		mask  int
		left  bool
		right bool
	}{
		{ButtonNone, false, false},
		{ButtonPrimary, true, false},
		{ButtonSecondary, false, true},
		{3, false, false}, // both buttons collapse to none
	}
	for _, tc := range cases {
		var p Pointer
		p.Sync(5, 5, tc.mask)
		if p.Left != tc.left || p.Right != tc.right {
			t.Fatalf("mask %d decoded to left=%v right=%v, want left=%v right=%v",
				tc.mask, p.Left, p.Right, tc.left, tc.right)
		}
	}
}

func TestEdgeDecoder(t *testing.T) {
	cases := []struct {
		prev, cur bool
		want      ButtonEdge
	}{
		{false, false, ButtonEdge{}},
		{false, true, ButtonEdge{Pressed: true}},
		{true, true, ButtonEdge{Held: true}},
		{true, false, ButtonEdge{Released: true}},
	}
	for _, tc := range cases {
		if got := Edge(tc.prev, tc.cur); got != tc.want {
			t.Fatalf("Edge(%v,%v) = %+v, want %+v", tc.prev, tc.cur, got, tc.want)
		}
	}
}

func TestBothButtonsDrawNothing(t *testing.T) {
	w := NewWithConfig(Config{Seed: 1})

	w.StepFrame(50, 50, 3)
	if w.stroke.active {
		t.Fatal("collapsed button mask still captured a stroke")
	}
	for y := 1; y < core.FieldHeight-1; y++ {
		for x := 1; x < core.FieldWidth-1; x++ {
			if w.Field().At(x, y) != 0 {
				t.Fatalf("collapsed button mask mutated cell (%d,%d)", x, y)
			}
		}
	}
}
