package render

import (
	"image/color"
	"testing"

	"slime/internal/core"
	"slime/internal/sims/slime"
)

func TestCellColorMapping(t *testing.T) {
	if got := CellColor(0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("empty cell color = %v, want black", got)
	}
	if got := CellColor(core.WallValue); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("wall color = %v, want white", got)
	}

	shallow := CellColor(1)
	if shallow.B != 255 || shallow.R != 0 {
		t.Fatalf("shallow water = %v, want blue end of the ramp", shallow)
	}
	deep := CellColor(core.MaxWater)
	if deep.B != 0 || deep.G != 255 {
		t.Fatalf("deep water = %v, want yellow end of the ramp", deep)
	}
	for v := 1; v <= core.MaxWater; v++ {
		if CellColor(uint8(v)).A != 255 {
			t.Fatalf("water color for density %d is not opaque", v)
		}
	}
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(8, 8)
	if len(f.Pixels()) != 8*8*4 {
		t.Fatalf("pixel buffer length = %d", len(f.Pixels()))
	}
	f.SetRGBA(-1, 0, color.RGBA{255, 0, 0, 255})
	f.SetRGBA(0, 8, color.RGBA{255, 0, 0, 255})
	for i, b := range f.Pixels() {
		if b != 0 {
			t.Fatalf("out-of-range write reached byte %d", i)
		}
	}
}

func TestComposeScreenRegions(t *testing.T) {
	w := slime.New()
	w.Field().Set(150, 100, 50)
	c := NewComposer(1)
	c.Compose(w)

	frame := c.Frame()
	if got := frame.AtRGBA(50, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("border pixel = %v, want white", got)
	}
	if got := frame.AtRGBA(150, 150); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("empty field pixel = %v, want black", got)
	}
	if got := frame.AtRGBA(150, 100); got != CellColor(50) {
		t.Fatalf("water pixel = %v, want %v", got, CellColor(50))
	}
	if got := frame.AtRGBA(300, 25); got != Palette(ColorLightGray) {
		t.Fatalf("sidebar pixel = %v, want light gray", got)
	}
	if got := frame.AtRGBA(1, 0); got != Palette(ColorYellow) {
		t.Fatalf("cursor pixel = %v, want yellow", got)
	}
}

func TestComposeBevelFollowsPressedState(t *testing.T) {
	w := slime.New()
	c := NewComposer(1)
	c.Compose(w)

	frame := c.Frame()
	// Pencil starts selected, so its bevel is sunken; the wall eraser
	// below it starts raised.
	if got := frame.AtRGBA(301, 27); got != Palette(ColorBlack) {
		t.Fatalf("pressed control bevel = %v, want black", got)
	}
	if got := frame.AtRGBA(301, 47); got != Palette(ColorDarkGray) {
		t.Fatalf("raised control bevel = %v, want dark gray", got)
	}
}

func TestComposePreviewWithoutMutation(t *testing.T) {
	w := slime.New()
	w.StepFrame(10, 10, slime.ButtonPrimary)
	w.StepFrame(10, 40, slime.ButtonPrimary)

	c := NewComposer(1)
	c.Compose(w)

	if got := c.Frame().AtRGBA(10, 25); got != Palette(ColorWhite) {
		t.Fatalf("preview pixel = %v, want white", got)
	}
	if w.Field().At(10, 25) != 0 {
		t.Fatal("preview stroke mutated the field")
	}
}
