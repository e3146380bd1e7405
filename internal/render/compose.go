package render

import (
	"image"

	"slime/internal/core"
	"slime/internal/sims/slime"
	pcore "slime/pkg/core"
)

// Composer redraws a world into an owned frame once per tick: field cells,
// sidebar, control bevels and icons, stroke preview, and cursor.
type Composer struct {
	frame *Frame
	icons [10]icon
}

// NewComposer builds a composer with procedurally generated sidebar icons.
func NewComposer(seed int64) *Composer {
	return &Composer{
		frame: NewFrame(core.ScreenWidth, core.ScreenHeight),
		icons: buildIcons(pcore.NewRNG(seed)),
	}
}

// Frame exposes the most recently composed frame.
func (c *Composer) Frame() *Frame { return c.frame }

// Compose renders the world's current state into the frame.
func (c *Composer) Compose(w *slime.World) {
	c.drawField(w)
	c.drawSidebar(w)
	c.drawPreview(w)
	c.drawCursor(w)
}

func (c *Composer) drawField(w *slime.World) {
	f := w.Field()
	for y := 0; y < core.FieldHeight; y++ {
		for x := 0; x < core.FieldWidth; x++ {
			c.frame.SetRGBA(x, y, CellColor(f.At(x, y)))
		}
	}
}

func (c *Composer) drawSidebar(w *slime.World) {
	bg := Palette(ColorLightGray)
	for y := 0; y < core.ScreenHeight; y++ {
		for x := core.SidebarX; x < core.ScreenWidth; x++ {
			c.frame.SetRGBA(x, y, bg)
		}
	}
	for i, ctl := range w.Controls() {
		c.drawControl(ctl.Rect, ctl.Pressed, &c.icons[i])
	}
}

// drawControl paints the beveled border and blits the glyph. A raised
// control is lit from the top-left; pressing it swaps the bevel shades.
func (c *Composer) drawControl(r image.Rectangle, pressed bool, ic *icon) {
	x1, y1 := r.Min.X, r.Min.Y
	x2, y2 := r.Max.X-1, r.Max.Y-1

	top, bottom := ColorDarkGray, ColorBlack
	if pressed {
		top, bottom = ColorBlack, ColorDarkGray
	}
	for x := x1; x <= x2; x++ {
		c.frame.SetRGBA(x, y1, Palette(top))
		c.frame.SetRGBA(x, y2, Palette(bottom))
	}
	for y := y1; y <= y2; y++ {
		c.frame.SetRGBA(x1, y, Palette(top))
		c.frame.SetRGBA(x2, y, Palette(bottom))
	}

	for ix := 0; ix < iconSize; ix++ {
		for iy := 0; iy < iconSize; iy++ {
			v := ic[ix][iy]
			if v == colorTransparent {
				continue
			}
			px, py := x1+1+ix, y1+1+iy
			if px < x2 && py < y2 {
				c.frame.SetRGBA(px, py, Palette(int(v)))
			}
		}
	}
}

func (c *Composer) drawPreview(w *slime.World) {
	x1, y1, x2, y2, ok := w.PreviewStroke()
	if !ok {
		return
	}
	white := Palette(ColorWhite)
	slime.TraceLine(x1, y1, x2, y2, func(x, y int) {
		if x >= 0 && x < core.FieldWidth && y >= 0 && y < core.FieldHeight {
			c.frame.SetRGBA(x, y, white)
		}
	})
}

func (c *Composer) drawCursor(w *slime.World) {
	x, y := w.PointerAt()
	if x >= core.FieldWidth-1 {
		return
	}
	yellow := Palette(ColorYellow)
	c.frame.SetRGBA(x, y, yellow)
	c.frame.SetRGBA(x+1, y, yellow)
	c.frame.SetRGBA(x-1, y, yellow)
	c.frame.SetRGBA(x, y+1, yellow)
	c.frame.SetRGBA(x, y-1, yellow)
}
