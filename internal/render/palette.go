package render

import (
	"image/color"

	"github.com/crazy3lf/colorconv"

	"slime/internal/core"
)

// VGA text-mode color indices used by the sidebar painter.
const (
	ColorBlack      = 0
	ColorBlue       = 1
	ColorRed        = 4
	ColorLightGray  = 7
	ColorDarkGray   = 8
	ColorLightGreen = 10
	ColorLightCyan  = 11
	ColorYellow     = 14
	ColorWhite      = 15

	// colorTransparent marks icon pixels the blitter skips.
	colorTransparent = 16
)

// vga is the classic 16-color palette.
var vga = [16]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 170, 255},
	{0, 170, 0, 255},
	{0, 170, 170, 255},
	{170, 0, 0, 255},
	{170, 0, 170, 255},
	{170, 85, 0, 255},
	{170, 170, 170, 255},
	{85, 85, 85, 255},
	{85, 85, 255, 255},
	{85, 255, 85, 255},
	{85, 255, 255, 255},
	{255, 85, 85, 255},
	{255, 85, 255, 255},
	{255, 255, 85, 255},
	{255, 255, 255, 255},
}

// waterRamp holds the density gradient. Shallow water renders blue and deep,
// pressurized water runs through magenta and red to yellow, which is a
// falling HSV hue sweep at full saturation and value.
var waterRamp [56]color.RGBA

// cellPalette maps every possible cell value straight to its screen color:
// 0 is black, densities index the water ramp, walls are white, and drains
// share the deep end of the ramp.
var cellPalette [256]color.RGBA

func init() {
	for i := range waterRamp {
		hue := 240 - float64(i)*180/float64(len(waterRamp)-1)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		waterRamp[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	cellPalette[0] = vga[ColorBlack]
	for v := 1; v < len(cellPalette); v++ {
		idx := (v+1)/2 + 3
		if idx > len(waterRamp)-1 {
			idx = len(waterRamp) - 1
		}
		cellPalette[v] = waterRamp[idx]
	}
	cellPalette[core.WallValue] = vga[ColorWhite]
}

// Palette maps a VGA color index to RGBA. Unknown indices map to
// transparent black.
func Palette(idx int) color.RGBA {
	if idx >= 0 && idx < len(vga) {
		return vga[idx]
	}
	return color.RGBA{}
}

// CellColor maps a raw cell value to its screen color.
func CellColor(v uint8) color.RGBA { return cellPalette[v] }

// WaterColor maps a water density to its gradient color.
func WaterColor(v uint8) color.RGBA { return cellPalette[v] }
