package render

import pcore "slime/pkg/core"

const iconSize = 16

// icon is a 16x16 glyph of VGA color indices; colorTransparent pixels are
// skipped when blitting.
type icon [iconSize][iconSize]uint8

// buildIcons generates the ten sidebar glyphs in slot order: rain, pencil,
// wall eraser, water eraser, line, freehand, pause, reset, clear-lines,
// clear-water. The noisy glyphs draw from the provided RNG.
func buildIcons(rng *pcore.RNG) [10]icon {
	var icons [10]icon

	fill := func(ic *icon, v uint8) {
		for x := 0; x < iconSize; x++ {
			for y := 0; y < iconSize; y++ {
				ic[x][y] = v
			}
		}
	}

	// Rain: sparse blue speckle.
	rain := &icons[0]
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			if rng.IntN(5) == 1 {
				rain[x][y] = ColorBlue
			}
		}
	}

	// Pencil: solid blue.
	fill(&icons[1], ColorBlue)

	// Wall eraser: white box on black.
	for y := 3; y < 13; y++ {
		for x := 3; x < 13; x++ {
			icons[2][x][y] = ColorWhite
		}
	}

	// Water eraser: light blue box on blue.
	fill(&icons[3], ColorBlue)
	for y := 3; y < 13; y++ {
		for x := 3; x < 13; x++ {
			icons[3][x][y] = ColorLightCyan
		}
	}

	// Line: diagonal.
	for i := 0; i < iconSize; i++ {
		icons[4][i][i] = ColorWhite
	}

	// Freehand: parabolic arc.
	for i := 0; i < iconSize; i++ {
		icons[5][i][(i*i)/iconSize] = ColorWhite
	}

	// Pause: two bars.
	for y := 2; y < 14; y++ {
		icons[6][5][y] = ColorLightGreen
		icons[6][6][y] = ColorLightGreen
		icons[6][9][y] = ColorLightGreen
		icons[6][10][y] = ColorLightGreen
	}

	// Reset: red cross.
	for i := 3; i < 13; i++ {
		icons[7][i][i] = ColorRed
		icons[7][i][iconSize-1-i] = ColorRed
	}

	// Clear lines and clear water sit in half-height slots, so their
	// glyphs stay within the top seven rows on a transparent background.
	fill(&icons[8], colorTransparent)
	for y := 0; y < 7; y++ {
		for x := 0; x < iconSize; x++ {
			icons[8][x][y] = ColorBlack
			if rng.IntN(2) == 1 {
				icons[8][x][y] = ColorWhite
			}
		}
	}
	fill(&icons[9], colorTransparent)
	for y := 0; y < 7; y++ {
		for x := 0; x < iconSize; x++ {
			icons[9][x][y] = ColorBlack
			if rng.IntN(2) == 1 {
				icons[9][x][y] = ColorBlue
			}
		}
	}

	return icons
}
