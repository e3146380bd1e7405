//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"slime/internal/sims/slime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws an optional status line above the simulation view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the status line when visible.
func (o *Overlay) Draw(screen *ebiten.Image, st slime.GameState) {
	if o == nil || !o.visible {
		return
	}
	status := fmt.Sprintf("frame %d  tps %.0f  fps %.0f", st.Frames, ebiten.ActualTPS(), ebiten.ActualFPS())
	if st.Paused {
		status += "  paused"
	}
	if st.Rain {
		status += "  rain"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.White)
}
