//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// ScreenPainter uploads composed frames into a single ebiten image and draws
// it scaled onto the screen.
type ScreenPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewScreenPainter allocates a painter for frames of size w*h.
func NewScreenPainter(w, h int) *ScreenPainter {
	return &ScreenPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the frame pixels and draws them onto dst.
func (p *ScreenPainter) Blit(dst *ebiten.Image, frame *Frame, scale int) {
	fw, fh := frame.Size()
	if fw != p.w || fh != p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	p.img.ReplacePixels(frame.Pixels())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *ScreenPainter) Size() (int, int) { return p.w, p.h }
