package render

import "image/color"

// Frame is an owned RGBA pixel buffer holding one composed screen.
type Frame struct {
	w, h int
	buf  []byte
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) { return f.w, f.h }

// Pixels returns the backing buffer, row-major, four bytes per pixel.
func (f *Frame) Pixels() []byte { return f.buf }

// SetRGBA writes one pixel. Out-of-range coordinates are ignored.
func (f *Frame) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	base := (y*f.w + x) * 4
	f.buf[base+0] = c.R
	f.buf[base+1] = c.G
	f.buf[base+2] = c.B
	f.buf[base+3] = c.A
}

// AtRGBA reads one pixel back, or zero for out-of-range coordinates.
func (f *Frame) AtRGBA(x, y int) color.RGBA {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return color.RGBA{}
	}
	base := (y*f.w + x) * 4
	return color.RGBA{R: f.buf[base+0], G: f.buf[base+1], B: f.buf[base+2], A: f.buf[base+3]}
}
