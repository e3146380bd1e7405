package core

// Field stores the cell matrix in row-major order. Each cell holds a water
// density (0..MaxWater), WallValue, or DrainValue. The matrix spans the full
// screen width even though only the leftmost FieldWidth columns are visible;
// the flow passes deliberately sweep past the field edge.
type Field struct {
	W, H int
	data []uint8
}

// NewField allocates a screen-sized field.
func NewField() *Field {
	return &Field{
		W:    ScreenWidth,
		H:    ScreenHeight,
		data: make([]uint8, ScreenWidth*ScreenHeight),
	}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Field) Cells() []uint8 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// In reports whether (x, y) addresses a cell.
func (f *Field) In(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// At returns the value at (x, y), or 0 for out-of-range coordinates.
// Pointer-driven coordinates routinely land outside the matrix near the
// edges; that is expected, not an error.
func (f *Field) At(x, y int) uint8 {
	if !f.In(x, y) {
		return 0
	}
	return f.data[y*f.W+x]
}

// Set writes the value at (x, y). Out-of-range coordinates are a no-op.
func (f *Field) Set(x, y int, v uint8) {
	if !f.In(x, y) {
		return
	}
	f.data[y*f.W+x] = v
}

// stampBorder marks the edges of the FieldWidth x FieldHeight region as
// walls.
func (f *Field) stampBorder() {
	for x := 0; x < FieldWidth; x++ {
		f.data[f.Index(x, 0)] = WallValue
		f.data[f.Index(x, FieldHeight-1)] = WallValue
	}
	for y := 0; y < FieldHeight; y++ {
		f.data[f.Index(0, y)] = WallValue
		f.data[f.Index(FieldWidth-1, y)] = WallValue
	}
}

// Reset clears every cell and stamps the border walls.
func (f *Field) Reset() {
	for i := range f.data {
		f.data[i] = 0
	}
	f.stampBorder()
}

// ClearLines removes interior walls, leaving water and the border intact.
func (f *Field) ClearLines() {
	for x := 1; x < FieldWidth-1; x++ {
		for y := 1; y < FieldHeight-1; y++ {
			if f.data[f.Index(x, y)] == WallValue {
				f.data[f.Index(x, y)] = 0
			}
		}
	}
}

// ClearWater zeroes every non-wall cell across the field region, border rows
// included, then stamps the border walls back.
func (f *Field) ClearWater() {
	for x := 0; x < FieldWidth; x++ {
		for y := 0; y < FieldHeight; y++ {
			if f.data[f.Index(x, y)] < WallValue {
				f.data[f.Index(x, y)] = 0
			}
		}
	}
	f.stampBorder()
}
