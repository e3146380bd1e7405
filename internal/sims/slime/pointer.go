package slime

// Pointer button mask values accepted by StepFrame.
const (
	ButtonNone      = 0
	ButtonPrimary   = 1
	ButtonSecondary = 2
)

// ButtonEdge captures the transition between two samples of one button.
type ButtonEdge struct {
	Pressed  bool
	Released bool
	Held     bool
}

// Edge derives the transition for a (previous, current) button pair. Sidebar
// dispatch and stroke capture share this one decoder.
func Edge(prev, cur bool) ButtonEdge {
	return ButtonEdge{
		Pressed:  cur && !prev,
		Released: !cur && prev,
		Held:     cur && prev,
	}
}

// Pointer is the per-tick input snapshot. It is captured once at tick start
// and observed unchanged by everything that runs within the tick.
type Pointer struct {
	X, Y     int
	Left     bool
	Right    bool
	OldLeft  bool
	OldRight bool
}

// Sync folds a new cursor position and button mask into the snapshot,
// keeping the previous button states for edge detection. The mask encodes
// the buttons as mutually exclusive, so a value carrying both decodes as
// neither.
func (p *Pointer) Sync(x, y, mask int) {
	p.X, p.Y = x, y
	p.OldLeft, p.OldRight = p.Left, p.Right
	p.Left = mask == ButtonPrimary
	p.Right = mask == ButtonSecondary
}

// LeftEdge reports the primary-button transition for this tick.
func (p *Pointer) LeftEdge() ButtonEdge { return Edge(p.OldLeft, p.Left) }

// RightEdge reports the secondary-button transition for this tick.
func (p *Pointer) RightEdge() ButtonEdge { return Edge(p.OldRight, p.Right) }

// stroke tracks a primary-button drag in progress.
type stroke struct {
	active  bool
	mayDraw bool
	x1, y1  int
}
