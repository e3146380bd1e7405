package slime

import "image"

// Tool selects what the primary button does inside the field.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraserWall
	ToolEraserWater
	ToolLine
	ToolFree
)

// EraserMode gates which removal brush fires. It mirrors the draw-target
// tool group.
type EraserMode int

const (
	EraserNone EraserMode = iota
	EraserWall
	EraserWater
)

// DrawMode selects the stroke shape for wall drawing. It mirrors the
// stroke-shape tool group.
type DrawMode int

const (
	DrawLine DrawMode = iota
	DrawFree
)

// Action is a one-shot control fired on a release edge inside its zone.
type Action int

const (
	ActionReset Action = iota
	ActionPause
	ActionClearLines
	ActionClearWater
	ActionRain
)

// GameState carries the mode flags the sidebar mutates.
type GameState struct {
	Eraser EraserMode
	Draw   DrawMode
	Rain   bool
	Paused bool
	Frames int
}

type controlKind int

const (
	controlTool controlKind = iota
	controlAction
)

type toolGroup int

const (
	groupTarget toolGroup = iota
	groupShape
)

// Control is one sidebar hit zone together with the variant it dispatches:
// a radio member of a tool group, or a one-shot action. Pressed is the
// rendered bevel state.
type Control struct {
	Rect    image.Rectangle
	Pressed bool

	kind   controlKind
	tool   Tool
	group  toolGroup
	action Action
}

// sidebarControls lays out the control column. Order matters: dispatch walks
// the table top to bottom each tick, and the renderer keys icons by slot.
func sidebarControls() []Control {
	zone := func(y1, y2 int) image.Rectangle {
		return image.Rect(301, y1, 319, y2+1)
	}
	return []Control{
		{Rect: zone(2, 19), kind: controlAction, action: ActionRain},
		{Rect: zone(27, 44), kind: controlTool, tool: ToolPencil, group: groupTarget},
		{Rect: zone(47, 64), kind: controlTool, tool: ToolEraserWall, group: groupTarget},
		{Rect: zone(67, 84), kind: controlTool, tool: ToolEraserWater, group: groupTarget},
		{Rect: zone(92, 109), kind: controlTool, tool: ToolLine, group: groupShape},
		{Rect: zone(112, 129), kind: controlTool, tool: ToolFree, group: groupShape},
		{Rect: zone(137, 154), kind: controlAction, action: ActionPause},
		{Rect: zone(181, 198), kind: controlAction, action: ActionReset},
		{Rect: zone(158, 166), kind: controlAction, action: ActionClearLines},
		{Rect: zone(169, 177), kind: controlAction, action: ActionClearWater},
	}
}

// dispatch applies one tick of sidebar input: press edges switch tool radio
// groups, release edges fire one-shot actions and flash the control back up.
func (w *World) dispatch() {
	pt := image.Pt(w.pointer.X, w.pointer.Y)
	left := w.pointer.LeftEdge()
	for i := range w.controls {
		c := &w.controls[i]
		if !pt.In(c.Rect) {
			continue
		}
		switch {
		case c.kind == controlTool && left.Pressed:
			w.selectTool(c.tool)
		case c.kind == controlAction && left.Released:
			w.Apply(c.action)
			c.Pressed = false
		}
	}
}

// selectTool switches the radio selection within the tool's group and
// mirrors the choice into the eraser or draw mode. Any stroke in progress is
// dropped so a stale anchor cannot commit under the new mode.
func (w *World) selectTool(t Tool) {
	group := groupShape
	if t == ToolPencil || t == ToolEraserWall || t == ToolEraserWater {
		group = groupTarget
	}
	for i := range w.controls {
		c := &w.controls[i]
		if c.kind == controlTool && c.group == group {
			c.Pressed = c.tool == t
		}
	}
	switch t {
	case ToolPencil:
		w.state.Eraser = EraserNone
	case ToolEraserWall:
		w.state.Eraser = EraserWall
	case ToolEraserWater:
		w.state.Eraser = EraserWater
	case ToolLine:
		w.state.Draw = DrawLine
	case ToolFree:
		w.state.Draw = DrawFree
	}
	w.stroke = stroke{}
}

// Apply fires a one-shot action. Unrecognized actions are ignored.
func (w *World) Apply(a Action) {
	switch a {
	case ActionReset:
		w.field.Reset()
		w.state.Rain = false
	case ActionPause:
		w.state.Paused = !w.state.Paused
	case ActionClearLines:
		w.field.ClearLines()
	case ActionClearWater:
		w.field.ClearWater()
		w.state.Rain = false
	case ActionRain:
		w.state.Rain = !w.state.Rain
	}
}
