package tablet

// ToolKind identifies the kind of physical tool reporting to the
// dispatch core. ToolNone is the sentinel for "nothing in proximity."
type ToolKind int

const (
	// ToolNone means no tool is currently in proximity.
	ToolNone ToolKind = iota

	// ToolPen is a standard stylus tip.
	ToolPen

	// ToolEraser is a stylus eraser tip.
	ToolEraser

	// ToolBrush is a pressure-sensitive brush tool.
	ToolBrush

	// ToolPencil is a pencil-style tool.
	ToolPencil

	// ToolAirbrush is an airbrush-style tool.
	ToolAirbrush

	// ToolFinger is a bare-finger touch on a tablet surface.
	ToolFinger

	// ToolMouse is a tablet puck/mouse accessory.
	ToolMouse

	// ToolLens is a lens-cursor accessory.
	ToolLens
)

// Kernel BTN_TOOL_* event codes this package recognizes (from
// include/uapi/linux/input-event-codes.h).
const (
	btnToolPen      uint16 = 0x140
	btnToolRubber   uint16 = 0x141
	btnToolBrush    uint16 = 0x142
	btnToolPencil   uint16 = 0x143
	btnToolAirbrush uint16 = 0x144
	btnToolFinger   uint16 = 0x145
	btnToolMouse    uint16 = 0x146
	btnToolLens     uint16 = 0x147
)

var toolForKey = map[uint16]ToolKind{
	btnToolPen:      ToolPen,
	btnToolRubber:   ToolEraser,
	btnToolBrush:    ToolBrush,
	btnToolPencil:   ToolPencil,
	btnToolAirbrush: ToolAirbrush,
	btnToolFinger:   ToolFinger,
	btnToolMouse:    ToolMouse,
	btnToolLens:     ToolLens,
}

// toolForKeyCode reports whether code is one of the BTN_TOOL_* tool
// keys, and the ToolKind it identifies if so.
func toolForKeyCode(code uint16) (ToolKind, bool) {
	var (
		kind ToolKind
		ok   bool
	)

	kind, ok = toolForKey[code]

	return kind, ok
}
