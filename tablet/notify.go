package tablet

// RawEvent is one decoded kernel input event, exactly as spec.md §6
// describes it: an event-type/code/value triple plus a monotonic
// millisecond timestamp. Type carries the raw kernel EV_* value; the
// dispatch core classifies it internally rather than asking the caller
// to pre-sort events into categories.
type RawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
	Time  uint32
}

// Kernel EV_* event-type codes the classifier recognizes (from
// include/uapi/linux/input.h).
const (
	evSyn uint16 = 0x00
	evKey uint16 = 0x01
	evAbs uint16 = 0x03
	evMsc uint16 = 0x04
)

// mscSerial is the MSC_SERIAL code (include/uapi/linux/input-event-codes.h).
const mscSerial uint16 = 0x00

// ButtonState identifies whether a button notification is a press or a
// release.
type ButtonState int

const (
	// ButtonPressed indicates a button newly went down this frame.
	ButtonPressed ButtonState = iota

	// ButtonReleased indicates a button newly went up this frame.
	ButtonReleased
)

// Notifier is the semantic-event callback surface the enclosing
// library supplies (spec.md §6). All four methods are invoked
// synchronously from within Dispatcher.Process, during flush, in the
// exact order spec.md §4.5 specifies; the dispatcher never calls them
// from any other goroutine.
type Notifier interface {
	// ProximityOut fires when the tool has left proximity.
	ProximityOut(time uint32)

	// ToolUpdate fires when the in-proximity tool identity changes.
	// tool has already been refcount-incremented on the caller's
	// behalf (spec.md §6); the recipient owns that reference and must
	// release it (via the same ToolRegistry) once done with it.
	ToolUpdate(time uint32, tool ToolHandle)

	// Axis fires once per flush when one or more axes changed,
	// carrying the full six-axis value vector and a bitmap of which
	// axes actually changed this frame.
	Axis(time uint32, changed AxisSet, values [AxisCount]float64)

	// Button fires once per button whose pressed state changed this
	// frame, carrying the raw kernel button code.
	Button(time uint32, code uint16, state ButtonState)
}
