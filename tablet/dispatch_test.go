package tablet_test

import (
	"testing"

	"gotest.tools/v3/assert"

	. "github.com/inputkit/inputkit/tablet"
)

// fakeDescriptor is a fixed axis-range table standing in for a real
// device's ioctl-reported ranges.
type fakeDescriptor map[Axis]AxisInfo

func (d fakeDescriptor) AxisInfo(axis Axis) AxisInfo {
	return d[axis]
}

func fullDescriptor() fakeDescriptor {
	return fakeDescriptor{
		AxisX:              {Min: 0, Max: 1000, Present: true},
		AxisY:              {Min: 0, Max: 1000, Present: true},
		AxisDistance:       {Min: 0, Max: 63, Present: true},
		AxisPressure:       {Min: 0, Max: 2047, Present: true},
		AxisTiltHorizontal: {Min: -64, Max: 63, Present: true},
		AxisTiltVertical:   {Min: -64, Max: 63, Present: true},
	}
}

// recordedCall is one notification the fake Notifier observed, shaped
// so table tests can assert against a flat, comparable slice rather
// than a handful of differently-typed call logs.
type recordedCall struct {
	kind   string
	time   uint32
	code   uint16
	state  ButtonState
	tool   ToolKind
	serial uint32
	handle ToolHandle
	axes   AxisSet
	values [AxisCount]float64
}

type fakeNotifier struct {
	calls []recordedCall
}

func (n *fakeNotifier) ProximityOut(time uint32) {
	n.calls = append(n.calls, recordedCall{kind: "proximity_out", time: time})
}

func (n *fakeNotifier) ToolUpdate(time uint32, tool ToolHandle) {
	n.calls = append(n.calls, recordedCall{kind: "tool_update", time: time, tool: tool.Kind, serial: tool.Serial, handle: tool})
}

func (n *fakeNotifier) Axis(time uint32, changed AxisSet, values [AxisCount]float64) {
	n.calls = append(n.calls, recordedCall{kind: "axis_notify", time: time, axes: changed, values: values})
}

func (n *fakeNotifier) Button(time uint32, code uint16, state ButtonState) {
	n.calls = append(n.calls, recordedCall{kind: "button", time: time, code: code, state: state})
}

func (n *fakeNotifier) kinds() []string {
	kinds := make([]string, len(n.calls))
	for i, call := range n.calls {
		kinds[i] = call.kind
	}

	return kinds
}

const (
	keyToolPen uint16 = 0x140
	keyTouch   uint16 = 0x14a
	keyStylus  uint16 = 0x14b

	absX        uint16 = 0x00
	absY        uint16 = 0x01
	absPressure uint16 = 0x18
	absDistance uint16 = 0x19
)

func keyEvent(code uint16, value int32, time uint32) RawEvent {
	return RawEvent{Type: 0x01, Code: code, Value: value, Time: time}
}

func absEvent(code uint16, value int32, time uint32) RawEvent {
	return RawEvent{Type: 0x03, Code: code, Value: value, Time: time}
}

func mscSerialEvent(value int32, time uint32) RawEvent {
	return RawEvent{Type: 0x04, Code: 0x00, Value: value, Time: time}
}

func syncEvent(time uint32) RawEvent {
	return RawEvent{Type: 0x00, Time: time}
}

func feed(t *testing.T, d *Dispatcher, events []RawEvent) {
	t.Helper()

	for _, event := range events {
		assert.NilError(t, d.Process(event))
	}
}

// Scenario 1: proximity in, motion, proximity out.
func TestDispatcherProximityInMotionOut(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(fullDescriptor(), notifier)

	feed(t, d, []RawEvent{
		keyEvent(keyToolPen, 1, 100),
		absEvent(absX, 500, 100),
		absEvent(absY, 600, 100),
		absEvent(absDistance, 10, 100),
		syncEvent(100),
		absEvent(absX, 510, 200),
		syncEvent(200),
		keyEvent(keyToolPen, 0, 300),
		syncEvent(300),
	})

	assert.DeepEqual(t, notifier.kinds(), []string{"tool_update", "axis_notify", "axis_notify", "proximity_out"})
	assert.Equal(t, notifier.calls[0].tool, ToolPen)

	first := notifier.calls[1]
	assert.Equal(t, first.axes, axisSet(AxisX, AxisY, AxisDistance))
	assert.Equal(t, first.values[AxisX], 500.0)
	assert.Equal(t, first.values[AxisY], 600.0)
	assert.Equal(t, first.values[AxisDistance], 10.0)

	second := notifier.calls[2]
	assert.Equal(t, second.axes, axisSet(AxisX))
	assert.Equal(t, second.values[AxisX], 510.0)
	// Y and Distance persist from the previous frame untouched.
	assert.Equal(t, second.values[AxisY], 600.0)
	assert.Equal(t, second.values[AxisDistance], 10.0)

	assert.Equal(t, notifier.calls[3].time, uint32(300))
}

// Scenario 2: pressure suppressed during hover.
func TestDispatcherPressureSuppressedDuringHover(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(fullDescriptor(), notifier)

	feed(t, d, []RawEvent{
		keyEvent(keyToolPen, 1, 10),
		absEvent(absPressure, 500, 10),
		syncEvent(10),
	})

	assert.DeepEqual(t, notifier.kinds(), []string{"tool_update"})
}

// Scenario 3: distance suppressed during contact.
func TestDispatcherDistanceSuppressedDuringContact(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(fullDescriptor(), notifier)

	feed(t, d, []RawEvent{
		keyEvent(keyToolPen, 1, 10),
		keyEvent(keyTouch, 1, 10),
		absEvent(absPressure, 500, 10),
		absEvent(absDistance, 5, 10),
		syncEvent(10),
	})

	assert.DeepEqual(t, notifier.kinds(), []string{"button", "tool_update", "axis_notify"})

	axisCall := notifier.calls[2]
	assert.Assert(t, axisCall.axes.Test(AxisPressure))
	assert.Assert(t, !axisCall.axes.Test(AxisDistance))
}

// Scenario 4: tool identity preserved across proximity cycles.
func TestDispatcherToolIdentityPreservedAcrossProximityCycles(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(fullDescriptor(), notifier)

	feed(t, d, []RawEvent{
		mscSerialEvent(0x1234, 10),
		keyEvent(keyToolPen, 1, 10),
		syncEvent(10),
		keyEvent(keyToolPen, 0, 100),
		syncEvent(100),
		mscSerialEvent(0x1234, 200),
		keyEvent(keyToolPen, 1, 200),
		syncEvent(200),
	})

	var updates []recordedCall
	for _, call := range notifier.calls {
		if call.kind == "tool_update" {
			updates = append(updates, call)
		}
	}

	assert.Equal(t, len(updates), 2)
	assert.Equal(t, updates[0].tool, updates[1].tool)
	assert.Equal(t, updates[0].serial, updates[1].serial)
	assert.Equal(t, updates[0].handle, updates[1].handle)
}

// Scenario 5: a button press and a button release in the same frame are
// emitted press first, release last.
func TestDispatcherButtonOrdering(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(fullDescriptor(), notifier)

	// Prime a held stylus button in a prior frame so this frame can
	// release it alongside a fresh touch press.
	feed(t, d, []RawEvent{
		keyEvent(keyToolPen, 1, 1),
		keyEvent(keyStylus, 1, 1),
		syncEvent(1),
	})
	notifier.calls = nil

	feed(t, d, []RawEvent{
		keyEvent(keyTouch, 1, 2),
		keyEvent(keyStylus, 0, 2),
		syncEvent(2),
	})

	assert.DeepEqual(t, notifier.kinds(), []string{"button", "button"})
	assert.Equal(t, notifier.calls[0].state, ButtonPressed)
	assert.Equal(t, notifier.calls[0].code, keyTouch)
	assert.Equal(t, notifier.calls[1].state, ButtonReleased)
	assert.Equal(t, notifier.calls[1].code, keyStylus)
}

// Scenario 6: proximity gate drops events until the next sync.
func TestDispatcherProximityGate(t *testing.T) {
	notifier := &fakeNotifier{}
	d := NewDispatcher(fullDescriptor(), notifier)

	feed(t, d, []RawEvent{
		keyEvent(keyToolPen, 1, 1),
		syncEvent(1),
		keyEvent(keyToolPen, 0, 2), // arms ToolLeftProximity, not yet flushed
		absEvent(absX, 999, 2),     // must be dropped by the gate
		keyEvent(keyTouch, 1, 2),   // must be dropped by the gate
		syncEvent(2),
	})

	assert.DeepEqual(t, notifier.kinds(), []string{"tool_update", "proximity_out"})
}

// axisSet is a small test-only helper building an AxisSet from a
// variadic list; production code never needs this shape.
func axisSet(axes ...Axis) AxisSet {
	var s AxisSet
	for _, axis := range axes {
		s.Set(axis)
	}

	return s
}
