package tablet

import "github.com/inputkit/inputkit/xlog"

// Dispatcher is the per-device tablet dispatch state machine (spec.md
// §4). It has no I/O of its own: the enclosing library reads raw
// kernel events off the wire (see linux/input.Device.ReadEvents) and
// feeds them to Process one at a time; Dispatcher turns the
// accumulated per-frame deltas into coalesced notifications on
// Notifier exactly once per SYN_REPORT.
//
// A Dispatcher is not safe for concurrent use; callers serialize their
// own event loop per device, matching how the kernel itself delivers
// one device's events as a strictly ordered stream.
type Dispatcher struct {
	descriptor AxisDescriptor
	notifier   Notifier
	registry   *ToolRegistry
	frame      frameState
}

// NewDispatcher returns a Dispatcher for one device, backed by
// descriptor for axis ranges and emitting through notifier.
func NewDispatcher(descriptor AxisDescriptor, notifier Notifier) *Dispatcher {
	return &Dispatcher{
		descriptor: descriptor,
		notifier:   notifier,
		registry:   NewToolRegistry(),
	}
}

// Process classifies and applies one raw kernel event. It never
// returns a non-nil error itself; the return keeps the door open for a
// future classifier that does (spec.md §7 draws every current failure
// mode as a logged-and-dropped event rather than a caller-visible
// one).
func (d *Dispatcher) Process(event RawEvent) error {
	if d.frame.current.status.Has(StatusToolLeftProximity) && event.Type != evSyn {
		// Proximity gate (spec.md §4.5): once a tool has left
		// proximity, every non-sync event up to the next SYN_REPORT
		// is dropped so stray trailing reports (e.g. a lingering
		// BTN_TOUCH release) can't resurrect stale state. The sync
		// event itself passes the gate and runs flush.
		return nil
	}

	switch event.Type {
	case evAbs:
		d.processAbsolute(event)
	case evKey:
		d.processKey(event)
	case evMsc:
		d.processMisc(event)
	case evSyn:
		d.flush(event.Time)
	default:
		xlog.Error("unexpected event type", "type", event.Type)
	}

	return nil
}

// Destroy releases this device's hold on every interned tool identity.
// Call it once when the device disappears; outstanding ToolHandle
// values already handed to the notifier remain valid until their
// holders release them.
func (d *Dispatcher) Destroy() {
	d.registry.DestroyAll()
}

func (d *Dispatcher) processAbsolute(event RawEvent) {
	axis, ok := axisForEventCode(event.Code)
	if !ok {
		xlog.Info("unknown absolute code", "code", event.Code)
		return
	}

	d.frame.rawAxes[axis] = event.Value
	d.frame.changedAxes.Set(axis)
	d.frame.current.status.Set(StatusAxesUpdated)
}

func (d *Dispatcher) processKey(event RawEvent) {
	var (
		code    = event.Code
		pressed = event.Value != 0
	)

	if kind, ok := toolForKeyCode(code); ok {
		d.updateTool(kind, pressed)
		return
	}

	if bit, ok := stylusButtonBit(code); ok {
		if code == btnTouch {
			if pressed {
				d.frame.current.status.Set(StatusStylusInContact)
			} else {
				d.frame.current.status.Clear(StatusStylusInContact)
			}
		}

		setBit(&d.frame.current.stylusButtons, bit, pressed)

		return
	}

	if bit, ok := padButtonBit(code); ok {
		setBit(&d.frame.current.padButtons, bit, pressed)
		return
	}

	xlog.Info("unknown key code", "code", code)
}

func (d *Dispatcher) processMisc(event RawEvent) {
	if event.Code != mscSerial {
		xlog.Info("unknown misc code", "code", event.Code)
		return
	}

	d.frame.current.serial = uint32(event.Value)
}

// updateTool applies a BTN_TOOL_* transition to the in-progress frame
// (spec.md §4.5). Going from none to some tool adopts that tool's
// kind immediately; the matching release only clears the tool (and
// arms the proximity-out edge) when it names the tool currently held,
// since the kernel can emit a release for a tool key that was never
// the active one.
func (d *Dispatcher) updateTool(kind ToolKind, enabled bool) {
	switch {
	case enabled && kind != d.frame.current.tool:
		d.frame.current.tool = kind
	case !enabled && kind == d.frame.current.tool:
		d.frame.current.tool = ToolNone
		d.frame.current.status.Set(StatusToolLeftProximity)
	}
}

// flush runs at every SYN_REPORT (spec.md §4.5): it either emits a
// single ProximityOut and resets the frame, or emits the normal
// sequence of button-press, tool-update, axis-notify, button-release
// in that exact order before committing current into previous.
func (d *Dispatcher) flush(time uint32) {
	if d.frame.current.status.Has(StatusToolLeftProximity) {
		d.notifier.ProximityOut(time)

		d.frame.changedAxes.ClearAll()
		d.frame.current.axes = [AxisCount]float64{}
		d.frame.current.stylusButtons = 0
		d.frame.current.status = 0
		d.frame.commit()

		return
	}

	d.emitButtonTransitions(time, pressed, ButtonPressed)
	d.emitToolUpdate(time)
	d.emitAxisNotify(time)
	d.emitButtonTransitions(time, released, ButtonReleased)
	d.frame.commit()
}

// emitButtonTransitions reports every stylus- then pad-group button
// whose state differs between cur and prev per edge, in ascending bit
// order within each group. delta is pressed or released depending on
// which half of the flush sequence is calling it.
func (d *Dispatcher) emitButtonTransitions(time uint32, delta func(cur, prev ButtonMask) ButtonMask, state ButtonState) {
	var (
		stylus = delta(d.frame.current.stylusButtons, d.frame.previous.stylusButtons)
		pad    = delta(d.frame.current.padButtons, d.frame.previous.padButtons)
		bit    uint
	)

	for bit = range stylus.Iter {
		d.notifier.Button(time, buttonCode(stylusButtonBase, bit), state)
	}

	for bit = range pad.Iter {
		d.notifier.Button(time, buttonCode(padButtonBase, bit), state)
	}
}

// emitToolUpdate fires Notifier.ToolUpdate when the in-proximity tool
// identity changed this frame. Interning can only fail if the registry
// cannot allocate a new entry (spec.md §7), in which case the update
// is dropped for this frame rather than reported with a bogus handle.
func (d *Dispatcher) emitToolUpdate(time uint32) {
	if d.frame.current.tool == ToolNone || d.frame.current.tool == d.frame.previous.tool {
		return
	}

	handle, ok := d.registry.Intern(d.frame.current.tool, d.frame.current.serial)
	if !ok {
		return
	}

	d.notifier.ToolUpdate(time, handle)
}

// emitAxisNotify applies sanitizeAxes, normalizes every axis still
// marked changed afterward into current.axes, and emits a single
// Axis notification if any survived sanitization. AxesUpdated is
// always cleared on the way out, and changedAxes always emptied,
// whether or not sanitization left anything to report (spec.md §4.5
// step 3; scenario 2 in spec.md §8 depends on the no-op case emitting
// nothing at all).
func (d *Dispatcher) emitAxisNotify(time uint32) {
	if !d.frame.current.status.Has(StatusAxesUpdated) {
		return
	}

	d.sanitizeAxes()
	d.dropUnmappedAxes()

	if d.frame.changedAxes.Any() {
		var axis Axis

		for axis = range d.frame.changedAxes.Iter {
			d.frame.current.axes[axis] = normalize(axis, d.frame.rawAxes[axis], d.descriptor.AxisInfo(axis))
		}

		d.notifier.Axis(time, d.frame.changedAxes, d.frame.current.axes)
	}

	d.frame.changedAxes.ClearAll()
	d.frame.current.status.Clear(StatusAxesUpdated)
}

// sanitizeAxes applies the two mutual-exclusion rules spec.md §4.5
// lists before axis values are computed and reported:
//
//  1. If both Distance and Pressure changed this frame and both
//     report a nonzero raw value, Distance is dropped: a tip that is
//     both in contact and hovering is a transient the tool is still
//     settling out of, and Pressure wins.
//  2. Otherwise, a changed Pressure axis while the stylus isn't in
//     contact is dropped: pressure readings during hover are noise.
func (d *Dispatcher) sanitizeAxes() {
	switch {
	case d.frame.changedAxes.Test(AxisDistance) && d.frame.changedAxes.Test(AxisPressure) &&
		d.frame.rawAxes[AxisDistance] != 0 && d.frame.rawAxes[AxisPressure] != 0:
		d.frame.changedAxes.Clear(AxisDistance)
	case d.frame.changedAxes.Test(AxisPressure) && !d.frame.current.status.Has(StatusStylusInContact):
		d.frame.changedAxes.Clear(AxisPressure)
	}
}

// dropUnmappedAxes removes from changedAxes any axis the descriptor
// reports as absent on this device. A well-behaved device never
// reports ABS_* codes it didn't advertise, so this indicates a
// descriptor/event mismatch rather than bad input; spec.md §7 calls
// this a "malformed axis" and has it logged at bug level and skipped
// rather than surfaced to the caller.
func (d *Dispatcher) dropUnmappedAxes() {
	var axis Axis

	for axis = range d.frame.changedAxes.Iter {
		if !d.descriptor.AxisInfo(axis).Present {
			xlog.Bug("malformed axis update", "axis", axis)
			d.frame.changedAxes.Clear(axis)
		}
	}
}

// setBit sets or clears bit within mask.
func setBit(mask *ButtonMask, bit uint, value bool) {
	if value {
		*mask |= 1 << bit
	} else {
		*mask &^= 1 << bit
	}
}
