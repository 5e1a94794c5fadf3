package tablet

// ButtonMask is a packed bitmask over one button group's kernel codes;
// bit index = kernel code minus that group's base code.
type ButtonMask uint32

// snapshot is one frame's worth of accumulated state: tool identity,
// both button groups, the six normalized axis values, and the status
// bitfield (spec.md §3's "Frame snapshot"). previous always equals the
// last fully-emitted current (spec.md §3's ownership invariant), which
// is why Status travels with the snapshot rather than living outside
// it: copying current into previous wholesale is what keeps them
// structurally equal after every flush.
type snapshot struct {
	tool          ToolKind
	serial        uint32
	stylusButtons ButtonMask
	padButtons    ButtonMask
	axes          [AxisCount]float64
	status        Status
}

// frameState holds the current/previous snapshot pair and the
// per-frame changed-axes set the dispatcher accumulates between syncs.
// It has no exported surface (spec.md §4.4): it is mutated exclusively
// by Dispatcher.
type frameState struct {
	current     snapshot
	previous    snapshot
	changedAxes AxisSet

	// rawAxes holds the most recent un-normalized ABS_* value seen for
	// each axis this frame, staged here until flush converts it into
	// current.axes (spec.md §4.5 step 3). Axes not present in
	// changedAxes hold stale data and must not be read.
	rawAxes [AxisCount]int32
}

// pressed returns the bits set in cur but not prev: buttons newly
// pressed this frame.
func pressed(cur, prev ButtonMask) ButtonMask {
	return cur &^ prev
}

// released returns the bits set in prev but not cur: buttons newly
// released this frame.
func released(cur, prev ButtonMask) ButtonMask {
	return prev &^ cur
}

// Iter yields every set bit in m, in ascending order.
func (m ButtonMask) Iter(yield func(uint) bool) {
	var bit uint

	for bit = range uint(32) {
		if m&(1<<bit) != 0 && !yield(bit) {
			return
		}
	}
}

// commit copies current into previous, the last step of every flush
// branch (spec.md §4.5).
func (f *frameState) commit() {
	f.previous = f.current
}
