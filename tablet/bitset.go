package tablet

// AxisSet is a fixed-capacity packed boolean set keyed by Axis. It
// never allocates after construction (the zero value is the empty
// set), matching spec.md §4.2.
type AxisSet uint8

// Set marks axis as present in the set.
func (s *AxisSet) Set(axis Axis) {
	*s |= 1 << uint(axis)
}

// Clear removes axis from the set.
func (s *AxisSet) Clear(axis Axis) {
	*s &^= 1 << uint(axis)
}

// Test reports whether axis is present in the set.
func (s AxisSet) Test(axis Axis) bool {
	return s&(1<<uint(axis)) != 0
}

// ClearAll empties the set.
func (s *AxisSet) ClearAll() {
	*s = 0
}

// Any reports whether the set has at least one member.
func (s AxisSet) Any() bool {
	return s != 0
}

// Iter yields every Axis present in the set, in ascending order.
func (s AxisSet) Iter(yield func(Axis) bool) {
	var axis Axis

	for axis = range Axis(axisCount) {
		if s.Test(axis) && !yield(axis) {
			return
		}
	}
}
