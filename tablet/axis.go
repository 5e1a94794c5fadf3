package tablet

// Axis identifies one of the continuous input dimensions the dispatch
// core understands. The zero value is AxisX.
type Axis int

const (
	// AxisX is the horizontal position axis.
	AxisX Axis = iota

	// AxisY is the vertical position axis.
	AxisY

	// AxisDistance is the hover distance above the surface.
	AxisDistance

	// AxisPressure is the tip pressure axis, meaningful only while
	// StylusInContact holds.
	AxisPressure

	// AxisTiltHorizontal is the stylus tilt around the horizontal plane.
	AxisTiltHorizontal

	// AxisTiltVertical is the stylus tilt around the vertical plane.
	AxisTiltVertical

	// axisCount is the number of defined axes; it is also the fixed
	// capacity of AxisSet.
	axisCount
)

// AxisCount is the number of axes the dispatch core tracks.
const AxisCount = int(axisCount)

// axisForCode maps a kernel ABS_* event code to its internal Axis. It is
// the bidirectional mapping spec.md §3 requires; the reverse direction
// (Axis -> kernel code) is codeForAxis, built once from this map at
// package initialization.
var axisForCode = map[uint16]Axis{
	absX:        AxisX,
	absY:        AxisY,
	absDistance: AxisDistance,
	absPressure: AxisPressure,
	absTiltX:    AxisTiltHorizontal,
	absTiltY:    AxisTiltVertical,
}

var codeForAxis = func() map[Axis]uint16 {
	var (
		codes = make(map[Axis]uint16, len(axisForCode))
		code  uint16
		axis  Axis
	)

	for code, axis = range axisForCode {
		codes[axis] = code
	}

	return codes
}()

// Kernel ABS_* event codes this package cares about (from
// include/uapi/linux/input-event-codes.h, mirrored in
// linux/input/eventCodes.go).
const (
	absX        uint16 = 0x00
	absY        uint16 = 0x01
	absPressure uint16 = 0x18
	absDistance uint16 = 0x19
	absTiltX    uint16 = 0x1a
	absTiltY    uint16 = 0x1b
)

// axisForEventCode maps a raw ABS_* code to an Axis. The second return
// value is false for any code the tablet core does not recognize; the
// caller must log it at info level and drop the event (spec.md §4.5).
func axisForEventCode(code uint16) (Axis, bool) {
	var (
		axis Axis
		ok   bool
	)

	axis, ok = axisForCode[code]

	return axis, ok
}

// normalize converts a raw ABS_* value into the double the rest of the
// dispatch core works with, given the axis's static descriptor.
//
// The Pressure and Tilt formulas use "(value + min)" rather than the
// more natural "(value - min)". This is reproduced verbatim from the
// reference implementation per spec.md §9: it is believed to be a bug
// for positive-minimum axes, but is preserved for bug-compatibility
// since no consumer here opts into a correction.
func normalize(axis Axis, value int32, info AxisInfo) float64 {
	switch axis {
	case AxisX, AxisY, AxisDistance:
		return float64(value)
	case AxisPressure:
		return (float64(value) + float64(info.Min)) / float64(info.Max-info.Min+1)
	case AxisTiltHorizontal, AxisTiltVertical:
		return 2*((float64(value)+float64(info.Min))/float64(info.Max-info.Min+1)) - 1
	default:
		return 0
	}
}
