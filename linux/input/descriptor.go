//go:build linux

package input

import "github.com/inputkit/inputkit/tablet"

// absCodeForAxis maps a tablet.Axis to the kernel ABS_* code Device.AxisInfo
// expects, mirroring the dispatch core's own (unexported) axis table.
var absCodeForAxis = map[tablet.Axis]uint{
	tablet.AxisX:              ABS_X,
	tablet.AxisY:              ABS_Y,
	tablet.AxisDistance:       ABS_DISTANCE,
	tablet.AxisPressure:       ABS_PRESSURE,
	tablet.AxisTiltHorizontal: ABS_TILT_X,
	tablet.AxisTiltVertical:   ABS_TILT_Y,
}

// AxisDescriptor adapts a Device's ioctl-backed AxisInfo to
// tablet.AxisDescriptor, so a Device can back a tablet.Dispatcher
// (optionally wrapped further by quirks.Descriptor).
//
// It wraps rather than extends Device because Device.AxisInfo already
// has a different, kernel-facing signature (absolute code in, raw
// AbsInfo out); this type's own AxisInfo shadows that one with the
// tablet package's view instead.
type AxisDescriptor struct {
	*Device
}

var _ tablet.AxisDescriptor = AxisDescriptor{}

// AxisInfo implements tablet.AxisDescriptor.
func (d AxisDescriptor) AxisInfo(axis tablet.Axis) tablet.AxisInfo {
	code, ok := absCodeForAxis[axis]
	if !ok {
		return tablet.AxisInfo{}
	}

	raw, ok := d.Device.AxisInfo(code)
	if !ok {
		return tablet.AxisInfo{}
	}

	return tablet.AxisInfo{
		Min:        raw.Minimum,
		Max:        raw.Maximum,
		Resolution: raw.Resolution,
		Present:    true,
	}
}
