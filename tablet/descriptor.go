package tablet

// AxisInfo is the static metadata for one axis: its range, resolution,
// and whether the device exposes it at all. It is read-only from the
// dispatch core's point of view (spec.md §4.1).
type AxisInfo struct {
	Min, Max, Resolution int32
	Present              bool
}

// AxisDescriptor is the read-only device-descriptor facade the
// dispatch core consults during axis normalization and sanitization.
// Production code backs this with the device's real ioctl-reported
// ranges (see linux/input.Device.AxisInfo); tests back it with a
// fixed table.
type AxisDescriptor interface {
	AxisInfo(axis Axis) AxisInfo
}
