// Package inputkit declares the cross-platform shapes shared by every
// device backend in this module: the capability summary a backend reports
// for a physical device, and the narrow event vocabulary the tablet
// dispatch core is built against.
package inputkit

// Device represents a physical or virtual input device.
type Device struct {
	// Name is the human-readable name (e.g. "Xbox Controller",
	// "Wacom Intuos Pro M").
	Name string

	// ID is a platform-specific identifier: on Linux it might be
	// "/dev/input/event5", on Windows it could be a GUID string,
	// and on macOS an IOKit registry path.
	ID string

	// Capabilities describes the features this device supports.
	Capabilities Capabilities
}

// Capabilities describes the feature set supported by an input device.
type Capabilities struct {
	// HasAbsoluteAxes reports whether the device provides absolute
	// axis input (EV_ABS).
	HasAbsoluteAxes bool

	// HasButtons reports whether the device provides button or
	// key input (EV_KEY).
	HasButtons bool

	// IsJoystick reports whether the device is considered a joystick or
	// gamepad. It is true when the device has both absolute axes and
	// buttons.
	IsJoystick bool

	// IsTablet reports whether the device exposes at least one tool key
	// (BTN_TOOL_PEN and friends) alongside absolute axes, making it a
	// candidate for the tablet dispatch core rather than the generic
	// pointer/joystick path.
	IsTablet bool
}

// EventType identifies the kind of a raw input event, mirroring the
// kernel's EV_* constants (see [linux/input.EV_ABS] and siblings).
type EventType uint16

// InputEvent is retained for compatibility with backends that enumerate
// supported event types by kernel EV_* value; it is an alias of
// [EventType].
type InputEvent = EventType

// InputCode identifies a code within an event type's namespace (an axis,
// a key, or a misc code), mirroring the kernel's per-type *_MAX ranges.
type InputCode uint16

// InputDevice is the minimal read-only surface every backend exposes for
// device discovery: identity, declared event/code capabilities, and
// teardown. It deliberately says nothing about reading the event stream
// itself or about the tablet dispatch core — those are backend-specific
// and core-specific concerns, respectively.
type InputDevice interface {
	// Name returns the device's human-readable name.
	Name() (string, error)

	// ID returns a platform-specific device identifier.
	ID() (string, error)

	// Events returns every event type this device declares support for.
	Events() ([]InputEvent, error)

	// Codes returns every code this device declares support for within
	// the given event type.
	Codes(eventType InputEvent) ([]InputCode, error)

	// Close releases the device handle.
	Close() error
}
