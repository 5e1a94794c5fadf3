//go:build linux

package input

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
	"unsafe"

	"github.com/inputkit/inputkit"
	"github.com/inputkit/inputkit/linux/ioctl"
	"golang.org/x/sys/unix"
	"golang.org/x/text/encoding/charmap"
)

// eventSize is the on-wire size of a struct input_event on a 64-bit
// kernel (16 bytes of timeval followed by type, code, value).
const eventSize = unsafe.Sizeof(Event{})

// Device represents an evdev input device.
// It wraps the opened /dev/input/eventN file.
type Device struct {
	file *os.File
	fd   uintptr
}

var _ inputkit.InputDevice = (*Device)(nil)

// NewDevice opens the evdev device at the given path and returns a Device.
// The path is cleaned before opening, and the device file is opened
// in read-write mode. The caller is responsible for closing the device
// when no longer needed.
func NewDevice(path string) (*Device, error) {
	var (
		device *Device
		file   *os.File
		err    error
	)

	file, err = os.OpenFile(filepath.Clean(path), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("input.NewDevice: %w", err)
	}

	device = &Device{
		file: file,
		fd:   file.Fd(),
	}

	return device, nil
}

// Devices scans /dev/input for event devices, opens each one, and
// returns a slice of Device pointers. If any device fails to open,
// an error is returned and no devices are returned.
func Devices() ([]*Device, error) {
	var (
		devices []*Device
		device  *Device
		paths   []string
		path    string
		err     error
	)

	paths, err = filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("input.Devices: %w", err)
	}

	devices = make([]*Device, 0, len(paths))
	for _, path = range paths {
		device, err = NewDevice(path)
		if err != nil {
			return nil, fmt.Errorf("input.Devices: %w", err)
		}

		devices = append(devices, device)
	}

	return devices, nil
}

// Name returns the human-readable name of the evdev device.
// It sends the [EVIOCGNAME] ioctl to read up to 256 bytes and
// converts the null-terminated result into a Go string. Some vendors
// ship firmware that reports the name in Latin-1 rather than UTF-8;
// when the raw bytes aren't valid UTF-8, Name falls back to decoding
// them as ISO-8859-1 instead of returning mangled text.
func (dev *Device) Name() (string, error) {
	var (
		buf []byte
		name string
		err error
	)

	buf = make([]byte, 256)

	err = ioctl.Any(dev.fd, EVIOCGNAME(256), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Name: %w", err)
	}

	name = unix.ByteSliceToString(buf)
	if utf8.ValidString(name) {
		return name, nil
	}

	name, err = charmap.ISO8859_1.NewDecoder().String(name)
	if err != nil {
		return "", fmt.Errorf("Device.Name: %w", err)
	}

	return name, nil
}

// ID returns the platform-specific identifier for this evdev device.
// It issues the EVIOCGID ioctl to fetch the bus, vendor, product, and version fields.
// The result is formatted as:
// "bus 0x<bustype> vendor 0x<vendor> product 0x<product> version 0x<version>".
// e.g. "bus 0x3 vendor 0x46d product 0xc24f version 0x111".
func (dev *Device) ID() (string, error) {
	var (
		id  ID
		err error
	)

	err = ioctl.Any(dev.fd, EVIOCGID, &id)
	if err != nil {
		return "", fmt.Errorf("Device.ID: %w", err)
	}

	return fmt.Sprintf(
		"bus 0x%x vendor 0x%x product 0x%x version 0x%x",
		id.Bustype,
		id.Vendor,
		id.Product,
		id.Version,
	), nil
}

// Events returns a slice of all supported event types for the device.
func (dev *Device) Events() ([]inputkit.InputEvent, error) {
	var (
		buf       []byte
		events    []inputkit.InputEvent
		eventType inputkit.InputEvent
		err       error
	)

	buf = make([]byte, (EV_MAX+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(0, uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Events: %w", err)
	}

	events = make([]inputkit.InputEvent, 0, EV_CNT)

	for eventType = range inputkit.InputEvent(EV_CNT) {
		if !TestBit(buf, uint(eventType)) {
			continue
		}

		if eventType == EV_REP {
			continue
		}

		events = append(events, eventType)
	}

	return events, nil
}

// Codes returns all supported [inputkit.InputCode] values for the given
// eventType.
func (dev *Device) Codes(eventType inputkit.InputEvent) ([]inputkit.InputCode, error) {
	var (
		buf            []byte
		codes          []inputkit.InputCode
		maxCodes, code uint
		ok             bool
		err            error
	)

	maxCodes, ok = MaxCodes(eventType)
	if !ok {
		return nil, fmt.Errorf("Device.Codes: %w %d", ErrInvalidEventType, eventType)
	}

	buf = make([]byte, (maxCodes+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(uint(eventType), uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Codes: %w", err)
	}

	codes = make([]inputkit.InputCode, 0, maxCodes+1)

	for code = range maxCodes + 1 {
		if !TestBit(buf, code) {
			continue
		}

		codes = append(codes, inputkit.InputCode(code))
	}

	return codes, nil
}

// Capabilities reports the device's high-level feature summary,
// including whether it looks like a tablet (absolute axes plus at
// least one BTN_TOOL_* tool key).
func (dev *Device) Capabilities() (inputkit.Capabilities, error) {
	var (
		caps       inputkit.Capabilities
		events     []inputkit.InputEvent
		keys       []inputkit.InputCode
		event      inputkit.InputEvent
		key        inputkit.InputCode
		hasAbs     bool
		hasKey     bool
		hasToolKey bool
		err        error
	)

	events, err = dev.Events()
	if err != nil {
		return inputkit.Capabilities{}, fmt.Errorf("Device.Capabilities: %w", err)
	}

	for _, event = range events {
		switch uint(event) {
		case EV_ABS:
			hasAbs = true
		case EV_KEY:
			hasKey = true
		}
	}

	if hasKey {
		keys, err = dev.Codes(inputkit.InputEvent(EV_KEY))
		if err != nil {
			return inputkit.Capabilities{}, fmt.Errorf("Device.Capabilities: %w", err)
		}

		for _, key = range keys {
			if uint(key) >= BTN_TOOL_PEN && uint(key) <= BTN_TOOL_LENS {
				hasToolKey = true
				break
			}
		}
	}

	caps = inputkit.Capabilities{
		HasAbsoluteAxes: hasAbs,
		HasButtons:      hasKey,
		IsJoystick:      hasAbs && hasKey,
		IsTablet:        hasAbs && hasToolKey,
	}

	return caps, nil
}

// AxisInfo issues the [EVIOCGABS] ioctl for the given kernel absolute
// axis code and reports its range and resolution. The returned bool
// is false (with a zeroed AbsInfo) if the kernel rejects the request,
// which happens whenever the device does not support that axis.
func (dev *Device) AxisInfo(absCode uint) (AbsInfo, bool) {
	var (
		info AbsInfo
		err  error
	)

	err = ioctl.Any(dev.fd, EVIOCGABS(absCode), &info)
	if err != nil {
		return AbsInfo{}, false
	}

	return info, true
}

// ReadEvents starts a goroutine that reads raw input_event records from
// the device and decodes them onto the returned channel, one at a time,
// until the device is closed or a read fails. This is the "external
// event loop" a dispatch core (see package tablet) is driven by; it owns
// the blocking read the core itself is forbidden from performing.
func (dev *Device) ReadEvents() (<-chan Event, <-chan error) {
	var (
		events = make(chan Event)
		errs   = make(chan error, 1)
	)

	go func() {
		defer close(events)
		defer close(errs)

		var (
			buf []byte
			n   int
			err error
		)

		buf = make([]byte, eventSize)

		for {
			n, err = dev.file.Read(buf)
			if err != nil {
				errs <- fmt.Errorf("Device.ReadEvents: %w", err)
				return
			}

			if n != len(buf) {
				errs <- fmt.Errorf("Device.ReadEvents: short read: %d of %d bytes", n, len(buf))
				return
			}

			events <- decodeEvent(buf)
		}
	}()

	return events, errs
}

// decodeEvent parses a 64-bit struct input_event: two 8-byte timeval
// fields, then 16-bit type, 16-bit code, and 32-bit value, all native
// (little-endian on every platform this package targets).
func decodeEvent(buf []byte) Event {
	return Event{
		Sec:   binary.LittleEndian.Uint64(buf[0:8]),
		Usec:  binary.LittleEndian.Uint64(buf[8:16]),
		Type:  binary.LittleEndian.Uint16(buf[16:18]),
		Code:  binary.LittleEndian.Uint16(buf[18:20]),
		Value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}
}

// Close closes the evdev device by closing its underlying file handle.
func (dev *Device) Close() error {
	var err error

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
