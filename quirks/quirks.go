// Package quirks loads per-device axis overrides from an XDG config
// file and layers them over a device's ioctl-reported axis ranges.
// Some tablets misreport resolution or clamp a range too tight; this
// lets a user correct that without a code change, the way libinput's
// own quirks database does for its device database.
package quirks

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inputkit/inputkit/tablet"
	"github.com/inputkit/inputkit/xdg"
)

// axisNames maps the six tablet axes to the key used for them in the
// config file.
var axisNames = map[tablet.Axis]string{
	tablet.AxisX:              "x",
	tablet.AxisY:              "y",
	tablet.AxisDistance:       "distance",
	tablet.AxisPressure:       "pressure",
	tablet.AxisTiltHorizontal: "tilt_horizontal",
	tablet.AxisTiltVertical:   "tilt_vertical",
}

// AxisOverride replaces one or more of an axis's descriptor fields.
// A nil field leaves the ioctl-reported value untouched.
type AxisOverride struct {
	Min        *int32 `yaml:"min,omitempty"`
	Max        *int32 `yaml:"max,omitempty"`
	Resolution *int32 `yaml:"resolution,omitempty"`
}

// DeviceQuirk is one device's worth of overrides. Match is a
// case-insensitive substring tested against the device's reported
// name; the first entry whose Match matches wins.
type DeviceQuirk struct {
	Match string                  `yaml:"match"`
	Axes  map[string]AxisOverride `yaml:"axes"`
}

// Config is the top-level shape of the quirks file: a flat list of
// device quirks, checked in order.
type Config struct {
	Devices []DeviceQuirk `yaml:"devices"`
}

// Load reads the quirks config from $XDG_CONFIG_HOME/inputkit/quirks.yaml
// (or the platform default), creating an empty one if it doesn't yet
// exist. A missing or empty file is not an error: it yields a Config
// with no overrides.
func Load() (*Config, error) {
	var cfg Config

	file, err := xdg.ConfigFile("inputkit/quirks.yaml")
	if err != nil {
		return nil, fmt.Errorf("quirks.Load: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("quirks.Load: %w", err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("quirks.Load: %w", err)
	}

	return &cfg, nil
}

// ForDevice returns the first quirk whose Match is a case-insensitive
// substring of name, or the zero DeviceQuirk (no overrides) if none
// match.
func (c *Config) ForDevice(name string) DeviceQuirk {
	var lower = strings.ToLower(name)

	for _, quirk := range c.Devices {
		if quirk.Match != "" && strings.Contains(lower, strings.ToLower(quirk.Match)) {
			return quirk
		}
	}

	return DeviceQuirk{}
}

// Descriptor layers a DeviceQuirk's overrides over a base
// tablet.AxisDescriptor, implementing tablet.AxisDescriptor itself so
// the dispatch core never has to know quirks exist.
type Descriptor struct {
	Base  tablet.AxisDescriptor
	Quirk DeviceQuirk
}

// AxisInfo implements tablet.AxisDescriptor.
func (d Descriptor) AxisInfo(axis tablet.Axis) tablet.AxisInfo {
	info := d.Base.AxisInfo(axis)

	override, ok := d.Quirk.Axes[axisNames[axis]]
	if !ok {
		return info
	}

	if override.Min != nil {
		info.Min = *override.Min
	}

	if override.Max != nil {
		info.Max = *override.Max
	}

	if override.Resolution != nil {
		info.Resolution = *override.Resolution
	}

	return info
}
