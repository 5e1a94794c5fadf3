package quirks_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/inputkit/inputkit/quirks"
	"github.com/inputkit/inputkit/tablet"
)

func writeConfig(t *testing.T, contents string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "inputkit")
	assert.NilError(t, os.MkdirAll(path, 0o700))
	assert.NilError(t, os.WriteFile(filepath.Join(path, "quirks.yaml"), []byte(contents), 0o600))
}

func TestLoadEmptyConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := quirks.Load()
	assert.NilError(t, err)
	assert.Equal(t, len(cfg.Devices), 0)
}

func TestForDeviceMatchesSubstringCaseInsensitive(t *testing.T) {
	writeConfig(t, `
devices:
  - match: "Wacom Intuos"
    axes:
      pressure:
        max: 4096
`)

	cfg, err := quirks.Load()
	assert.NilError(t, err)

	quirk := cfg.ForDevice("wacom intuos pro 2")
	assert.Equal(t, quirk.Match, "Wacom Intuos")

	none := cfg.ForDevice("some other device")
	assert.Equal(t, none.Match, "")
}

type fixedDescriptor tablet.AxisInfo

func (d fixedDescriptor) AxisInfo(tablet.Axis) tablet.AxisInfo {
	return tablet.AxisInfo(d)
}

func TestDescriptorAppliesOverride(t *testing.T) {
	writeConfig(t, `
devices:
  - match: "intuos"
    axes:
      pressure:
        max: 4096
`)

	cfg, err := quirks.Load()
	assert.NilError(t, err)

	base := fixedDescriptor{Min: 0, Max: 2047, Present: true}
	descriptor := quirks.Descriptor{Base: base, Quirk: cfg.ForDevice("intuos pro")}

	info := descriptor.AxisInfo(tablet.AxisPressure)
	assert.Equal(t, info.Max, int32(4096))
	assert.Equal(t, info.Min, int32(0))

	// An axis with no override entry passes through untouched.
	xInfo := descriptor.AxisInfo(tablet.AxisX)
	assert.Equal(t, xInfo.Max, int32(2047))
}
