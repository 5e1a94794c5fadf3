//go:build linux

package main

import (
	"github.com/inputkit/inputkit"
	"github.com/inputkit/inputkit/linux/input"
)

var devices []*input.Device = func() []*input.Device {
	var (
		devs []*input.Device
		err  error
	)

	devs, err = input.Devices()
	exitIf(err)

	return devs
}()

// capabilitiesOf reports dev's Capabilities summary for any
// inputkit.InputDevice backed by the concrete *input.Device this
// package always hands out; it exists so main.go's scan loop can stay
// free of a Linux-specific type assertion.
func capabilitiesOf(dev inputkit.InputDevice) (inputkit.Capabilities, error) {
	concrete, ok := dev.(*input.Device)
	if !ok {
		return inputkit.Capabilities{}, nil
	}

	return concrete.Capabilities()
}

// tabletDevices returns every discovered device that looks like a
// tablet, keyed by its reported name, for watchTablets to drive.
func tabletDevices() map[string]*input.Device {
	var (
		tablets = make(map[string]*input.Device)
		dev     *input.Device
		caps    inputkit.Capabilities
		name    string
		err     error
	)

	for _, dev = range devices {
		caps, err = dev.Capabilities()
		exitIf(err)

		if !caps.IsTablet {
			continue
		}

		name, err = dev.Name()
		exitIf(err)

		tablets[name] = dev
	}

	return tablets
}
