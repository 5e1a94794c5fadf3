// Package main implements the inputdevices CLI, which discovers and displays
// input devices.
//
// It enumerates all available devices, retrieves their ID and name, prints
// the results to standard output, and closes each device handle — except
// tablet-capable devices, which stay open and are watched: every semantic
// notification the dispatch core in package tablet emits for them is
// printed live until the device disappears or the process is killed.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/inputkit/inputkit"
)

func exitIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "inputdevices:", err)
		os.Exit(1)
	}
}

func main() {
	var (
		devs     []inputkit.InputDevice
		dev      inputkit.InputDevice
		id, name string
		caps     inputkit.Capabilities
		events   []inputkit.InputEvent
		event    inputkit.InputEvent
		codes    []inputkit.InputCode
		code     inputkit.InputCode
		builder  strings.Builder
		tablets  = tabletDevices()
		err      error
	)

	devs = make([]inputkit.InputDevice, 0, len(devices))
	for _, dev = range devices {
		devs = append(devs, dev)
	}

	for _, dev = range devs {
		id, err = dev.ID()
		exitIf(err)

		name, err = dev.Name()
		exitIf(err)

		events, err = dev.Events()
		exitIf(err)

		caps, err = capabilitiesOf(dev)
		exitIf(err)

		builder.WriteString(fmt.Sprintf("ID: %s\nName: %s\n", id, name))
		builder.WriteString(fmt.Sprintf("Tablet: %t\n", caps.IsTablet))
		builder.WriteString("Supported Events:\n")

		for _, event = range events {
			codes, err = dev.Codes(event)
			exitIf(err)

			builder.WriteString(fmt.Sprintf("  Event Type %d (TBD):\n", event))

			for _, code = range codes {
				builder.WriteString(fmt.Sprintf("    Event code %d (TBD)\n", code))
			}
		}

		if !caps.IsTablet {
			err = dev.Close()
			exitIf(err)
		}

		builder.WriteString(strings.Repeat("-", 60))
		builder.WriteByte('\n')
	}

	fmt.Print(builder.String())

	if len(tablets) > 0 {
		fmt.Printf("watching %d tablet device(s); press ctrl-c to exit\n", len(tablets))
		watchTablets(tablets)
	}
}
