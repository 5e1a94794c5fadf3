//go:build linux

package main

import (
	"fmt"
	"sync"

	"github.com/inputkit/inputkit/linux/input"
	"github.com/inputkit/inputkit/quirks"
	"github.com/inputkit/inputkit/tablet"
	"github.com/inputkit/inputkit/xlog"
)

// consolePrinter is a tablet.Notifier that renders every notification
// to stdout, tagged with the owning device's name. It exists so this
// CLI can demonstrate the dispatch core end to end without pulling in
// a real compositor surface.
type consolePrinter struct {
	device string
}

func (p consolePrinter) ProximityOut(time uint32) {
	fmt.Printf("[%s] t=%d proximity_out\n", p.device, time)
}

func (p consolePrinter) ToolUpdate(time uint32, tool tablet.ToolHandle) {
	fmt.Printf("[%s] t=%d tool_update kind=%d serial=%#x\n", p.device, time, tool.Kind, tool.Serial)
}

func (p consolePrinter) Axis(time uint32, changed tablet.AxisSet, values [tablet.AxisCount]float64) {
	fmt.Printf("[%s] t=%d axis_notify changed=%v values=%v\n", p.device, time, changed, values)
}

func (p consolePrinter) Button(time uint32, code uint16, state tablet.ButtonState) {
	fmt.Printf("[%s] t=%d button code=%#x state=%v\n", p.device, time, code, state)
}

// watchTablet drives dev's raw event stream through a tablet.Dispatcher
// until the device errors out (typically because it was unplugged),
// printing every emitted notification. It returns once the stream
// ends; callers run it in its own goroutine per device.
func watchTablet(name string, dev *input.Device, cfg *quirks.Config) {
	var (
		descriptor = quirks.Descriptor{
			Base:  input.AxisDescriptor{Device: dev},
			Quirk: cfg.ForDevice(name),
		}
		dispatcher = tablet.NewDispatcher(descriptor, consolePrinter{device: name})
		events, errs = dev.ReadEvents()
	)

	defer dispatcher.Destroy()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}

			_ = dispatcher.Process(tablet.RawEvent{
				Type:  event.Type,
				Code:  event.Code,
				Value: event.Value,
				Time:  uint32(event.Sec*1000 + event.Usec/1000),
			})
		case err := <-errs:
			if err != nil {
				xlog.Error("device read failed", "device", name, "error", err)
			}

			return
		}
	}
}

// watchTablets starts a watcher per tablet device and blocks until
// all of them have stopped (device unplugged, or the process is
// killed).
func watchTablets(tablets map[string]*input.Device) {
	var (
		cfg *quirks.Config
		err error
		wg  sync.WaitGroup
	)

	cfg, err = quirks.Load()
	if err != nil {
		xlog.Error("loading quirks config", "error", err)
		cfg = &quirks.Config{}
	}

	for name, dev := range tablets {
		wg.Add(1)

		go func(name string, dev *input.Device) {
			defer wg.Done()
			watchTablet(name, dev, cfg)
		}(name, dev)
	}

	wg.Wait()
}
