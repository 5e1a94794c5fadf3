package tablet_test

import (
	"testing"

	"gotest.tools/v3/assert"

	. "github.com/inputkit/inputkit/tablet"
)

func TestAxisSetSetClearTest(t *testing.T) {
	var s AxisSet

	assert.Assert(t, !s.Any())

	s.Set(AxisPressure)
	s.Set(AxisY)

	assert.Assert(t, s.Test(AxisPressure))
	assert.Assert(t, s.Test(AxisY))
	assert.Assert(t, !s.Test(AxisX))
	assert.Assert(t, s.Any())

	s.Clear(AxisPressure)

	assert.Assert(t, !s.Test(AxisPressure))
	assert.Assert(t, s.Test(AxisY))

	s.ClearAll()

	assert.Assert(t, !s.Any())
}

func TestAxisSetIterAscending(t *testing.T) {
	var (
		s    AxisSet
		seen []Axis
	)

	s.Set(AxisTiltVertical)
	s.Set(AxisX)
	s.Set(AxisDistance)

	for axis := range s.Iter {
		seen = append(seen, axis)
	}

	assert.DeepEqual(t, seen, []Axis{AxisX, AxisDistance, AxisTiltVertical})
}
