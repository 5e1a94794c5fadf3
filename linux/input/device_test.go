//go:build linux

package input

import (
	"encoding/binary"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDecodeEvent(t *testing.T) {
	buf := make([]byte, eventSize)

	binary.LittleEndian.PutUint64(buf[0:8], 12)
	binary.LittleEndian.PutUint64(buf[8:16], 345)
	binary.LittleEndian.PutUint16(buf[16:18], uint16(EV_ABS))
	binary.LittleEndian.PutUint16(buf[18:20], uint16(ABS_X))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(int32(-7)))

	event := decodeEvent(buf)

	assert.Equal(t, event.Sec, uint64(12))
	assert.Equal(t, event.Usec, uint64(345))
	assert.Equal(t, event.Type, uint16(EV_ABS))
	assert.Equal(t, event.Code, uint16(ABS_X))
	assert.Equal(t, event.Value, int32(-7))
}

func TestTestBit(t *testing.T) {
	buf := []byte{0b00000101}

	assert.Assert(t, TestBit(buf, 0))
	assert.Assert(t, !TestBit(buf, 1))
	assert.Assert(t, TestBit(buf, 2))
}
