package tablet_test

import (
	"testing"

	"gotest.tools/v3/assert"

	. "github.com/inputkit/inputkit/tablet"
)

func TestToolRegistryInternReusesEntry(t *testing.T) {
	r := NewToolRegistry()

	first, ok := r.Intern(ToolPen, 0x1234)
	assert.Assert(t, ok)
	assert.Assert(t, first.Valid())

	second, ok := r.Intern(ToolPen, 0x1234)
	assert.Assert(t, ok)
	assert.Equal(t, second.Kind, first.Kind)
	assert.Equal(t, second.Serial, first.Serial)
	assert.Equal(t, second, first)

	distinct, ok := r.Intern(ToolEraser, 0x1234)
	assert.Assert(t, ok)
	assert.Equal(t, distinct.Kind, ToolEraser)
}

func TestToolHandleZeroValueInvalid(t *testing.T) {
	var h ToolHandle

	assert.Assert(t, !h.Valid())
}

func TestToolRegistryDestroyAllForgetsEntries(t *testing.T) {
	r := NewToolRegistry()

	destroyed, ok := r.Intern(ToolMouse, 1)
	assert.Assert(t, ok)

	r.DestroyAll()

	// A post-destroy Intern call starts a fresh registry-owned entry;
	// it must not somehow resurrect the destroyed one as shared state.
	handle, ok := r.Intern(ToolMouse, 1)
	assert.Assert(t, ok)
	assert.Equal(t, handle.Kind, ToolMouse)
	assert.Assert(t, handle != destroyed)
}

// Release on the zero handle must not panic.
func TestToolRegistryReleaseZeroHandle(t *testing.T) {
	r := NewToolRegistry()
	r.Release(ToolHandle{})
}
