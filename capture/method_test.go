package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods_ByIndex(t *testing.T) {
	for i := range Methods {
		method, ok := Methods.ByIndex(i)
		require.True(t, ok)
		assert.Equal(t, Methods[i].ID, method.ID)
	}

	_, ok := Methods.ByIndex(-1)
	assert.False(t, ok)
	_, ok = Methods.ByIndex(len(Methods))
	assert.False(t, ok)
}

func TestMethods_IndexRoundTrips(t *testing.T) {
	for i, method := range Methods {
		assert.Equal(t, i, Methods.Index(method.ID))
	}
}

func TestMethods_IndexUnknownFallsBackToFirst(t *testing.T) {
	assert.Equal(t, 0, Methods.Index("no_such_method"))
	assert.Equal(t, 0, Methods.Index(""))
}

func TestMethods_ExactlyOneDeviceMethod(t *testing.T) {
	deviceMethods := 0
	for _, method := range Methods {
		if method.RequiresDevice {
			deviceMethods++
			assert.Equal(t, "video_capture_device", method.ID)
		}
	}
	assert.Equal(t, 1, deviceMethods)
}

func TestManager_ChangeMethodSignalsSubsystem(t *testing.T) {
	manager := NewManager(Methods)

	var changed []string
	manager.OnMethodChanged = func(method Method) {
		changed = append(changed, method.ID)
	}

	manager.ChangeMethod("video_capture_device")
	assert.Equal(t, "video_capture_device", manager.Active().ID)

	// Re-selecting the active method still signals: a device swap needs a
	// backend reinitialization.
	manager.ChangeMethod("video_capture_device")
	assert.Equal(t, []string{"video_capture_device", "video_capture_device"}, changed)
}

func TestManager_ChangeMethodUnknownFallsBack(t *testing.T) {
	manager := NewManager(Methods)

	method := manager.ChangeMethod("bogus")
	assert.Equal(t, Methods[0].ID, method.ID)
	assert.Equal(t, Methods[0].ID, manager.Active().ID)
}
