package hotkeys

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosplit/models"
)

type fakeBinder struct {
	gesture string
	err     error
}

func (b fakeBinder) CaptureNext(timeout time.Duration) (string, error) {
	return b.gesture, b.err
}

func TestSet_StoresCapturedGesture(t *testing.T) {
	settings := models.DefaultSettings()

	gesture, err := Set(settings, fakeBinder{gesture: "num 1"}, "split")
	require.NoError(t, err)
	assert.Equal(t, "num 1", gesture)
	assert.Equal(t, "num 1", settings.Hotkey("split"))
}

func TestSet_CaptureFailureLeavesStoreUntouched(t *testing.T) {
	settings := models.DefaultSettings()
	settings.SetHotkey("reset", "f5")

	_, err := Set(settings, fakeBinder{err: errors.New("boom")}, "reset")
	assert.Error(t, err)
	assert.Equal(t, "f5", settings.Hotkey("reset"))
}

func TestSystemBinder_DefaultIsUnsupported(t *testing.T) {
	_, err := SystemBinder().CaptureNext(time.Millisecond)
	assert.ErrorIs(t, err, ErrCaptureUnsupported)
}

func TestRegisterSystemBinder(t *testing.T) {
	t.Cleanup(func() { system = unsupportedBinder{} })

	RegisterSystemBinder(fakeBinder{gesture: "f8"})
	gesture, err := SystemBinder().CaptureNext(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "f8", gesture)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Start / Split", Label("split"))
	assert.Equal(t, "mystery", Label("mystery"), "unknown names fall back to themselves")

	for _, name := range Names {
		assert.NotEmpty(t, Label(name))
	}
}
