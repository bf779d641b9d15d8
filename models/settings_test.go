package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.NotEmpty(t, settings.ProfileID)
	assert.Equal(t, 60, settings.FPSLimit)
	assert.Equal(t, 0.90, settings.DefaultSimilarityThreshold)
	assert.Equal(t, float64(10), settings.DefaultPauseTime)
	assert.True(t, settings.EnableAutoReset)
	assert.True(t, settings.CheckForUpdatesOnOpen)
	assert.Len(t, settings.WindTrackerRegions, WindTrackerRegionCount)
	assert.NotNil(t, settings.Hotkeys)

	// Two fresh profiles never share an identity
	assert.NotEqual(t, settings.ProfileID, DefaultSettings().ProfileID)
}

func TestHotkeyRoundTrip(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, "", settings.Hotkey("split"))

	settings.SetHotkey("split", "num 1")
	assert.Equal(t, "num 1", settings.Hotkey("split"))

	// Last writer wins
	settings.SetHotkey("split", "num 4")
	assert.Equal(t, "num 4", settings.Hotkey("split"))
}

func TestHotkeyNilMap(t *testing.T) {
	settings := &Settings{}

	assert.Equal(t, "", settings.Hotkey("reset"))

	settings.SetHotkey("reset", "f5")
	assert.Equal(t, "f5", settings.Hotkey("reset"))
}

func TestSetWindTrackerRegionWritesWholeRecord(t *testing.T) {
	settings := DefaultSettings()
	region := Region{X: 10, Y: 20, Width: 300, Height: 40}

	settings.SetWindTrackerRegion(1, region)

	require.Len(t, settings.WindTrackerRegions, WindTrackerRegionCount)
	assert.Equal(t, region, settings.WindTrackerRegion(1))
	assert.Equal(t, Region{}, settings.WindTrackerRegion(0), "other regions stay untouched")
}

func TestSetWindTrackerRegionGrowsShortSlice(t *testing.T) {
	settings := &Settings{}

	settings.SetWindTrackerRegion(1, Region{Width: 5, Height: 5})

	require.Len(t, settings.WindTrackerRegions, 2)
	assert.Equal(t, Region{}, settings.WindTrackerRegions[0])
}

func TestWindTrackerRegionOutOfRange(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, Region{}, settings.WindTrackerRegion(-1))
	assert.Equal(t, Region{}, settings.WindTrackerRegion(99))
}

func TestCameraInfoLabel(t *testing.T) {
	assert.Equal(t, "* Webcam", CameraInfo{DeviceID: 0, Name: "Webcam"}.Label())
	assert.Equal(t, "* Webcam [v4l2]", CameraInfo{Name: "Webcam", Backend: "v4l2"}.Label())
	assert.Equal(t, "* Webcam [v4l2] (occupied)",
		CameraInfo{Name: "Webcam", Backend: "v4l2", Occupied: true}.Label())
}
