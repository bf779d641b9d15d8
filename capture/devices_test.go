package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autosplit/models"
)

func testDevices() []models.CameraInfo {
	return []models.CameraInfo{
		{DeviceID: 2, Name: "Elgato HD60", Backend: "v4l2"},
		{DeviceID: 0, Name: "Integrated Webcam", Backend: "v4l2", Occupied: true},
		{DeviceID: 7, Name: "USB Capture"},
	}
}

func TestDeviceIndex_MatchWins(t *testing.T) {
	devices := testDevices()

	for i, device := range devices {
		assert.Equal(t, i, DeviceIndex(devices, device.DeviceID),
			"stored id %d should select its own position", device.DeviceID)
	}
}

func TestDeviceIndex_MissFallsBackToFirst(t *testing.T) {
	devices := testDevices()

	assert.Equal(t, 0, DeviceIndex(devices, 42))
	assert.Equal(t, 0, DeviceIndex(devices, -1))
}

func TestDeviceIndex_EmptyList(t *testing.T) {
	assert.Equal(t, 0, DeviceIndex(nil, 3))
}

func TestDeviceLabels(t *testing.T) {
	labels := DeviceLabels(testDevices())

	assert.Equal(t, []string{
		"* Elgato HD60 [v4l2]",
		"* Integrated Webcam [v4l2] (occupied)",
		"* USB Capture",
	}, labels)
}
