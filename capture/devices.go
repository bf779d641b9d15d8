package capture

import (
	"context"

	"autosplit/models"
)

// Enumerator lists the video capture devices currently attached to the
// system. Implementations talk to the platform capture backends and may be
// slow, so callers run them off the UI event loop.
type Enumerator interface {
	ListVideoCaptureDevices(ctx context.Context) ([]models.CameraInfo, error)
}

// DeviceIndex reconciles a stored device id against a freshly enumerated
// device list. An exact id match wins; an id that is no longer present
// falls back to index 0, the first available device.
func DeviceIndex(devices []models.CameraInfo, storedID int) int {
	for i, device := range devices {
		if device.DeviceID == storedID {
			return i
		}
	}
	return 0
}

// DeviceLabels renders the combobox entries for an enumerated device list.
func DeviceLabels(devices []models.CameraInfo) []string {
	labels := make([]string, len(devices))
	for i, device := range devices {
		labels[i] = device.Label()
	}
	return labels
}
