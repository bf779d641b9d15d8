package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"autosplit/models"
)

// SystemEnumerator lists capture devices through the kernel's
// video4linux sysfs tree. Platforms without that tree enumerate nothing;
// their device backends are expected to ship their own Enumerator.
type SystemEnumerator struct {
	sysfsPath string
	devPath   string
}

// NewSystemEnumerator creates an enumerator over the default device tree.
func NewSystemEnumerator() *SystemEnumerator {
	return &SystemEnumerator{
		sysfsPath: "/sys/class/video4linux",
		devPath:   "/dev",
	}
}

// ListVideoCaptureDevices implements Enumerator.
func (e *SystemEnumerator) ListVideoCaptureDevices(ctx context.Context) ([]models.CameraInfo, error) {
	entries, err := os.ReadDir(e.sysfsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to enumerate capture devices: %w", err)
	}

	var devices []models.CameraInfo
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idText, isVideo := strings.CutPrefix(entry.Name(), "video")
		if !isVideo {
			continue
		}
		id, err := strconv.Atoi(idText)
		if err != nil {
			continue
		}

		devices = append(devices, models.CameraInfo{
			DeviceID: id,
			Name:     e.deviceName(entry.Name()),
			Backend:  "v4l2",
			Occupied: e.deviceOccupied(entry.Name()),
		})
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].DeviceID < devices[j].DeviceID
	})

	return devices, nil
}

// deviceName reads the driver-reported card name, falling back to the
// node name when sysfs does not expose one.
func (e *SystemEnumerator) deviceName(node string) string {
	data, err := os.ReadFile(filepath.Join(e.sysfsPath, node, "name"))
	if err != nil {
		return node
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return node
	}
	return name
}

// deviceOccupied probes whether another process holds the device node.
func (e *SystemEnumerator) deviceOccupied(node string) bool {
	file, err := os.OpenFile(filepath.Join(e.devPath, node), os.O_RDWR, 0)
	if err != nil {
		return errors.Is(err, syscall.EBUSY)
	}
	file.Close()
	return false
}
