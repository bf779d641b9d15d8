package models

import "fmt"

// CameraInfo describes one enumerated video capture device. DeviceID is
// assigned by the OS/driver enumeration; Name is advisory only.
type CameraInfo struct {
	DeviceID int    `json:"device_id"`
	Name     string `json:"name"`
	Backend  string `json:"backend"`
	Occupied bool   `json:"occupied"`
}

// Label renders the device the way the device combobox shows it.
func (c CameraInfo) Label() string {
	label := fmt.Sprintf("* %s", c.Name)
	if c.Backend != "" {
		label += fmt.Sprintf(" [%s]", c.Backend)
	}
	if c.Occupied {
		label += " (occupied)"
	}
	return label
}
