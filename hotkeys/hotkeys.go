// Package hotkeys defines the logical hotkey set and the contract for
// binding them to input gestures. The global input hook itself is platform
// code living behind the Binder interface.
package hotkeys

import (
	"errors"
	"time"

	"autosplit/models"
)

// Names lists the logical hotkeys in display order.
var Names = []string{
	"split",
	"reset",
	"undo_split",
	"skip_split",
	"pause",
	"screenshot",
	"toggle_auto_reset_image",
}

var labels = map[string]string{
	"split":                   "Start / Split",
	"reset":                   "Reset",
	"undo_split":              "Undo Split",
	"skip_split":              "Skip Split",
	"pause":                   "Pause",
	"screenshot":              "Screenshot",
	"toggle_auto_reset_image": "Toggle auto Reset image",
}

// Label returns the display label of a logical hotkey name.
func Label(name string) string {
	if label, ok := labels[name]; ok {
		return label
	}
	return name
}

// ErrCaptureUnsupported is returned by binders on platforms without a
// global input hook.
var ErrCaptureUnsupported = errors.New("hotkey capture is not supported on this platform")

// Binder captures the next input gesture. Capture blocks until a gesture
// arrives or the timeout expires, so callers run it off the UI event loop.
type Binder interface {
	CaptureNext(timeout time.Duration) (string, error)
}

// Set captures the next gesture through the binder and stores it under the
// logical hotkey name. The stored gesture is returned for display.
func Set(settings *models.Settings, binder Binder, name string) (string, error) {
	gesture, err := binder.CaptureNext(10 * time.Second)
	if err != nil {
		return "", err
	}
	settings.SetHotkey(name, gesture)
	return gesture, nil
}

var system Binder = unsupportedBinder{}

// RegisterSystemBinder installs the platform input hook.
func RegisterSystemBinder(binder Binder) {
	system = binder
}

// SystemBinder returns the installed platform input hook. Until platform
// code registers one, every capture attempt reports ErrCaptureUnsupported.
func SystemBinder() Binder {
	return system
}

type unsupportedBinder struct{}

func (unsupportedBinder) CaptureNext(timeout time.Duration) (string, error) {
	return "", ErrCaptureUnsupported
}
