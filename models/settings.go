package models

import (
	"github.com/google/uuid"
)

// Region is a capture sub-area in screen coordinates
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Settings represents the user profile: every user-configurable key the
// application reads. All writes happen on the UI event loop, so the struct
// itself carries no lock.
type Settings struct {
	ProfileID string `json:"profile_id"`

	// Capture settings
	FPSLimit            int    `json:"fps_limit"`
	LiveCaptureRegion   bool   `json:"live_capture_region"`
	CaptureMethod       string `json:"capture_method"`
	CaptureDeviceID     int    `json:"capture_device_id"`
	CaptureDeviceName   string `json:"capture_device_name"`
	CapturedWindowTitle string `json:"captured_window_title"`
	CaptureRegion       Region `json:"capture_region"`

	// Image comparison settings
	DefaultComparisonMethod    int     `json:"default_comparison_method"`
	DefaultSimilarityThreshold float64 `json:"default_similarity_threshold"`
	DefaultDelayTime           float64 `json:"default_delay_time"`
	DefaultPauseTime           float64 `json:"default_pause_time"`
	LoopSplits                 bool    `json:"loop_splits"`
	StartAlsoResets            bool    `json:"start_also_resets"`
	EnableAutoReset            bool    `json:"enable_auto_reset"`

	// Wind tracker settings
	WindTrackerMode                    bool     `json:"windtracker_mode"`
	WindTrackerMPH                     bool     `json:"windtracker_mph"`
	WindTrackerSpeedImageDirectory     string   `json:"windtracker_speed_image_directory"`
	WindTrackerDirectionImageDirectory string   `json:"windtracker_direction_image_directory"`
	WindTrackerRegions                 []Region `json:"windtracker_regions"`

	// Directories, empty string means unset
	SplitImageDirectory string `json:"split_image_directory"`
	ScreenshotDirectory string `json:"screenshot_directory"`
	OpenScreenshot      bool   `json:"open_screenshot"`

	CheckForUpdatesOnOpen bool `json:"check_for_updates_on_open"`

	// Hotkeys maps a logical hotkey name to the captured gesture
	Hotkeys map[string]string `json:"hotkeys"`
}

// WindTrackerRegionCount is how many watch regions the wind tracker reads.
const WindTrackerRegionCount = 2

// DefaultSettings returns a fresh user profile with default values for
// every key. This is the single source of control defaults.
func DefaultSettings() *Settings {
	return &Settings{
		ProfileID:                  uuid.New().String(),
		FPSLimit:                   60,
		LiveCaptureRegion:          true,
		CaptureMethod:              "bitblt",
		CaptureRegion:              Region{X: 0, Y: 0, Width: 640, Height: 480},
		DefaultComparisonMethod:    0,
		DefaultSimilarityThreshold: 0.90,
		DefaultDelayTime:           0,
		DefaultPauseTime:           10,
		EnableAutoReset:            true,
		WindTrackerRegions:         make([]Region, WindTrackerRegionCount),
		OpenScreenshot:             true,
		CheckForUpdatesOnOpen:      true,
		Hotkeys:                    map[string]string{},
	}
}

// Hotkey returns the stored gesture for a logical hotkey name, or "" when
// the hotkey was never bound.
func (s *Settings) Hotkey(name string) string {
	if s.Hotkeys == nil {
		return ""
	}
	return s.Hotkeys[name]
}

// SetHotkey stores a captured gesture under a logical hotkey name.
func (s *Settings) SetHotkey(name, gesture string) {
	if s.Hotkeys == nil {
		s.Hotkeys = map[string]string{}
	}
	s.Hotkeys[name] = gesture
}

// WindTrackerRegion returns the watch region at index, or a zero region
// when the persisted slice is short.
func (s *Settings) WindTrackerRegion(index int) Region {
	if index < 0 || index >= len(s.WindTrackerRegions) {
		return Region{}
	}
	return s.WindTrackerRegions[index]
}

// SetWindTrackerRegion replaces the whole four-field record at index.
// Regions are always written as one record, never field by field.
func (s *Settings) SetWindTrackerRegion(index int, region Region) {
	if index < 0 {
		return
	}
	for len(s.WindTrackerRegions) <= index {
		s.WindTrackerRegions = append(s.WindTrackerRegions, Region{})
	}
	s.WindTrackerRegions[index] = region
}
