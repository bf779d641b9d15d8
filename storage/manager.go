package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"autosplit/models"
)

// Manager handles profile persistence
type Manager struct {
	dataPath string
}

// NewManager creates a new storage manager
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataPath := filepath.Join(homeDir, ".autosplit")
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		// Fallback to current directory
		dataPath = "."
	}

	return &Manager{
		dataPath: dataPath,
	}
}

// NewManagerAt creates a storage manager rooted at an explicit directory.
func NewManagerAt(dataPath string) *Manager {
	return &Manager{dataPath: dataPath}
}

// SaveSettings saves the user profile to disk
func (m *Manager) SaveSettings(settings *models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	filePath := filepath.Join(m.dataPath, "profile.json")
	return os.WriteFile(filePath, data, 0644)
}

// LoadSettings loads the user profile from disk. A missing file is not an
// error: a fresh default profile is returned instead.
func (m *Manager) LoadSettings() (*models.Settings, error) {
	filePath := filepath.Join(m.dataPath, "profile.json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, err
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	// Older profiles may predate the hotkey map or carry fewer regions
	if settings.Hotkeys == nil {
		settings.Hotkeys = map[string]string{}
	}
	for len(settings.WindTrackerRegions) < models.WindTrackerRegionCount {
		settings.WindTrackerRegions = append(settings.WindTrackerRegions, models.Region{})
	}

	return &settings, nil
}
