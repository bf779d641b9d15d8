package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosplit/models"
	"autosplit/storage"
)

func writeSplitImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("png"), 0644))
	}
	return dir
}

func TestThresholdLabelsFollowImagesAndDefaults(t *testing.T) {
	dir := writeSplitImages(t, "boss_(85).png", "reset.png")

	store := storage.NewManagerAt(t.TempDir())
	settings := models.DefaultSettings()
	settings.SplitImageDirectory = dir
	require.NoError(t, store.SaveSettings(settings))

	mw := newTestMainWindow(t, store, &fakeEnumerator{})

	// Flagged filename pins the split threshold, the reset image tracks
	// the default.
	assert.Equal(t, "0.85", mw.currentThresholdLabel.Text)
	assert.Equal(t, "0.90", mw.resetThresholdLabel.Text)

	mw.settings.DefaultSimilarityThreshold = 0.8
	mw.RefreshThresholdLabels()
	assert.Equal(t, "0.85", mw.currentThresholdLabel.Text)
	assert.Equal(t, "0.80", mw.resetThresholdLabel.Text)
}

func TestThresholdLabelsWithoutImages(t *testing.T) {
	mw := newTestMainWindow(t, nil, &fakeEnumerator{})

	assert.Equal(t, "-", mw.currentThresholdLabel.Text)
	assert.Equal(t, "-", mw.resetThresholdLabel.Text)
}

func TestSelectSplitImageDirectory(t *testing.T) {
	dir := writeSplitImages(t, "first_(75).png")
	mw := newTestMainWindow(t, nil, &fakeEnumerator{})

	restore := selectDirectory
	t.Cleanup(func() { selectDirectory = restore })

	selectDirectory = func(title, start string) (string, error) {
		return "", zenity.ErrCanceled
	}
	mw.selectSplitImageDirectory()
	assert.Empty(t, mw.settings.SplitImageDirectory)
	assert.Equal(t, "(not set)", mw.splitDirLabel.Text)

	selectDirectory = func(title, start string) (string, error) {
		return dir, nil
	}
	mw.selectSplitImageDirectory()
	assert.Equal(t, dir, mw.settings.SplitImageDirectory)
	assert.Equal(t, dir, mw.splitDirLabel.Text)
	assert.Equal(t, "0.75", mw.currentThresholdLabel.Text)
}

func TestOpenScreenshotsFolder(t *testing.T) {
	mw := newTestMainWindow(t, nil, &fakeEnumerator{})

	restore := openPath
	t.Cleanup(func() { openPath = restore })

	var opened []string
	openPath = func(path string) error {
		opened = append(opened, path)
		return nil
	}

	// Nothing configured, nothing to open.
	mw.openScreenshotsFolder()
	assert.Empty(t, opened)

	// The split folder stands in until a screenshot folder is chosen.
	mw.settings.SplitImageDirectory = "/splits"
	mw.openScreenshotsFolder()
	assert.Equal(t, []string{"/splits"}, opened)

	mw.settings.ScreenshotDirectory = "/shots"
	mw.openScreenshotsFolder()
	assert.Equal(t, []string{"/splits", "/shots"}, opened)
}

func TestSaveProfileRoundTrip(t *testing.T) {
	store := storage.NewManagerAt(t.TempDir())
	mw := newTestMainWindow(t, store, &fakeEnumerator{})

	mw.settings.FPSLimit = 30
	mw.saveProfile()

	loaded, err := store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.FPSLimit)
	assert.Equal(t, mw.settings.ProfileID, loaded.ProfileID)
}
