package splitimage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosplit/models"
)

func testSettings() *models.Settings {
	settings := models.DefaultSettings()
	settings.DefaultSimilarityThreshold = 0.90
	settings.DefaultDelayTime = 0
	settings.DefaultPauseTime = 10
	return settings
}

func TestSimilarityThreshold_FilenameOverride(t *testing.T) {
	settings := testSettings()

	img := New("/splits/001_boss_(85).png")
	assert.InDelta(t, 0.85, img.SimilarityThreshold(settings), 1e-9)

	// Fractional flags are taken as-is
	img = New("/splits/002_door_(0.75).png")
	assert.InDelta(t, 0.75, img.SimilarityThreshold(settings), 1e-9)
}

func TestSimilarityThreshold_DefaultFallback(t *testing.T) {
	settings := testSettings()

	img := New("/splits/001_boss.png")
	assert.InDelta(t, 0.90, img.SimilarityThreshold(settings), 1e-9)

	// The label tracks the default when it changes
	settings.DefaultSimilarityThreshold = 0.75
	assert.InDelta(t, 0.75, img.SimilarityThreshold(settings), 1e-9)
}

func TestPauseAndDelayFlags(t *testing.T) {
	settings := testSettings()

	img := New("/splits/003_cutscene_(90)_[5]_#0.5#.png")
	assert.InDelta(t, 5, img.PauseTime(settings), 1e-9)
	assert.InDelta(t, 0.5, img.DelayTime(settings), 1e-9)

	img = New("/splits/004_plain.png")
	assert.InDelta(t, 10, img.PauseTime(settings), 1e-9)
	assert.InDelta(t, 0, img.DelayTime(settings), 1e-9)
}

func TestFromDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.png", "001_a.png", "reset_(95).webp", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0755))

	images, err := FromDirectory(dir)
	require.NoError(t, err)
	require.Len(t, images, 3)

	// Filename order, non-images and directories skipped
	assert.Equal(t, filepath.Join(dir, "001_a.png"), images[0].Path)
	assert.Equal(t, filepath.Join(dir, "002_b.png"), images[1].Path)
	assert.Equal(t, filepath.Join(dir, "reset_(95).webp"), images[2].Path)
}

func TestFromDirectory_UnsetDirectory(t *testing.T) {
	images, err := FromDirectory("")
	assert.NoError(t, err)
	assert.Nil(t, images)
}

func TestFromDirectory_MissingDirectory(t *testing.T) {
	_, err := FromDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
