// Package splitimage models the split and reset images the comparison
// engine works from. The settings panel only ever asks an image for its
// effective per-image values, which may be overridden through flags
// embedded in the image filename:
//
//	(95)  similarity threshold, in percent
//	[5]   pause time in seconds
//	#0.5# delay time in seconds
package splitimage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"autosplit/models"
)

var (
	thresholdPattern = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)`)
	pausePattern     = regexp.MustCompile(`\[(\d+(?:\.\d+)?)\]`)
	delayPattern     = regexp.MustCompile(`#(\d+(?:\.\d+)?)#`)
)

// Image is one split (or reset) image on disk plus the overrides parsed
// from its filename.
type Image struct {
	Path string

	threshold    float64
	hasThreshold bool
	pause        float64
	hasPause     bool
	delay        float64
	hasDelay     bool
}

// New parses the filename flags of an image path. The file itself is not
// opened; decoding happens lazily in Load.
func New(path string) *Image {
	img := &Image{Path: path}
	name := filepath.Base(path)

	if value, ok := matchNumber(thresholdPattern, name); ok {
		// Flags are written in percent; tolerate fractional input too
		if value > 1 {
			value /= 100
		}
		img.threshold = value
		img.hasThreshold = true
	}
	if value, ok := matchNumber(pausePattern, name); ok {
		img.pause = value
		img.hasPause = true
	}
	if value, ok := matchNumber(delayPattern, name); ok {
		img.delay = value
		img.hasDelay = true
	}

	return img
}

func matchNumber(pattern *regexp.Regexp, name string) (float64, bool) {
	matches := pattern.FindStringSubmatch(name)
	if len(matches) < 2 {
		return 0, false
	}
	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// SimilarityThreshold returns the effective comparison threshold for this
// image: the filename override when present, the profile default otherwise.
func (img *Image) SimilarityThreshold(settings *models.Settings) float64 {
	if img.hasThreshold {
		return img.threshold
	}
	return settings.DefaultSimilarityThreshold
}

// PauseTime returns the effective pause time in seconds.
func (img *Image) PauseTime(settings *models.Settings) float64 {
	if img.hasPause {
		return img.pause
	}
	return settings.DefaultPauseTime
}

// DelayTime returns the effective delay time in seconds.
func (img *Image) DelayTime(settings *models.Settings) float64 {
	if img.hasDelay {
		return img.delay
	}
	return settings.DefaultDelayTime
}

// FromDirectory lists the split images of a directory in filename order.
// An empty directory string means the split image folder is unset and
// yields no images.
func FromDirectory(dir string) ([]*Image, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read split image directory: %w", err)
	}

	var images []*Image
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		images = append(images, New(filepath.Join(dir, entry.Name())))
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].Path < images[j].Path
	})

	return images, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}
