package splitimage

import (
	"fmt"
	"image"
	"os"

	// Import decoders for the supported split image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Load decodes the image from disk. The comparison engine consumes the
// decoded frame; the settings layer never needs pixels itself.
func (img *Image) Load() (image.Image, error) {
	file, err := os.Open(img.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open split image: %w", err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode split image %s: %w", img.Path, err)
	}

	return decoded, nil
}
