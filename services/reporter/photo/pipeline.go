package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // completion photos may arrive as PNG

	"golang.org/x/image/draw"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

const (
	// DefaultMaxDim bounds the longest photo edge before upload
	DefaultMaxDim = 1280
	// DefaultQuality is the JPEG re-encode quality
	DefaultQuality = 70
)

// Process downsamples a captured image to the bounding dimension and
// re-encodes it as JPEG, so uploads stay small on metered links
func Process(data []byte, maxDim, quality int) (models.Photo, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDim
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to decode photo: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxDim || height > maxDim {
		if width >= height {
			height = height * maxDim / width
			width = maxDim
		} else {
			width = width * maxDim / height
			height = maxDim
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return models.Photo{}, fmt.Errorf("failed to encode photo: %w", err)
	}

	return models.Photo{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		Width:       width,
		Height:      height,
	}, nil
}
