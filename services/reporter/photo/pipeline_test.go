package photo

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage produces a noisy JPEG so re-encoding has real work to do
func testImage(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 7 % 256),
				G: uint8(y * 13 % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

func TestProcess_DownscalesToBoundingDimension(t *testing.T) {
	input := testImage(t, 2560, 1440)

	photo, err := Process(input, 1280, 70)
	require.NoError(t, err)

	assert.Equal(t, 1280, photo.Width)
	assert.Equal(t, 720, photo.Height)
	assert.Equal(t, "image/jpeg", photo.ContentType)
	assert.Less(t, len(photo.Data), len(input))
}

func TestProcess_PortraitOrientation(t *testing.T) {
	input := testImage(t, 1440, 2560)

	photo, err := Process(input, 1280, 70)
	require.NoError(t, err)

	assert.Equal(t, 720, photo.Width)
	assert.Equal(t, 1280, photo.Height)
}

func TestProcess_SmallImageKeepsDimensions(t *testing.T) {
	input := testImage(t, 640, 480)

	photo, err := Process(input, 1280, 70)
	require.NoError(t, err)

	assert.Equal(t, 640, photo.Width)
	assert.Equal(t, 480, photo.Height)
}

func TestProcess_InvalidData(t *testing.T) {
	_, err := Process([]byte("not an image"), 1280, 70)
	assert.Error(t, err)
}
