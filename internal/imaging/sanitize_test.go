package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSanitize_RejectsOversized(t *testing.T) {
	blob := make([]byte, 6*1024*1024)
	_, err := Sanitize(blob)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSanitize_RejectsGarbage(t *testing.T) {
	_, err := Sanitize([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestSanitize_DownscalesLargeImages(t *testing.T) {
	out, err := Sanitize(encodePNG(t, 2000, 1000))
	require.NoError(t, err)
	assert.Equal(t, 1024, out.Width)
	assert.Equal(t, 512, out.Height)
}

func TestSanitize_DownscalesTallImages(t *testing.T) {
	out, err := Sanitize(encodePNG(t, 500, 2048))
	require.NoError(t, err)
	assert.Equal(t, 250, out.Width)
	assert.Equal(t, 1024, out.Height)
}

func TestSanitize_NeverUpscales(t *testing.T) {
	out, err := Sanitize(encodePNG(t, 500, 300))
	require.NoError(t, err)
	assert.Equal(t, 500, out.Width)
	assert.Equal(t, 300, out.Height)
}

func TestSanitize_OutputIsJPEGDataURL(t *testing.T) {
	out, err := Sanitize(encodePNG(t, 64, 64))
	require.NoError(t, err)

	url := out.DataURL()
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

	// the payload really is a decodable JPEG
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.JPEG))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, cfg.Width)
}
