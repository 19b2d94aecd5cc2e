// Package imaging downsizes and re-encodes uploaded review photos before they
// leave the service. The unconditional redraw into a fresh pixel buffer is
// what strips EXIF and any other embedded metadata.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// MaxBytes is the upload ceiling, checked before any decode work.
	MaxBytes = 5 * 1024 * 1024

	// MaxDimension caps either side of the output; larger images are
	// downscaled with the aspect ratio preserved, smaller ones are left alone.
	MaxDimension = 1024

	jpegQuality = 70
)

var (
	ErrTooLarge     = errors.New("file too large, maximum size is 5MB")
	ErrInvalidImage = errors.New("invalid image data")
)

// Sanitized is the re-encoded image, ready for submission.
type Sanitized struct {
	JPEG   []byte
	Width  int
	Height int
}

// DataURL renders the JPEG as an inline data URL, the submission wire format.
func (s *Sanitized) DataURL() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(s.JPEG)
}

// Sanitize decodes the blob (jpeg, png, gif or webp), downscales it to at
// most MaxDimension on the longer side and re-encodes it as JPEG.
func Sanitize(data []byte) (*Sanitized, error) {
	if len(data) > MaxBytes {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := src.Bounds()
	width, height := scaleDimensions(bounds.Dx(), bounds.Dy())

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &Sanitized{JPEG: buf.Bytes(), Width: width, Height: height}, nil
}

// scaleDimensions shrinks the longer side to MaxDimension, never upscales.
func scaleDimensions(width, height int) (int, int) {
	if width >= height {
		if width > MaxDimension {
			height = height * MaxDimension / width
			width = MaxDimension
		}
	} else {
		if height > MaxDimension {
			width = width * MaxDimension / height
			height = MaxDimension
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
