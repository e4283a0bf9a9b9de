package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Thumbnail decodes the image, shrinks it so that neither dimension
// exceeds bound (aspect ratio preserved, never upscaled) and re-encodes
// it in the format given by ext (".png", ".jpg", ".jpeg" or ".gif").
func Thumbnail(r io.Reader, ext string, bound int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	srcBounds := src.Bounds()
	width := srcBounds.Dx()
	height := srcBounds.Dy()

	if width > bound || height > bound {
		if width > height {
			height = height * bound / width
			width = bound
		} else {
			width = width * bound / height
			height = bound
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, srcBounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	switch ext {
	case ".png":
		err = png.Encode(&buf, src)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85})
	case ".gif":
		err = gif.Encode(&buf, src, nil)
	default:
		return nil, fmt.Errorf("unsupported image extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
