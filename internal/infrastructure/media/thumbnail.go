package media

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const maxThumbnailEdge = 640

// NormalizeThumbnail decodes an uploaded thumbnail and bounds its longer
// edge to maxThumbnailEdge, re-encoding in the format the file name
// implies. Images already inside the bound are passed through untouched.
func NormalizeThumbnail(src io.Reader, filename string) (io.Reader, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("thumbnail could not be read: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("thumbnail could not be decoded: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxThumbnailEdge && bounds.Dy() <= maxThumbnailEdge {
		return bytes.NewReader(raw), nil
	}

	var resized image.Image
	if bounds.Dx() >= bounds.Dy() {
		resized = imaging.Resize(img, maxThumbnailEdge, 0, imaging.Lanczos)
	} else {
		resized = imaging.Resize(img, 0, maxThumbnailEdge, imaging.Lanczos)
	}

	format, err := imaging.FormatFromExtension(filepath.Ext(filename))
	if err != nil {
		format = imaging.JPEG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, fmt.Errorf("thumbnail could not be encoded: %w", err)
	}
	return &buf, nil
}
