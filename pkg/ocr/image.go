package ocr

import (
	"fmt"

	"Grocery-Tracker/domain"

	"github.com/gabriel-vasile/mimetype"
)

var AllowImage = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// DetectImage sniffs data and accepts only raster image formats the OCR
// engine can read.
func DetectImage(data []byte) (*mimetype.MIME, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrUnsupportedImage)
	}
	mtype := mimetype.Detect(data)
	for _, allowed := range AllowImage {
		if mtype.Is(allowed) {
			return mtype, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedImage, mtype.String())
}
