package images

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"
)

// Content types accepted for uploads.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
)

// Normalize decodes data, applies the EXIF orientation and shrinks the image
// so that its longest side is at most maxDimension. PNG input stays PNG to
// keep transparency; everything else is re-encoded as JPEG.
//
// It returns the encoded bytes and their content type.
func Normalize(data []byte, maxDimension int) ([]byte, string, error) {
	contentType := http.DetectContentType(data)
	format := imaging.JPEG
	switch contentType {
	case ContentTypePNG:
		format = imaging.PNG
	case ContentTypeJPEG, ContentTypeGIF:
		contentType = ContentTypeJPEG
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	if maxDimension > 0 && (bounds.Dx() > maxDimension || bounds.Dy() > maxDimension) {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrProcessingImage, err)
	}

	return buf.Bytes(), contentType, nil
}
