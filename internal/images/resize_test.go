package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize_ShrinksLargeImages(t *testing.T) {
	data, contentType, err := Normalize(encodePNG(t, 2000, 1000), 1280)
	require.NoError(t, err)
	assert.Equal(t, ContentTypePNG, contentType)

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 640, img.Bounds().Dy())
}

func TestNormalize_KeepsSmallImages(t *testing.T) {
	data, _, err := Normalize(encodePNG(t, 300, 200), 1280)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 200), img.Bounds())
}

func TestNormalize_ConvertsToJPEG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	var gif bytes.Buffer
	require.NoError(t, imaging.Encode(&gif, src, imaging.GIF))

	data, contentType, err := Normalize(gif.Bytes(), 1280)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJPEG, contentType)
	assert.Equal(t, ContentTypeJPEG, http.DetectContentType(data))
}

func TestNormalize_RejectsNonImages(t *testing.T) {
	_, _, err := Normalize([]byte("definitely not an image"), 1280)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestNewMinIO_IncompleteConfig(t *testing.T) {
	_, err := NewMinIO(context.Background(), config.Images{Endpoint: "localhost:9000"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
