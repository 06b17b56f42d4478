package images

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid image store configuration")
	ErrConnectingStore     = errors.New("error connecting to image store")
	ErrImageNotFound       = errors.New("image not found")
	ErrUnsupportedImage    = errors.New("unsupported image format")
	ErrProcessingImage     = errors.New("error processing image")
	ErrUploadingImage      = errors.New("error uploading image")
	ErrPresigningImageLink = errors.New("error presigning image link")
)
