package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/images"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// imagesPath prefixes the API path that resolves an image key.
const imagesPath = "/api/images/"

type keyGenerator interface {
	Generate() string
}

type imageService struct {
	store        images.Store
	keys         keyGenerator
	maxDimension int
	urlExpiry    time.Duration

	logger *logger.Logger
}

// NewImageService returns a service backed by store. A nil store disables
// uploads: every call then fails with ErrImagesDisabled.
func NewImageService(store images.Store, keys keyGenerator, cfg config.Images, logger *logger.Logger) ImageService {
	return &imageService{
		store:        store,
		keys:         keys,
		maxDimension: cfg.MaxDimension,
		urlExpiry:    cfg.URLExpiry,
		logger:       logger,
	}
}

// UploadImage normalizes data and stores it under a key prefixed with the
// uploader's id.
func (s *imageService) UploadImage(ctx context.Context, userID primitive.ObjectID, data []byte) (models.ImageResponse, error) {
	if s.store == nil {
		return models.ImageResponse{}, ErrImagesDisabled
	}

	normalized, contentType, err := images.Normalize(data, s.maxDimension)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*imageService.UploadImage").Msg("rejected image")
		return models.ImageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	extension := ".jpg"
	if contentType == images.ContentTypePNG {
		extension = ".png"
	}
	key := userID.Hex() + "-" + s.keys.Generate() + extension

	if err = s.store.Put(ctx, key, bytes.NewReader(normalized), int64(len(normalized)), contentType); err != nil {
		return models.ImageResponse{}, err
	}

	return models.ImageResponse{Key: key, URL: imagesPath + key}, nil
}

func (s *imageService) GetImageURL(ctx context.Context, key string) (string, error) {
	if s.store == nil {
		return "", ErrImagesDisabled
	}
	if key == "" || strings.ContainsAny(key, "/\\") {
		return "", images.ErrImageNotFound
	}

	return s.store.PresignGet(ctx, key, s.urlExpiry)
}
