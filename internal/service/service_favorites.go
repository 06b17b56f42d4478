package service

import (
	"context"
	"fmt"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type favoritesService struct {
	favoritesRepository store.FavoritesRepository
	recipeRepository    store.RecipeRepository

	logger *logger.Logger
}

func NewFavoritesService(favoritesRepository store.FavoritesRepository, recipeRepository store.RecipeRepository, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		favoritesRepository: favoritesRepository,
		recipeRepository:    recipeRepository,
		logger:              logger,
	}
}

func (s *favoritesService) GetFavorites(ctx context.Context, userID primitive.ObjectID, name string) ([]models.FavoriteRecord, error) {
	var (
		records []models.FavoriteRecord
		err     error
	)
	if name == "" {
		records, err = s.favoritesRepository.GetFavorites(ctx, userID.Hex())
	} else {
		records, err = s.favoritesRepository.SearchFavorites(ctx, userID.Hex(), name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoritesService.GetFavorites").Str("user_id", userID.Hex()).Msg("error listing favorites")
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}

	return records, nil
}

func (s *favoritesService) IsFavorite(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	return s.favoritesRepository.IsFavorite(ctx, userID.Hex(), recipeID)
}

// AddToFavorites returns store.ErrRecipeNotFound for unknown recipes and
// false when the recipe already is a favorite.
func (s *favoritesService) AddToFavorites(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesService.AddToFavorites").Str("recipe_id", recipeID).Msg("error finding recipe")
		return false, fmt.Errorf("error finding recipe: %w", err)
	}
	if recipe == nil {
		return false, store.ErrRecipeNotFound
	}

	added, err := s.favoritesRepository.AddToFavorites(ctx, userID.Hex(), recipeID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesService.AddToFavorites").Str("recipe_id", recipeID).Msg("error adding favorite")
		return false, fmt.Errorf("error adding favorite: %w", err)
	}

	return added, nil
}

func (s *favoritesService) RemoveFromFavorites(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	return s.favoritesRepository.RemoveFromFavorites(ctx, userID.Hex(), recipeID)
}

func (s *favoritesService) RemoveFavoriteRecord(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error) {
	id, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return false, nil
	}

	records, err := s.favoritesRepository.GetFavorites(ctx, userID.Hex())
	if err != nil {
		return false, fmt.Errorf("error listing favorites: %w", err)
	}

	for _, record := range records {
		if record.ID == id {
			return s.favoritesRepository.RemoveFavoriteByID(ctx, id.Hex())
		}
	}

	return false, nil
}
