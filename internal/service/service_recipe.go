package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/validators"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recipeService struct {
	recipeRepository  store.RecipeRepository
	filtersRepository store.FiltersRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewRecipeService(
	recipeRepository store.RecipeRepository,
	filtersRepository store.FiltersRepository,
	validator validators.Validator,
	logger *logger.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		filtersRepository: filtersRepository,
		validator:         validator,
		logger:            logger,
	}
}

// GetRecipes lists recipes. A creator narrows the listing on the store side;
// a name is then matched as a case-sensitive substring.
func (s *recipeService) GetRecipes(ctx context.Context, query models.RecipeQuery) ([]models.Recipe, error) {
	var (
		recipes []models.Recipe
		err     error
	)
	switch {
	case query.CreatorID != "":
		recipes, err = s.recipeRepository.GetRecipesByCreator(ctx, query.CreatorID)
		if err == nil && query.Name != "" {
			recipes = filterByName(recipes, query.Name)
		}
	case query.Name != "":
		recipes, err = s.recipeRepository.SearchRecipes(ctx, query.Name)
	default:
		recipes, err = s.recipeRepository.GetRecipes(ctx)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeService.GetRecipes").Any("query", query).Msg("error listing recipes")
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	return recipes, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeService.GetRecipe").Str("id", id).Msg("error finding recipe")
		return models.Recipe{}, fmt.Errorf("error finding recipe: %w", err)
	}
	if recipe == nil {
		return models.Recipe{}, store.ErrRecipeNotFound
	}

	return *recipe, nil
}

// CreateRecipe stores recipe on behalf of userID, who becomes its creator.
// A zero ID is generated here so the stored recipe can be returned.
func (s *recipeService) CreateRecipe(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, recipe); err != nil {
		log.Err(err).Str("func", "*recipeService.CreateRecipe").Msg("invalid recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	}
	recipe.CreatorID = userID

	inserted, err := s.recipeRepository.InsertRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Str("func", "*recipeService.CreateRecipe").Msg("error inserting recipe")
		return models.Recipe{}, fmt.Errorf("error inserting recipe: %w", err)
	}
	if !inserted {
		return models.Recipe{}, ErrRecipeConflict
	}

	return s.GetRecipe(ctx, recipe.ID.Hex())
}

// UpdateRecipe replaces the mutable fields of a recipe owned by userID.
func (s *recipeService) UpdateRecipe(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, recipe); err != nil {
		log.Err(err).Str("func", "*recipeService.UpdateRecipe").Msg("invalid recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := ensureRecipeOwner(ctx, s.recipeRepository, recipe.ID.Hex(), userID); err != nil {
		return models.Recipe{}, err
	}
	recipe.CreatorID = userID

	updated, err := s.recipeRepository.UpdateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Str("func", "*recipeService.UpdateRecipe").Str("id", recipe.ID.Hex()).Msg("error updating recipe")
		return models.Recipe{}, fmt.Errorf("error updating recipe: %w", err)
	}
	if !updated {
		return models.Recipe{}, ErrRecipeNotSaved
	}

	return s.GetRecipe(ctx, recipe.ID.Hex())
}

// DeleteRecipe removes a recipe owned by userID together with its filter
// associations.
func (s *recipeService) DeleteRecipe(ctx context.Context, userID primitive.ObjectID, id string) error {
	log := logger.FromContext(ctx)

	if err := ensureRecipeOwner(ctx, s.recipeRepository, id, userID); err != nil {
		return err
	}

	if _, err := s.filtersRepository.ClearRecipeFilters(ctx, id); err != nil {
		log.Err(err).Str("func", "*recipeService.DeleteRecipe").Str("id", id).Msg("error clearing recipe filters")
		return fmt.Errorf("error clearing recipe filters: %w", err)
	}

	deleted, err := s.recipeRepository.DeleteRecipe(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*recipeService.DeleteRecipe").Str("id", id).Msg("error deleting recipe")
		return fmt.Errorf("error deleting recipe: %w", err)
	}
	if !deleted {
		return store.ErrRecipeNotFound
	}

	return nil
}

// ensureRecipeOwner returns nil when userID created the recipe,
// store.ErrRecipeNotFound when the recipe does not exist and
// ErrNotRecipeOwner otherwise.
func ensureRecipeOwner(ctx context.Context, recipes store.RecipeRepository, recipeID string, userID primitive.ObjectID) error {
	owner, err := recipes.IsRecipeOwner(ctx, recipeID, userID.Hex())
	if err != nil {
		return fmt.Errorf("error checking recipe owner: %w", err)
	}
	if owner {
		return nil
	}

	recipe, err := recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("error finding recipe: %w", err)
	}
	if recipe == nil {
		return store.ErrRecipeNotFound
	}

	return ErrNotRecipeOwner
}

func filterByName(recipes []models.Recipe, name string) []models.Recipe {
	filtered := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if strings.Contains(recipe.Name, name) {
			filtered = append(filtered, recipe)
		}
	}
	return filtered
}
