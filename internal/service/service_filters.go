package service

import (
	"context"
	"fmt"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultFilters are inserted by SeedDefaults, in this order.
var defaultFilters = []struct {
	category string
	values   []string
}{
	{"Cuisine", []string{"Italian", "Japanese", "Mexican", "Indian", "French", "Chinese"}},
	{"Meal type", []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Snack"}},
	{"Diet", []string{"Vegetarian", "Vegan", "Gluten-free", "Keto"}},
}

type filtersService struct {
	filtersRepository store.FiltersRepository
	recipeRepository  store.RecipeRepository

	logger *logger.Logger
}

func NewFiltersService(filtersRepository store.FiltersRepository, recipeRepository store.RecipeRepository, logger *logger.Logger) FiltersService {
	return &filtersService{
		filtersRepository: filtersRepository,
		recipeRepository:  recipeRepository,
		logger:            logger,
	}
}

func (s *filtersService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.filtersRepository.GetCategories(ctx)
}

func (s *filtersService) GetFiltersByCategory(ctx context.Context, categoryID string) ([]models.Filter, error) {
	return s.filtersRepository.GetFiltersByCategory(ctx, categoryID)
}

func (s *filtersService) GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error) {
	return s.filtersRepository.GetCategorizedFilters(ctx)
}

func (s *filtersService) GetRecipeFilters(ctx context.Context, recipeID string) ([]models.Filter, error) {
	return s.filtersRepository.GetFiltersByRecipe(ctx, recipeID)
}

// AttachFilter attaches a filter by id, or by value when no id is given.
func (s *filtersService) AttachFilter(ctx context.Context, userID primitive.ObjectID, recipeID string, request models.AttachFilterRequest) (bool, error) {
	if request.FilterID == "" && request.Value == "" {
		return false, fmt.Errorf("%w: filter id or value is required", ErrInvalidDataProvided)
	}

	if err := ensureRecipeOwner(ctx, s.recipeRepository, recipeID, userID); err != nil {
		return false, err
	}

	var (
		attached bool
		err      error
	)
	if request.FilterID != "" {
		attached, err = s.filtersRepository.AttachFilter(ctx, recipeID, request.FilterID)
	} else {
		attached, err = s.filtersRepository.AttachFilterByValue(ctx, recipeID, request.Value)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*filtersService.AttachFilter").
			Str("recipe_id", recipeID).
			Any("request", request).
			Msg("error attaching filter")
		return false, err
	}

	return attached, nil
}

func (s *filtersService) DetachFilter(ctx context.Context, userID primitive.ObjectID, recipeID, filterID string) (bool, error) {
	if err := ensureRecipeOwner(ctx, s.recipeRepository, recipeID, userID); err != nil {
		return false, err
	}

	return s.filtersRepository.DetachFilter(ctx, recipeID, filterID)
}

func (s *filtersService) DetachFilterByValue(ctx context.Context, userID primitive.ObjectID, recipeID, value string) (bool, error) {
	if err := ensureRecipeOwner(ctx, s.recipeRepository, recipeID, userID); err != nil {
		return false, err
	}

	return s.filtersRepository.DetachFilterByValue(ctx, recipeID, value)
}

func (s *filtersService) ClearRecipeFilters(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	if err := ensureRecipeOwner(ctx, s.recipeRepository, recipeID, userID); err != nil {
		return false, err
	}

	return s.filtersRepository.ClearRecipeFilters(ctx, recipeID)
}

func (s *filtersService) SeedDefaults(ctx context.Context) error {
	log := logger.FromContext(ctx)

	categories, err := s.filtersRepository.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("error listing categories: %w", err)
	}

	existing := make(map[string]primitive.ObjectID, len(categories))
	for _, category := range categories {
		existing[category.Name] = category.ID
	}

	for _, defaults := range defaultFilters {
		categoryID, found := existing[defaults.category]
		if !found {
			categoryID, err = s.seedCategory(ctx, defaults.category)
			if err != nil {
				return err
			}
		}

		inserted := 0
		for _, value := range defaults.values {
			ok, err := s.filtersRepository.InsertFilter(ctx, models.Filter{ID: primitive.NewObjectID(), CategoryID: categoryID, Value: value})
			if err != nil {
				return fmt.Errorf("error inserting filter %q: %w", value, err)
			}
			if ok {
				inserted++
			}
		}

		log.Info().Str("category", defaults.category).Int("inserted", inserted).Msg("seeded filters")
	}

	return nil
}

// seedCategory inserts a category named name and returns its id. When the
// insert is refused because the name appeared meanwhile, the stored
// category's id is returned instead.
func (s *filtersService) seedCategory(ctx context.Context, name string) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	inserted, err := s.filtersRepository.InsertCategory(ctx, models.Category{ID: id, Name: name})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting category %q: %w", name, err)
	}
	if inserted {
		return id, nil
	}

	categories, err := s.filtersRepository.GetCategories(ctx)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error listing categories: %w", err)
	}
	for _, category := range categories {
		if category.Name == name {
			logger.FromContext(ctx).Debug().Str("category", name).Msg("category seeded concurrently, reusing it")
			return category.ID, nil
		}
	}

	return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrCategoryNotSeeded, name)
}
