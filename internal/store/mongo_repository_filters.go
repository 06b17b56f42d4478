// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// filtersRepository is the MongoDB-backed implementation of
// [FiltersRepository].
//
// Associations carry the category of their filter, so the
// one-filter-per-category rule is checked with a single lookup and enforced
// by the unique (recipe_id, category_id) index.
type filtersRepository struct {
	categories    *mongo.Collection
	filters       *mongo.Collection
	recipeFilters *mongo.Collection
	recipes       *mongo.Collection
	logger        *logger.Logger
}

// NewFiltersRepository constructs a [FiltersRepository] backed by db.
func NewFiltersRepository(db *mongo.Database, logger *logger.Logger) FiltersRepository {
	logger.Debug().Msg("creating filters repository")
	return &filtersRepository{
		categories:    db.Collection(categoriesCollection),
		filters:       db.Collection(filtersCollection),
		recipeFilters: db.Collection(recipeFiltersCollection),
		recipes:       db.Collection(recipesCollection),
		logger:        logger,
	}
}

func (r *filtersRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := findAll[models.Category](ctx, r.categories, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*filtersRepository.GetCategories").Msg("error finding categories")
		return nil, err
	}

	return categories, nil
}

func (r *filtersRepository) GetFiltersByCategory(ctx context.Context, categoryID string) ([]models.Filter, error) {
	cid, ok := objectID(categoryID)
	if !ok {
		return []models.Filter{}, nil
	}

	filters, err := findAll[models.Filter](ctx, r.filters, bson.M{"category_id": cid})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*filtersRepository.GetFiltersByCategory").
			Str("category_id", categoryID).
			Msg("error finding filters")
		return nil, err
	}

	return filters, nil
}

// GetCategorizedFilters loads categories and filters with one query each and
// groups values by category name. Categories without filters map to an
// empty list.
func (r *filtersRepository) GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error) {
	log := logger.FromContext(ctx)

	categories, err := r.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	filters, err := findAll[models.Filter](ctx, r.filters, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.GetCategorizedFilters").Msg("error finding filters")
		return nil, err
	}

	return groupFilters(categories, filters), nil
}

func (r *filtersRepository) GetFiltersByRecipe(ctx context.Context, recipeID string) ([]models.Filter, error) {
	log := logger.FromContext(ctx)

	rid, ok := objectID(recipeID)
	if !ok {
		return []models.Filter{}, nil
	}

	links, err := findAll[models.RecipeFilter](ctx, r.recipeFilters, bson.M{"recipe_id": rid})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.GetFiltersByRecipe").Str("recipe_id", recipeID).Msg("error finding associations")
		return nil, err
	}
	if len(links) == 0 {
		return []models.Filter{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.FilterID)
	}

	filters, err := findAll[models.Filter](ctx, r.filters, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.GetFiltersByRecipe").Str("recipe_id", recipeID).Msg("error finding filters")
		return nil, err
	}

	return orderFilters(ids, filters), nil
}

func (r *filtersRepository) AttachFilter(ctx context.Context, recipeID, filterID string) (bool, error) {
	log := logger.FromContext(ctx)

	rid, ok := objectID(recipeID)
	if !ok {
		return false, ErrRecipeNotFound
	}

	found, err := exists(ctx, r.recipes, bson.M{"_id": rid})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.AttachFilter").Msg("error checking recipe")
		return false, err
	}
	if !found {
		return false, ErrRecipeNotFound
	}

	fid, ok := objectID(filterID)
	if !ok {
		return false, ErrFilterNotFound
	}

	filter, err := findOne[models.Filter](ctx, r.filters, bson.M{"_id": fid})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.AttachFilter").Msg("error finding filter")
		return false, err
	}
	if filter == nil {
		return false, ErrFilterNotFound
	}

	return r.attach(ctx, rid, *filter)
}

func (r *filtersRepository) attach(ctx context.Context, recipeID primitive.ObjectID, filter models.Filter) (bool, error) {
	log := logger.FromContext(ctx)

	attached, err := exists(ctx, r.recipeFilters, bson.M{"recipe_id": recipeID, "filter_id": filter.ID})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.attach").Msg("error checking association")
		return false, err
	}
	if attached {
		return false, nil
	}

	taken, err := exists(ctx, r.recipeFilters, bson.M{"recipe_id": recipeID, "category_id": filter.CategoryID})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.attach").Msg("error checking category")
		return false, err
	}
	if taken {
		log.Debug().
			Str("func", "*filtersRepository.attach").
			Str("recipe_id", recipeID.Hex()).
			Str("category_id", filter.CategoryID.Hex()).
			Msg("recipe already has a filter of this category")
		return false, nil
	}

	link := models.RecipeFilter{
		ID:         primitive.NewObjectID(),
		RecipeID:   recipeID,
		FilterID:   filter.ID,
		CategoryID: filter.CategoryID,
	}
	inserted, err := insertIfAbsent(ctx, r.recipeFilters, link)
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.attach").Msg("error inserting association")
		return false, err
	}

	return inserted, nil
}

func (r *filtersRepository) AttachFilterByValue(ctx context.Context, recipeID, value string) (bool, error) {
	filter, err := r.filterByValue(ctx, value)
	if err != nil {
		return false, err
	}

	return r.AttachFilter(ctx, recipeID, filter.ID.Hex())
}

func (r *filtersRepository) DetachFilter(ctx context.Context, recipeID, filterID string) (bool, error) {
	rid, fid, ok := objectIDPair(recipeID, filterID)
	if !ok {
		return false, nil
	}

	deleted, err := deleteOne(ctx, r.recipeFilters, bson.M{"recipe_id": rid, "filter_id": fid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*filtersRepository.DetachFilter").Msg("error deleting association")
		return false, err
	}

	return deleted, nil
}

func (r *filtersRepository) DetachFilterByValue(ctx context.Context, recipeID, value string) (bool, error) {
	filter, err := r.filterByValue(ctx, value)
	if err != nil {
		return false, err
	}

	return r.DetachFilter(ctx, recipeID, filter.ID.Hex())
}

// filterByValue resolves a filter by its value, ignoring case. The lowest id
// wins when several categories share the value.
func (r *filtersRepository) filterByValue(ctx context.Context, value string) (*models.Filter, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
	lowestID := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	filter, err := findOne[models.Filter](ctx, r.filters, bson.M{"value": pattern}, lowestID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*filtersRepository.filterByValue").Str("value", value).Msg("error finding filter")
		return nil, err
	}
	if filter == nil {
		return nil, ErrFilterNotFound
	}

	return filter, nil
}

// ClearRecipeFilters returns false only when the association collection is
// empty, whether or not the recipe had any associations.
func (r *filtersRepository) ClearRecipeFilters(ctx context.Context, recipeID string) (bool, error) {
	log := logger.FromContext(ctx)

	rid, ok := objectID(recipeID)
	if !ok {
		return false, nil
	}

	populated, err := exists(ctx, r.recipeFilters, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.ClearRecipeFilters").Msg("error counting associations")
		return false, err
	}
	if !populated {
		return false, nil
	}

	if _, err = r.recipeFilters.DeleteMany(ctx, bson.M{"recipe_id": rid}); err != nil {
		log.Err(err).Str("func", "*filtersRepository.ClearRecipeFilters").Str("recipe_id", recipeID).Msg("error deleting associations")
		return false, err
	}

	return true, nil
}

func (r *filtersRepository) InsertCategory(ctx context.Context, category models.Category) (bool, error) {
	log := logger.FromContext(ctx)

	found, err := exists(ctx, r.categories, bson.M{"name": category.Name})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.InsertCategory").Msg("error checking category")
		return false, err
	}
	if found {
		return false, nil
	}

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	inserted, err := insertIfAbsent(ctx, r.categories, category)
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.InsertCategory").Msg("error inserting category")
		return false, err
	}

	return inserted, nil
}

func (r *filtersRepository) InsertFilter(ctx context.Context, filter models.Filter) (bool, error) {
	log := logger.FromContext(ctx)

	found, err := exists(ctx, r.filters, bson.M{"category_id": filter.CategoryID, "value": filter.Value})
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.InsertFilter").Msg("error checking filter")
		return false, err
	}
	if found {
		return false, nil
	}

	if filter.ID.IsZero() {
		filter.ID = primitive.NewObjectID()
	}

	inserted, err := insertIfAbsent(ctx, r.filters, filter)
	if err != nil {
		log.Err(err).Str("func", "*filtersRepository.InsertFilter").Msg("error inserting filter")
		return false, err
	}

	return inserted, nil
}

// groupFilters builds the category name to values map. Shared by every
// backend.
func groupFilters(categories []models.Category, filters []models.Filter) models.CategorizedFilters {
	names := make(map[primitive.ObjectID]string, len(categories))
	result := make(models.CategorizedFilters, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		result[c.Name] = []string{}
	}

	for _, f := range filters {
		name, ok := names[f.CategoryID]
		if !ok {
			continue
		}
		result[name] = append(result[name], f.Value)
	}

	return result
}

// orderFilters returns filters in the order of ids, dropping ids that no
// longer resolve.
func orderFilters(ids []primitive.ObjectID, filters []models.Filter) []models.Filter {
	byID := make(map[primitive.ObjectID]models.Filter, len(filters))
	for _, f := range filters {
		byID[f.ID] = f
	}

	ordered := make([]models.Filter, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			ordered = append(ordered, f)
		}
	}

	return ordered
}
