package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// recipeRepository is the MongoDB-backed implementation of
// [RecipeRepository]. It works against the "recipes" collection.
type recipeRepository struct {
	recipes *mongo.Collection
	logger  *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *mongo.Database, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		recipes: db.Collection(recipesCollection),
		logger:  logger,
	}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := findAll[models.Recipe](ctx, r.recipes, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.GetRecipes").Msg("error finding recipes")
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	recipe, err := findOne[models.Recipe](ctx, r.recipes, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.GetRecipeByID").Str("id", id).Msg("error finding recipe")
		return nil, err
	}

	return recipe, nil
}

// SearchRecipes runs the substring match on the server with a quoted regular
// expression, which keeps the ordinal, case-sensitive semantics.
func (r *recipeRepository) SearchRecipes(ctx context.Context, name string) ([]models.Recipe, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(name)}}

	recipes, err := findAll[models.Recipe](ctx, r.recipes, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.SearchRecipes").Str("name", name).Msg("error searching recipes")
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCreator(ctx context.Context, creatorID string) ([]models.Recipe, error) {
	oid, ok := objectID(creatorID)
	if !ok {
		return []models.Recipe{}, nil
	}

	recipes, err := findAll[models.Recipe](ctx, r.recipes, bson.M{"creator_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*recipeRepository.GetRecipesByCreator").
			Str("creator_id", creatorID).
			Msg("error finding recipes by creator")
		return nil, err
	}

	return recipes, nil
}

// InsertRecipe stores recipe unless a recipe with the same id exists.
// A zero ID is replaced by a fresh object id.
func (r *recipeRepository) InsertRecipe(ctx context.Context, recipe models.Recipe) (bool, error) {
	log := logger.FromContext(ctx)

	if recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	} else {
		found, err := exists(ctx, r.recipes, bson.M{"_id": recipe.ID})
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.InsertRecipe").Msg("error checking recipe id")
			return false, err
		}
		if found {
			log.Debug().Str("func", "*recipeRepository.InsertRecipe").Str("id", recipe.ID.Hex()).Msg("recipe already exists")
			return false, nil
		}
	}

	normalizeRecipe(&recipe)

	inserted, err := insertIfAbsent(ctx, r.recipes, recipe)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.InsertRecipe").Msg("error inserting recipe")
		return false, err
	}

	return inserted, nil
}

// UpdateRecipe replaces name, description, image, ingredients and steps.
// The result is the acknowledgement of the write, not whether a document
// matched.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (bool, error) {
	normalizeRecipe(&recipe)

	update := bson.M{"$set": bson.M{
		"name":        recipe.Name,
		"description": recipe.Description,
		"image_url":   recipe.ImageURL,
		"ingredients": recipe.Ingredients,
		"steps":       recipe.Steps,
	}}

	_, err := r.recipes.UpdateOne(ctx, bson.M{"_id": recipe.ID}, update)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.UpdateRecipe").Str("id", recipe.ID.Hex()).Msg("error updating recipe")
		return false, err
	}

	return true, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	deleted, err := deleteOne(ctx, r.recipes, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.DeleteRecipe").Str("id", id).Msg("error deleting recipe")
		return false, err
	}

	return deleted, nil
}

func (r *recipeRepository) IsRecipeOwner(ctx context.Context, recipeID, userID string) (bool, error) {
	rid, uid, ok := objectIDPair(recipeID, userID)
	if !ok {
		return false, nil
	}

	owner, err := exists(ctx, r.recipes, bson.M{"_id": rid, "creator_id": uid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.IsRecipeOwner").Msg("error checking owner")
		return false, err
	}

	return owner, nil
}

// normalizeRecipe stores nil lists as empty arrays.
func normalizeRecipe(recipe *models.Recipe) {
	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.Ingredient{}
	}
	if recipe.Steps == nil {
		recipe.Steps = []models.Step{}
	}
}
