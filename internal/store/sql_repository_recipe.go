package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sqlRecipeRepository is the SQL implementation of [RecipeRepository].
// Ingredients and steps are stored as JSON text.
type sqlRecipeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLRecipeRepository constructs a [RecipeRepository] backed by db.
func NewSQLRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating sql recipe repository")
	return &sqlRecipeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqlRecipeRepository) selectRecipes() sq.SelectBuilder {
	return r.db.builder.Select(recipeColumns...).From(recipesTable).OrderBy("id")
}

func (r *sqlRecipeRepository) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := selectAll(ctx, r.db, r.selectRecipes(), scanRecipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlRecipeRepository.GetRecipes").Msg("error selecting recipes")
		return nil, err
	}

	return recipes, nil
}

func (r *sqlRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	recipe, err := selectOne(ctx, r.db, r.selectRecipes().Where(sq.Eq{"id": oid.Hex()}), scanRecipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlRecipeRepository.GetRecipeByID").Str("id", id).Msg("error selecting recipe")
		return nil, err
	}

	return recipe, nil
}

func (r *sqlRecipeRepository) SearchRecipes(ctx context.Context, name string) ([]models.Recipe, error) {
	recipes, err := selectAll(ctx, r.db, r.selectRecipes().Where(r.db.contains("name", name)), scanRecipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlRecipeRepository.SearchRecipes").Str("name", name).Msg("error searching recipes")
		return nil, err
	}

	return recipes, nil
}

func (r *sqlRecipeRepository) GetRecipesByCreator(ctx context.Context, creatorID string) ([]models.Recipe, error) {
	oid, ok := objectID(creatorID)
	if !ok {
		return []models.Recipe{}, nil
	}

	recipes, err := selectAll(ctx, r.db, r.selectRecipes().Where(sq.Eq{"creator_id": oid.Hex()}), scanRecipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqlRecipeRepository.GetRecipesByCreator").
			Str("creator_id", creatorID).
			Msg("error selecting recipes by creator")
		return nil, err
	}

	return recipes, nil
}

func (r *sqlRecipeRepository) InsertRecipe(ctx context.Context, recipe models.Recipe) (bool, error) {
	log := logger.FromContext(ctx)

	if recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	} else {
		found, err := r.db.exists(ctx, recipesTable, sq.Eq{"id": recipe.ID.Hex()})
		if err != nil {
			log.Err(err).Str("func", "*sqlRecipeRepository.InsertRecipe").Msg("error checking recipe id")
			return false, err
		}
		if found {
			return false, nil
		}
	}

	normalizeRecipe(&recipe)
	ingredients, err := toJSON(recipe.Ingredients)
	if err != nil {
		return false, err
	}
	steps, err := toJSON(recipe.Steps)
	if err != nil {
		return false, err
	}

	insert := r.db.builder.Insert(recipesTable).
		Columns(recipeColumns...).
		Values(recipe.ID.Hex(), recipe.CreatorID.Hex(), recipe.ImageURL, recipe.Name, recipe.Description, ingredients, steps)

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecipeRepository.InsertRecipe").Msg("error inserting recipe")
		return false, err
	}

	return inserted, nil
}

// UpdateRecipe reports success once the statement was executed, whether or
// not a row matched.
func (r *sqlRecipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (bool, error) {
	normalizeRecipe(&recipe)
	ingredients, err := toJSON(recipe.Ingredients)
	if err != nil {
		return false, err
	}
	steps, err := toJSON(recipe.Steps)
	if err != nil {
		return false, err
	}

	query := r.db.builder.Update(recipesTable).
		Set("name", recipe.Name).
		Set("description", recipe.Description).
		Set("image_url", recipe.ImageURL).
		Set("ingredients", ingredients).
		Set("steps", steps).
		Where(sq.Eq{"id": recipe.ID.Hex()})

	if _, err = r.db.execAffected(ctx, query); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlRecipeRepository.UpdateRecipe").Str("id", recipe.ID.Hex()).Msg("error updating recipe")
		return false, err
	}

	return true, nil
}

func (r *sqlRecipeRepository) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	affected, err := r.db.execAffected(ctx, r.db.builder.Delete(recipesTable).Where(sq.Eq{"id": oid.Hex()}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlRecipeRepository.DeleteRecipe").Str("id", id).Msg("error deleting recipe")
		return false, err
	}

	return affected > 0, nil
}

func (r *sqlRecipeRepository) IsRecipeOwner(ctx context.Context, recipeID, userID string) (bool, error) {
	rid, uid, ok := objectIDPair(recipeID, userID)
	if !ok {
		return false, nil
	}

	owner, err := r.db.exists(ctx, recipesTable, sq.Eq{"id": rid.Hex(), "creator_id": uid.Hex()})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlRecipeRepository.IsRecipeOwner").Msg("error checking owner")
		return false, err
	}

	return owner, nil
}
