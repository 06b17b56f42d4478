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

type favoritesRepository struct {
	favorites *mongo.Collection
	recipes   *mongo.Collection
	logger    *logger.Logger
}

// NewFavoritesRepository constructs a [FavoritesRepository] backed by db.
func NewFavoritesRepository(db *mongo.Database, logger *logger.Logger) FavoritesRepository {
	logger.Debug().Msg("creating favorites repository")
	return &favoritesRepository{
		favorites: db.Collection(favoritesCollection),
		recipes:   db.Collection(recipesCollection),
		logger:    logger,
	}
}

func (r *favoritesRepository) AddToFavorites(ctx context.Context, userID, recipeID string) (bool, error) {
	log := logger.FromContext(ctx)

	uid, rid, ok := objectIDPair(userID, recipeID)
	if !ok {
		return false, nil
	}

	found, err := exists(ctx, r.favorites, bson.M{"user_id": uid, "recipe_id": rid})
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.AddToFavorites").Msg("error checking favorite")
		return false, err
	}
	if found {
		return false, nil
	}

	record := models.FavoriteRecord{ID: primitive.NewObjectID(), UserID: uid, RecipeID: rid}
	inserted, err := insertIfAbsent(ctx, r.favorites, record)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.AddToFavorites").Msg("error inserting favorite")
		return false, err
	}

	return inserted, nil
}

func (r *favoritesRepository) GetFavorites(ctx context.Context, userID string) ([]models.FavoriteRecord, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []models.FavoriteRecord{}, nil
	}

	records, err := findAll[models.FavoriteRecord](ctx, r.favorites, bson.M{"user_id": uid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoritesRepository.GetFavorites").Str("user_id", userID).Msg("error finding favorites")
		return nil, err
	}

	return records, nil
}

// SearchFavorites resolves the matching recipe ids in a single query over
// the user's favorited recipes instead of one lookup per record.
func (r *favoritesRepository) SearchFavorites(ctx context.Context, userID, name string) ([]models.FavoriteRecord, error) {
	log := logger.FromContext(ctx)

	records, err := r.GetFavorites(ctx, userID)
	if err != nil || len(records) == 0 {
		return records, err
	}

	ids := make([]primitive.ObjectID, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.RecipeID)
	}

	filter := bson.M{
		"_id":  bson.M{"$in": ids},
		"name": bson.M{"$regex": regexp.QuoteMeta(name)},
	}
	matched, err := findAll[models.Recipe](ctx, r.recipes, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.SearchFavorites").Str("name", name).Msg("error matching favorite recipes")
		return nil, err
	}

	hits := make(map[primitive.ObjectID]struct{}, len(matched))
	for _, recipe := range matched {
		hits[recipe.ID] = struct{}{}
	}

	result := make([]models.FavoriteRecord, 0, len(matched))
	for _, rec := range records {
		if _, ok := hits[rec.RecipeID]; ok {
			result = append(result, rec)
		}
	}

	return result, nil
}

func (r *favoritesRepository) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	uid, rid, ok := objectIDPair(userID, recipeID)
	if !ok {
		return false, nil
	}

	found, err := exists(ctx, r.favorites, bson.M{"user_id": uid, "recipe_id": rid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoritesRepository.IsFavorite").Msg("error checking favorite")
		return false, err
	}

	return found, nil
}

func (r *favoritesRepository) RemoveFromFavorites(ctx context.Context, userID, recipeID string) (bool, error) {
	uid, rid, ok := objectIDPair(userID, recipeID)
	if !ok {
		return false, nil
	}

	deleted, err := deleteOne(ctx, r.favorites, bson.M{"user_id": uid, "recipe_id": rid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoritesRepository.RemoveFromFavorites").Msg("error removing favorite")
		return false, err
	}

	return deleted, nil
}

func (r *favoritesRepository) RemoveFavoriteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	deleted, err := deleteOne(ctx, r.favorites, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoritesRepository.RemoveFavoriteByID").Str("id", id).Msg("error removing favorite")
		return false, err
	}

	return deleted, nil
}

// objectIDPair parses two hex ids at once.
func objectIDPair(a, b string) (primitive.ObjectID, primitive.ObjectID, bool) {
	first, ok := objectID(a)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	second, ok := objectID(b)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return first, second, true
}
