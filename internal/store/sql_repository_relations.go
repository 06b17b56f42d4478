package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sqlFavoritesRepository is the SQL implementation of [FavoritesRepository].
type sqlFavoritesRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLFavoritesRepository constructs a [FavoritesRepository] backed by db.
func NewSQLFavoritesRepository(db *DB, logger *logger.Logger) FavoritesRepository {
	logger.Debug().Msg("creating sql favorites repository")
	return &sqlFavoritesRepository{db: db, logger: logger}
}

func (r *sqlFavoritesRepository) AddToFavorites(ctx context.Context, userID, recipeID string) (bool, error) {
	log := logger.FromContext(ctx)

	uid, rid, ok := objectIDPair(userID, recipeID)
	if !ok {
		return false, nil
	}

	pair := sq.Eq{"user_id": uid.Hex(), "recipe_id": rid.Hex()}
	found, err := r.db.exists(ctx, favoritesTable, pair)
	if err != nil {
		log.Err(err).Str("func", "*sqlFavoritesRepository.AddToFavorites").Msg("error checking favorite")
		return false, err
	}
	if found {
		return false, nil
	}

	insert := r.db.builder.Insert(favoritesTable).
		Columns(favoriteColumns...).
		Values(primitive.NewObjectID().Hex(), uid.Hex(), rid.Hex())

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlFavoritesRepository.AddToFavorites").Msg("error inserting favorite")
		return false, err
	}

	return inserted, nil
}

func (r *sqlFavoritesRepository) GetFavorites(ctx context.Context, userID string) ([]models.FavoriteRecord, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []models.FavoriteRecord{}, nil
	}

	query := r.db.builder.Select(favoriteColumns...).From(favoritesTable).Where(sq.Eq{"user_id": uid.Hex()}).OrderBy("id")

	records, err := selectAll(ctx, r.db, query, scanFavorite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFavoritesRepository.GetFavorites").Str("user_id", userID).Msg("error selecting favorites")
		return nil, err
	}

	return records, nil
}

// SearchFavorites joins favorites with recipes and filters on the name in
// one statement.
func (r *sqlFavoritesRepository) SearchFavorites(ctx context.Context, userID, name string) ([]models.FavoriteRecord, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []models.FavoriteRecord{}, nil
	}

	query := r.db.builder.Select(prefixed("f", favoriteColumns)...).
		From(favoritesTable + " f").
		Join(recipesTable + " r ON r.id = f.recipe_id").
		Where(sq.Eq{"f.user_id": uid.Hex()}).
		Where(r.db.contains("r.name", name)).
		OrderBy("f.id")

	records, err := selectAll(ctx, r.db, query, scanFavorite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFavoritesRepository.SearchFavorites").Str("name", name).Msg("error searching favorites")
		return nil, err
	}

	return records, nil
}

func (r *sqlFavoritesRepository) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	uid, rid, ok := objectIDPair(userID, recipeID)
	if !ok {
		return false, nil
	}

	found, err := r.db.exists(ctx, favoritesTable, sq.Eq{"user_id": uid.Hex(), "recipe_id": rid.Hex()})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFavoritesRepository.IsFavorite").Msg("error checking favorite")
		return false, err
	}

	return found, nil
}

func (r *sqlFavoritesRepository) RemoveFromFavorites(ctx context.Context, userID, recipeID string) (bool, error) {
	uid, rid, ok := objectIDPair(userID, recipeID)
	if !ok {
		return false, nil
	}

	return r.delete(ctx, "*sqlFavoritesRepository.RemoveFromFavorites", sq.Eq{"user_id": uid.Hex(), "recipe_id": rid.Hex()})
}

func (r *sqlFavoritesRepository) RemoveFavoriteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	return r.delete(ctx, "*sqlFavoritesRepository.RemoveFavoriteByID", sq.Eq{"id": oid.Hex()})
}

func (r *sqlFavoritesRepository) delete(ctx context.Context, fn string, where sq.Eq) (bool, error) {
	affected, err := r.db.execAffected(ctx, r.db.builder.Delete(favoritesTable).Where(where))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error deleting favorite")
		return false, err
	}

	return affected > 0, nil
}

// sqlFollowersRepository is the SQL implementation of [FollowersRepository].
type sqlFollowersRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLFollowersRepository constructs a [FollowersRepository] backed by db.
func NewSQLFollowersRepository(db *DB, logger *logger.Logger) FollowersRepository {
	logger.Debug().Msg("creating sql followers repository")
	return &sqlFollowersRepository{db: db, logger: logger}
}

func (r *sqlFollowersRepository) Follow(ctx context.Context, followerID, creatorID string) (bool, error) {
	log := logger.FromContext(ctx)

	fid, cid, ok := objectIDPair(followerID, creatorID)
	if !ok {
		return false, nil
	}

	found, err := r.db.exists(ctx, followsTable, sq.Eq{"follower_id": fid.Hex(), "creator_id": cid.Hex()})
	if err != nil {
		log.Err(err).Str("func", "*sqlFollowersRepository.Follow").Msg("error checking follow")
		return false, err
	}
	if found {
		return false, nil
	}

	insert := r.db.builder.Insert(followsTable).
		Columns(followColumns...).
		Values(primitive.NewObjectID().Hex(), fid.Hex(), cid.Hex())

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlFollowersRepository.Follow").Msg("error inserting follow")
		return false, err
	}

	return inserted, nil
}

func (r *sqlFollowersRepository) GetFollowing(ctx context.Context, followerID string) ([]models.FollowerRecord, error) {
	return r.selectBy(ctx, "follower_id", followerID)
}

func (r *sqlFollowersRepository) GetFollowers(ctx context.Context, creatorID string) ([]models.FollowerRecord, error) {
	return r.selectBy(ctx, "creator_id", creatorID)
}

func (r *sqlFollowersRepository) selectBy(ctx context.Context, column, id string) ([]models.FollowerRecord, error) {
	oid, ok := objectID(id)
	if !ok {
		return []models.FollowerRecord{}, nil
	}

	query := r.db.builder.Select(followColumns...).From(followsTable).Where(sq.Eq{column: oid.Hex()}).OrderBy("id")

	records, err := selectAll(ctx, r.db, query, scanFollow)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFollowersRepository.selectBy").Str(column, id).Msg("error selecting follows")
		return nil, err
	}

	return records, nil
}

func (r *sqlFollowersRepository) IsFollowing(ctx context.Context, followerID, creatorID string) (bool, error) {
	fid, cid, ok := objectIDPair(followerID, creatorID)
	if !ok {
		return false, nil
	}

	found, err := r.db.exists(ctx, followsTable, sq.Eq{"follower_id": fid.Hex(), "creator_id": cid.Hex()})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlFollowersRepository.IsFollowing").Msg("error checking follow")
		return false, err
	}

	return found, nil
}

func (r *sqlFollowersRepository) Unfollow(ctx context.Context, followerID, creatorID string) (bool, error) {
	fid, cid, ok := objectIDPair(followerID, creatorID)
	if !ok {
		return false, nil
	}

	return r.delete(ctx, "*sqlFollowersRepository.Unfollow", sq.Eq{"follower_id": fid.Hex(), "creator_id": cid.Hex()})
}

func (r *sqlFollowersRepository) RemoveFollowByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	return r.delete(ctx, "*sqlFollowersRepository.RemoveFollowByID", sq.Eq{"id": oid.Hex()})
}

func (r *sqlFollowersRepository) delete(ctx context.Context, fn string, where sq.Eq) (bool, error) {
	affected, err := r.db.execAffected(ctx, r.db.builder.Delete(followsTable).Where(where))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error deleting follow")
		return false, err
	}

	return affected > 0, nil
}
