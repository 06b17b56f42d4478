package store

import (
	"context"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type followersRepository struct {
	follows *mongo.Collection
	logger  *logger.Logger
}

// NewFollowersRepository constructs a [FollowersRepository] backed by db.
func NewFollowersRepository(db *mongo.Database, logger *logger.Logger) FollowersRepository {
	logger.Debug().Msg("creating followers repository")
	return &followersRepository{
		follows: db.Collection(followsCollection),
		logger:  logger,
	}
}

func (r *followersRepository) Follow(ctx context.Context, followerID, creatorID string) (bool, error) {
	log := logger.FromContext(ctx)

	fid, cid, ok := objectIDPair(followerID, creatorID)
	if !ok {
		return false, nil
	}

	found, err := exists(ctx, r.follows, bson.M{"follower_id": fid, "creator_id": cid})
	if err != nil {
		log.Err(err).Str("func", "*followersRepository.Follow").Msg("error checking follow")
		return false, err
	}
	if found {
		return false, nil
	}

	record := models.FollowerRecord{ID: primitive.NewObjectID(), FollowerID: fid, CreatorID: cid}
	inserted, err := insertIfAbsent(ctx, r.follows, record)
	if err != nil {
		log.Err(err).Str("func", "*followersRepository.Follow").Msg("error inserting follow")
		return false, err
	}

	return inserted, nil
}

func (r *followersRepository) GetFollowing(ctx context.Context, followerID string) ([]models.FollowerRecord, error) {
	return r.findBy(ctx, "follower_id", followerID)
}

func (r *followersRepository) GetFollowers(ctx context.Context, creatorID string) ([]models.FollowerRecord, error) {
	return r.findBy(ctx, "creator_id", creatorID)
}

func (r *followersRepository) findBy(ctx context.Context, field, id string) ([]models.FollowerRecord, error) {
	oid, ok := objectID(id)
	if !ok {
		return []models.FollowerRecord{}, nil
	}

	records, err := findAll[models.FollowerRecord](ctx, r.follows, bson.M{field: oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*followersRepository.findBy").Str(field, id).Msg("error finding follows")
		return nil, err
	}

	return records, nil
}

func (r *followersRepository) IsFollowing(ctx context.Context, followerID, creatorID string) (bool, error) {
	fid, cid, ok := objectIDPair(followerID, creatorID)
	if !ok {
		return false, nil
	}

	found, err := exists(ctx, r.follows, bson.M{"follower_id": fid, "creator_id": cid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*followersRepository.IsFollowing").Msg("error checking follow")
		return false, err
	}

	return found, nil
}

func (r *followersRepository) Unfollow(ctx context.Context, followerID, creatorID string) (bool, error) {
	fid, cid, ok := objectIDPair(followerID, creatorID)
	if !ok {
		return false, nil
	}

	deleted, err := deleteOne(ctx, r.follows, bson.M{"follower_id": fid, "creator_id": cid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*followersRepository.Unfollow").Msg("error removing follow")
		return false, err
	}

	return deleted, nil
}

func (r *followersRepository) RemoveFollowByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	deleted, err := deleteOne(ctx, r.follows, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*followersRepository.RemoveFollowByID").Str("id", id).Msg("error removing follow")
		return false, err
	}

	return deleted, nil
}
