package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// creatorProjection keeps only the public fields of a user document.
var creatorProjection = bson.M{"_id": 1, "nickname": 1, "image_url": 1}

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It works against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  db.Collection(usersCollection),
		logger: logger,
	}
}

// GetCreators returns every user projected to its public shape.
func (r *userRepository) GetCreators(ctx context.Context) ([]models.Creator, error) {
	creators, err := findAll[models.Creator](ctx, r.users, bson.M{}, options.Find().SetProjection(creatorProjection))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetCreators").Msg("error finding creators")
		return nil, err
	}

	return creators, nil
}

// GetCreatorsByNickname returns creators whose nickname contains nickname.
// The match is case-sensitive.
func (r *userRepository) GetCreatorsByNickname(ctx context.Context, nickname string) ([]models.Creator, error) {
	filter := bson.M{"nickname": bson.M{"$regex": regexp.QuoteMeta(nickname)}}

	creators, err := findAll[models.Creator](ctx, r.users, filter, options.Find().SetProjection(creatorProjection))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*userRepository.GetCreatorsByNickname").
			Str("nickname", nickname).
			Msg("error finding creators by nickname")
		return nil, err
	}

	return creators, nil
}

// GetUserByID returns the user with the given id, or nil.
func (r *userRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	user, err := findOne[models.User](ctx, r.users, bson.M{"_id": oid})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUserByID").Str("id", id).Msg("error finding user")
		return nil, err
	}

	return user, nil
}

// GetUserByLogin returns the user with the given login, or nil.
func (r *userRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	user, err := findOne[models.User](ctx, r.users, bson.M{"login": login})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUserByLogin").Str("login", login).Msg("error finding user")
		return nil, err
	}

	return user, nil
}

// InsertUser stores user unless its login is already taken.
//
// A zero ID is replaced by a fresh object id and an empty nickname by a
// timestamp-derived placeholder.
func (r *userRepository) InsertUser(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	taken, err := exists(ctx, r.users, bson.M{"login": user.Login})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error checking login")
		return false, err
	}
	if taken {
		log.Debug().Str("func", "*userRepository.InsertUser").Str("login", user.Login).Msg("login already exists")
		return false, nil
	}

	prepareNewUser(&user, time.Now())

	inserted, err := insertIfAbsent(ctx, r.users, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")
		return false, err
	}

	return inserted, nil
}

// UpdateUserProfile sets the non-nil fields of update on the user document.
// An unparsable id, an empty update or a missing user yields false.
func (r *userRepository) UpdateUserProfile(ctx context.Context, id string, update models.ProfileUpdate) (bool, error) {
	oid, ok := objectID(id)
	if !ok || update.IsEmpty() {
		return false, nil
	}

	set := bson.M{}
	if update.Nickname != nil {
		set["nickname"] = *update.Nickname
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}

	res, err := r.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateUserProfile").Str("id", id).Msg("error updating profile")
		return false, err
	}

	return res.MatchedCount > 0, nil
}

// prepareNewUser fills the fields a new user gets at creation time.
func prepareNewUser(user *models.User, now time.Time) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Nickname == "" {
		user.Nickname = defaultNickname(now)
	}
}

func defaultNickname(now time.Time) string {
	return fmt.Sprintf("user%d", now.UnixMilli())
}
