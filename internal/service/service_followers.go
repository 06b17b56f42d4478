package service

import (
	"context"
	"fmt"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type followersService struct {
	followersRepository store.FollowersRepository
	userRepository      store.UserRepository

	logger *logger.Logger
}

func NewFollowersService(followersRepository store.FollowersRepository, userRepository store.UserRepository, logger *logger.Logger) FollowersService {
	return &followersService{
		followersRepository: followersRepository,
		userRepository:      userRepository,
		logger:              logger,
	}
}

func (s *followersService) GetFollowing(ctx context.Context, userID primitive.ObjectID) ([]models.FollowerRecord, error) {
	return s.followersRepository.GetFollowing(ctx, userID.Hex())
}

func (s *followersService) GetFollowers(ctx context.Context, creatorID string) ([]models.FollowerRecord, error) {
	return s.followersRepository.GetFollowers(ctx, creatorID)
}

func (s *followersService) IsFollowing(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error) {
	return s.followersRepository.IsFollowing(ctx, userID.Hex(), creatorID)
}

// Follow rejects following oneself and unknown creators, and returns false
// when the follow already exists.
func (s *followersService) Follow(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error) {
	log := logger.FromContext(ctx)

	if userID.Hex() == creatorID {
		return false, ErrCannotFollowSelf
	}

	creator, err := s.userRepository.GetUserByID(ctx, creatorID)
	if err != nil {
		log.Err(err).Str("func", "*followersService.Follow").Str("creator_id", creatorID).Msg("error finding creator")
		return false, fmt.Errorf("error finding creator: %w", err)
	}
	if creator == nil {
		return false, ErrUserNotFound
	}

	followed, err := s.followersRepository.Follow(ctx, userID.Hex(), creatorID)
	if err != nil {
		log.Err(err).Str("func", "*followersService.Follow").Str("creator_id", creatorID).Msg("error following creator")
		return false, fmt.Errorf("error following creator: %w", err)
	}

	return followed, nil
}

func (s *followersService) Unfollow(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error) {
	return s.followersRepository.Unfollow(ctx, userID.Hex(), creatorID)
}

func (s *followersService) RemoveFollowRecord(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error) {
	id, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return false, nil
	}

	records, err := s.followersRepository.GetFollowing(ctx, userID.Hex())
	if err != nil {
		return false, fmt.Errorf("error listing follows: %w", err)
	}

	for _, record := range records {
		if record.ID == id {
			return s.followersRepository.RemoveFollowByID(ctx, id.Hex())
		}
	}

	return false, nil
}
