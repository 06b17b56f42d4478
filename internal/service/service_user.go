package service

import (
	"context"
	"fmt"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/validators"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) GetCreators(ctx context.Context, nickname string) ([]models.Creator, error) {
	var (
		creators []models.Creator
		err      error
	)
	if nickname == "" {
		creators, err = s.userRepository.GetCreators(ctx)
	} else {
		creators, err = s.userRepository.GetCreatorsByNickname(ctx, nickname)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetCreators").Str("nickname", nickname).Msg("error listing creators")
		return nil, fmt.Errorf("error listing creators: %w", err)
	}

	return creators, nil
}

func (s *userService) GetCreator(ctx context.Context, id string) (models.Creator, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return models.Creator{}, err
	}

	return user.Creator(), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Str("id", id).Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return models.User{}, ErrUserNotFound
	}

	return *user, nil
}

// UpdateProfile changes the nickname and/or image of the user and returns
// the updated user.
func (s *userService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Msg("invalid profile update")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.userRepository.UpdateUserProfile(ctx, id.Hex(), update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Str("id", id.Hex()).Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}
	if !updated {
		return models.User{}, ErrUserNotFound
	}

	return s.GetUser(ctx, id.Hex())
}
