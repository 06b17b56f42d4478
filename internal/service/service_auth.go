package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/utils"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/validators"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// passwordPepper is appended to every password before hashing. Must
	// match the value used at registration time.
	passwordPepper string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		passwordPepper: cfg.PasswordPepper,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The credentials are validated, the password is hashed with a fresh salt and
// the user is inserted. The stored user is returned, so a default nickname
// assigned by the store is visible to the caller.
//
// Returns:
//   - ErrInvalidDataProvided (wrapping the validator error) for bad input.
//   - ErrLoginAlreadyExists if the login is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Login:    credentials.Login,
		Nickname: credentials.Nickname,
		Password: utils.HashPassword(credentials.Password, salt, a.passwordPepper),
		Salt:     salt,
	}

	inserted, err := a.userRepository.InsertUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	if !inserted {
		log.Debug().Str("login", user.Login).Msg("login already exists")
		return models.User{}, ErrLoginAlreadyExists
	}

	stored, err := a.userRepository.GetUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("reading registered user failed")
		return models.User{}, fmt.Errorf("reading registered user failed: %w", err)
	}
	if stored != nil {
		user = *stored
	}

	return user, nil
}

// Login authenticates an existing user.
//
// An unknown login and a wrong password both yield ErrWrongCredentials so
// that callers cannot probe which logins exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.GetUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}
	if foundUser == nil {
		log.Debug().Str("login", credentials.Login).Msg("no user with this login")
		return models.User{}, ErrWrongCredentials
	}

	if !utils.ComparePassword(credentials.Password, foundUser.Salt, a.passwordPepper, foundUser.Password) {
		log.Debug().Str("id", foundUser.ID.Hex()).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return *foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
