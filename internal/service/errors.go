package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrLoginAlreadyExists  = errors.New("login already exists")
	ErrWrongCredentials    = errors.New("wrong login or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUserNotFound     = errors.New("user not found")
	ErrNotRecipeOwner   = errors.New("recipe belongs to another creator")
	ErrRecipeConflict   = errors.New("recipe with this id already exists")
	ErrRecipeNotSaved   = errors.New("recipe was not saved")
	ErrCannotFollowSelf = errors.New("users cannot follow themselves")

	ErrCategoryNotSeeded = errors.New("category was refused but cannot be found")

	ErrImagesDisabled        = errors.New("image uploads are disabled")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
