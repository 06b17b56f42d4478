// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the recipe HTTP API.
//
// [RecipeAPI] decouples callers (the command-line client) from the REST
// transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

// RecipeAPI is a typed client of the recipe server. Relation calls return
// whether something changed: adding an existing favorite reports false, not
// an error.
type RecipeAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Login checks credentials and stores the issued token.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	Me(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	GetCreators(ctx context.Context, nickname string) ([]models.Creator, error)
	GetCreator(ctx context.Context, id string) (models.Creator, error)

	GetRecipes(ctx context.Context, query models.RecipeQuery) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error)
	GetRecipeFilters(ctx context.Context, recipeID string) ([]models.Filter, error)
	AttachFilter(ctx context.Context, recipeID string, request models.AttachFilterRequest) (bool, error)
	DetachFilterByValue(ctx context.Context, recipeID, value string) (bool, error)

	GetFavorites(ctx context.Context, name string) ([]models.FavoriteRecord, error)
	AddToFavorites(ctx context.Context, recipeID string) (bool, error)
	RemoveFromFavorites(ctx context.Context, recipeID string) (bool, error)

	Follow(ctx context.Context, creatorID string) (bool, error)
	Unfollow(ctx context.Context, creatorID string) (bool, error)

	// UploadImage sends raw image bytes and returns where they are served.
	UploadImage(ctx context.Context, data []byte) (models.ImageResponse, error)

	Version(ctx context.Context) (string, error)
}
