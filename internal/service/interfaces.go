package service

import (
	"context"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService registers users, checks credentials and issues tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes profiles. Only GetUser returns credential-bearing
// users; everything public goes through [models.Creator].
type UserService interface {
	// GetCreators lists every creator, or those whose nickname contains
	// nickname when it is not empty.
	GetCreators(ctx context.Context, nickname string) ([]models.Creator, error)
	GetCreator(ctx context.Context, id string) (models.Creator, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) (models.User, error)
}

// RecipeService manages recipes. Writes are restricted to the recipe's
// creator.
type RecipeService interface {
	GetRecipes(ctx context.Context, query models.RecipeQuery) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	CreateRecipe(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error)
	// DeleteRecipe also drops the recipe's filter associations.
	DeleteRecipe(ctx context.Context, userID primitive.ObjectID, id string) error
}

// FavoritesService manages the caller's favorite recipes.
type FavoritesService interface {
	// GetFavorites lists the user's favorites, narrowed to recipes whose
	// name contains name when it is not empty.
	GetFavorites(ctx context.Context, userID primitive.ObjectID, name string) ([]models.FavoriteRecord, error)
	IsFavorite(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
	AddToFavorites(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
	RemoveFromFavorites(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
	// RemoveFavoriteRecord returns false for records owned by someone else.
	RemoveFavoriteRecord(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error)
}

// FollowersService manages who follows which creator.
type FollowersService interface {
	GetFollowing(ctx context.Context, userID primitive.ObjectID) ([]models.FollowerRecord, error)
	GetFollowers(ctx context.Context, creatorID string) ([]models.FollowerRecord, error)
	IsFollowing(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error)
	Follow(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error)
	Unfollow(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error)
	// RemoveFollowRecord returns false for records owned by someone else.
	RemoveFollowRecord(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error)
}

// FiltersService lists categories and filters and edits the filters of the
// caller's own recipes.
type FiltersService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetFiltersByCategory(ctx context.Context, categoryID string) ([]models.Filter, error)
	GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error)
	GetRecipeFilters(ctx context.Context, recipeID string) ([]models.Filter, error)

	AttachFilter(ctx context.Context, userID primitive.ObjectID, recipeID string, request models.AttachFilterRequest) (bool, error)
	DetachFilter(ctx context.Context, userID primitive.ObjectID, recipeID, filterID string) (bool, error)
	DetachFilterByValue(ctx context.Context, userID primitive.ObjectID, recipeID, value string) (bool, error)
	ClearRecipeFilters(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)

	// SeedDefaults inserts the default categories and filters that are not
	// present yet.
	SeedDefaults(ctx context.Context) error
}

// ImageService stores uploaded pictures.
type ImageService interface {
	UploadImage(ctx context.Context, userID primitive.ObjectID, data []byte) (models.ImageResponse, error)
	GetImageURL(ctx context.Context, key string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
