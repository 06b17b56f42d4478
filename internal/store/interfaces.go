package store

import (
	"context"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Identifiers are passed as hex strings. A string that does not parse as an
// object id never matches anything: lookups return nil/empty and writes
// return false, without an error.
//
// Not-found and business-rule outcomes are reported through nil, empty and
// false results. Driver errors are returned unchanged.

// UserRepository stores user accounts.
type UserRepository interface {
	GetCreators(ctx context.Context) ([]models.Creator, error)
	GetCreatorsByNickname(ctx context.Context, nickname string) ([]models.Creator, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// InsertUser returns false when the login is already taken.
	InsertUser(ctx context.Context, user models.User) (bool, error)
	UpdateUserProfile(ctx context.Context, id string, update models.ProfileUpdate) (bool, error)
}

// RecipeRepository stores recipes.
type RecipeRepository interface {
	GetRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (*models.Recipe, error)
	// SearchRecipes matches a case-sensitive substring of the recipe name.
	SearchRecipes(ctx context.Context, name string) ([]models.Recipe, error)
	GetRecipesByCreator(ctx context.Context, creatorID string) ([]models.Recipe, error)
	// InsertRecipe returns false when a recipe with the same id exists.
	InsertRecipe(ctx context.Context, recipe models.Recipe) (bool, error)
	// UpdateRecipe replaces the mutable fields and reports whether the
	// write was acknowledged.
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (bool, error)
	DeleteRecipe(ctx context.Context, id string) (bool, error)
	IsRecipeOwner(ctx context.Context, recipeID, userID string) (bool, error)
}

// FavoritesRepository stores (user, recipe) favorite pairs.
type FavoritesRepository interface {
	AddToFavorites(ctx context.Context, userID, recipeID string) (bool, error)
	GetFavorites(ctx context.Context, userID string) ([]models.FavoriteRecord, error)
	// SearchFavorites keeps the favorites whose recipe name contains name.
	SearchFavorites(ctx context.Context, userID, name string) ([]models.FavoriteRecord, error)
	IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
	RemoveFromFavorites(ctx context.Context, userID, recipeID string) (bool, error)
	RemoveFavoriteByID(ctx context.Context, id string) (bool, error)
}

// FollowersRepository stores (follower, creator) pairs.
type FollowersRepository interface {
	Follow(ctx context.Context, followerID, creatorID string) (bool, error)
	GetFollowing(ctx context.Context, followerID string) ([]models.FollowerRecord, error)
	GetFollowers(ctx context.Context, creatorID string) ([]models.FollowerRecord, error)
	IsFollowing(ctx context.Context, followerID, creatorID string) (bool, error)
	Unfollow(ctx context.Context, followerID, creatorID string) (bool, error)
	RemoveFollowByID(ctx context.Context, id string) (bool, error)
}

// FiltersRepository stores categories, filters and recipe-filter associations.
type FiltersRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetFiltersByCategory(ctx context.Context, categoryID string) ([]models.Filter, error)
	GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error)
	GetFiltersByRecipe(ctx context.Context, recipeID string) ([]models.Filter, error)

	// AttachFilter returns ErrRecipeNotFound or ErrFilterNotFound when either
	// side is missing, and false when the association already exists or the
	// recipe already carries another filter of the same category.
	AttachFilter(ctx context.Context, recipeID, filterID string) (bool, error)
	// AttachFilterByValue resolves value like DetachFilterByValue and then
	// behaves as AttachFilter.
	AttachFilterByValue(ctx context.Context, recipeID, value string) (bool, error)

	DetachFilter(ctx context.Context, recipeID, filterID string) (bool, error)
	// DetachFilterByValue resolves value case-insensitively, Unicode letters
	// included, and returns ErrFilterNotFound when no filter has that value.
	// When several categories share the value the filter with the lowest id
	// is used.
	DetachFilterByValue(ctx context.Context, recipeID, value string) (bool, error)

	// ClearRecipeFilters returns false when no association exists at all,
	// whatever the recipe.
	ClearRecipeFilters(ctx context.Context, recipeID string) (bool, error)

	InsertCategory(ctx context.Context, category models.Category) (bool, error)
	InsertFilter(ctx context.Context, filter models.Filter) (bool, error)
}
