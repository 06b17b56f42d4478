package http

import (
	"context"

	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hand-written service mocks. Each method field can be overridden per test
// case; calling a method whose field is nil panics, which flags unexpected
// calls.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getCreatorsFn   func(ctx context.Context, nickname string) ([]models.Creator, error)
	getCreatorFn    func(ctx context.Context, id string) (models.Creator, error)
	getUserFn       func(ctx context.Context, id string) (models.User, error)
	updateProfileFn func(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) (models.User, error)
}

func (m *mockUserService) GetCreators(ctx context.Context, nickname string) ([]models.Creator, error) {
	return m.getCreatorsFn(ctx, nickname)
}

func (m *mockUserService) GetCreator(ctx context.Context, id string) (models.Creator, error) {
	return m.getCreatorFn(ctx, id)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, id, update)
}

type mockRecipeService struct {
	getRecipesFn   func(ctx context.Context, query models.RecipeQuery) ([]models.Recipe, error)
	getRecipeFn    func(ctx context.Context, id string) (models.Recipe, error)
	createRecipeFn func(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error)
	updateRecipeFn func(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error)
	deleteRecipeFn func(ctx context.Context, userID primitive.ObjectID, id string) error
}

func (m *mockRecipeService) GetRecipes(ctx context.Context, query models.RecipeQuery) ([]models.Recipe, error) {
	return m.getRecipesFn(ctx, query)
}

func (m *mockRecipeService) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	return m.getRecipeFn(ctx, id)
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error) {
	return m.createRecipeFn(ctx, userID, recipe)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, userID primitive.ObjectID, recipe models.Recipe) (models.Recipe, error) {
	return m.updateRecipeFn(ctx, userID, recipe)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, userID primitive.ObjectID, id string) error {
	return m.deleteRecipeFn(ctx, userID, id)
}

type mockFavoritesService struct {
	getFavoritesFn         func(ctx context.Context, userID primitive.ObjectID, name string) ([]models.FavoriteRecord, error)
	isFavoriteFn           func(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
	addToFavoritesFn       func(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
	removeFromFavoritesFn  func(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
	removeFavoriteRecordFn func(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error)
}

func (m *mockFavoritesService) GetFavorites(ctx context.Context, userID primitive.ObjectID, name string) ([]models.FavoriteRecord, error) {
	return m.getFavoritesFn(ctx, userID, name)
}

func (m *mockFavoritesService) IsFavorite(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	return m.isFavoriteFn(ctx, userID, recipeID)
}

func (m *mockFavoritesService) AddToFavorites(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	return m.addToFavoritesFn(ctx, userID, recipeID)
}

func (m *mockFavoritesService) RemoveFromFavorites(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	return m.removeFromFavoritesFn(ctx, userID, recipeID)
}

func (m *mockFavoritesService) RemoveFavoriteRecord(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error) {
	return m.removeFavoriteRecordFn(ctx, userID, recordID)
}

type mockFollowersService struct {
	getFollowingFn       func(ctx context.Context, userID primitive.ObjectID) ([]models.FollowerRecord, error)
	getFollowersFn       func(ctx context.Context, creatorID string) ([]models.FollowerRecord, error)
	isFollowingFn        func(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error)
	followFn             func(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error)
	unfollowFn           func(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error)
	removeFollowRecordFn func(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error)
}

func (m *mockFollowersService) GetFollowing(ctx context.Context, userID primitive.ObjectID) ([]models.FollowerRecord, error) {
	return m.getFollowingFn(ctx, userID)
}

func (m *mockFollowersService) GetFollowers(ctx context.Context, creatorID string) ([]models.FollowerRecord, error) {
	return m.getFollowersFn(ctx, creatorID)
}

func (m *mockFollowersService) IsFollowing(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error) {
	return m.isFollowingFn(ctx, userID, creatorID)
}

func (m *mockFollowersService) Follow(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error) {
	return m.followFn(ctx, userID, creatorID)
}

func (m *mockFollowersService) Unfollow(ctx context.Context, userID primitive.ObjectID, creatorID string) (bool, error) {
	return m.unfollowFn(ctx, userID, creatorID)
}

func (m *mockFollowersService) RemoveFollowRecord(ctx context.Context, userID primitive.ObjectID, recordID string) (bool, error) {
	return m.removeFollowRecordFn(ctx, userID, recordID)
}

type mockFiltersService struct {
	getCategoriesFn         func(ctx context.Context) ([]models.Category, error)
	getFiltersByCategoryFn  func(ctx context.Context, categoryID string) ([]models.Filter, error)
	getCategorizedFiltersFn func(ctx context.Context) (models.CategorizedFilters, error)
	getRecipeFiltersFn      func(ctx context.Context, recipeID string) ([]models.Filter, error)
	attachFilterFn          func(ctx context.Context, userID primitive.ObjectID, recipeID string, request models.AttachFilterRequest) (bool, error)
	detachFilterFn          func(ctx context.Context, userID primitive.ObjectID, recipeID, filterID string) (bool, error)
	detachFilterByValueFn   func(ctx context.Context, userID primitive.ObjectID, recipeID, value string) (bool, error)
	clearRecipeFiltersFn    func(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error)
}

func (m *mockFiltersService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return m.getCategoriesFn(ctx)
}

func (m *mockFiltersService) GetFiltersByCategory(ctx context.Context, categoryID string) ([]models.Filter, error) {
	return m.getFiltersByCategoryFn(ctx, categoryID)
}

func (m *mockFiltersService) GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error) {
	return m.getCategorizedFiltersFn(ctx)
}

func (m *mockFiltersService) GetRecipeFilters(ctx context.Context, recipeID string) ([]models.Filter, error) {
	return m.getRecipeFiltersFn(ctx, recipeID)
}

func (m *mockFiltersService) AttachFilter(ctx context.Context, userID primitive.ObjectID, recipeID string, request models.AttachFilterRequest) (bool, error) {
	return m.attachFilterFn(ctx, userID, recipeID, request)
}

func (m *mockFiltersService) DetachFilter(ctx context.Context, userID primitive.ObjectID, recipeID, filterID string) (bool, error) {
	return m.detachFilterFn(ctx, userID, recipeID, filterID)
}

func (m *mockFiltersService) DetachFilterByValue(ctx context.Context, userID primitive.ObjectID, recipeID, value string) (bool, error) {
	return m.detachFilterByValueFn(ctx, userID, recipeID, value)
}

func (m *mockFiltersService) ClearRecipeFilters(ctx context.Context, userID primitive.ObjectID, recipeID string) (bool, error) {
	return m.clearRecipeFiltersFn(ctx, userID, recipeID)
}

func (m *mockFiltersService) SeedDefaults(context.Context) error {
	return nil
}

type mockImageService struct {
	uploadImageFn func(ctx context.Context, userID primitive.ObjectID, data []byte) (models.ImageResponse, error)
	getImageURLFn func(ctx context.Context, key string) (string, error)
}

func (m *mockImageService) UploadImage(ctx context.Context, userID primitive.ObjectID, data []byte) (models.ImageResponse, error) {
	return m.uploadImageFn(ctx, userID, data)
}

func (m *mockImageService) GetImageURL(ctx context.Context, key string) (string, error) {
	return m.getImageURLFn(ctx, key)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
