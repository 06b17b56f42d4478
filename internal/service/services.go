package service

import (
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/images"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/store"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/utils"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/validators"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	RecipeService    RecipeService
	FavoritesService FavoritesService
	FollowersService FollowersService
	FiltersService   FiltersService
	ImageService     ImageService
	AppInfoService   AppInfoService
}

// NewServices wires every service to storages. imageStore may be nil when
// image uploads are disabled.
func NewServices(storages *store.Storages, imageStore images.Store, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRecipeValidator()

	return &Services{
		AuthService:      NewAuthService(storages.Users, validator, cfg.App, logger),
		UserService:      NewUserService(storages.Users, validator, logger),
		RecipeService:    NewRecipeService(storages.Recipes, storages.Filters, validator, logger),
		FavoritesService: NewFavoritesService(storages.Favorites, storages.Recipes, logger),
		FollowersService: NewFollowersService(storages.Followers, storages.Users, logger),
		FiltersService:   NewFiltersService(storages.Filters, storages.Recipes, logger),
		ImageService:     NewImageService(imageStore, utils.NewUUIDGenerator(), cfg.Storage.Images, logger),
		AppInfoService:   appInfoService,
	}, nil
}
