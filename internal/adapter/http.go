package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/utils"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"github.com/go-resty/resty/v2"
)

type httpRecipeAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRecipeAPI constructs the REST implementation of [RecipeAPI].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with it and the request timeout. A token from
// cfg is reused as is.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPRecipeAPI(cfg config.ClientAdapter, logger *logger.Logger) (RecipeAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	api := &httpRecipeAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRecipeAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRecipeAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts credentials to /api/user/register. On success the bearer
// token is taken from the Authorization response header and stored.
func (h *httpRecipeAPI) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", credentials)
}

// Login posts credentials to /api/user/login and stores the returned token.
func (h *httpRecipeAPI) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", credentials)
}

func (h *httpRecipeAPI) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("id", user.ID.Hex()).Msg("authenticated")
	return user, nil
}

func (h *httpRecipeAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.doAuthed(ctx, http.MethodGet, "/api/user/me", nil, nil, &user)
	return user, err
}

func (h *httpRecipeAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var user models.User
	err := h.doAuthed(ctx, http.MethodPut, "/api/user/profile", nil, update, &user)
	return user, err
}

func (h *httpRecipeAPI) GetCreators(ctx context.Context, nickname string) ([]models.Creator, error) {
	creators := []models.Creator{}
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("nickname", nickname).
		SetResult(&creators).
		Get("/api/creators")
	if err = h.check(resp, err, "get creators"); err != nil {
		return nil, err
	}
	return creators, nil
}

func (h *httpRecipeAPI) GetCreator(ctx context.Context, id string) (models.Creator, error) {
	var creator models.Creator
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&creator).
		Get("/api/creators/{id}")
	return creator, h.check(resp, err, "get creator")
}

func (h *httpRecipeAPI) GetRecipes(ctx context.Context, query models.RecipeQuery) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	req := h.client.R().SetContext(ctx).SetResult(&recipes)
	if query.Name != "" {
		req.SetQueryParam("name", query.Name)
	}
	if query.CreatorID != "" {
		req.SetQueryParam("creator", query.CreatorID)
	}

	resp, err := req.Get("/api/recipes")
	if err = h.check(resp, err, "get recipes"); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (h *httpRecipeAPI) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	var recipe models.Recipe
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&recipe).
		Get("/api/recipes/{id}")
	return recipe, h.check(resp, err, "get recipe")
}

func (h *httpRecipeAPI) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	var created models.Recipe
	err := h.doAuthed(ctx, http.MethodPost, "/api/recipes", nil, recipe, &created)
	return created, err
}

func (h *httpRecipeAPI) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	var updated models.Recipe
	params := map[string]string{"id": recipe.ID.Hex()}
	err := h.doAuthed(ctx, http.MethodPut, "/api/recipes/{id}", params, recipe, &updated)
	return updated, err
}

func (h *httpRecipeAPI) DeleteRecipe(ctx context.Context, id string) error {
	return h.doAuthed(ctx, http.MethodDelete, "/api/recipes/{id}", map[string]string{"id": id}, nil, nil)
}

func (h *httpRecipeAPI) GetCategorizedFilters(ctx context.Context) (models.CategorizedFilters, error) {
	filters := models.CategorizedFilters{}
	resp, err := h.client.R().SetContext(ctx).SetResult(&filters).Get("/api/filters")
	if err = h.check(resp, err, "get filters"); err != nil {
		return nil, err
	}
	return filters, nil
}

func (h *httpRecipeAPI) GetRecipeFilters(ctx context.Context, recipeID string) ([]models.Filter, error) {
	filters := []models.Filter{}
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", recipeID).
		SetResult(&filters).
		Get("/api/recipes/{id}/filters")
	if err = h.check(resp, err, "get recipe filters"); err != nil {
		return nil, err
	}
	return filters, nil
}

func (h *httpRecipeAPI) AttachFilter(ctx context.Context, recipeID string, request models.AttachFilterRequest) (bool, error) {
	return h.change(ctx, http.MethodPost, "/api/recipes/{id}/filters", map[string]string{"id": recipeID}, request, http.StatusConflict)
}

func (h *httpRecipeAPI) DetachFilterByValue(ctx context.Context, recipeID, value string) (bool, error) {
	params := map[string]string{"id": recipeID, "value": value}
	return h.change(ctx, http.MethodDelete, "/api/recipes/{id}/filters/value/{value}", params, nil, http.StatusNotFound)
}

func (h *httpRecipeAPI) GetFavorites(ctx context.Context, name string) ([]models.FavoriteRecord, error) {
	records := []models.FavoriteRecord{}
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if name != "" {
		req.SetQueryParam("name", name)
	}

	resp, err := req.SetResult(&records).Get("/api/favorites")
	if err = h.check(resp, err, "get favorites"); err != nil {
		return nil, err
	}
	return records, nil
}

func (h *httpRecipeAPI) AddToFavorites(ctx context.Context, recipeID string) (bool, error) {
	return h.change(ctx, http.MethodPost, "/api/favorites/{id}", map[string]string{"id": recipeID}, nil, http.StatusConflict)
}

func (h *httpRecipeAPI) RemoveFromFavorites(ctx context.Context, recipeID string) (bool, error) {
	return h.change(ctx, http.MethodDelete, "/api/favorites/{id}", map[string]string{"id": recipeID}, nil, http.StatusNotFound)
}

func (h *httpRecipeAPI) Follow(ctx context.Context, creatorID string) (bool, error) {
	return h.change(ctx, http.MethodPost, "/api/following/{id}", map[string]string{"id": creatorID}, nil, http.StatusConflict)
}

func (h *httpRecipeAPI) Unfollow(ctx context.Context, creatorID string) (bool, error) {
	return h.change(ctx, http.MethodDelete, "/api/following/{id}", map[string]string{"id": creatorID}, nil, http.StatusNotFound)
}

func (h *httpRecipeAPI) UploadImage(ctx context.Context, data []byte) (models.ImageResponse, error) {
	var image models.ImageResponse
	req, err := h.authedRequest(ctx)
	if err != nil {
		return image, err
	}

	resp, err := req.
		SetHeader("Content-Type", http.DetectContentType(data)).
		SetBody(data).
		SetResult(&image).
		Post("/api/images")
	return image, h.check(resp, err, "upload image")
}

func (h *httpRecipeAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err = h.check(resp, err, "get version"); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// authedRequest starts a request carrying the stored bearer token.
func (h *httpRecipeAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// doAuthed runs an authenticated JSON request. body and result may be nil.
func (h *httpRecipeAPI) doAuthed(ctx context.Context, method, path string, params map[string]string, body, result any) error {
	resp, err := h.send(ctx, method, path, params, body, result)
	return h.check(resp, err, method+" "+path)
}

// change runs an authenticated request whose answer is "changed" on 2xx and
// "unchanged" on the unchanged status.
func (h *httpRecipeAPI) change(ctx context.Context, method, path string, params map[string]string, body any, unchanged int) (bool, error) {
	resp, err := h.send(ctx, method, path, params, body, nil)
	if err != nil {
		return false, err
	}
	return mapChanged(resp, unchanged)
}

func (h *httpRecipeAPI) send(ctx context.Context, method, path string, params map[string]string, body, result any) (*resty.Response, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetPathParams(params)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return resp, nil
}

// check folds a transport error and a non-2xx status into one error.
func (h *httpRecipeAPI) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		if resp == nil {
			return err
		}
		return fmt.Errorf("%s request: %w", op, err)
	}
	if resp == nil {
		return nil
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return err
	}
	return nil
}
