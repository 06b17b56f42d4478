package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{RequestTimeout: time.Second}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.registry)
	assert.Nil(t, h.limiter)
}

func TestNewHandler_IndependentRegistries(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.registry, h2.registry)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method    string
	path      string
	protected bool
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/metrics", false},
	{http.MethodGet, "/api/version", false},
	// users
	{http.MethodPost, "/api/user/register", false},
	{http.MethodPost, "/api/user/login", false},
	{http.MethodGet, "/api/user/me", true},
	{http.MethodPut, "/api/user/profile", true},
	// creators
	{http.MethodGet, "/api/creators", false},
	{http.MethodGet, "/api/creators/c1", false},
	{http.MethodGet, "/api/creators/c1/followers", false},
	// recipes
	{http.MethodGet, "/api/recipes", false},
	{http.MethodGet, "/api/recipes/r1", false},
	{http.MethodGet, "/api/recipes/r1/filters", false},
	{http.MethodPost, "/api/recipes", true},
	{http.MethodPut, "/api/recipes/r1", true},
	{http.MethodDelete, "/api/recipes/r1", true},
	{http.MethodPost, "/api/recipes/r1/filters", true},
	{http.MethodDelete, "/api/recipes/r1/filters", true},
	{http.MethodDelete, "/api/recipes/r1/filters/f1", true},
	{http.MethodDelete, "/api/recipes/r1/filters/value/Italian", true},
	// filters
	{http.MethodGet, "/api/categories", false},
	{http.MethodGet, "/api/categories/c1/filters", false},
	{http.MethodGet, "/api/filters", false},
	// favorites
	{http.MethodGet, "/api/favorites", true},
	{http.MethodGet, "/api/favorites/r1", true},
	{http.MethodPost, "/api/favorites/r1", true},
	{http.MethodDelete, "/api/favorites/r1", true},
	{http.MethodDelete, "/api/favorites/records/x1", true},
	// following
	{http.MethodGet, "/api/following", true},
	{http.MethodGet, "/api/following/c1", true},
	{http.MethodPost, "/api/following/c1", true},
	{http.MethodDelete, "/api/following/c1", true},
	{http.MethodDelete, "/api/following/records/x1", true},
	// images
	{http.MethodPost, "/api/images", true},
	{http.MethodGet, "/api/images/k.png", false},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{}, primitive.NewObjectID())
	router := h.Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			assert.True(t, router.Match(chi.NewRouteContext(), tc.method, tc.path),
				"route not registered: %s %s", tc.method, tc.path)

			if !tc.protected {
				return
			}

			// Protected routes answer 401 before any service is touched.
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newHandlerWithServices(t, &service.Services{}, primitive.NewObjectID()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newHandlerWithServices(t, &service.Services{}, primitive.NewObjectID()).Init()

	// Only GET is registered for /api/version.
	req := httptest.NewRequest(http.MethodPost, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// CORS
// ─────────────────────────────────────────────

func preflight(router http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCORS_AllowsAnyOriginByDefault(t *testing.T) {
	router := newHandlerWithServices(t, &service.Services{}, primitive.NewObjectID()).Init()

	rec := preflight(router, "https://cook.example")

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_RestrictsConfiguredOrigins(t *testing.T) {
	svcs := &service.Services{AppInfoService: &mockAppInfoService{version: "test"}}
	h := NewHandler(svcs, config.Server{CORSOrigins: []string{"https://cook.example"}}, logger.Nop())
	router := h.Init()

	allowed := preflight(router, "https://cook.example")
	assert.Equal(t, "https://cook.example", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := preflight(router, "https://evil.example")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Origin", "https://cook.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(traceIDHeader))
}
