package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/utils"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testToken = "valid.jwt.token"

// newHandlerWithServices builds a Handler over svcs. AuthService, when nil, accepts
// testToken as the token of userID.
func newHandlerWithServices(t *testing.T, svcs *service.Services, userID primitive.ObjectID) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{
			parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
				if s != testToken {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{SignedString: s, UserID: userID}, nil
			},
		}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// serve runs a request through the full router.
func serve(h *Handler, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withUser stores userID the way the auth middleware does, for calling
// handler methods directly.
func withUser(r *http.Request, userID primitive.ObjectID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

// withURLParams attaches chi URL params to r.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
