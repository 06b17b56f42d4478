package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetServerVersion_TableTest(t *testing.T) {
	for _, want := range []string{"1.2.3", "", "v2.0.0-beta+build.42"} {
		t.Run(want, func(t *testing.T) {
			h := newHandlerWithServices(t, &service.Services{AppInfoService: &mockAppInfoService{version: want}}, primitive.NilObjectID)

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{AppInfoService: &mockAppInfoService{version: "3.0.0"}}, primitive.NilObjectID)

	rec := serve(h, http.MethodGet, "/api/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
