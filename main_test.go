package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dilshat/zalo-sender/config"
	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rejectingAuth struct {
	service.AuthService
}

func (rejectingAuth) Authenticate(string) (dto.Principal, error) {
	return dto.Principal{}, service.NewAuthError("Invalid access token")
}

func TestBindRoutes(t *testing.T) {
	cfg := config.Default()
	e := provideEcho(cfg, zap.NewNop())
	bindRoutes(e, routes{Config: cfg, Auth: rejectingAuth{}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	for _, path := range []string{"/templates", "/recipients", "/credentials", "/messaging/logs", "/auth/me"} {
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	req.Header.Set("Authorization", "Bearer bad")
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid access token"}`, rec.Body.String())
}

func TestBindRoutesWithoutSwagger(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.Swagger = false
	e := provideEcho(cfg, zap.NewNop())
	bindRoutes(e, routes{Config: cfg, Auth: rejectingAuth{}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
