package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/jwt"
	jwtMocks "roam/infras/jwt/mocks"
	"roam/infras/otel/mocks"
	"roam/permissions"
	"roam/shared/constant"
	"roam/transport/http/middleware"
)

func testPermissions() *permissions.PermissionData {
	return &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/packages", Method: http.MethodGet, Skip: true},
			{Path: "/v1/bookings/me", Method: http.MethodGet, Permissions: []string{"user", "admin"}},
			{Path: "/v1/dashboard/stats", Method: http.MethodGet, Permissions: []string{"admin"}},
		},
	}
}

func newTestRouter(mw middleware.AuthRole) chi.Router {
	mux := chi.NewRouter()
	mux.Use(mw.APIKey)
	mux.Use(mw.Auth)
	mux.Use(mw.RBAC)

	ok := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	mux.Post("/v1/auth/login", ok)
	mux.Get("/v1/packages", ok)
	mux.Get("/v1/bookings/me", ok)
	mux.Get("/v1/dashboard/stats", ok)

	return mux
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-api-key"

	mw := middleware.NewAuthRoleMiddleware(mockJWT, mockOtel, testPermissions(), cfg)
	mux := newTestRouter(mw)

	t.Run("public endpoint needs no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/me", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Token abc")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "expired-token", jwt.AccessToken).
			Return(nil, jwt.ErrExpiredToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer expired-token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes role check", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "good-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "user-id-123", Name: "Test User", Role: "user", TokenID: "token-id"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user role forbidden on admin endpoint", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "good-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "user-id-123", Name: "Test User", Role: "user", TokenID: "token-id"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin role allowed on admin endpoint", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "admin-id-999", Name: "Admin", Role: "admin", TokenID: "token-id"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer admin-token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("claims without role rejected", func(t *testing.T) {
		mockJWT.EXPECT().
			ValidateToken(gomock.Any(), "partial-token", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "user-id-123"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/me", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer partial-token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-api-key"

	mw := middleware.NewAuthRoleMiddleware(mockJWT, mockOtel, testPermissions(), cfg)
	mux := newTestRouter(mw)

	t.Run("matching key skips token auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "internal-api-key")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "not-the-key")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHealthEndpointIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-api-key"

	// The embedded table must let readiness probes through the full chain.
	mw := middleware.NewAuthRoleMiddleware(mockJWT, mockOtel, permissions.Get(), cfg)

	mux := chi.NewRouter()
	mux.Use(mw.APIKey)
	mux.Use(mw.Auth)
	mux.Use(mw.RBAC)
	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
