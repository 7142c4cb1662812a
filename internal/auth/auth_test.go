package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sawwere/team-selection/internal/config"
	"github.com/sawwere/team-selection/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg, err := NewConfig(&config.Config{
		JWTSecret:           "test-signing-key",
		OAuthClientID:       "client-id",
		OAuthClientSecret:   "client-secret",
		OAuthAuthURL:        "https://sso.example.com/authorize",
		OAuthTokenURL:       "https://sso.example.com/token",
		OAuthUserInfoURL:    "https://sso.example.com/userinfo",
		OAuthRedirectURL:    "http://localhost:8080/auth/callback",
		FrontendRedirectURL: "http://localhost:3000/login",
	})
	require.NoError(t, err)
	return NewAuthService(cfg, nil)
}

func TestNewConfig(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := NewConfig(&config.Config{
			OAuthClientID:     "client-id",
			OAuthClientSecret: "client-secret",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})

	t.Run("missing client credentials", func(t *testing.T) {
		_, err := NewConfig(&config.Config{JWTSecret: "secret"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client credentials")
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := testAuthService(t)
	user := &models.User{ID: 10, Email: "ivanov@sfedu.ru", Role: models.RoleAdministrator}

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), claims.UserID)
	assert.Equal(t, "ivanov@sfedu.ru", claims.Email)
	assert.Equal(t, "ADMINISTRATOR", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	service := testAuthService(t)

	_, err := service.ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	service := testAuthService(t)

	claims := &Claims{
		UserID: 10,
		Email:  "ivanov@sfedu.ru",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = service.ValidateJWT(signed)
	assert.Error(t, err)
}

func TestAuthURLCarriesState(t *testing.T) {
	service := testAuthService(t)

	authURL := service.AuthURL()
	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	state := parsed.Query().Get("state")
	assert.NotEmpty(t, state)
	assert.Equal(t, "client-id", parsed.Query().Get("client_id"))

	// the state is single use
	assert.True(t, service.consumeState(state))
	assert.False(t, service.consumeState(state))
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := testAuthService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT(&models.User{ID: 10, Email: "ivanov@sfedu.ru", Role: models.RoleUser})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ivanov@sfedu.ru")
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := testAuthService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("plain user is rejected", func(t *testing.T) {
		token, err := service.GenerateJWT(&models.User{ID: 10, Email: "ivanov@sfedu.ru", Role: models.RoleUser})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("administrator passes", func(t *testing.T) {
		token, err := service.GenerateJWT(&models.User{ID: 11, Email: "admin@sfedu.ru", Role: models.RoleAdministrator})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
