package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uint(7),
		"role": role,
		"name": "Ibu Sari",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func runProtected(t *testing.T, token string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"user_id": c.Get("user_id"), "role": c.Get("role")})
	}
	e.GET("/protected", handler, mw...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	mw := RequireAuth(testSecret)

	rec := runProtected(t, signTestToken(t, "teacher", time.Hour), mw)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"teacher"`)

	rec = runProtected(t, "", mw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = runProtected(t, signTestToken(t, "teacher", -time.Hour), mw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 1}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	rec = runProtected(t, other, mw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	auth := RequireAuth(testSecret)

	rec := runProtected(t, signTestToken(t, "teacher", time.Hour), auth, RequireRole("coordinator"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = runProtected(t, signTestToken(t, "coordinator", time.Hour), auth, RequireRole("teacher", "coordinator"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
