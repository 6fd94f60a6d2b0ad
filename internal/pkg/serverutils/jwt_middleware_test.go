package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"user_id": "u-1",
		"role":    "pesantren_admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse(ctx.Locals("role")))
	})
	return app
}

func TestJwtMiddlewareAcceptsConfiguredSecret(t *testing.T) {
	SetJWTSecret("configured-secret")
	app := newGuardedApp()

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "configured-secret", jwt.SigningMethodHS256))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestJwtMiddlewareRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("configured-secret")
	app := newGuardedApp()

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", jwt.SigningMethodHS256))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsUnexpectedAlgorithm(t *testing.T) {
	SetJWTSecret("configured-secret")
	app := newGuardedApp()

	// Right secret, wrong method; only HS256 tokens are issued.
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "configured-secret", jwt.SigningMethodHS384))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	SetJWTSecret("configured-secret")
	app := newGuardedApp()

	res, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
