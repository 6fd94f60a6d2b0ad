package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret installs the secret used to verify tokens. Called once at
// bootstrap with the same configured value the identity provider signs with.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid claims"))
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("role", claims["role"])
	if tenantId, ok := claims["tenant_id"]; ok {
		ctx.Locals("tenant_id", tenantId)
	}
	return ctx.Next()
}

// RequireRole guards a route group to one role, platform_admin always passes.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		current, _ := ctx.Locals("role").(string)
		if current != role && current != "platform_admin" {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse("Akses ditolak."))
		}
		return ctx.Next()
	}
}

// TenantID extracts the tenant id claim set at login. Empty when the caller is
// a platform-level account.
func TenantID(ctx *fiber.Ctx) string {
	tenantId, _ := ctx.Locals("tenant_id").(string)
	return tenantId
}
