package controller

import (
	"santripay-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fallbackMessage mirrors the generic failure text clients already expect.
const fallbackMessage = "Terjadi kesalahan"

func tenantID(ctx *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(serverutils.TenantID(ctx))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func errTenantScope(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse("Akses ditolak."))
}

func errBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponseOr(err, fallbackMessage))
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}
