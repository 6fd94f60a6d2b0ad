package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWithdrawalController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

// withdrawalController is the platform-side view over withdrawal requests;
// tenants file theirs through the finance routes.
type withdrawalController struct {
	service service.IFinanceService
}

func NewWithdrawalController(service service.IFinanceService) IWithdrawalController {
	return &withdrawalController{service: service}
}

func (c *withdrawalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/platform/v1/withdrawals")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("platform_admin"))
	h.Get("", c.List)
	h.Get("/stats", c.Stats)
	h.Put("/:id/status", c.UpdateStatus)
}

func (c *withdrawalController) List(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.ListWithdrawals(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *withdrawalController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.GetWithdrawalStats(ctx.Context())
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *withdrawalController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.UpdateWithdrawalStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.UpdateWithdrawalStatus(ctx.Context(), id, &req); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}
