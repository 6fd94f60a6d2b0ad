package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFinanceController interface {
	RegisterRoutes(r fiber.Router)
	GetSummary(ctx *fiber.Ctx) error
	GetFinancials(ctx *fiber.Ctx) error
	RequestWithdrawal(ctx *fiber.Ctx) error
}

type financeController struct {
	service service.IFinanceService
}

func NewFinanceController(service service.IFinanceService) IFinanceController {
	return &financeController{service: service}
}

func (c *financeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pesantren/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("pesantren_admin"))
	h.Get("/summary", c.GetSummary)
	h.Get("/financials", c.GetFinancials)
	h.Post("/withdrawals", c.RequestWithdrawal)
}

func (c *financeController) GetSummary(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	res, err := c.service.GetDashboardSummary(ctx.Context(), pesantrenId)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *financeController) GetFinancials(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.GetFinancials(ctx.Context(), pesantrenId, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *financeController) RequestWithdrawal(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	var req dto.RequestWithdrawalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.RequestWithdrawal(ctx.Context(), pesantrenId, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}
