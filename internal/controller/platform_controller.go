package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlatformController interface {
	RegisterRoutes(r fiber.Router)
	GetSummary(ctx *fiber.Ctx) error
	GetFinancials(ctx *fiber.Ctx) error
	ListPesantren(ctx *fiber.Ctx) error
	GetPesantrenDetails(ctx *fiber.Ctx) error
	ApprovePesantren(ctx *fiber.Ctx) error
	RejectPesantren(ctx *fiber.Ctx) error
}

type platformController struct {
	service service.IPlatformService
}

func NewPlatformController(service service.IPlatformService) IPlatformController {
	return &platformController{service: service}
}

func (c *platformController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/platform/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("platform_admin"))
	h.Get("/summary", c.GetSummary)
	h.Get("/financials", c.GetFinancials)
	h.Get("/pesantren", c.ListPesantren)
	h.Get("/pesantren/:id", c.GetPesantrenDetails)
	h.Put("/pesantren/:id/approve", c.ApprovePesantren)
	h.Put("/pesantren/:id/reject", c.RejectPesantren)
}

func (c *platformController) GetSummary(ctx *fiber.Ctx) error {
	res, err := c.service.GetSummary(ctx.Context())
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *platformController) GetFinancials(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.GetFinancials(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *platformController) ListPesantren(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.ListPesantren(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *platformController) GetPesantrenDetails(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.GetPesantrenDetails(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponseOr(err, fallbackMessage))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *platformController) ApprovePesantren(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.ApprovePesantren(ctx.Context(), id); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}

func (c *platformController) RejectPesantren(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.RejectPesantrenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.RejectPesantren(ctx.Context(), id, req.Reason); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}
