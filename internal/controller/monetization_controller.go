package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMonetizationController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type monetizationController struct {
	service service.IMonetizationService
}

func NewMonetizationController(service service.IMonetizationService) IMonetizationController {
	return &monetizationController{service: service}
}

func (c *monetizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/platform/v1/monetization")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("platform_admin"))
	h.Get("", c.Get)
	h.Put("", c.Update)
}

func (c *monetizationController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context())
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *monetizationController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateMonetizationSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}
