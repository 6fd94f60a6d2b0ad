package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdsController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type adsController struct {
	service service.IAdsService
}

func NewAdsController(service service.IAdsService) IAdsController {
	return &adsController{service: service}
}

func (c *adsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/platform/v1/ads")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("platform_admin"))
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *adsController) List(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.List(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *adsController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAdRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *adsController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.UpdateAdRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.Update(ctx.Context(), id, &req); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}

func (c *adsController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}
