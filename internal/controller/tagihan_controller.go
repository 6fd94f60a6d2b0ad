package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITagihanController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type tagihanController struct {
	service service.ITagihanService
}

func NewTagihanController(service service.ITagihanService) ITagihanController {
	return &tagihanController{service: service}
}

func (c *tagihanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pesantren/v1/tagihan")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("pesantren_admin"))
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *tagihanController) List(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.List(ctx.Context(), pesantrenId, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *tagihanController) Create(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	var req dto.CreateTagihanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Create(ctx.Context(), pesantrenId, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *tagihanController) Update(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.UpdateTagihanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Update(ctx.Context(), pesantrenId, id, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *tagihanController) Delete(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.Delete(ctx.Context(), pesantrenId, id); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}
