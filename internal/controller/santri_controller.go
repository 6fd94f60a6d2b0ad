package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISantriController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type santriController struct {
	service service.ISantriService
}

func NewSantriController(service service.ISantriService) ISantriController {
	return &santriController{service: service}
}

func (c *santriController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pesantren/v1/santri")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("pesantren_admin"))
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *santriController) List(ctx *fiber.Ctx) error {
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

func (c *santriController) Create(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	var req dto.CreateSantriRequest
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

func (c *santriController) Update(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.UpdateSantriRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Update(ctx.Context(), pesantrenId, id, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *santriController) Delete(ctx *fiber.Ctx) error {
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
