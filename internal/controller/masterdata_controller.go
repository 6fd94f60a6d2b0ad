package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMasterDataController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type masterDataController struct {
	service service.IMasterDataService
}

func NewMasterDataController(service service.IMasterDataService) IMasterDataController {
	return &masterDataController{service: service}
}

func (c *masterDataController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pesantren/v1/master-data/:type")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("pesantren_admin"))
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func dataType(ctx *fiber.Ctx) entity.MasterDataType {
	return entity.MasterDataType(ctx.Params("type"))
}

func (c *masterDataController) List(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	res, err := c.service.List(ctx.Context(), pesantrenId, dataType(ctx))
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *masterDataController) Create(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	var req dto.CreateMasterDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Create(ctx.Context(), pesantrenId, dataType(ctx), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *masterDataController) Update(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.UpdateMasterDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.Update(ctx.Context(), pesantrenId, dataType(ctx), id, &req); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}

func (c *masterDataController) Delete(ctx *fiber.Ctx) error {
	pesantrenId, ok := tenantID(ctx)
	if !ok {
		return errTenantScope(ctx)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.Delete(ctx.Context(), pesantrenId, dataType(ctx), id); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}
