package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	ListCategories(ctx *fiber.Ctx) error
	CreateCategory(ctx *fiber.Ctx) error
	DeleteCategory(ctx *fiber.Ctx) error
	ListContent(ctx *fiber.Ctx) error
	CreateContent(ctx *fiber.Ctx) error
	UpdateContent(ctx *fiber.Ctx) error
	DeleteContent(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/platform/v1/content")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole("platform_admin"))
	h.Get("/categories", c.ListCategories)
	h.Post("/categories", c.CreateCategory)
	h.Delete("/categories/:id", c.DeleteCategory)
	h.Get("", c.ListContent)
	h.Post("", c.CreateContent)
	h.Put(":id", c.UpdateContent)
	h.Delete(":id", c.DeleteContent)
}

func (c *contentController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.service.ListCategories(ctx.Context())
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *contentController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateContentCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *contentController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.DeleteCategory(ctx.Context(), id); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}

func (c *contentController) ListContent(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.ListContent(ctx.Context(), &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *contentController) CreateContent(ctx *fiber.Ctx) error {
	var req dto.CreateGlobalContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.CreateContent(ctx.Context(), req.PesantrenId, &req)
	if err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *contentController) UpdateContent(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	var req dto.UpdateGlobalContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.UpdateContent(ctx.Context(), id, &req); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}

func (c *contentController) DeleteContent(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return errBadRequest(ctx, err)
	}

	if err := c.service.DeleteContent(ctx.Context(), id); err != nil {
		return errBadRequest(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"id": id}))
}
