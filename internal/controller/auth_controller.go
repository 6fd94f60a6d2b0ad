package controller

import (
	"santripay-be/internal/dto"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	RegisterPesantren(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/login", c.Login)
	h.Post("/register", c.RegisterPesantren)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponseOr(err, fallbackMessage))
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *authController) RegisterPesantren(ctx *fiber.Ctx) error {
	var req dto.RegisterPesantrenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errBadRequest(ctx, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errBadRequest(ctx, err)
	}

	res, err := c.service.RegisterPesantren(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponseOr(err, "Gagal melakukan registrasi"))
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}
