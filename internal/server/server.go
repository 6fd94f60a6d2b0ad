package server

import (
	"log"

	"santripay-be/internal/bootstrap"
	"santripay-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)

	c.PlatformController.RegisterRoutes(api)
	c.WithdrawalController.RegisterRoutes(api)
	c.MonetizationController.RegisterRoutes(api)
	c.ContentController.RegisterRoutes(api)
	c.AdsController.RegisterRoutes(api)

	c.FinanceController.RegisterRoutes(api)
	c.SantriController.RegisterRoutes(api)
	c.MasterDataController.RegisterRoutes(api)
	c.UstadzController.RegisterRoutes(api)
	c.TagihanController.RegisterRoutes(api)
}
