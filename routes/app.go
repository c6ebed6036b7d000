package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/jgrivera/fruition/configs"
	"github.com/jgrivera/fruition/handlers"
	"github.com/jgrivera/fruition/middleware"
	"github.com/jgrivera/fruition/repository"
	"github.com/sirupsen/logrus"
)

// NewApp builds the fiber app with every route wired to repo.
func NewApp(cfg *config.Config, repo repository.BadgeRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       cfg.AppName,
		CaseSensitive: true,
		// "/api/badges" and "/api/badges/" must hit the same handler.
		StrictRouting: false,
		ReadTimeout:   cfg.ReadTimeout,
		WriteTimeout:  cfg.WriteTimeout,
		IdleTimeout:   cfg.IdleTimeout,
		ErrorHandler:  errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, " + middleware.RequestIDHeader,
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
		Output:     logrus.StandardLogger().Writer(),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	BadgeRoutes(app, handlers.NewBadgeHandler(repo))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	middleware.Logger(c).WithError(err).WithFields(logrus.Fields{
		"path":   c.Path(),
		"method": c.Method(),
	}).Error("request failed")
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"code":    code,
		"message": err.Error(),
	})
}
