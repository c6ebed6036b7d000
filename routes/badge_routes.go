package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jgrivera/fruition/handlers"
)

func BadgeRoutes(app *fiber.App, h *handlers.BadgeHandler) {
	api := app.Group("/api")

	badges := api.Group("/badges")
	badges.Get("", h.ListBadges)
	badges.Post("", h.CreateBadge)
	badges.Get("/:id", h.GetBadge)
	badges.Put("/:id", h.UpdateBadge)
	badges.Delete("/:id", h.DeleteBadge)
}
