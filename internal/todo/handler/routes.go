package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every todo route behind the session guard.
func RegisterRoutes(app *fiber.App, h *TodoHandler, guard fiber.Handler) {
	todos := app.Group("/api/v1/todos", guard)
	todos.Get("/", h.List)
	todos.Post("/", h.Create)
	todos.Get("/:id", h.Get)
	todos.Patch("/:id", h.Update)
	todos.Delete("/:id", h.Delete)
}
