package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/auth/register", h.Register)
	app.Post("/api/v1/auth/login", h.Login)
	app.Post("/api/v1/auth/logout", h.RequireAuth, h.Logout)

	me := app.Group("/api/v1/users/me", h.RequireAuth)
	me.Get("/", h.Me)
	me.Patch("/", h.UpdateProfile)
	me.Delete("/", h.DeleteAccount)
}
