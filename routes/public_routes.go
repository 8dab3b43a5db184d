package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/subjects", handlers.ListSubjects)
}
