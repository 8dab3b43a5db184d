package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup/student", handlers.SignupStudent)
	auth.Post("/signup/tutor", handlers.SignupTutor)
	auth.Post("/login", handlers.Login)
}
