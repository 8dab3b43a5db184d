package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/handlers"
	"github.com/scholarlyapp/scholarly_api/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/tutors/pending", handlers.ListPendingTutors)
	admin.Post("/tutors/:tutorId/approve", handlers.ApproveTutor)
	admin.Post("/tutors/:tutorId/deny", handlers.DenyTutor)

	admin.Get("/users", handlers.ListUsers)
	admin.Get("/meetings", handlers.ListAllMeetings)
}
