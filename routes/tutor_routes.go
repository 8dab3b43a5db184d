package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/handlers"
	"github.com/scholarlyapp/scholarly_api/middleware"
)

func TutorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	tutor := api.Group("/tutor", middleware.Protected(), middleware.TutorRequired())

	availability := tutor.Group("/availability")
	availability.Post("", handlers.SetAvailability)
	availability.Get("/me", handlers.GetMyAvailability)
	availability.Delete("", handlers.ClearAvailability)

	tutor.Post("/qualifications", handlers.AddQualification)
	tutor.Get("/meetings", handlers.GetTutorMeetings)
}
