package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/handlers"
	"github.com/scholarlyapp/scholarly_api/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/tutors/eligible", middleware.Protected(), handlers.ListEligibleTutors)

	meetings := api.Group("/meetings", middleware.Protected())
	meetings.Post("", middleware.StudentRequired(), handlers.BookMeeting)
	meetings.Get("/me", middleware.StudentRequired(), handlers.GetMyMeetings)
	meetings.Delete("/:meetingId", handlers.CancelMeeting)
}
