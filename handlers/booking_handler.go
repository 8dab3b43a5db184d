package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/models"
	"github.com/scholarlyapp/scholarly_api/services"
)

func ListEligibleTutors(c *fiber.Ctx) error {
	weekday, err := models.ParseWeekday(c.Query("weekday"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slot, err := models.ParseTimeSlot(c.Query("slot"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	subject := c.Query("subject")
	if subject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subject is required"})
	}

	tutors, err := bookings.FindEligibleTutors(weekday, slot, subject)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search tutors"})
	}
	return c.JSON(tutors)
}

type BookMeetingRequest struct {
	TutorID uint   `json:"tutor_id" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot    string `json:"slot" validate:"required"`
}

func BookMeeting(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	var req BookMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slot, err := models.ParseTimeSlot(req.Slot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	meeting, err := bookings.Book(req.TutorID, req.Date, slot, actor.UserID)
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Sorry, the tutor is already booked at this time.",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to book meeting"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Meeting booked successfully!",
		"meeting": meeting,
	})
}

func GetMyMeetings(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	meetings, err := bookings.MeetingsForStudent(actor.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load meetings"})
	}
	return c.JSON(meetings)
}

func CancelMeeting(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	meetingID, err := c.ParamsInt("meetingId")
	if err != nil || meetingID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meeting id"})
	}

	affected, err := bookings.Cancel(uint(meetingID), actor)
	if err != nil {
		if errors.Is(err, services.ErrNotMeetingParty) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your meeting to cancel"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel meeting"})
	}

	return c.JSON(fiber.Map{"rows_affected": affected})
}
