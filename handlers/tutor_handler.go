package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
)

type SetAvailabilityRequest struct {
	Day              string `json:"day" validate:"required"`
	MorningAvailable bool   `json:"is_morning_available"`
	EveningAvailable bool   `json:"is_evening_available"`
}

func SetAvailability(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	var req SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	day, err := models.ParseWeekday(req.Day)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	availability, err := availabilities.Set(actor.UserID, day, req.MorningAvailable, req.EveningAvailable)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}

	return c.Status(fiber.StatusCreated).JSON(availability)
}

func GetMyAvailability(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	rows, err := availabilities.Get(actor.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
	}
	return c.JSON(rows)
}

func ClearAvailability(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	if err := availabilities.Clear(actor.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to clear availability, nothing was changed"})
	}
	return c.JSON(fiber.Map{"message": "Availability cleared"})
}

type AddQualificationRequest struct {
	SubjectID          uint   `json:"subject_id" validate:"required"`
	QualificationLevel string `json:"qualification_level" validate:"required"`
}

func AddQualification(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	var req AddQualificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	teach, err := qualifications.Add(actor.UserID, req.SubjectID, req.QualificationLevel)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Qualification for this subject already declared"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to add qualification"})
	}

	return c.Status(fiber.StatusCreated).JSON(teach)
}

func GetTutorMeetings(c *fiber.Ctx) error {
	actor := currentIdentity(c)

	meetings, err := bookings.MeetingsForTutor(actor.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load meetings"})
	}
	return c.JSON(meetings)
}
