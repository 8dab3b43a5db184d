package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/models"
	"github.com/scholarlyapp/scholarly_api/notifications"
	"gorm.io/gorm"
)

func ListPendingTutors(c *fiber.Ctx) error {
	tutors, err := approvals.Pending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(tutors)
}

func ApproveTutor(c *fiber.Ctx) error {
	tutorID, err := c.ParamsInt("tutorId")
	if err != nil || tutorID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	tutor, err := approvals.FindTutor(uint(tutorID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if err := approvals.Approve(tutor.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve tutor"})
	}

	go notifications.SendEmail(
		tutor.FirstName+" "+tutor.LastName,
		tutor.Email,
		"Your Tutor Application has been Approved!",
		"<h1>Congratulations!</h1><p>Your application has been approved. You can now set your availability and accept bookings.</p>",
	)

	return c.JSON(fiber.Map{"message": "Tutor approved"})
}

func DenyTutor(c *fiber.Ctx) error {
	tutorID, err := c.ParamsInt("tutorId")
	if err != nil || tutorID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tutor id"})
	}

	// Snapshot the address before the row disappears; denying an unknown
	// id is still a successful no-op.
	tutor, err := approvals.FindTutor(uint(tutorID))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if err := approvals.Deny(uint(tutorID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deny tutor"})
	}

	if tutor != nil {
		go notifications.SendEmail(
			tutor.FirstName+" "+tutor.LastName,
			tutor.Email,
			"Update on Your Tutor Application",
			"<h1>Application Update</h1><p>We regret to inform you that your tutor application was not approved.</p>",
		)
	}

	return c.JSON(fiber.Map{"message": "Tutor denied"})
}

func ListUsers(c *fiber.Ctx) error {
	var students []models.Student
	if err := db.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	var tutors []models.Tutor
	if err := db.Find(&tutors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"students": students, "tutors": tutors})
}

func ListAllMeetings(c *fiber.Ctx) error {
	meetings, err := bookings.GetAllMeetings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(meetings)
}
