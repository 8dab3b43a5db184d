package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarlyapp/scholarly_api/models"
)

func ListSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := db.Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(subjects)
}
