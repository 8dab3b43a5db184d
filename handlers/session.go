package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/scholarlyapp/scholarly_api/auth"
	"github.com/scholarlyapp/scholarly_api/services"
	"gorm.io/gorm"
)

var validate = validator.New()

var (
	classifier     *auth.Classifier
	availabilities *services.AvailabilityService
	qualifications *services.QualificationService
	bookings       *services.BookingService
	approvals      *services.ApprovalService
	db             *gorm.DB
)

// Init wires the handler package to a database connection. Called once
// from main, and from test setups.
func Init(conn *gorm.DB) {
	db = conn
	classifier = auth.NewClassifier(conn)
	availabilities = services.NewAvailabilityService(conn)
	qualifications = services.NewQualificationService(conn)
	bookings = services.NewBookingService(conn)
	approvals = services.NewApprovalService(conn)
}

// currentIdentity reads the actor out of the verified JWT that the
// Protected middleware stored on the request.
func currentIdentity(c *fiber.Ctx) auth.Identity {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	return auth.Identity{
		UserID: uint(claims["user_id"].(float64)),
		Role:   auth.Role(claims["role"].(string)),
	}
}
