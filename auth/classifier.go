package auth

import (
	"errors"

	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
)

// Role is the resolved account class of an authenticated user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
	RoleNone    Role = "none"
)

// Identity is the session context the core operations consume: who is
// acting, and as what. Handlers build it from JWT claims; nothing in the
// services reads ambient global state.
type Identity struct {
	UserID uint
	Role   Role
}

// Classifier resolves credentials against the admin, tutor and student
// tables, in that order of privilege.
type Classifier struct {
	db *gorm.DB
}

func NewClassifier(db *gorm.DB) *Classifier {
	return &Classifier{db: db}
}

// Classify verifies the email/password pair and returns the role and
// account id. RoleNone means no account matched or the password was
// wrong; the two cases are indistinguishable to the caller.
func (c *Classifier) Classify(email, password string) (Role, uint) {
	var admin models.Admin
	if err := c.db.Where("email = ?", email).First(&admin).Error; err == nil {
		if CheckPassword(password, admin.Password) {
			return RoleAdmin, admin.ID
		}
		return RoleNone, 0
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RoleNone, 0
	}

	var tutor models.Tutor
	if err := c.db.Where("email = ?", email).First(&tutor).Error; err == nil {
		if CheckPassword(password, tutor.Password) {
			return RoleTutor, tutor.ID
		}
		return RoleNone, 0
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RoleNone, 0
	}

	var student models.Student
	if err := c.db.Where("email = ?", email).First(&student).Error; err == nil {
		if CheckPassword(password, student.Password) {
			return RoleStudent, student.ID
		}
	}
	return RoleNone, 0
}
