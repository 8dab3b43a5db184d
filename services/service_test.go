package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/scholarlyapp/scholarly_api/auth"
	"github.com/scholarlyapp/scholarly_api/database"
	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production
// schema. A single connection keeps the memory database alive and
// serializes writers the way a real store would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.MigrateWith(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

var seq int

func createTutor(t *testing.T, db *gorm.DB, firstName, lastName string, state models.ApprovalState) *models.Tutor {
	t.Helper()
	seq++
	tutor := models.Tutor{
		FirstName:     firstName,
		LastName:      lastName,
		PhoneNumber:   "5550100",
		Email:         fmt.Sprintf("%s.%s.%d@tutors.test", firstName, lastName, seq),
		Password:      "not-a-real-hash",
		ApprovalState: state,
	}
	if err := db.Create(&tutor).Error; err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	return &tutor
}

func createStudent(t *testing.T, db *gorm.DB, firstName, lastName string) *models.Student {
	t.Helper()
	seq++
	student := models.Student{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: "5550200",
		Email:       fmt.Sprintf("%s.%s.%d@students.test", firstName, lastName, seq),
		Password:    "not-a-real-hash",
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return &student
}

func createSubject(t *testing.T, db *gorm.DB, name string) *models.Subject {
	t.Helper()
	subject := models.Subject{Name: name, Description: name + " subject description"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	return &subject
}

func asStudent(id uint) auth.Identity {
	return auth.Identity{UserID: id, Role: auth.RoleStudent}
}
