package auth_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/scholarlyapp/scholarly_api/auth"
	"github.com/scholarlyapp/scholarly_api/database"
	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
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
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func TestHashAndCheckPassword(t *testing.T) {
	hash := mustHash(t, "s3cret-pass")
	if hash == "s3cret-pass" {
		t.Fatalf("password stored in clear")
	}
	if !auth.CheckPassword("s3cret-pass", hash) {
		t.Fatalf("expected password check to pass")
	}
	if auth.CheckPassword("wrong", hash) {
		t.Fatalf("expected password check to fail")
	}
}

func TestClassify(t *testing.T) {
	db := newTestDB(t)

	admin := models.Admin{Email: "admin@scholarly.test", Password: mustHash(t, "admin-pass")}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	tutor := models.Tutor{
		FirstName: "Jane", LastName: "Doe", PhoneNumber: "5550100",
		Email: "jane@scholarly.test", Password: mustHash(t, "tutor-pass"),
		ApprovalState: models.ApprovalApproved,
	}
	if err := db.Create(&tutor).Error; err != nil {
		t.Fatalf("seed tutor: %v", err)
	}
	student := models.Student{
		FirstName: "John", LastName: "Smith", PhoneNumber: "5550200",
		Email: "john@scholarly.test", Password: mustHash(t, "student-pass"),
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}

	classifier := auth.NewClassifier(db)

	tests := []struct {
		name     string
		email    string
		password string
		wantRole auth.Role
		wantID   uint
	}{
		{name: "admin", email: "admin@scholarly.test", password: "admin-pass", wantRole: auth.RoleAdmin, wantID: admin.ID},
		{name: "tutor", email: "jane@scholarly.test", password: "tutor-pass", wantRole: auth.RoleTutor, wantID: tutor.ID},
		{name: "student", email: "john@scholarly.test", password: "student-pass", wantRole: auth.RoleStudent, wantID: student.ID},
		{name: "wrong password", email: "jane@scholarly.test", password: "nope", wantRole: auth.RoleNone},
		{name: "unknown email", email: "ghost@scholarly.test", password: "anything", wantRole: auth.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, id := classifier.Classify(tt.email, tt.password)
			if role != tt.wantRole {
				t.Fatalf("expected role %q, got %q", tt.wantRole, role)
			}
			if id != tt.wantID {
				t.Fatalf("expected id %d, got %d", tt.wantID, id)
			}
		})
	}
}
