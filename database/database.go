package database

import (
	"fmt"
	"log"

	"github.com/scholarlyapp/scholarly_api/auth"
	config "github.com/scholarlyapp/scholarly_api/configs"
	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	if err := MigrateWith(DB); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// MigrateWith runs the schema migration against an explicit connection.
// The service tests reuse it against an in-memory database.
func MigrateWith(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Tutor{},
		&models.Subject{},
		&models.Teach{},
		&models.Availability{},
		&models.Meeting{},
		&models.Admin{},
	)
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := DB.Model(&models.Admin{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin account: %v", err)
	}
	if count > 0 {
		log.Println("Admin account already exists.")
		return
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	if err := DB.Create(&models.Admin{Email: adminEmail, Password: hashed}).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin account: %v", err)
	}

	log.Println("✅ Admin account seeded successfully")
}

// SeedSubjects inserts the static subject catalogue on first boot.
func SeedSubjects() {
	for _, name := range []string{"Mathematics", "English", "Science"} {
		var count int64
		if err := DB.Model(&models.Subject{}).Where("name = ?", name).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check subject %s: %v", name, err)
		}
		if count > 0 {
			continue
		}
		subject := models.Subject{
			Name:        name,
			Description: fmt.Sprintf("%s subject description", name),
		}
		if err := DB.Create(&subject).Error; err != nil {
			log.Fatalf("🔥 Failed to seed subject %s: %v", name, err)
		}
	}
	log.Println("✅ Subjects seeded")
}
