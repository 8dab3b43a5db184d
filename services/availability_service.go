package services

import (
	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityService records and queries the weekdays and half-days a
// tutor is open for bookings.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Set records the half-day flags for one weekday. Setting a day that
// already has a row replaces its flags rather than duplicating the row.
func (s *AvailabilityService) Set(tutorID uint, day models.Weekday, morning, evening bool) (*models.Availability, error) {
	availability := models.Availability{
		TutorID:            tutorID,
		Day:                day,
		IsMorningAvailable: morning,
		IsEveningAvailable: evening,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tutor_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_morning_available", "is_evening_available"}),
	}).Create(&availability).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// Get returns the tutor's availability rows in insertion order.
func (s *AvailabilityService) Get(tutorID uint) ([]models.Availability, error) {
	var rows []models.Availability
	if err := s.db.Where("tutor_id = ?", tutorID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Clear deletes every availability row for exactly this tutor, all or
// nothing. Rows of other tutors are never touched.
func (s *AvailabilityService) Clear(tutorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("tutor_id = ?", tutorID).Delete(&models.Availability{}).Error
	})
}
