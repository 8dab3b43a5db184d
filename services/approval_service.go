package services

import (
	"errors"

	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
)

// ApprovalService drives the tutor onboarding state machine:
// pending -> approved, or pending -> denied. Denial deletes the tutor
// record and everything hanging off it; there is no retained denied
// status.
type ApprovalService struct {
	db *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{db: db}
}

// Pending lists tutors still waiting for a decision.
func (s *ApprovalService) Pending() ([]models.Tutor, error) {
	var tutors []models.Tutor
	if err := s.db.Where("approval_state = ?", models.ApprovalPending).Find(&tutors).Error; err != nil {
		return nil, err
	}
	return tutors, nil
}

// Approve flips the tutor to approved, after which they become visible
// to eligibility queries. Approving an already approved tutor has no
// further effect.
func (s *ApprovalService) Approve(tutorID uint) error {
	result := s.db.Model(&models.Tutor{}).
		Where("id = ?", tutorID).
		Update("approval_state", models.ApprovalApproved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.db.Model(&models.Tutor{}).Where("id = ?", tutorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// Deny removes the tutor together with their availability, teach edges
// and meetings, all in one transaction. Denying an id that does not
// exist is a no-op.
func (s *ApprovalService) Deny(tutorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Tutor{}, tutorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("tutor_id = ?", tutorID).Delete(&models.Meeting{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tutor_id = ?", tutorID).Delete(&models.Teach{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tutor_id = ?", tutorID).Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tutor{}, tutorID).Error
	})
}

// FindTutor looks a tutor up by id.
func (s *ApprovalService) FindTutor(tutorID uint) (*models.Tutor, error) {
	var tutor models.Tutor
	if err := s.db.First(&tutor, tutorID).Error; err != nil {
		return nil, err
	}
	return &tutor, nil
}
