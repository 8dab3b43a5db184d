package services

import (
	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
)

// QualificationService maps tutors to the subjects they teach and the
// education level they declared for each. Edges are append-only.
type QualificationService struct {
	db *gorm.DB
}

func NewQualificationService(db *gorm.DB) *QualificationService {
	return &QualificationService{db: db}
}

// Add inserts a tutor-subject edge. A referential violation (unknown
// tutor or subject) or an existing edge for the pair surfaces as an
// error from the store.
func (s *QualificationService) Add(tutorID, subjectID uint, level string) (*models.Teach, error) {
	teach := models.Teach{
		TutorID:            tutorID,
		SubjectID:          subjectID,
		QualificationLevel: level,
	}
	if err := s.db.Create(&teach).Error; err != nil {
		return nil, err
	}
	return &teach, nil
}

// Get returns the tutor's declared level for a subject by name, or
// gorm.ErrRecordNotFound when the tutor does not teach it.
func (s *QualificationService) Get(tutorID uint, subjectName string) (string, error) {
	var teach models.Teach
	err := s.db.
		Joins("JOIN subjects ON subjects.id = teaches.subject_id").
		Where("teaches.tutor_id = ? AND subjects.name = ?", tutorID, subjectName).
		First(&teach).Error
	if err != nil {
		return "", err
	}
	return teach.QualificationLevel, nil
}
