package models

// Teach is the tutor-subject qualification edge. One row per
// (tutor, subject); edges are append-only for the tutor's lifetime.
type Teach struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	TutorID            uint   `gorm:"not null;uniqueIndex:idx_teaches_tutor_subject" json:"tutor_id"`
	SubjectID          uint   `gorm:"not null;uniqueIndex:idx_teaches_tutor_subject" json:"subject_id"`
	QualificationLevel string `gorm:"size:100;not null" json:"qualification_level"`

	Tutor   Tutor   `gorm:"foreignKey:TutorID;constraint:OnDelete:CASCADE" json:"-"`
	Subject Subject `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
}
