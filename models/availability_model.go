package models

// Availability records which half-days of a weekday a tutor is open for
// bookings. The (tutor_id, day) index keeps one row per weekday, so
// setting the same day again replaces the flags instead of duplicating
// the row.
type Availability struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	TutorID            uint    `gorm:"not null;uniqueIndex:idx_availabilities_tutor_day" json:"tutor_id"`
	Day                Weekday `gorm:"size:10;not null;uniqueIndex:idx_availabilities_tutor_day" json:"day"`
	IsMorningAvailable bool    `gorm:"not null" json:"is_morning_available"`
	IsEveningAvailable bool    `gorm:"not null" json:"is_evening_available"`

	Tutor Tutor `gorm:"foreignKey:TutorID;constraint:OnDelete:CASCADE" json:"-"`
}
