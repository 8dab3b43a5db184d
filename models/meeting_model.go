package models

import "time"

// Meeting is a booked half-day session. Start and end carry the same
// slot label. The (tutor_id, date, start_time) index enforces that a
// slot holds at most one meeting; the booking engine treats a unique
// violation as the slot-taken rejection.
type Meeting struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	StudentID uint     `gorm:"not null" json:"student_id"`
	TutorID   uint     `gorm:"not null;uniqueIndex:idx_meetings_tutor_date_slot" json:"tutor_id"`
	Date      string   `gorm:"size:10;not null;uniqueIndex:idx_meetings_tutor_date_slot" json:"date"`
	StartTime TimeSlot `gorm:"size:10;not null;uniqueIndex:idx_meetings_tutor_date_slot" json:"start_time"`
	EndTime   TimeSlot `gorm:"size:10;not null" json:"end_time"`
	JoinCode  string   `gorm:"size:64;not null" json:"join_code"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Tutor   Tutor   `gorm:"foreignKey:TutorID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"
