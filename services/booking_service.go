package services

import (
	"errors"
	"time"

	"github.com/scholarlyapp/scholarly_api/auth"
	"github.com/scholarlyapp/scholarly_api/models"
	"github.com/scholarlyapp/scholarly_api/utils"
	"gorm.io/gorm"
)

// ErrSlotTaken is the booking rejection: the tutor already has a meeting
// at the requested date and slot. Handlers render it as a user-facing
// message, never as a system error.
var ErrSlotTaken = errors.New("tutor already booked at this time")

// ErrNotMeetingParty rejects a cancellation by anyone who is neither the
// meeting's student, its tutor, nor an admin.
var ErrNotMeetingParty = errors.New("meeting does not belong to caller")

// EligibleTutor is one row of the eligibility query: a bookable tutor
// together with the qualification they declared for the queried subject.
type EligibleTutor struct {
	TutorID            uint   `gorm:"column:id" json:"tutor_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	QualificationLevel string `json:"qualification_level"`
}

// BookingService is the booking engine: the sole mutator of the meeting
// table under the one-meeting-per-(tutor, date, slot) invariant.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// FindEligibleTutors joins tutors with their availability and subject
// qualifications. A tutor is included when they are approved, open for
// the weekday's half-day, and teach the subject. Results come back in
// storage order; the caller picks one.
func (s *BookingService) FindEligibleTutors(weekday models.Weekday, slot models.TimeSlot, subjectName string) ([]EligibleTutor, error) {
	slotColumn := "availabilities.is_morning_available"
	if slot == models.SlotEvening {
		slotColumn = "availabilities.is_evening_available"
	}

	var tutors []EligibleTutor
	err := s.db.Model(&models.Tutor{}).
		Select("tutors.id, tutors.first_name, tutors.last_name, tutors.phone_number, tutors.email, teaches.qualification_level").
		Joins("JOIN availabilities ON availabilities.tutor_id = tutors.id").
		Joins("JOIN teaches ON teaches.tutor_id = tutors.id").
		Joins("JOIN subjects ON subjects.id = teaches.subject_id").
		Where("availabilities.day = ?", weekday).
		Where(slotColumn+" = ?", true).
		Where("subjects.name = ?", subjectName).
		Where("tutors.approval_state = ?", models.ApprovalApproved).
		Scan(&tutors).Error
	if err != nil {
		return nil, err
	}
	return tutors, nil
}

// IsSlotFree reports whether no meeting occupies the tutor's slot on the
// given date, matching the slot label against both the start and end
// columns.
func (s *BookingService) IsSlotFree(tutorID uint, date string, slot models.TimeSlot) (bool, error) {
	return isSlotFree(s.db, tutorID, date, slot)
}

func isSlotFree(tx *gorm.DB, tutorID uint, date string, slot models.TimeSlot) (bool, error) {
	var count int64
	err := tx.Model(&models.Meeting{}).
		Where("tutor_id = ? AND date = ? AND (start_time = ? OR end_time = ?)", tutorID, date, slot, slot).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Book reserves the (tutor, date, slot) for the student. The free check
// and the insert run in one transaction, and the unique index on
// (tutor_id, date, start_time) turns the loser of a concurrent race into
// the same ErrSlotTaken rejection: of N identical concurrent calls,
// exactly one succeeds.
func (s *BookingService) Book(tutorID uint, date string, slot models.TimeSlot, studentID uint) (*models.Meeting, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, err
	}

	meeting := models.Meeting{
		StudentID: studentID,
		TutorID:   tutorID,
		Date:      date,
		StartTime: slot,
		EndTime:   slot,
		JoinCode:  utils.NewMeetingJoinCode(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		free, err := isSlotFree(tx, tutorID, date, slot)
		if err != nil {
			return err
		}
		if !free {
			return ErrSlotTaken
		}

		if err := tx.Create(&meeting).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Cancel deletes a meeting by id on behalf of the actor and returns the
// number of rows removed. A missing meeting is a no-op, not an error.
// Only the meeting's student, its tutor, or an admin may cancel.
func (s *BookingService) Cancel(meetingID uint, actor auth.Identity) (int64, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, meetingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	allowed := actor.Role == auth.RoleAdmin ||
		(actor.Role == auth.RoleStudent && meeting.StudentID == actor.UserID) ||
		(actor.Role == auth.RoleTutor && meeting.TutorID == actor.UserID)
	if !allowed {
		return 0, ErrNotMeetingParty
	}

	result := s.db.Delete(&models.Meeting{}, meetingID)
	return result.RowsAffected, result.Error
}

// GetAllMeetings returns every meeting, for the admin overview.
func (s *BookingService) GetAllMeetings() ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := s.db.Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *BookingService) MeetingsForStudent(studentID uint) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := s.db.Where("student_id = ?", studentID).Order("date asc").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *BookingService) MeetingsForTutor(tutorID uint) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := s.db.Where("tutor_id = ?", tutorID).Order("date asc").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}
