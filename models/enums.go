package models

import "fmt"

// TimeSlot is one of the two half-day booking windows.
type TimeSlot string

const (
	SlotMorning TimeSlot = "Morning"
	SlotEvening TimeSlot = "Evening"
)

func ParseTimeSlot(s string) (TimeSlot, error) {
	switch TimeSlot(s) {
	case SlotMorning, SlotEvening:
		return TimeSlot(s), nil
	}
	return "", fmt.Errorf("invalid time slot %q", s)
}

// Weekday keys recurring availability; it is not a calendar date.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), nil
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}

// ApprovalState is a tutor's onboarding status. There is no retained
// "denied" state: denial deletes the tutor record outright.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
)
