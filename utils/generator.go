package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewMeetingJoinCode returns the code students and tutors use to join a
// booked session from the meeting details page.
func NewMeetingJoinCode() string {
	return fmt.Sprintf("scholarly-%s", uuid.NewString())
}
