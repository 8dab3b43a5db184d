package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/scholarlyapp/scholarly_api/database"
	"github.com/scholarlyapp/scholarly_api/models"
	"github.com/scholarlyapp/scholarly_api/notifications"
)

// Local start of each half-day window, used only for reminder timing.
var slotStartHour = map[models.TimeSlot]int{
	models.SlotMorning: 8,
	models.SlotEvening: 18,
}

// reminderDue reports whether a slot's window opens 60-65 minutes from
// now. The job runs every 5 minutes, so each meeting matches exactly one
// tick.
func reminderDue(now time.Time, slot models.TimeSlot) bool {
	start := time.Date(now.Year(), now.Month(), now.Day(), slotStartHour[slot], 0, 0, 0, now.Location())
	lead := start.Sub(now)
	return lead > 60*time.Minute && lead <= 65*time.Minute
}

// SendMeetingReminders emails both parties of today's meetings about an
// hour before their slot opens. Best effort only.
func SendMeetingReminders() {
	log.Println("Running job: SendMeetingReminders...")

	now := time.Now()
	today := now.Format(models.DateLayout)

	for slot := range slotStartHour {
		if !reminderDue(now, slot) {
			continue
		}

		var meetings []models.Meeting
		err := database.DB.
			Preload("Student").
			Preload("Tutor").
			Where("date = ? AND start_time = ?", today, slot).
			Find(&meetings).Error
		if err != nil {
			log.Printf("Error loading upcoming meetings: %v", err)
			continue
		}

		for _, m := range meetings {
			body := fmt.Sprintf(
				"<h1>Upcoming Session</h1><p>Your %s session starts in about an hour. Join code: %s</p>",
				m.StartTime, m.JoinCode,
			)
			go notifications.SendEmail(m.Student.FirstName+" "+m.Student.LastName, m.Student.Email, "Session Reminder", body)
			go notifications.SendEmail(m.Tutor.FirstName+" "+m.Tutor.LastName, m.Tutor.Email, "Session Reminder", body)
		}
	}
}
