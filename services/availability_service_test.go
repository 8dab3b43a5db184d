package services

import (
	"testing"

	"github.com/scholarlyapp/scholarly_api/models"
)

func TestSetAndGetAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)
	tutor := createTutor(t, db, "Alice", "Nguyen", models.ApprovalApproved)

	if _, err := svc.Set(tutor.ID, models.Monday, true, false); err != nil {
		t.Fatalf("set availability: %v", err)
	}

	rows, err := svc.Get(tutor.ID)
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Day != models.Monday || !rows[0].IsMorningAvailable || rows[0].IsEveningAvailable {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestSetAvailabilityReplacesSameDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)
	tutor := createTutor(t, db, "Alice", "Nguyen", models.ApprovalApproved)

	if _, err := svc.Set(tutor.ID, models.Tuesday, true, false); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if _, err := svc.Set(tutor.ID, models.Tuesday, false, true); err != nil {
		t.Fatalf("second set: %v", err)
	}

	rows, err := svc.Get(tutor.ID)
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row per weekday, got %d", len(rows))
	}
	if rows[0].IsMorningAvailable || !rows[0].IsEveningAvailable {
		t.Fatalf("flags not replaced: %+v", rows[0])
	}
}

func TestClearAvailabilityDoesNotTouchOtherTutors(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)
	cleared := createTutor(t, db, "Alice", "Nguyen", models.ApprovalApproved)
	kept := createTutor(t, db, "Bob", "Mwangi", models.ApprovalApproved)

	for _, day := range []models.Weekday{models.Monday, models.Wednesday, models.Friday} {
		if _, err := svc.Set(cleared.ID, day, true, true); err != nil {
			t.Fatalf("seed cleared tutor: %v", err)
		}
	}
	if _, err := svc.Set(kept.ID, models.Monday, true, false); err != nil {
		t.Fatalf("seed kept tutor: %v", err)
	}

	if err := svc.Clear(cleared.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	rows, err := svc.Get(cleared.ID)
	if err != nil {
		t.Fatalf("get cleared: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows after clear, got %d", len(rows))
	}

	others, err := svc.Get(kept.ID)
	if err != nil {
		t.Fatalf("get kept: %v", err)
	}
	if len(others) != 1 {
		t.Fatalf("other tutor's availability was affected, got %d rows", len(others))
	}
}
