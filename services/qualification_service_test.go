package services

import (
	"errors"
	"testing"

	"github.com/scholarlyapp/scholarly_api/models"
	"gorm.io/gorm"
)

func TestAddAndGetQualification(t *testing.T) {
	db := newTestDB(t)
	svc := NewQualificationService(db)
	tutor := createTutor(t, db, "Alice", "Nguyen", models.ApprovalApproved)
	subject := createSubject(t, db, "Mathematics")

	if _, err := svc.Add(tutor.ID, subject.ID, "Masters"); err != nil {
		t.Fatalf("add qualification: %v", err)
	}

	level, err := svc.Get(tutor.ID, "Mathematics")
	if err != nil {
		t.Fatalf("get qualification: %v", err)
	}
	if level != "Masters" {
		t.Fatalf("expected Masters, got %q", level)
	}
}

func TestGetQualificationAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewQualificationService(db)
	tutor := createTutor(t, db, "Alice", "Nguyen", models.ApprovalApproved)
	createSubject(t, db, "English")

	_, err := svc.Get(tutor.ID, "English")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAddQualificationUnknownTutor(t *testing.T) {
	db := newTestDB(t)
	svc := NewQualificationService(db)
	subject := createSubject(t, db, "Science")

	if _, err := svc.Add(9999, subject.ID, "Bachelors"); err == nil {
		t.Fatalf("expected referential violation for unknown tutor")
	}
}
