package dto

import (
	"testing"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/studyplan/model"
)

func TestCreateTaskDefaults(t *testing.T) {
	notes := "  revise chapters 4-6  "
	req := CreateTaskRequest{
		StudyPlanTaskTitle: "  Polity: DPSP vs Fundamental Rights  ",
		StudyPlanTaskNotes: &notes,
		StudyPlanTaskDate:  "2026-04-02",
	}

	userID := uuid.New()
	m, err := req.ToModel(userID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.StudyPlanTaskTitle != "Polity: DPSP vs Fundamental Rights" {
		t.Fatalf("title not trimmed: %q", m.StudyPlanTaskTitle)
	}
	if m.StudyPlanTaskNotes == nil || *m.StudyPlanTaskNotes != "revise chapters 4-6" {
		t.Fatalf("notes not trimmed: %v", m.StudyPlanTaskNotes)
	}
	if m.StudyPlanTaskStatus != model.TaskPending {
		t.Fatalf("new task status = %q, want pending", m.StudyPlanTaskStatus)
	}
	if m.StudyPlanTaskUserID != userID {
		t.Fatalf("user not carried onto model")
	}
	if y, mo, d := m.StudyPlanTaskDate.Date(); y != 2026 || mo != 4 || d != 2 {
		t.Fatalf("date parsed as %v", m.StudyPlanTaskDate)
	}
}

func TestCreateTaskBlankNotesDropped(t *testing.T) {
	notes := "   "
	req := CreateTaskRequest{
		StudyPlanTaskTitle: "Read NCERT geography",
		StudyPlanTaskNotes: &notes,
		StudyPlanTaskDate:  "2026-04-02",
	}

	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.StudyPlanTaskNotes != nil {
		t.Fatalf("whitespace notes should become nil, got %q", *m.StudyPlanTaskNotes)
	}
}

func TestCreateTaskRejectsBadDate(t *testing.T) {
	req := CreateTaskRequest{
		StudyPlanTaskTitle: "Ethics case studies",
		StudyPlanTaskDate:  "02/04/2026",
	}
	if _, err := req.ToModel(uuid.New()); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
