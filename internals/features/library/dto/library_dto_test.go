package dto

import (
	"testing"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/library/model"
)

func TestCreateMaterialDefaults(t *testing.T) {
	req := CreateMaterialRequest{
		StudyMaterialTitle: "  Laxmikanth: Union Executive  ",
		StudyMaterialKind:  "notes",
	}

	chapterID := uuid.New()
	m := req.ToModel(chapterID, "laxmikanth-union-executive")

	if m.StudyMaterialTitle != "Laxmikanth: Union Executive" {
		t.Fatalf("title not trimmed: %q", m.StudyMaterialTitle)
	}
	if m.StudyMaterialChapterID != chapterID {
		t.Fatalf("chapter not carried onto model")
	}
	if m.StudyMaterialReadMinutes != 10 {
		t.Fatalf("default read minutes = %d, want 10", m.StudyMaterialReadMinutes)
	}
	if m.StudyMaterialIsPublished {
		t.Fatalf("new material should start unpublished")
	}
	if m.StudyMaterialKind != model.MaterialNotes {
		t.Fatalf("kind = %q", m.StudyMaterialKind)
	}
}

func TestCreateSubjectPosition(t *testing.T) {
	pos := 3
	req := CreateSubjectRequest{
		SubjectName:     "Environment & Ecology",
		SubjectPaper:    "both",
		SubjectPosition: &pos,
	}
	m := req.ToModel("environment-ecology")
	if m.SubjectPosition != 3 {
		t.Fatalf("position = %d, want 3", m.SubjectPosition)
	}
	if m.SubjectSlug != "environment-ecology" {
		t.Fatalf("slug = %q", m.SubjectSlug)
	}
}
