package dto

import "testing"

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"federalism  in\nIndia", 3},
		{"a b c d e f g h i j", 10},
	}
	for _, tc := range cases {
		if got := CountWords(tc.in); got != tc.want {
			t.Fatalf("CountWords(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCreateQuestionDefaults(t *testing.T) {
	req := CreateMainsQuestionRequest{
		MainsQuestionDate:  "2026-03-15",
		MainsQuestionText:  "  Discuss cooperative federalism.  ",
		MainsQuestionPaper: "GS2",
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.MainsQuestionText != "Discuss cooperative federalism." {
		t.Fatalf("text not trimmed: %q", m.MainsQuestionText)
	}
	if m.MainsQuestionWordLimit != 250 {
		t.Fatalf("default word limit = %d, want 250", m.MainsQuestionWordLimit)
	}
	if m.MainsQuestionMarks != 10 {
		t.Fatalf("default marks = %v, want 10", m.MainsQuestionMarks)
	}
	if m.MainsQuestionIsPublished {
		t.Fatalf("new question should start unpublished")
	}
}

func TestCreateQuestionRejectsBadDate(t *testing.T) {
	req := CreateMainsQuestionRequest{
		MainsQuestionDate:  "15-03-2026",
		MainsQuestionText:  "Discuss.",
		MainsQuestionPaper: "GS1",
	}
	if _, err := req.ToModel(); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
