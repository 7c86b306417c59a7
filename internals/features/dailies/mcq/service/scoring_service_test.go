package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sarathi_backend/internals/features/dailies/mcq/model"
)

func mkQuestion(correct int16, marks float64) model.MCQQuestionModel {
	return model.MCQQuestionModel{
		MCQQuestionID:           uuid.New(),
		MCQQuestionText:         "q",
		MCQQuestionOptions:      pq.StringArray{"a", "b", "c", "d"},
		MCQQuestionCorrectIndex: correct,
		MCQQuestionMarks:        marks,
	}
}

func TestGradeAttemptCorrectMinusPenalty(t *testing.T) {
	qs := []model.MCQQuestionModel{
		mkQuestion(0, 2.0), // answered correctly
		mkQuestion(1, 2.0), // answered wrong
		mkQuestion(2, 2.0), // skipped via -1
		mkQuestion(3, 2.0), // not answered at all
	}
	answers := []AnswerInput{
		{QuestionID: qs[0].MCQQuestionID, SelectedIndex: 0},
		{QuestionID: qs[1].MCQQuestionID, SelectedIndex: 3},
		{QuestionID: qs[2].MCQQuestionID, SelectedIndex: -1},
	}

	res, err := GradeAttempt(qs, answers)
	if err != nil {
		t.Fatalf("GradeAttempt: %v", err)
	}

	if res.TotalQuestions != 4 || res.Attempted != 2 || res.Correct != 1 || res.Wrong != 1 || res.Skipped != 2 {
		t.Fatalf("counts = %+v", res)
	}
	// 2.0 - 2.0/3 = 1.33 after rounding
	if res.Score != 1.33 {
		t.Fatalf("score = %v, want 1.33", res.Score)
	}
	if res.MaxScore != 8.0 {
		t.Fatalf("max score = %v, want 8", res.MaxScore)
	}
	if res.Accuracy != 50.0 {
		t.Fatalf("accuracy = %v, want 50", res.Accuracy)
	}
	if len(res.Responses) != 4 {
		t.Fatalf("want one graded response per question, got %d", len(res.Responses))
	}
}

func TestGradeAttemptAllWrongGoesNegative(t *testing.T) {
	qs := []model.MCQQuestionModel{
		mkQuestion(0, 3.0),
		mkQuestion(0, 3.0),
	}
	answers := []AnswerInput{
		{QuestionID: qs[0].MCQQuestionID, SelectedIndex: 1},
		{QuestionID: qs[1].MCQQuestionID, SelectedIndex: 2},
	}

	res, err := GradeAttempt(qs, answers)
	if err != nil {
		t.Fatalf("GradeAttempt: %v", err)
	}
	if res.Score != -2.0 {
		t.Fatalf("score = %v, want -2 (negative marking is not clamped)", res.Score)
	}
	if res.Accuracy != 0 {
		t.Fatalf("accuracy = %v, want 0", res.Accuracy)
	}
}

func TestGradeAttemptNothingAttempted(t *testing.T) {
	qs := []model.MCQQuestionModel{mkQuestion(0, 2.0)}

	res, err := GradeAttempt(qs, nil)
	if err != nil {
		t.Fatalf("GradeAttempt: %v", err)
	}
	if res.Skipped != 1 || res.Attempted != 0 {
		t.Fatalf("counts = %+v", res)
	}
	if res.Score != 0 || res.Accuracy != 0 {
		t.Fatalf("empty attempt must score 0 with accuracy 0, got %v/%v", res.Score, res.Accuracy)
	}
}

func TestGradeAttemptRejectsUnknownQuestion(t *testing.T) {
	qs := []model.MCQQuestionModel{mkQuestion(0, 2.0)}
	answers := []AnswerInput{{QuestionID: uuid.New(), SelectedIndex: 0}}

	if _, err := GradeAttempt(qs, answers); err == nil {
		t.Fatalf("unknown question id must be rejected")
	}
}

func TestGradeAttemptRejectsDuplicateAnswer(t *testing.T) {
	qs := []model.MCQQuestionModel{mkQuestion(0, 2.0)}
	answers := []AnswerInput{
		{QuestionID: qs[0].MCQQuestionID, SelectedIndex: 0},
		{QuestionID: qs[0].MCQQuestionID, SelectedIndex: 1},
	}

	if _, err := GradeAttempt(qs, answers); err == nil {
		t.Fatalf("duplicate answers must be rejected")
	}
}

func TestGradeAttemptRejectsOutOfRangeIndex(t *testing.T) {
	qs := []model.MCQQuestionModel{mkQuestion(0, 2.0)}

	if _, err := GradeAttempt(qs, []AnswerInput{{QuestionID: qs[0].MCQQuestionID, SelectedIndex: 4}}); err == nil {
		t.Fatalf("selected_index beyond the option list must be rejected")
	}
	if _, err := GradeAttempt(qs, []AnswerInput{{QuestionID: qs[0].MCQQuestionID, SelectedIndex: -2}}); err == nil {
		t.Fatalf("selected_index below -1 must be rejected")
	}
}
