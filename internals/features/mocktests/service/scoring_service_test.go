package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sarathi_backend/internals/features/mocktests/model"
)

func mockQuestion(correct int16, marks float64) model.MockTestQuestionModel {
	return model.MockTestQuestionModel{
		MockTestQuestionID:           uuid.New(),
		MockTestQuestionOptions:      pq.StringArray{"A", "B", "C", "D"},
		MockTestQuestionCorrectIndex: correct,
		MockTestQuestionMarks:        marks,
	}
}

func TestGradeMockTestNegativeRatio(t *testing.T) {
	q1 := mockQuestion(0, 2) // answered right
	q2 := mockQuestion(1, 2) // answered wrong
	q3 := mockQuestion(2, 2) // skipped

	answers := map[uuid.UUID]int16{
		q1.MockTestQuestionID: 0,
		q2.MockTestQuestionID: 3,
	}

	res, err := GradeMockTest([]model.MockTestQuestionModel{q1, q2, q3}, answers, 0.3333)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Correct != 1 || res.Wrong != 1 || res.Skipped != 1 || res.Attempted != 2 {
		t.Fatalf("counts = %+v", res)
	}
	// 2 - 2*0.3333 = 1.3334 -> 1.33
	if res.Score != 1.33 {
		t.Fatalf("score = %v, want 1.33", res.Score)
	}
	if res.MaxScore != 6 {
		t.Fatalf("max = %v, want 6", res.MaxScore)
	}
	if res.Accuracy != 50 {
		t.Fatalf("accuracy = %v, want 50", res.Accuracy)
	}
}

func TestGradeMockTestZeroRatio(t *testing.T) {
	q1 := mockQuestion(0, 2)
	q2 := mockQuestion(0, 2)

	answers := map[uuid.UUID]int16{
		q1.MockTestQuestionID: 1,
		q2.MockTestQuestionID: 2,
	}

	res, err := GradeMockTest([]model.MockTestQuestionModel{q1, q2}, answers, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("score with zero ratio = %v, want 0", res.Score)
	}
}

func TestGradeMockTestExplicitSkip(t *testing.T) {
	q := mockQuestion(0, 2)

	res, err := GradeMockTest([]model.MockTestQuestionModel{q}, map[uuid.UUID]int16{q.MockTestQuestionID: -1}, 0.3333)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Skipped != 1 || res.Attempted != 0 {
		t.Fatalf("explicit -1 should skip: %+v", res)
	}
}

func TestGradeMockTestRejectsBadInput(t *testing.T) {
	q := mockQuestion(0, 2)

	if _, err := GradeMockTest([]model.MockTestQuestionModel{q}, map[uuid.UUID]int16{uuid.New(): 0}, 0.3333); err == nil {
		t.Fatalf("expected error for unknown question id")
	}
	if _, err := GradeMockTest([]model.MockTestQuestionModel{q}, map[uuid.UUID]int16{q.MockTestQuestionID: 4}, 0.3333); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}
