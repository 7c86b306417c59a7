// file: internals/features/mocktests/service/scoring_service.go
package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/mocktests/model"
)

type MockScoreResult struct {
	TotalQuestions int
	Attempted      int
	Correct        int
	Wrong          int
	Skipped        int
	Score          float64
	MaxScore       float64
	Accuracy       float64
}

// GradeMockTest scores a submitted answer map against the test's questions.
// Questions absent from the map (or mapped to -1) count as skipped; wrong
// answers lose marks * negativeRatio.
func GradeMockTest(questions []model.MockTestQuestionModel, answers map[uuid.UUID]int16, negativeRatio float64) (MockScoreResult, error) {
	res := MockScoreResult{TotalQuestions: len(questions)}

	byID := make(map[uuid.UUID]*model.MockTestQuestionModel, len(questions))
	for i := range questions {
		byID[questions[i].MockTestQuestionID] = &questions[i]
	}
	for qid := range answers {
		if _, ok := byID[qid]; !ok {
			return MockScoreResult{}, fmt.Errorf("answer references unknown question %s", qid)
		}
	}

	for i := range questions {
		q := &questions[i]
		res.MaxScore += q.MockTestQuestionMarks

		sel, ok := answers[q.MockTestQuestionID]
		if !ok || sel < 0 {
			res.Skipped++
			continue
		}
		if int(sel) >= len(q.MockTestQuestionOptions) {
			return MockScoreResult{}, fmt.Errorf("selected index %d out of range for question %s", sel, q.MockTestQuestionID)
		}

		res.Attempted++
		if sel == q.MockTestQuestionCorrectIndex {
			res.Correct++
			res.Score += q.MockTestQuestionMarks
		} else {
			res.Wrong++
			res.Score -= q.MockTestQuestionMarks * negativeRatio
		}
	}

	res.Score = round2(res.Score)
	res.MaxScore = round2(res.MaxScore)
	if res.Attempted > 0 {
		res.Accuracy = round2(float64(res.Correct) / float64(res.Attempted) * 100)
	}
	return res, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
