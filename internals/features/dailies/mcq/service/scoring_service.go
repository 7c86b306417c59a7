// file: internals/features/dailies/mcq/service/scoring_service.go
package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/dailies/mcq/model"
)

// NegativeMarkDivisor: a wrong answer costs one third of the question's marks.
const NegativeMarkDivisor = 3.0

type AnswerInput struct {
	QuestionID    uuid.UUID
	SelectedIndex int16
}

type GradedResponse struct {
	QuestionID    uuid.UUID
	SelectedIndex int16
	IsCorrect     bool
}

type ScoreResult struct {
	TotalQuestions int
	Attempted      int
	Correct        int
	Wrong          int
	Skipped        int

	Score    float64
	MaxScore float64
	Accuracy float64

	Responses []GradedResponse
}

// GradeAttempt scores one submission against the quiz's question set.
// Questions the caller never answered (or answered with -1) count as
// skipped and contribute nothing either way.
func GradeAttempt(questions []model.MCQQuestionModel, answers []AnswerInput) (ScoreResult, error) {
	res := ScoreResult{
		TotalQuestions: len(questions),
		Responses:      make([]GradedResponse, 0, len(questions)),
	}

	byID := make(map[uuid.UUID]*model.MCQQuestionModel, len(questions))
	for i := range questions {
		byID[questions[i].MCQQuestionID] = &questions[i]
	}

	picked := make(map[uuid.UUID]int16, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return ScoreResult{}, fmt.Errorf("unknown question id: %s", a.QuestionID)
		}
		if _, dup := picked[a.QuestionID]; dup {
			return ScoreResult{}, fmt.Errorf("duplicate answer for question: %s", a.QuestionID)
		}
		if a.SelectedIndex < model.MCQResponseSkipped || int(a.SelectedIndex) >= len(q.MCQQuestionOptions) {
			return ScoreResult{}, fmt.Errorf("selected_index %d out of range for question %s", a.SelectedIndex, a.QuestionID)
		}
		picked[a.QuestionID] = a.SelectedIndex
	}

	for i := range questions {
		q := &questions[i]
		res.MaxScore += q.MCQQuestionMarks

		sel, answered := picked[q.MCQQuestionID]
		if !answered || sel == model.MCQResponseSkipped {
			res.Skipped++
			res.Responses = append(res.Responses, GradedResponse{
				QuestionID:    q.MCQQuestionID,
				SelectedIndex: model.MCQResponseSkipped,
			})
			continue
		}

		res.Attempted++
		correct := sel == q.MCQQuestionCorrectIndex
		if correct {
			res.Correct++
			res.Score += q.MCQQuestionMarks
		} else {
			res.Wrong++
			res.Score -= q.MCQQuestionMarks / NegativeMarkDivisor
		}
		res.Responses = append(res.Responses, GradedResponse{
			QuestionID:    q.MCQQuestionID,
			SelectedIndex: sel,
			IsCorrect:     correct,
		})
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
