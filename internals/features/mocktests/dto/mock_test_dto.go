// file: internals/features/mocktests/dto/mock_test_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sarathi_backend/internals/features/mocktests/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ==============================
   ADMIN CREATE / PATCH
============================== */

type CreateMockQuestionRequest struct {
	MockTestQuestionText         string   `json:"mock_test_question_text" validate:"required"`
	MockTestQuestionOptions      []string `json:"mock_test_question_options" validate:"required,len=4,dive,required"`
	MockTestQuestionCorrectIndex int16    `json:"mock_test_question_correct_index" validate:"gte=0,lte=3"`
	MockTestQuestionExplanation  *string  `json:"mock_test_question_explanation" validate:"omitempty"`
	MockTestQuestionSubject      string   `json:"mock_test_question_subject" validate:"required,max=80"`
	MockTestQuestionDifficulty   *string  `json:"mock_test_question_difficulty" validate:"omitempty,oneof=easy medium hard"`
	MockTestQuestionMarks        *float64 `json:"mock_test_question_marks" validate:"omitempty,gt=0"`
}

func (r *CreateMockQuestionRequest) ToModel(testID uuid.UUID, fallbackPos int) model.MockTestQuestionModel {
	difficulty := model.DifficultyMedium
	if r.MockTestQuestionDifficulty != nil {
		difficulty = model.MockDifficulty(*r.MockTestQuestionDifficulty)
	}
	marks := 2.0
	if r.MockTestQuestionMarks != nil {
		marks = *r.MockTestQuestionMarks
	}
	return model.MockTestQuestionModel{
		MockTestQuestionTestID:       testID,
		MockTestQuestionText:         strings.TrimSpace(r.MockTestQuestionText),
		MockTestQuestionOptions:      pq.StringArray(r.MockTestQuestionOptions),
		MockTestQuestionCorrectIndex: r.MockTestQuestionCorrectIndex,
		MockTestQuestionExplanation:  trimPtr(r.MockTestQuestionExplanation),
		MockTestQuestionSubject:      strings.TrimSpace(r.MockTestQuestionSubject),
		MockTestQuestionDifficulty:   difficulty,
		MockTestQuestionMarks:        marks,
		MockTestQuestionPosition:     fallbackPos,
	}
}

type CreateMockTestRequest struct {
	MockTestTitle           string                      `json:"mock_test_title" validate:"required,max=200"`
	MockTestDescription     *string                     `json:"mock_test_description" validate:"omitempty"`
	MockTestPaper           string                      `json:"mock_test_paper" validate:"required,oneof=prelims_gs prelims_csat"`
	MockTestSubject         *string                     `json:"mock_test_subject" validate:"omitempty,max=80"`
	MockTestDurationMinutes *int                        `json:"mock_test_duration_minutes" validate:"omitempty,gt=0,lte=300"`
	MockTestNegativeRatio   *float64                    `json:"mock_test_negative_ratio" validate:"omitempty,gte=0,lte=1"`
	MockTestIsPublished     *bool                       `json:"mock_test_is_published" validate:"omitempty"`
	Questions               []CreateMockQuestionRequest `json:"questions" validate:"omitempty,dive"`
}

func (r *CreateMockTestRequest) ToModel() *model.MockTestModel {
	duration := 120
	if r.MockTestDurationMinutes != nil {
		duration = *r.MockTestDurationMinutes
	}
	ratio := model.DefaultNegativeRatio
	if r.MockTestNegativeRatio != nil {
		ratio = *r.MockTestNegativeRatio
	}
	isPub := false
	if r.MockTestIsPublished != nil {
		isPub = *r.MockTestIsPublished
	}
	return &model.MockTestModel{
		MockTestTitle:           strings.TrimSpace(r.MockTestTitle),
		MockTestDescription:     trimPtr(r.MockTestDescription),
		MockTestPaper:           model.MockTestPaper(r.MockTestPaper),
		MockTestSubject:         trimPtr(r.MockTestSubject),
		MockTestDurationMinutes: duration,
		MockTestNegativeRatio:   ratio,
		MockTestIsPublished:     isPub,
	}
}

type PatchMockTestRequest struct {
	MockTestTitle           *string  `json:"mock_test_title" validate:"omitempty,max=200"`
	MockTestDescription     *string  `json:"mock_test_description" validate:"omitempty"`
	MockTestPaper           *string  `json:"mock_test_paper" validate:"omitempty,oneof=prelims_gs prelims_csat"`
	MockTestSubject         *string  `json:"mock_test_subject" validate:"omitempty,max=80"`
	MockTestDurationMinutes *int     `json:"mock_test_duration_minutes" validate:"omitempty,gt=0,lte=300"`
	MockTestNegativeRatio   *float64 `json:"mock_test_negative_ratio" validate:"omitempty,gte=0,lte=1"`
	MockTestIsPublished     *bool    `json:"mock_test_is_published" validate:"omitempty"`
}

type PatchMockQuestionRequest struct {
	MockTestQuestionText         *string  `json:"mock_test_question_text" validate:"omitempty"`
	MockTestQuestionOptions      []string `json:"mock_test_question_options" validate:"omitempty,len=4,dive,required"`
	MockTestQuestionCorrectIndex *int16   `json:"mock_test_question_correct_index" validate:"omitempty,gte=0,lte=3"`
	MockTestQuestionExplanation  *string  `json:"mock_test_question_explanation" validate:"omitempty"`
	MockTestQuestionSubject      *string  `json:"mock_test_question_subject" validate:"omitempty,max=80"`
	MockTestQuestionDifficulty   *string  `json:"mock_test_question_difficulty" validate:"omitempty,oneof=easy medium hard"`
	MockTestQuestionMarks        *float64 `json:"mock_test_question_marks" validate:"omitempty,gt=0"`
	MockTestQuestionPosition     *int     `json:"mock_test_question_position" validate:"omitempty,gte=0"`
}

// SetAccessCodeRequest sets or clears the private access code. An absent or
// empty code clears it.
type SetAccessCodeRequest struct {
	AccessCode *string `json:"access_code" validate:"omitempty,min=4,max=64"`
}

/* ==============================
   USER requests
============================== */

type GenerateMockTestRequest struct {
	Paper      string   `json:"paper" validate:"required,oneof=prelims_gs prelims_csat"`
	Subjects   []string `json:"subjects" validate:"omitempty,dive,required,max=80"`
	Count      *int     `json:"count" validate:"omitempty,gte=5,lte=100"`
	Difficulty *string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type StartMockTestRequest struct {
	AccessCode *string `json:"access_code" validate:"omitempty,max=64"`
}

type SubmitMockTestRequest struct {
	Answers     map[string]int16 `json:"answers" validate:"required"`
	DurationSec *int             `json:"duration_sec" validate:"omitempty,gte=0"`
}

/* ==============================
   RESPONSE DTOs
============================== */

type MockTestResponse struct {
	MockTestID              uuid.UUID `json:"mock_test_id"`
	MockTestTitle           string    `json:"mock_test_title"`
	MockTestDescription     *string   `json:"mock_test_description,omitempty"`
	MockTestPaper           string    `json:"mock_test_paper"`
	MockTestSubject         *string   `json:"mock_test_subject,omitempty"`
	MockTestDurationMinutes int       `json:"mock_test_duration_minutes"`
	MockTestNegativeRatio   float64   `json:"mock_test_negative_ratio"`
	MockTestIsPublished     bool      `json:"mock_test_is_published"`
	MockTestIsGenerated     bool      `json:"mock_test_is_generated"`
	MockTestCreatedAt       time.Time `json:"mock_test_created_at"`

	HasAccessCode bool  `json:"has_access_code"`
	QuestionCount int64 `json:"question_count"`
	AttemptCount  int64 `json:"attempt_count"`
}

type MockQuestionPublic struct {
	MockTestQuestionID         uuid.UUID `json:"mock_test_question_id"`
	MockTestQuestionText       string    `json:"mock_test_question_text"`
	MockTestQuestionOptions    []string  `json:"mock_test_question_options"`
	MockTestQuestionSubject    string    `json:"mock_test_question_subject"`
	MockTestQuestionDifficulty string    `json:"mock_test_question_difficulty"`
	MockTestQuestionMarks      float64   `json:"mock_test_question_marks"`
	MockTestQuestionPosition   int       `json:"mock_test_question_position"`
}

// MockQuestionWithKey extends the public shape with the answer key and the
// caller's own response for post-submit review.
type MockQuestionWithKey struct {
	MockQuestionPublic
	MockTestQuestionCorrectIndex int16   `json:"mock_test_question_correct_index"`
	MockTestQuestionExplanation  *string `json:"mock_test_question_explanation,omitempty"`
	SelectedIndex                int16   `json:"selected_index"`
	IsCorrect                    bool    `json:"is_correct"`
	IsSkipped                    bool    `json:"is_skipped"`
}

type MockAttemptResponse struct {
	MockTestAttemptID             uuid.UUID  `json:"mock_test_attempt_id"`
	MockTestAttemptTestID         uuid.UUID  `json:"mock_test_attempt_test_id"`
	MockTestAttemptStatus         string     `json:"mock_test_attempt_status"`
	MockTestAttemptStartedAt      time.Time  `json:"mock_test_attempt_started_at"`
	MockTestAttemptCompletedAt    *time.Time `json:"mock_test_attempt_completed_at,omitempty"`
	MockTestAttemptTotalQuestions int        `json:"mock_test_attempt_total_questions"`
	MockTestAttemptAttempted      int        `json:"mock_test_attempt_attempted"`
	MockTestAttemptCorrect        int        `json:"mock_test_attempt_correct"`
	MockTestAttemptWrong          int        `json:"mock_test_attempt_wrong"`
	MockTestAttemptSkipped        int        `json:"mock_test_attempt_skipped"`
	MockTestAttemptScore          float64    `json:"mock_test_attempt_score"`
	MockTestAttemptMaxScore       float64    `json:"mock_test_attempt_max_score"`
	MockTestAttemptAccuracy       float64    `json:"mock_test_attempt_accuracy"`
	MockTestAttemptDurationSec    *int       `json:"mock_test_attempt_duration_sec,omitempty"`
}

type StartMockTestResponse struct {
	Attempt   MockAttemptResponse  `json:"attempt"`
	ExpiresAt time.Time            `json:"expires_at"`
	Resumed   bool                 `json:"resumed"`
	Questions []MockQuestionPublic `json:"questions"`
}

type MockResultResponse struct {
	Test    MockTestResponse      `json:"test"`
	Attempt MockAttemptResponse   `json:"attempt"`
	Review  []MockQuestionWithKey `json:"review"`
}

type MockAttemptHistoryItem struct {
	MockAttemptResponse
	MockTestTitle string `json:"mock_test_title"`
	MockTestPaper string `json:"mock_test_paper"`
}

/* ==============================
   MAPPERS
============================== */

func FromMockTestModel(m *model.MockTestModel) MockTestResponse {
	return MockTestResponse{
		MockTestID:              m.MockTestID,
		MockTestTitle:           m.MockTestTitle,
		MockTestDescription:     m.MockTestDescription,
		MockTestPaper:           m.MockTestPaper.String(),
		MockTestSubject:         m.MockTestSubject,
		MockTestDurationMinutes: m.MockTestDurationMinutes,
		MockTestNegativeRatio:   m.MockTestNegativeRatio,
		MockTestIsPublished:     m.MockTestIsPublished,
		MockTestIsGenerated:     m.MockTestIsGenerated,
		MockTestCreatedAt:       m.MockTestCreatedAt,
		HasAccessCode:           m.HasAccessCode(),
	}
}

func FromMockQuestionPublic(q *model.MockTestQuestionModel) MockQuestionPublic {
	return MockQuestionPublic{
		MockTestQuestionID:         q.MockTestQuestionID,
		MockTestQuestionText:       q.MockTestQuestionText,
		MockTestQuestionOptions:    []string(q.MockTestQuestionOptions),
		MockTestQuestionSubject:    q.MockTestQuestionSubject,
		MockTestQuestionDifficulty: q.MockTestQuestionDifficulty.String(),
		MockTestQuestionMarks:      q.MockTestQuestionMarks,
		MockTestQuestionPosition:   q.MockTestQuestionPosition,
	}
}

func FromMockAttemptModel(a *model.MockTestAttemptModel) MockAttemptResponse {
	return MockAttemptResponse{
		MockTestAttemptID:             a.MockTestAttemptID,
		MockTestAttemptTestID:         a.MockTestAttemptTestID,
		MockTestAttemptStatus:         a.MockTestAttemptStatus.String(),
		MockTestAttemptStartedAt:      a.MockTestAttemptStartedAt,
		MockTestAttemptCompletedAt:    a.MockTestAttemptCompletedAt,
		MockTestAttemptTotalQuestions: a.MockTestAttemptTotalQuestions,
		MockTestAttemptAttempted:      a.MockTestAttemptAttempted,
		MockTestAttemptCorrect:        a.MockTestAttemptCorrect,
		MockTestAttemptWrong:          a.MockTestAttemptWrong,
		MockTestAttemptSkipped:        a.MockTestAttemptSkipped,
		MockTestAttemptScore:          a.MockTestAttemptScore,
		MockTestAttemptMaxScore:       a.MockTestAttemptMaxScore,
		MockTestAttemptAccuracy:       a.MockTestAttemptAccuracy,
		MockTestAttemptDurationSec:    a.MockTestAttemptDurationSec,
	}
}

// BuildMockReview pairs every question with the caller's stored answer.
func BuildMockReview(questions []model.MockTestQuestionModel, answers map[uuid.UUID]int16) []MockQuestionWithKey {
	review := make([]MockQuestionWithKey, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		item := MockQuestionWithKey{
			MockQuestionPublic:           FromMockQuestionPublic(q),
			MockTestQuestionCorrectIndex: q.MockTestQuestionCorrectIndex,
			MockTestQuestionExplanation:  q.MockTestQuestionExplanation,
			SelectedIndex:                -1,
			IsSkipped:                    true,
		}
		if sel, ok := answers[q.MockTestQuestionID]; ok && sel >= 0 {
			item.SelectedIndex = sel
			item.IsSkipped = false
			item.IsCorrect = sel == q.MockTestQuestionCorrectIndex
		}
		review = append(review, item)
	}
	return review
}
