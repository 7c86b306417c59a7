// file: internals/features/dailies/mains/dto/mains_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/dailies/mains/model"
	"sarathi_backend/internals/helpers/apptime"
)

/* ==============================
   Helpers
============================== */

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

// CountWords is the word-count rule used both for the minimum-length check
// and the stored word count.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

/* ==============================
   ADMIN CREATE / PATCH
============================== */

type CreateMainsQuestionRequest struct {
	MainsQuestionDate        string   `json:"mains_question_date" validate:"required,datetime=2006-01-02"`
	MainsQuestionText        string   `json:"mains_question_text" validate:"required"`
	MainsQuestionPaper       string   `json:"mains_question_paper" validate:"required,oneof=GS1 GS2 GS3 GS4 Essay"`
	MainsQuestionTopic       *string  `json:"mains_question_topic" validate:"omitempty,max=120"`
	MainsQuestionWordLimit   *int     `json:"mains_question_word_limit" validate:"omitempty,gt=0,lte=5000"`
	MainsQuestionMarks       *float64 `json:"mains_question_marks" validate:"omitempty,gt=0"`
	MainsQuestionIsPublished *bool    `json:"mains_question_is_published" validate:"omitempty"`
}

func (r *CreateMainsQuestionRequest) ToModel() (*model.MainsQuestionModel, error) {
	date, err := apptime.ParseDate(r.MainsQuestionDate)
	if err != nil {
		return nil, err
	}
	wordLimit := 250
	if r.MainsQuestionWordLimit != nil {
		wordLimit = *r.MainsQuestionWordLimit
	}
	marks := 10.0
	if r.MainsQuestionMarks != nil {
		marks = *r.MainsQuestionMarks
	}
	isPub := false
	if r.MainsQuestionIsPublished != nil {
		isPub = *r.MainsQuestionIsPublished
	}
	return &model.MainsQuestionModel{
		MainsQuestionDate:        date,
		MainsQuestionText:        strings.TrimSpace(r.MainsQuestionText),
		MainsQuestionPaper:       r.MainsQuestionPaper,
		MainsQuestionTopic:       trimPtr(r.MainsQuestionTopic),
		MainsQuestionWordLimit:   wordLimit,
		MainsQuestionMarks:       marks,
		MainsQuestionIsPublished: isPub,
	}, nil
}

type PatchMainsQuestionRequest struct {
	MainsQuestionDate        *string  `json:"mains_question_date" validate:"omitempty,datetime=2006-01-02"`
	MainsQuestionText        *string  `json:"mains_question_text" validate:"omitempty"`
	MainsQuestionPaper       *string  `json:"mains_question_paper" validate:"omitempty,oneof=GS1 GS2 GS3 GS4 Essay"`
	MainsQuestionTopic       *string  `json:"mains_question_topic" validate:"omitempty,max=120"`
	MainsQuestionWordLimit   *int     `json:"mains_question_word_limit" validate:"omitempty,gt=0,lte=5000"`
	MainsQuestionMarks       *float64 `json:"mains_question_marks" validate:"omitempty,gt=0"`
	MainsQuestionIsPublished *bool    `json:"mains_question_is_published" validate:"omitempty"`
}

/* ==============================
   SUBMIT (POST /api/daily-answers/:id/submit)
============================== */

type SubmitAnswerRequest struct {
	Content string `json:"content" validate:"required"`
}

/* ==============================
   RESPONSE DTOs
============================== */

type MainsQuestionResponse struct {
	MainsQuestionID          uuid.UUID `json:"mains_question_id"`
	MainsQuestionDate        string    `json:"mains_question_date"`
	MainsQuestionText        string    `json:"mains_question_text"`
	MainsQuestionPaper       string    `json:"mains_question_paper"`
	MainsQuestionTopic       *string   `json:"mains_question_topic,omitempty"`
	MainsQuestionWordLimit   int       `json:"mains_question_word_limit"`
	MainsQuestionMarks       float64   `json:"mains_question_marks"`
	MainsQuestionIsPublished bool      `json:"mains_question_is_published"`
	MainsQuestionCreatedAt   time.Time `json:"mains_question_created_at"`

	// Caller context
	Attempted bool                 `json:"attempted"`
	Attempt   *MainsAttemptSummary `json:"attempt,omitempty"`
}

type MainsAttemptSummary struct {
	MainsAttemptID            uuid.UUID  `json:"mains_attempt_id"`
	MainsAttemptWordCount     int        `json:"mains_attempt_word_count"`
	MainsAttemptSubmittedAt   time.Time  `json:"mains_attempt_submitted_at"`
	MainsAttemptResubmittedAt *time.Time `json:"mains_attempt_resubmitted_at,omitempty"`
	EvaluationStatus          string     `json:"evaluation_status,omitempty"`
}

type MainsEvaluationResponse struct {
	MainsEvaluationID          uuid.UUID       `json:"mains_evaluation_id"`
	MainsEvaluationStatus      string          `json:"mains_evaluation_status"`
	MainsEvaluationScore       *float64        `json:"mains_evaluation_score,omitempty"`
	MainsEvaluationBreakdown   json.RawMessage `json:"mains_evaluation_breakdown,omitempty"`
	MainsEvaluationFeedback    *string         `json:"mains_evaluation_feedback,omitempty"`
	MainsEvaluationSuggestions []string        `json:"mains_evaluation_suggestions,omitempty"`
	MainsEvaluationEvaluatedAt *time.Time      `json:"mains_evaluation_evaluated_at,omitempty"`
}

type MainsSubmissionItem struct {
	MainsAttemptID            uuid.UUID  `json:"mains_attempt_id"`
	MainsAttemptWordCount     int        `json:"mains_attempt_word_count"`
	MainsAttemptSubmittedAt   time.Time  `json:"mains_attempt_submitted_at"`
	MainsAttemptResubmittedAt *time.Time `json:"mains_attempt_resubmitted_at,omitempty"`

	MainsQuestionID    uuid.UUID `json:"mains_question_id"`
	MainsQuestionDate  string    `json:"mains_question_date"`
	MainsQuestionText  string    `json:"mains_question_text"`
	MainsQuestionPaper string    `json:"mains_question_paper"`

	EvaluationStatus string   `json:"evaluation_status"`
	EvaluationScore  *float64 `json:"evaluation_score,omitempty"`
}

/* ==============================
   MAPPERS
============================== */

func FromQuestionModel(m *model.MainsQuestionModel) MainsQuestionResponse {
	return MainsQuestionResponse{
		MainsQuestionID:          m.MainsQuestionID,
		MainsQuestionDate:        apptime.FormatDate(m.MainsQuestionDate),
		MainsQuestionText:        m.MainsQuestionText,
		MainsQuestionPaper:       m.MainsQuestionPaper,
		MainsQuestionTopic:       m.MainsQuestionTopic,
		MainsQuestionWordLimit:   m.MainsQuestionWordLimit,
		MainsQuestionMarks:       m.MainsQuestionMarks,
		MainsQuestionIsPublished: m.MainsQuestionIsPublished,
		MainsQuestionCreatedAt:   m.MainsQuestionCreatedAt,
	}
}

func FromAttemptModel(a *model.MainsAttemptModel) MainsAttemptSummary {
	s := MainsAttemptSummary{
		MainsAttemptID:            a.MainsAttemptID,
		MainsAttemptWordCount:     a.MainsAttemptWordCount,
		MainsAttemptSubmittedAt:   a.MainsAttemptSubmittedAt,
		MainsAttemptResubmittedAt: a.MainsAttemptResubmittedAt,
	}
	if a.Evaluation != nil {
		s.EvaluationStatus = a.Evaluation.MainsEvaluationStatus.String()
	}
	return s
}

func FromEvaluationModel(e *model.MainsEvaluationModel) MainsEvaluationResponse {
	return MainsEvaluationResponse{
		MainsEvaluationID:          e.MainsEvaluationID,
		MainsEvaluationStatus:      e.MainsEvaluationStatus.String(),
		MainsEvaluationScore:       e.MainsEvaluationScore,
		MainsEvaluationBreakdown:   json.RawMessage(e.MainsEvaluationBreakdown),
		MainsEvaluationFeedback:    e.MainsEvaluationFeedback,
		MainsEvaluationSuggestions: []string(e.MainsEvaluationSuggestions),
		MainsEvaluationEvaluatedAt: e.MainsEvaluationEvaluatedAt,
	}
}
