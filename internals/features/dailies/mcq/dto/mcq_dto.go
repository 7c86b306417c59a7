// file: internals/features/dailies/mcq/dto/mcq_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sarathi_backend/internals/features/dailies/mcq/model"
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

/* ==============================
   ADMIN CREATE (POST /api/admin/daily-mcq)
   Quiz + questions in one payload.
============================== */

type CreateMCQQuestionRequest struct {
	MCQQuestionText         string   `json:"mcq_question_text" validate:"required"`
	MCQQuestionOptions      []string `json:"mcq_question_options" validate:"required,len=4,dive,required"`
	MCQQuestionCorrectIndex int16    `json:"mcq_question_correct_index" validate:"gte=0,lte=3"`
	MCQQuestionExplanation  *string  `json:"mcq_question_explanation" validate:"omitempty"`
	MCQQuestionSubject      *string  `json:"mcq_question_subject" validate:"omitempty,max=120"`
	MCQQuestionDifficulty   *string  `json:"mcq_question_difficulty" validate:"omitempty,oneof=easy medium hard"`
	MCQQuestionMarks        *float64 `json:"mcq_question_marks" validate:"omitempty,gt=0"`
	MCQQuestionPosition     *int     `json:"mcq_question_position" validate:"omitempty,gte=0"`
}

func (r *CreateMCQQuestionRequest) ToModel(dailyID uuid.UUID, fallbackPos int) model.MCQQuestionModel {
	difficulty := model.MCQDifficultyMedium
	if r.MCQQuestionDifficulty != nil {
		difficulty = model.MCQDifficulty(strings.ToLower(strings.TrimSpace(*r.MCQQuestionDifficulty)))
	}
	marks := 2.0
	if r.MCQQuestionMarks != nil {
		marks = *r.MCQQuestionMarks
	}
	pos := fallbackPos
	if r.MCQQuestionPosition != nil {
		pos = *r.MCQQuestionPosition
	}
	return model.MCQQuestionModel{
		MCQQuestionDailyMCQID:   dailyID,
		MCQQuestionText:         strings.TrimSpace(r.MCQQuestionText),
		MCQQuestionOptions:      pq.StringArray(r.MCQQuestionOptions),
		MCQQuestionCorrectIndex: r.MCQQuestionCorrectIndex,
		MCQQuestionExplanation:  trimPtr(r.MCQQuestionExplanation),
		MCQQuestionSubject:      trimPtr(r.MCQQuestionSubject),
		MCQQuestionDifficulty:   difficulty,
		MCQQuestionMarks:        marks,
		MCQQuestionPosition:     pos,
	}
}

type CreateDailyMCQRequest struct {
	DailyMCQDate        string                     `json:"daily_mcq_date" validate:"required,datetime=2006-01-02"`
	DailyMCQTitle       string                     `json:"daily_mcq_title" validate:"required,max=200"`
	DailyMCQTopic       *string                    `json:"daily_mcq_topic" validate:"omitempty,max=120"`
	DailyMCQIsPublished *bool                      `json:"daily_mcq_is_published" validate:"omitempty"`
	Questions           []CreateMCQQuestionRequest `json:"questions" validate:"omitempty,dive"`
}

func (r *CreateDailyMCQRequest) ToModel() (*model.DailyMCQModel, error) {
	date, err := apptime.ParseDate(r.DailyMCQDate)
	if err != nil {
		return nil, err
	}
	isPub := false
	if r.DailyMCQIsPublished != nil {
		isPub = *r.DailyMCQIsPublished
	}
	return &model.DailyMCQModel{
		DailyMCQDate:        date,
		DailyMCQTitle:       strings.TrimSpace(r.DailyMCQTitle),
		DailyMCQTopic:       trimPtr(r.DailyMCQTopic),
		DailyMCQIsPublished: isPub,
	}, nil
}

/* ==============================
   ADMIN PATCH
============================== */

type PatchDailyMCQRequest struct {
	DailyMCQDate        *string `json:"daily_mcq_date" validate:"omitempty,datetime=2006-01-02"`
	DailyMCQTitle       *string `json:"daily_mcq_title" validate:"omitempty,max=200"`
	DailyMCQTopic       *string `json:"daily_mcq_topic" validate:"omitempty,max=120"`
	DailyMCQIsPublished *bool   `json:"daily_mcq_is_published" validate:"omitempty"`
}

type PatchMCQQuestionRequest struct {
	MCQQuestionText         *string  `json:"mcq_question_text" validate:"omitempty"`
	MCQQuestionOptions      []string `json:"mcq_question_options" validate:"omitempty,len=4,dive,required"`
	MCQQuestionCorrectIndex *int16   `json:"mcq_question_correct_index" validate:"omitempty,gte=0,lte=3"`
	MCQQuestionExplanation  *string  `json:"mcq_question_explanation" validate:"omitempty"`
	MCQQuestionSubject      *string  `json:"mcq_question_subject" validate:"omitempty,max=120"`
	MCQQuestionDifficulty   *string  `json:"mcq_question_difficulty" validate:"omitempty,oneof=easy medium hard"`
	MCQQuestionMarks        *float64 `json:"mcq_question_marks" validate:"omitempty,gt=0"`
	MCQQuestionPosition     *int     `json:"mcq_question_position" validate:"omitempty,gte=0"`
}

/* ==============================
   ATTEMPT SUBMIT (POST /api/daily-mcq/:id/attempt)
============================== */

type AttemptAnswer struct {
	QuestionID    uuid.UUID `json:"question_id" validate:"required"`
	SelectedIndex int16     `json:"selected_index" validate:"gte=-1,lte=3"`
}

type SubmitAttemptRequest struct {
	DurationSec *int            `json:"duration_sec" validate:"omitempty,gte=0"`
	Answers     []AttemptAnswer `json:"answers" validate:"required,dive"`
}

/* ==============================
   RESPONSE DTOs
============================== */

// MCQQuestionPublic hides the correct index and explanation. Served to
// clients before they submit.
type MCQQuestionPublic struct {
	MCQQuestionID         uuid.UUID `json:"mcq_question_id"`
	MCQQuestionText       string    `json:"mcq_question_text"`
	MCQQuestionOptions    []string  `json:"mcq_question_options"`
	MCQQuestionSubject    *string   `json:"mcq_question_subject,omitempty"`
	MCQQuestionDifficulty string    `json:"mcq_question_difficulty"`
	MCQQuestionMarks      float64   `json:"mcq_question_marks"`
	MCQQuestionPosition   int       `json:"mcq_question_position"`
}

// MCQQuestionWithKey is the result view: correct index and explanation
// included, plus the caller's pick.
type MCQQuestionWithKey struct {
	MCQQuestionPublic
	MCQQuestionCorrectIndex int16   `json:"mcq_question_correct_index"`
	MCQQuestionExplanation  *string `json:"mcq_question_explanation,omitempty"`
	SelectedIndex           int16   `json:"selected_index"`
	IsCorrect               bool    `json:"is_correct"`
	IsSkipped               bool    `json:"is_skipped"`
}

type DailyMCQResponse struct {
	DailyMCQID          uuid.UUID `json:"daily_mcq_id"`
	DailyMCQDate        string    `json:"daily_mcq_date"`
	DailyMCQTitle       string    `json:"daily_mcq_title"`
	DailyMCQTopic       *string   `json:"daily_mcq_topic,omitempty"`
	DailyMCQIsPublished bool      `json:"daily_mcq_is_published"`
	QuestionCount       int       `json:"question_count"`
	DailyMCQCreatedAt   time.Time `json:"daily_mcq_created_at"`

	Questions []MCQQuestionPublic `json:"questions,omitempty"`

	// Caller context
	Attempted bool                `json:"attempted"`
	Attempt   *MCQAttemptResponse `json:"attempt,omitempty"`
}

type MCQAttemptResponse struct {
	MCQAttemptID         uuid.UUID `json:"mcq_attempt_id"`
	MCQAttemptDailyMCQID uuid.UUID `json:"mcq_attempt_daily_mcq_id"`

	MCQAttemptTotalQuestions int `json:"mcq_attempt_total_questions"`
	MCQAttemptAttempted      int `json:"mcq_attempt_attempted"`
	MCQAttemptCorrect        int `json:"mcq_attempt_correct"`
	MCQAttemptWrong          int `json:"mcq_attempt_wrong"`
	MCQAttemptSkipped        int `json:"mcq_attempt_skipped"`

	MCQAttemptScore    float64 `json:"mcq_attempt_score"`
	MCQAttemptMaxScore float64 `json:"mcq_attempt_max_score"`
	MCQAttemptAccuracy float64 `json:"mcq_attempt_accuracy"`

	MCQAttemptDurationSec *int      `json:"mcq_attempt_duration_sec,omitempty"`
	MCQAttemptSubmittedAt time.Time `json:"mcq_attempt_submitted_at"`
}

type MCQResultResponse struct {
	Quiz    DailyMCQResponse     `json:"quiz"`
	Attempt MCQAttemptResponse   `json:"attempt"`
	Review  []MCQQuestionWithKey `json:"review"`
}

type MCQAttemptHistoryItem struct {
	MCQAttemptResponse
	DailyMCQDate  string  `json:"daily_mcq_date"`
	DailyMCQTitle string  `json:"daily_mcq_title"`
	DailyMCQTopic *string `json:"daily_mcq_topic,omitempty"`
}

/* ==============================
   MAPPERS
============================== */

func FromQuestionModelPublic(q *model.MCQQuestionModel) MCQQuestionPublic {
	return MCQQuestionPublic{
		MCQQuestionID:         q.MCQQuestionID,
		MCQQuestionText:       q.MCQQuestionText,
		MCQQuestionOptions:    []string(q.MCQQuestionOptions),
		MCQQuestionSubject:    q.MCQQuestionSubject,
		MCQQuestionDifficulty: q.MCQQuestionDifficulty.String(),
		MCQQuestionMarks:      q.MCQQuestionMarks,
		MCQQuestionPosition:   q.MCQQuestionPosition,
	}
}

func FromDailyModel(m *model.DailyMCQModel, withQuestions bool) DailyMCQResponse {
	resp := DailyMCQResponse{
		DailyMCQID:          m.DailyMCQID,
		DailyMCQDate:        apptime.FormatDate(m.DailyMCQDate),
		DailyMCQTitle:       m.DailyMCQTitle,
		DailyMCQTopic:       m.DailyMCQTopic,
		DailyMCQIsPublished: m.DailyMCQIsPublished,
		QuestionCount:       len(m.Questions),
		DailyMCQCreatedAt:   m.DailyMCQCreatedAt,
	}
	if withQuestions {
		resp.Questions = make([]MCQQuestionPublic, 0, len(m.Questions))
		for i := range m.Questions {
			resp.Questions = append(resp.Questions, FromQuestionModelPublic(&m.Questions[i]))
		}
	}
	return resp
}

func FromAttemptModel(a *model.MCQAttemptModel) MCQAttemptResponse {
	return MCQAttemptResponse{
		MCQAttemptID:             a.MCQAttemptID,
		MCQAttemptDailyMCQID:     a.MCQAttemptDailyMCQID,
		MCQAttemptTotalQuestions: a.MCQAttemptTotalQuestions,
		MCQAttemptAttempted:      a.MCQAttemptAttempted,
		MCQAttemptCorrect:        a.MCQAttemptCorrect,
		MCQAttemptWrong:          a.MCQAttemptWrong,
		MCQAttemptSkipped:        a.MCQAttemptSkipped,
		MCQAttemptScore:          a.MCQAttemptScore,
		MCQAttemptMaxScore:       a.MCQAttemptMaxScore,
		MCQAttemptAccuracy:       a.MCQAttemptAccuracy,
		MCQAttemptDurationSec:    a.MCQAttemptDurationSec,
		MCQAttemptSubmittedAt:    a.MCQAttemptSubmittedAt,
	}
}

// BuildReview joins the question key with the caller's responses.
func BuildReview(questions []model.MCQQuestionModel, responses []model.MCQResponseModel) []MCQQuestionWithKey {
	byQuestion := make(map[uuid.UUID]*model.MCQResponseModel, len(responses))
	for i := range responses {
		byQuestion[responses[i].MCQResponseQuestionID] = &responses[i]
	}

	out := make([]MCQQuestionWithKey, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		item := MCQQuestionWithKey{
			MCQQuestionPublic:       FromQuestionModelPublic(q),
			MCQQuestionCorrectIndex: q.MCQQuestionCorrectIndex,
			MCQQuestionExplanation:  q.MCQQuestionExplanation,
			SelectedIndex:           model.MCQResponseSkipped,
			IsSkipped:               true,
		}
		if r, ok := byQuestion[q.MCQQuestionID]; ok {
			item.SelectedIndex = r.MCQResponseSelectedIndex
			item.IsCorrect = r.MCQResponseIsCorrect
			item.IsSkipped = r.IsSkipped()
		}
		out = append(out, item)
	}
	return out
}
