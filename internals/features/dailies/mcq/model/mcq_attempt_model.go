// file: internals/features/dailies/mcq/model/mcq_attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: mcq_attempts
   One submission per user per daily quiz, enforced by the
   unique (user, daily_mcq) index.
========================================================= */

type MCQAttemptModel struct {
	MCQAttemptID uuid.UUID `gorm:"column:mcq_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mcq_attempt_id"`

	MCQAttemptUserID     uuid.UUID `gorm:"column:mcq_attempt_user_id;type:uuid;not null;uniqueIndex:uq_mcq_attempts_user_daily,priority:1;index:idx_mcq_attempts_user" json:"mcq_attempt_user_id"`
	MCQAttemptDailyMCQID uuid.UUID `gorm:"column:mcq_attempt_daily_mcq_id;type:uuid;not null;uniqueIndex:uq_mcq_attempts_user_daily,priority:2" json:"mcq_attempt_daily_mcq_id"`

	MCQAttemptTotalQuestions int `gorm:"column:mcq_attempt_total_questions;not null;default:0" json:"mcq_attempt_total_questions"`
	MCQAttemptAttempted      int `gorm:"column:mcq_attempt_attempted;not null;default:0" json:"mcq_attempt_attempted"`
	MCQAttemptCorrect        int `gorm:"column:mcq_attempt_correct;not null;default:0" json:"mcq_attempt_correct"`
	MCQAttemptWrong          int `gorm:"column:mcq_attempt_wrong;not null;default:0" json:"mcq_attempt_wrong"`
	MCQAttemptSkipped        int `gorm:"column:mcq_attempt_skipped;not null;default:0" json:"mcq_attempt_skipped"`

	MCQAttemptScore    float64 `gorm:"column:mcq_attempt_score;type:numeric(8,2);not null;default:0" json:"mcq_attempt_score"`
	MCQAttemptMaxScore float64 `gorm:"column:mcq_attempt_max_score;type:numeric(8,2);not null;default:0" json:"mcq_attempt_max_score"`
	MCQAttemptAccuracy float64 `gorm:"column:mcq_attempt_accuracy;type:numeric(5,2);not null;default:0" json:"mcq_attempt_accuracy"`

	MCQAttemptDurationSec *int `gorm:"column:mcq_attempt_duration_sec" json:"mcq_attempt_duration_sec,omitempty"`

	MCQAttemptSubmittedAt time.Time `gorm:"column:mcq_attempt_submitted_at;autoCreateTime" json:"mcq_attempt_submitted_at"`

	// Relations
	Responses []MCQResponseModel `gorm:"foreignKey:MCQResponseAttemptID;references:MCQAttemptID" json:"responses,omitempty"`
}

func (MCQAttemptModel) TableName() string { return "mcq_attempts" }

/* =========================================================
   MODEL: mcq_responses
========================================================= */

// SelectedIndex -1 marks a question the user skipped explicitly.
const MCQResponseSkipped int16 = -1

type MCQResponseModel struct {
	MCQResponseID uuid.UUID `gorm:"column:mcq_response_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mcq_response_id"`

	MCQResponseAttemptID  uuid.UUID `gorm:"column:mcq_response_attempt_id;type:uuid;not null;uniqueIndex:uq_mcq_responses_attempt_question,priority:1;index:idx_mcq_responses_attempt" json:"mcq_response_attempt_id"`
	MCQResponseQuestionID uuid.UUID `gorm:"column:mcq_response_question_id;type:uuid;not null;uniqueIndex:uq_mcq_responses_attempt_question,priority:2" json:"mcq_response_question_id"`

	MCQResponseSelectedIndex int16 `gorm:"column:mcq_response_selected_index;type:smallint;not null;default:-1" json:"mcq_response_selected_index"`
	MCQResponseIsCorrect     bool  `gorm:"column:mcq_response_is_correct;not null;default:false" json:"mcq_response_is_correct"`

	MCQResponseCreatedAt time.Time `gorm:"column:mcq_response_created_at;autoCreateTime" json:"mcq_response_created_at"`
}

func (MCQResponseModel) TableName() string { return "mcq_responses" }

/* =========================================================
   Helper methods
========================================================= */

func (r *MCQResponseModel) IsSkipped() bool {
	return r.MCQResponseSelectedIndex == MCQResponseSkipped
}
