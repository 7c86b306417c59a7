// file: internals/features/dailies/mains/model/mains_attempt_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: mains_evaluation_status
========================================================= */

type MainsEvaluationStatus string

const (
	MainsEvaluationPending    MainsEvaluationStatus = "pending"
	MainsEvaluationEvaluating MainsEvaluationStatus = "evaluating"
	MainsEvaluationCompleted  MainsEvaluationStatus = "completed"
)

func (s MainsEvaluationStatus) String() string { return string(s) }

func (s MainsEvaluationStatus) Valid() bool {
	switch s {
	case MainsEvaluationPending, MainsEvaluationEvaluating, MainsEvaluationCompleted:
		return true
	}
	return false
}

func (s *MainsEvaluationStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = MainsEvaluationPending
	case string:
		*s = MainsEvaluationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = MainsEvaluationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	default:
		return fmt.Errorf("unsupported scan type for MainsEvaluationStatus: %T", value)
	}
	return nil
}

func (s MainsEvaluationStatus) Value() (driver.Value, error) { return string(s), nil }

/* =========================================================
   MODEL: mains_attempts
   One answer per user per question; resubmits overwrite.
========================================================= */

type MainsAttemptModel struct {
	MainsAttemptID uuid.UUID `gorm:"column:mains_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mains_attempt_id"`

	MainsAttemptUserID     uuid.UUID `gorm:"column:mains_attempt_user_id;type:uuid;not null;uniqueIndex:uq_mains_attempts_user_question,priority:1;index:idx_mains_attempts_user" json:"mains_attempt_user_id"`
	MainsAttemptQuestionID uuid.UUID `gorm:"column:mains_attempt_question_id;type:uuid;not null;uniqueIndex:uq_mains_attempts_user_question,priority:2" json:"mains_attempt_question_id"`

	MainsAttemptContent   string `gorm:"column:mains_attempt_content;type:text;not null" json:"mains_attempt_content"`
	MainsAttemptWordCount int    `gorm:"column:mains_attempt_word_count;not null;default:0" json:"mains_attempt_word_count"`

	MainsAttemptSubmittedAt   time.Time  `gorm:"column:mains_attempt_submitted_at;autoCreateTime" json:"mains_attempt_submitted_at"`
	MainsAttemptResubmittedAt *time.Time `gorm:"column:mains_attempt_resubmitted_at" json:"mains_attempt_resubmitted_at,omitempty"`

	// Relations
	Evaluation *MainsEvaluationModel `gorm:"foreignKey:MainsEvaluationAttemptID;references:MainsAttemptID" json:"evaluation,omitempty"`
}

func (MainsAttemptModel) TableName() string { return "mains_attempts" }

/* =========================================================
   MODEL: mains_evaluations
   One row per attempt; reset to pending on resubmit.
========================================================= */

type MainsEvaluationModel struct {
	MainsEvaluationID uuid.UUID `gorm:"column:mains_evaluation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mains_evaluation_id"`

	MainsEvaluationAttemptID uuid.UUID `gorm:"column:mains_evaluation_attempt_id;type:uuid;not null;uniqueIndex:uq_mains_evaluations_attempt" json:"mains_evaluation_attempt_id"`

	MainsEvaluationStatus MainsEvaluationStatus `gorm:"column:mains_evaluation_status;type:varchar(12);not null;default:'pending'" json:"mains_evaluation_status"`

	MainsEvaluationScore *float64 `gorm:"column:mains_evaluation_score;type:numeric(6,2)" json:"mains_evaluation_score,omitempty"`

	// {introduction, body, conclusion, language} each 0-10.
	MainsEvaluationBreakdown   datatypes.JSON `gorm:"column:mains_evaluation_breakdown;type:jsonb" json:"mains_evaluation_breakdown,omitempty"`
	MainsEvaluationFeedback    *string        `gorm:"column:mains_evaluation_feedback;type:text" json:"mains_evaluation_feedback,omitempty"`
	MainsEvaluationSuggestions pq.StringArray `gorm:"column:mains_evaluation_suggestions;type:text[]" json:"mains_evaluation_suggestions,omitempty"`

	MainsEvaluationEvaluatedAt *time.Time `gorm:"column:mains_evaluation_evaluated_at" json:"mains_evaluation_evaluated_at,omitempty"`

	MainsEvaluationCreatedAt time.Time `gorm:"column:mains_evaluation_created_at;autoCreateTime" json:"mains_evaluation_created_at"`
	MainsEvaluationUpdatedAt time.Time `gorm:"column:mains_evaluation_updated_at;autoUpdateTime" json:"mains_evaluation_updated_at"`
}

func (MainsEvaluationModel) TableName() string { return "mains_evaluations" }
