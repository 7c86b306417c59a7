// file: internals/features/mocktests/model/mock_test_attempt_model.go
package model

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: mock_test_attempt_status
========================================================= */

type MockAttemptStatus string

const (
	MockAttemptInProgress MockAttemptStatus = "in_progress"
	MockAttemptCompleted  MockAttemptStatus = "completed"
	MockAttemptAbandoned  MockAttemptStatus = "abandoned"
)

func (s MockAttemptStatus) String() string { return string(s) }

func (s MockAttemptStatus) Valid() bool {
	switch s {
	case MockAttemptInProgress, MockAttemptCompleted, MockAttemptAbandoned:
		return true
	}
	return false
}

func (s *MockAttemptStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = MockAttemptInProgress
	case string:
		*s = MockAttemptStatus(v)
	case []byte:
		*s = MockAttemptStatus(string(v))
	default:
		return errors.New("mock_test_attempt_status: unsupported scan type")
	}
	return nil
}

func (s MockAttemptStatus) Value() (driver.Value, error) {
	return string(s), nil
}

/* =========================================================
   MODEL: mock_test_attempts
========================================================= */

type MockTestAttemptModel struct {
	MockTestAttemptID uuid.UUID `gorm:"column:mock_test_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mock_test_attempt_id"`

	// At most one open attempt per user per test; history rows are free.
	MockTestAttemptUserID uuid.UUID `gorm:"column:mock_test_attempt_user_id;type:uuid;not null;uniqueIndex:uq_mock_test_attempts_open,priority:1,where:mock_test_attempt_status = 'in_progress';index:idx_mock_test_attempts_user" json:"mock_test_attempt_user_id"`
	MockTestAttemptTestID uuid.UUID `gorm:"column:mock_test_attempt_test_id;type:uuid;not null;uniqueIndex:uq_mock_test_attempts_open,priority:2;index:idx_mock_test_attempts_test" json:"mock_test_attempt_test_id"`

	MockTestAttemptStatus MockAttemptStatus `gorm:"column:mock_test_attempt_status;type:varchar(12);not null;default:'in_progress'" json:"mock_test_attempt_status"`

	MockTestAttemptStartedAt   time.Time  `gorm:"column:mock_test_attempt_started_at;autoCreateTime" json:"mock_test_attempt_started_at"`
	MockTestAttemptCompletedAt *time.Time `gorm:"column:mock_test_attempt_completed_at" json:"mock_test_attempt_completed_at,omitempty"`

	MockTestAttemptTotalQuestions int `gorm:"column:mock_test_attempt_total_questions;not null;default:0" json:"mock_test_attempt_total_questions"`
	MockTestAttemptAttempted      int `gorm:"column:mock_test_attempt_attempted;not null;default:0" json:"mock_test_attempt_attempted"`
	MockTestAttemptCorrect        int `gorm:"column:mock_test_attempt_correct;not null;default:0" json:"mock_test_attempt_correct"`
	MockTestAttemptWrong          int `gorm:"column:mock_test_attempt_wrong;not null;default:0" json:"mock_test_attempt_wrong"`
	MockTestAttemptSkipped        int `gorm:"column:mock_test_attempt_skipped;not null;default:0" json:"mock_test_attempt_skipped"`

	MockTestAttemptScore    float64 `gorm:"column:mock_test_attempt_score;type:numeric(8,2);not null;default:0" json:"mock_test_attempt_score"`
	MockTestAttemptMaxScore float64 `gorm:"column:mock_test_attempt_max_score;type:numeric(8,2);not null;default:0" json:"mock_test_attempt_max_score"`
	MockTestAttemptAccuracy float64 `gorm:"column:mock_test_attempt_accuracy;type:numeric(5,2);not null;default:0" json:"mock_test_attempt_accuracy"`

	MockTestAttemptDurationSec *int `gorm:"column:mock_test_attempt_duration_sec" json:"mock_test_attempt_duration_sec,omitempty"`

	// question_id -> selected option index, written once at submit.
	MockTestAttemptAnswers datatypes.JSON `gorm:"column:mock_test_attempt_answers;type:jsonb" json:"mock_test_attempt_answers,omitempty"`

	MockTestAttemptCreatedAt time.Time `gorm:"column:mock_test_attempt_created_at;autoCreateTime" json:"mock_test_attempt_created_at"`
	MockTestAttemptUpdatedAt time.Time `gorm:"column:mock_test_attempt_updated_at;autoUpdateTime" json:"mock_test_attempt_updated_at"`
}

func (MockTestAttemptModel) TableName() string { return "mock_test_attempts" }

// ExpiresAt is the hard deadline for an open attempt.
func (a *MockTestAttemptModel) ExpiresAt(durationMinutes int) time.Time {
	return a.MockTestAttemptStartedAt.Add(time.Duration(durationMinutes) * time.Minute)
}
