// file: internals/features/mocktests/model/mock_test_model.go
package model

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
)

/* =========================================================
   ENUM: question difficulty
========================================================= */

type MockDifficulty string

const (
	DifficultyEasy   MockDifficulty = constants.DifficultyEasy
	DifficultyMedium MockDifficulty = constants.DifficultyMedium
	DifficultyHard   MockDifficulty = constants.DifficultyHard
)

func (d MockDifficulty) String() string { return string(d) }

func (d MockDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (d *MockDifficulty) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DifficultyMedium
	case string:
		*d = MockDifficulty(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*d = MockDifficulty(strings.ToLower(strings.TrimSpace(string(v))))
	default:
		return errors.New("mock_test_question_difficulty: unsupported scan type")
	}
	return nil
}

func (d MockDifficulty) Value() (driver.Value, error) { return string(d), nil }

/* =========================================================
   ENUM: mock_test_paper
========================================================= */

type MockTestPaper string

const (
	PaperPrelimsGS   MockTestPaper = "prelims_gs"
	PaperPrelimsCSAT MockTestPaper = "prelims_csat"
)

func (p MockTestPaper) String() string { return string(p) }

func (p MockTestPaper) Valid() bool {
	switch p {
	case PaperPrelimsGS, PaperPrelimsCSAT:
		return true
	}
	return false
}

func (p *MockTestPaper) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = PaperPrelimsGS
	case string:
		*p = MockTestPaper(v)
	case []byte:
		*p = MockTestPaper(string(v))
	default:
		return errors.New("mock_test_paper: unsupported scan type")
	}
	return nil
}

func (p MockTestPaper) Value() (driver.Value, error) {
	return string(p), nil
}

/* =========================================================
   MODEL: mock_tests
========================================================= */

// DefaultNegativeRatio matches prelims marking: one third of the
// question's marks per wrong answer.
const DefaultNegativeRatio = 0.3333

type MockTestModel struct {
	MockTestID uuid.UUID `gorm:"column:mock_test_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mock_test_id"`

	MockTestTitle       string        `gorm:"column:mock_test_title;type:varchar(200);not null" json:"mock_test_title"`
	MockTestDescription *string       `gorm:"column:mock_test_description;type:text" json:"mock_test_description,omitempty"`
	MockTestPaper       MockTestPaper `gorm:"column:mock_test_paper;type:varchar(20);not null;default:'prelims_gs';index:idx_mock_tests_paper" json:"mock_test_paper"`
	MockTestSubject     *string       `gorm:"column:mock_test_subject;type:varchar(80)" json:"mock_test_subject,omitempty"`

	MockTestDurationMinutes int     `gorm:"column:mock_test_duration_minutes;not null;default:120" json:"mock_test_duration_minutes"`
	MockTestNegativeRatio   float64 `gorm:"column:mock_test_negative_ratio;type:numeric(6,4);not null;default:0.3333" json:"mock_test_negative_ratio"`

	MockTestIsPublished bool `gorm:"column:mock_test_is_published;not null;default:false" json:"mock_test_is_published"`
	MockTestIsGenerated bool `gorm:"column:mock_test_is_generated;not null;default:false" json:"mock_test_is_generated"`

	// Set for generated tests; the owner is the only caller who sees them.
	MockTestOwnerUserID *uuid.UUID `gorm:"column:mock_test_owner_user_id;type:uuid;index:idx_mock_tests_owner" json:"mock_test_owner_user_id,omitempty"`

	// bcrypt hash; non-nil means Start requires an access code.
	MockTestAccessCodeHash []byte `gorm:"column:mock_test_access_code_hash;type:bytea" json:"-"`

	MockTestCreatedAt time.Time      `gorm:"column:mock_test_created_at;autoCreateTime" json:"mock_test_created_at"`
	MockTestUpdatedAt time.Time      `gorm:"column:mock_test_updated_at;autoUpdateTime" json:"mock_test_updated_at"`
	MockTestDeletedAt gorm.DeletedAt `gorm:"column:mock_test_deleted_at;index" json:"-"`

	Questions []MockTestQuestionModel `gorm:"foreignKey:MockTestQuestionTestID;references:MockTestID" json:"questions,omitempty"`
}

func (MockTestModel) TableName() string { return "mock_tests" }

func (m *MockTestModel) BeforeSave(tx *gorm.DB) error {
	m.MockTestTitle = strings.TrimSpace(m.MockTestTitle)
	if !m.MockTestPaper.Valid() {
		m.MockTestPaper = PaperPrelimsGS
	}
	if m.MockTestDurationMinutes <= 0 {
		m.MockTestDurationMinutes = 120
	}
	if m.MockTestNegativeRatio < 0 {
		m.MockTestNegativeRatio = DefaultNegativeRatio
	}
	m.MockTestUpdatedAt = time.Now()
	return nil
}

// HasAccessCode reports whether Start must present a code.
func (m *MockTestModel) HasAccessCode() bool {
	return len(m.MockTestAccessCodeHash) > 0
}

// VisibleTo reports whether the caller may see this test at all: published
// catalog tests are public, generated tests are owner-only.
func (m *MockTestModel) VisibleTo(userID uuid.UUID) bool {
	if m.MockTestIsGenerated {
		return m.MockTestOwnerUserID != nil && *m.MockTestOwnerUserID == userID
	}
	return m.MockTestIsPublished
}

/* =========================================================
   MODEL: mock_test_questions
========================================================= */

type MockTestQuestionModel struct {
	MockTestQuestionID uuid.UUID `gorm:"column:mock_test_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mock_test_question_id"`

	MockTestQuestionTestID uuid.UUID `gorm:"column:mock_test_question_test_id;type:uuid;not null;index:idx_mock_test_questions_test" json:"mock_test_question_test_id"`

	MockTestQuestionText    string         `gorm:"column:mock_test_question_text;type:text;not null" json:"mock_test_question_text"`
	MockTestQuestionOptions pq.StringArray `gorm:"column:mock_test_question_options;type:text[];not null" json:"mock_test_question_options"`

	MockTestQuestionCorrectIndex int16   `gorm:"column:mock_test_question_correct_index;type:smallint;not null" json:"mock_test_question_correct_index"`
	MockTestQuestionExplanation  *string `gorm:"column:mock_test_question_explanation;type:text" json:"mock_test_question_explanation,omitempty"`

	MockTestQuestionSubject    string         `gorm:"column:mock_test_question_subject;type:varchar(80);not null;index:idx_mock_test_questions_subject" json:"mock_test_question_subject"`
	MockTestQuestionDifficulty MockDifficulty `gorm:"column:mock_test_question_difficulty;type:varchar(10);not null;default:'medium'" json:"mock_test_question_difficulty"`

	MockTestQuestionMarks    float64 `gorm:"column:mock_test_question_marks;type:numeric(6,2);not null;default:2" json:"mock_test_question_marks"`
	MockTestQuestionPosition int     `gorm:"column:mock_test_question_position;not null;default:0" json:"mock_test_question_position"`

	MockTestQuestionCreatedAt time.Time `gorm:"column:mock_test_question_created_at;autoCreateTime" json:"mock_test_question_created_at"`
	MockTestQuestionUpdatedAt time.Time `gorm:"column:mock_test_question_updated_at;autoUpdateTime" json:"mock_test_question_updated_at"`
}

func (MockTestQuestionModel) TableName() string { return "mock_test_questions" }

func (q *MockTestQuestionModel) BeforeSave(tx *gorm.DB) error {
	q.MockTestQuestionText = strings.TrimSpace(q.MockTestQuestionText)
	if !q.MockTestQuestionDifficulty.Valid() {
		q.MockTestQuestionDifficulty = DifficultyMedium
	}
	if q.MockTestQuestionMarks <= 0 {
		q.MockTestQuestionMarks = 2
	}
	q.MockTestQuestionUpdatedAt = time.Now()
	return nil
}
