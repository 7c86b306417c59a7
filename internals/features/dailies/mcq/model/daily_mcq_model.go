// file: internals/features/dailies/mcq/model/daily_mcq_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
)

/* =========================================================
   ENUM: mcq_question_difficulty
========================================================= */

type MCQDifficulty string

const (
	MCQDifficultyEasy   MCQDifficulty = constants.DifficultyEasy
	MCQDifficultyMedium MCQDifficulty = constants.DifficultyMedium
	MCQDifficultyHard   MCQDifficulty = constants.DifficultyHard
)

func (d MCQDifficulty) String() string { return string(d) }

func (d MCQDifficulty) Valid() bool {
	switch d {
	case MCQDifficultyEasy, MCQDifficultyMedium, MCQDifficultyHard:
		return true
	}
	return false
}

func (d *MCQDifficulty) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = MCQDifficultyMedium
	case string:
		*d = MCQDifficulty(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*d = MCQDifficulty(strings.ToLower(strings.TrimSpace(string(v))))
	default:
		return fmt.Errorf("unsupported scan type for MCQDifficulty: %T", value)
	}
	return nil
}

func (d MCQDifficulty) Value() (driver.Value, error) { return string(d), nil }

/* =========================================================
   MODEL: daily_mcqs
   One quiz per calendar date (app timezone).
========================================================= */

type DailyMCQModel struct {
	DailyMCQID uuid.UUID `gorm:"column:daily_mcq_id;type:uuid;default:gen_random_uuid();primaryKey" json:"daily_mcq_id"`

	DailyMCQDate  time.Time `gorm:"column:daily_mcq_date;type:date;not null;uniqueIndex:uq_daily_mcqs_date" json:"daily_mcq_date"`
	DailyMCQTitle string    `gorm:"column:daily_mcq_title;type:varchar(200);not null" json:"daily_mcq_title"`
	DailyMCQTopic *string   `gorm:"column:daily_mcq_topic;type:varchar(120)" json:"daily_mcq_topic,omitempty"`

	DailyMCQIsPublished bool `gorm:"column:daily_mcq_is_published;not null;default:false" json:"daily_mcq_is_published"`

	DailyMCQCreatedAt time.Time      `gorm:"column:daily_mcq_created_at;autoCreateTime" json:"daily_mcq_created_at"`
	DailyMCQUpdatedAt time.Time      `gorm:"column:daily_mcq_updated_at;autoUpdateTime" json:"daily_mcq_updated_at"`
	DailyMCQDeletedAt gorm.DeletedAt `gorm:"column:daily_mcq_deleted_at;index" json:"-"`

	// Relations
	Questions []MCQQuestionModel `gorm:"foreignKey:MCQQuestionDailyMCQID;references:DailyMCQID" json:"questions,omitempty"`
}

func (DailyMCQModel) TableName() string { return "daily_mcqs" }

func (m *DailyMCQModel) BeforeSave(tx *gorm.DB) error {
	m.DailyMCQTitle = strings.TrimSpace(m.DailyMCQTitle)
	m.DailyMCQUpdatedAt = time.Now()
	return nil
}

/* =========================================================
   MODEL: mcq_questions
========================================================= */

type MCQQuestionModel struct {
	MCQQuestionID uuid.UUID `gorm:"column:mcq_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mcq_question_id"`

	MCQQuestionDailyMCQID uuid.UUID `gorm:"column:mcq_question_daily_mcq_id;type:uuid;not null;index:idx_mcq_questions_daily" json:"mcq_question_daily_mcq_id"`

	MCQQuestionText    string         `gorm:"column:mcq_question_text;type:text;not null" json:"mcq_question_text"`
	MCQQuestionOptions pq.StringArray `gorm:"column:mcq_question_options;type:text[];not null" json:"mcq_question_options"`

	// 0-based position inside MCQQuestionOptions.
	MCQQuestionCorrectIndex int16 `gorm:"column:mcq_question_correct_index;type:smallint;not null" json:"mcq_question_correct_index"`

	MCQQuestionExplanation *string `gorm:"column:mcq_question_explanation;type:text" json:"mcq_question_explanation,omitempty"`
	MCQQuestionSubject     *string `gorm:"column:mcq_question_subject;type:varchar(120)" json:"mcq_question_subject,omitempty"`

	MCQQuestionDifficulty MCQDifficulty `gorm:"column:mcq_question_difficulty;type:varchar(10);not null;default:'medium'" json:"mcq_question_difficulty"`

	MCQQuestionMarks    float64 `gorm:"column:mcq_question_marks;type:numeric(6,2);not null;default:2.0" json:"mcq_question_marks"`
	MCQQuestionPosition int     `gorm:"column:mcq_question_position;not null;default:0" json:"mcq_question_position"`

	MCQQuestionCreatedAt time.Time `gorm:"column:mcq_question_created_at;autoCreateTime" json:"mcq_question_created_at"`
	MCQQuestionUpdatedAt time.Time `gorm:"column:mcq_question_updated_at;autoUpdateTime" json:"mcq_question_updated_at"`
}

func (MCQQuestionModel) TableName() string { return "mcq_questions" }

func (q *MCQQuestionModel) BeforeSave(tx *gorm.DB) error {
	q.MCQQuestionText = strings.TrimSpace(q.MCQQuestionText)
	if !q.MCQQuestionDifficulty.Valid() {
		q.MCQQuestionDifficulty = MCQDifficultyMedium
	}
	if q.MCQQuestionMarks <= 0 {
		q.MCQQuestionMarks = 2.0
	}
	q.MCQQuestionUpdatedAt = time.Now()
	return nil
}
