// file: internals/features/commerce/model/mentor_question_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================
   Enums
======================= */

type QuestionStatus string

const (
	QuestionOpen     QuestionStatus = "open"
	QuestionAnswered QuestionStatus = "answered"
)

func (s QuestionStatus) String() string { return string(s) }

func (s QuestionStatus) Valid() bool {
	return s == QuestionOpen || s == QuestionAnswered
}

func (s *QuestionStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = QuestionStatus(strings.ToLower(v))
	case []byte:
		*s = QuestionStatus(strings.ToLower(string(v)))
	case nil:
		*s = QuestionOpen
	default:
		return fmt.Errorf("unsupported type for QuestionStatus: %T", value)
	}
	return nil
}

func (s QuestionStatus) Value() (driver.Value, error) { return string(s), nil }

/* =======================
   Model
======================= */

type MentorQuestionModel struct {
	MentorQuestionID uuid.UUID `gorm:"column:mentor_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mentor_question_id"`

	MentorQuestionUserID uuid.UUID `gorm:"column:mentor_question_user_id;type:uuid;not null;index:idx_mentor_questions_user" json:"mentor_question_user_id"`

	MentorQuestionText    string  `gorm:"column:mentor_question_text;type:text;not null" json:"mentor_question_text"`
	MentorQuestionSubject *string `gorm:"column:mentor_question_subject;type:varchar(80)" json:"mentor_question_subject,omitempty"`

	MentorQuestionAnswer     *string    `gorm:"column:mentor_question_answer;type:text" json:"mentor_question_answer,omitempty"`
	MentorQuestionAnsweredBy *uuid.UUID `gorm:"column:mentor_question_answered_by;type:uuid" json:"mentor_question_answered_by,omitempty"`
	MentorQuestionAnsweredAt *time.Time `gorm:"column:mentor_question_answered_at" json:"mentor_question_answered_at,omitempty"`

	MentorQuestionStatus QuestionStatus `gorm:"column:mentor_question_status;type:varchar(10);not null;default:'open'" json:"mentor_question_status"`

	MentorQuestionCreatedAt time.Time      `gorm:"column:mentor_question_created_at;autoCreateTime" json:"mentor_question_created_at"`
	MentorQuestionUpdatedAt time.Time      `gorm:"column:mentor_question_updated_at;autoUpdateTime" json:"mentor_question_updated_at"`
	MentorQuestionDeletedAt gorm.DeletedAt `gorm:"column:mentor_question_deleted_at;index" json:"-"`
}

func (MentorQuestionModel) TableName() string { return "mentor_questions" }

func (m *MentorQuestionModel) BeforeSave(tx *gorm.DB) error {
	m.MentorQuestionText = strings.TrimSpace(m.MentorQuestionText)
	if m.MentorQuestionStatus == "" {
		m.MentorQuestionStatus = QuestionOpen
	}
	if !m.MentorQuestionStatus.Valid() {
		return fmt.Errorf("invalid question status: %q", m.MentorQuestionStatus)
	}
	m.MentorQuestionUpdatedAt = time.Now()
	return nil
}
