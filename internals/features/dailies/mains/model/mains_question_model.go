// file: internals/features/dailies/mains/model/mains_question_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
)

/* =========================================================
   MODEL: mains_questions
   One answer-writing prompt per calendar date.
========================================================= */

type MainsQuestionModel struct {
	MainsQuestionID uuid.UUID `gorm:"column:mains_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mains_question_id"`

	MainsQuestionDate time.Time `gorm:"column:mains_question_date;type:date;not null;uniqueIndex:uq_mains_questions_date" json:"mains_question_date"`
	MainsQuestionText string    `gorm:"column:mains_question_text;type:text;not null" json:"mains_question_text"`

	// GS1 | GS2 | GS3 | GS4 | Essay
	MainsQuestionPaper string  `gorm:"column:mains_question_paper;type:varchar(10);not null" json:"mains_question_paper"`
	MainsQuestionTopic *string `gorm:"column:mains_question_topic;type:varchar(120)" json:"mains_question_topic,omitempty"`

	MainsQuestionWordLimit int     `gorm:"column:mains_question_word_limit;not null;default:250" json:"mains_question_word_limit"`
	MainsQuestionMarks     float64 `gorm:"column:mains_question_marks;type:numeric(6,2);not null;default:10" json:"mains_question_marks"`

	MainsQuestionIsPublished bool `gorm:"column:mains_question_is_published;not null;default:false" json:"mains_question_is_published"`

	MainsQuestionCreatedAt time.Time      `gorm:"column:mains_question_created_at;autoCreateTime" json:"mains_question_created_at"`
	MainsQuestionUpdatedAt time.Time      `gorm:"column:mains_question_updated_at;autoUpdateTime" json:"mains_question_updated_at"`
	MainsQuestionDeletedAt gorm.DeletedAt `gorm:"column:mains_question_deleted_at;index" json:"-"`
}

func (MainsQuestionModel) TableName() string { return "mains_questions" }

func (m *MainsQuestionModel) BeforeSave(tx *gorm.DB) error {
	m.MainsQuestionText = strings.TrimSpace(m.MainsQuestionText)
	if !ValidPaper(m.MainsQuestionPaper) {
		m.MainsQuestionPaper = constants.PaperGS1
	}
	if m.MainsQuestionWordLimit <= 0 {
		m.MainsQuestionWordLimit = 250
	}
	if m.MainsQuestionMarks <= 0 {
		m.MainsQuestionMarks = 10
	}
	m.MainsQuestionUpdatedAt = time.Now()
	return nil
}

// ValidPaper reports whether p is one of the mains paper codes.
func ValidPaper(p string) bool {
	for _, v := range constants.MainsPapers {
		if v == p {
			return true
		}
	}
	return false
}
