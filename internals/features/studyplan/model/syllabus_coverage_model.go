// file: internals/features/studyplan/model/syllabus_coverage_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SyllabusCoverageModel is the self-assessed coverage per subject. Percent
// is a plain set, not a latch; aspirants do revise coverage down after a
// weak test.
type SyllabusCoverageModel struct {
	SyllabusCoverageID uuid.UUID `gorm:"column:syllabus_coverage_id;type:uuid;default:gen_random_uuid();primaryKey" json:"syllabus_coverage_id"`

	SyllabusCoverageUserID  uuid.UUID `gorm:"column:syllabus_coverage_user_id;type:uuid;not null;uniqueIndex:uq_syllabus_coverage_user_subject,priority:1" json:"syllabus_coverage_user_id"`
	SyllabusCoverageSubject string    `gorm:"column:syllabus_coverage_subject;type:varchar(80);not null;uniqueIndex:uq_syllabus_coverage_user_subject,priority:2" json:"syllabus_coverage_subject"`

	SyllabusCoveragePercent    int16          `gorm:"column:syllabus_coverage_percent;type:smallint;not null;default:0" json:"syllabus_coverage_percent"`
	SyllabusCoverageTopicsDone pq.StringArray `gorm:"column:syllabus_coverage_topics_done;type:text[]" json:"syllabus_coverage_topics_done,omitempty"`

	SyllabusCoverageCreatedAt time.Time `gorm:"column:syllabus_coverage_created_at;autoCreateTime" json:"syllabus_coverage_created_at"`
	SyllabusCoverageUpdatedAt time.Time `gorm:"column:syllabus_coverage_updated_at;autoUpdateTime" json:"syllabus_coverage_updated_at"`
}

func (SyllabusCoverageModel) TableName() string { return "syllabus_coverage" }

func (m *SyllabusCoverageModel) BeforeSave(tx *gorm.DB) error {
	m.SyllabusCoverageSubject = strings.TrimSpace(m.SyllabusCoverageSubject)
	m.SyllabusCoverageUpdatedAt = time.Now()
	return nil
}
