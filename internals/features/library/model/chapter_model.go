// file: internals/features/library/model/chapter_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChapterModel sits between a subject and its study materials. Slugs are
// unique per subject among live rows.
type ChapterModel struct {
	ChapterID uuid.UUID `gorm:"column:chapter_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chapter_id"`

	ChapterSubjectID uuid.UUID `gorm:"column:chapter_subject_id;type:uuid;not null;index:idx_chapters_subject;uniqueIndex:uq_chapters_subject_slug,priority:1,where:chapter_deleted_at IS NULL" json:"chapter_subject_id"`

	ChapterName string `gorm:"column:chapter_name;type:varchar(160);not null" json:"chapter_name"`
	ChapterSlug string `gorm:"column:chapter_slug;type:varchar(160);not null;uniqueIndex:uq_chapters_subject_slug,priority:2,where:chapter_deleted_at IS NULL" json:"chapter_slug"`

	ChapterPosition int `gorm:"column:chapter_position;not null;default:0" json:"chapter_position"`

	ChapterCreatedAt time.Time      `gorm:"column:chapter_created_at;autoCreateTime" json:"chapter_created_at"`
	ChapterUpdatedAt time.Time      `gorm:"column:chapter_updated_at;autoUpdateTime" json:"chapter_updated_at"`
	ChapterDeletedAt gorm.DeletedAt `gorm:"column:chapter_deleted_at;index" json:"-"`
}

func (ChapterModel) TableName() string { return "chapters" }

func (m *ChapterModel) BeforeSave(tx *gorm.DB) error {
	m.ChapterName = strings.TrimSpace(m.ChapterName)
	m.ChapterSlug = strings.ToLower(strings.TrimSpace(m.ChapterSlug))
	m.ChapterUpdatedAt = time.Now()
	return nil
}
