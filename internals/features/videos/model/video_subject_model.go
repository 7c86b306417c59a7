// file: internals/features/videos/model/video_subject_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoSubjectModel struct {
	VideoSubjectID uuid.UUID `gorm:"column:video_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"video_subject_id"`

	VideoSubjectName string `gorm:"column:video_subject_name;type:varchar(120);not null" json:"video_subject_name"`
	VideoSubjectSlug string `gorm:"column:video_subject_slug;type:varchar(160);not null;uniqueIndex:uq_video_subjects_slug,where:video_subject_deleted_at IS NULL" json:"video_subject_slug"`

	VideoSubjectPosition int `gorm:"column:video_subject_position;not null;default:0" json:"video_subject_position"`

	VideoSubjectCreatedAt time.Time      `gorm:"column:video_subject_created_at;autoCreateTime" json:"video_subject_created_at"`
	VideoSubjectUpdatedAt time.Time      `gorm:"column:video_subject_updated_at;autoUpdateTime" json:"video_subject_updated_at"`
	VideoSubjectDeletedAt gorm.DeletedAt `gorm:"column:video_subject_deleted_at;index" json:"-"`
}

func (VideoSubjectModel) TableName() string { return "video_subjects" }

func (m *VideoSubjectModel) BeforeSave(tx *gorm.DB) error {
	m.VideoSubjectName = strings.TrimSpace(m.VideoSubjectName)
	m.VideoSubjectSlug = strings.ToLower(strings.TrimSpace(m.VideoSubjectSlug))
	m.VideoSubjectUpdatedAt = time.Now()
	return nil
}
