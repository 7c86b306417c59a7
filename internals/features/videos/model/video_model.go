// file: internals/features/videos/model/video_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoModel is one catalog entry pointing at a YouTube lecture. The app
// never hosts video bytes; it stores the ID and renders an embed.
type VideoModel struct {
	VideoID uuid.UUID `gorm:"column:video_id;type:uuid;default:gen_random_uuid();primaryKey" json:"video_id"`

	VideoSubjectID uuid.UUID `gorm:"column:video_subject_id;type:uuid;not null;index:idx_videos_subject" json:"video_subject_id"`

	VideoTitle     string `gorm:"column:video_title;type:varchar(200);not null" json:"video_title"`
	VideoYoutubeID string `gorm:"column:video_youtube_id;type:varchar(20);not null" json:"video_youtube_id"`

	VideoDurationSeconds *int    `gorm:"column:video_duration_seconds" json:"video_duration_seconds,omitempty"`
	VideoLecturer        *string `gorm:"column:video_lecturer;type:varchar(120)" json:"video_lecturer,omitempty"`

	VideoPosition    int  `gorm:"column:video_position;not null;default:0" json:"video_position"`
	VideoIsPublished bool `gorm:"column:video_is_published;not null;default:false" json:"video_is_published"`

	VideoCreatedAt time.Time      `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt time.Time      `gorm:"column:video_updated_at;autoUpdateTime" json:"video_updated_at"`
	VideoDeletedAt gorm.DeletedAt `gorm:"column:video_deleted_at;index" json:"-"`
}

func (VideoModel) TableName() string { return "videos" }

func (m *VideoModel) BeforeSave(tx *gorm.DB) error {
	m.VideoTitle = strings.TrimSpace(m.VideoTitle)
	m.VideoYoutubeID = strings.TrimSpace(m.VideoYoutubeID)
	m.VideoUpdatedAt = time.Now()
	return nil
}
