// file: internals/features/videos/dto/video_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/videos/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =======================
   Requests
======================= */

type CreateVideoSubjectRequest struct {
	VideoSubjectName     string `json:"video_subject_name" validate:"required,max=120"`
	VideoSubjectPosition *int   `json:"video_subject_position" validate:"omitempty,gte=0"`
}

type PatchVideoSubjectRequest struct {
	VideoSubjectName     *string `json:"video_subject_name" validate:"omitempty,max=120"`
	VideoSubjectPosition *int    `json:"video_subject_position" validate:"omitempty,gte=0"`
}

type CreateVideoRequest struct {
	VideoSubjectID       uuid.UUID `json:"video_subject_id" validate:"required"`
	VideoTitle           string    `json:"video_title" validate:"required,max=200"`
	VideoYoutubeID       string    `json:"video_youtube_id" validate:"required,min=8,max=20"`
	VideoDurationSeconds *int      `json:"video_duration_seconds" validate:"omitempty,gt=0,lte=86400"`
	VideoLecturer        *string   `json:"video_lecturer" validate:"omitempty,max=120"`
	VideoPosition        *int      `json:"video_position" validate:"omitempty,gte=0"`
	VideoIsPublished     *bool     `json:"video_is_published"`
}

func (r *CreateVideoRequest) ToModel() *model.VideoModel {
	m := &model.VideoModel{
		VideoSubjectID:       r.VideoSubjectID,
		VideoTitle:           strings.TrimSpace(r.VideoTitle),
		VideoYoutubeID:       strings.TrimSpace(r.VideoYoutubeID),
		VideoDurationSeconds: r.VideoDurationSeconds,
		VideoLecturer:        trimPtr(r.VideoLecturer),
	}
	if r.VideoPosition != nil {
		m.VideoPosition = *r.VideoPosition
	}
	if r.VideoIsPublished != nil {
		m.VideoIsPublished = *r.VideoIsPublished
	}
	return m
}

type PatchVideoRequest struct {
	VideoSubjectID       *uuid.UUID `json:"video_subject_id"`
	VideoTitle           *string    `json:"video_title" validate:"omitempty,max=200"`
	VideoYoutubeID       *string    `json:"video_youtube_id" validate:"omitempty,min=8,max=20"`
	VideoDurationSeconds *int       `json:"video_duration_seconds" validate:"omitempty,gt=0,lte=86400"`
	VideoLecturer        *string    `json:"video_lecturer" validate:"omitempty,max=120"`
	VideoPosition        *int       `json:"video_position" validate:"omitempty,gte=0"`
	VideoIsPublished     *bool      `json:"video_is_published"`
}

/* =======================
   Responses
======================= */

type VideoSubjectResponse struct {
	model.VideoSubjectModel
	VideoCount int64 `json:"video_count"`
}
