// file: internals/features/editorials/dto/editorial_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sarathi_backend/internals/features/editorials/model"
	"sarathi_backend/internals/helpers/apptime"
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

/* ==============================
   ADMIN CREATE / PATCH
============================== */

type CreateEditorialRequest struct {
	EditorialTitle       string   `json:"editorial_title" validate:"required,max=200"`
	EditorialSource      string   `json:"editorial_source" validate:"required,oneof=the_hindu indian_express pib down_to_earth other"`
	EditorialURL         string   `json:"editorial_url" validate:"required,url"`
	EditorialPublishedOn string   `json:"editorial_published_on" validate:"required,datetime=2006-01-02"`
	EditorialSummary     *string  `json:"editorial_summary" validate:"omitempty"`
	EditorialGSPapers    []string `json:"editorial_gs_papers" validate:"omitempty,dive,oneof=GS1 GS2 GS3 GS4 Essay"`
	EditorialTags        []string `json:"editorial_tags" validate:"omitempty,dive,required,max=50"`
	EditorialReadMinutes *int     `json:"editorial_read_minutes" validate:"omitempty,gt=0,lte=120"`
	EditorialIsPublished *bool    `json:"editorial_is_published" validate:"omitempty"`
}

func (r *CreateEditorialRequest) ToModel() (*model.EditorialModel, error) {
	published, err := apptime.ParseDate(r.EditorialPublishedOn)
	if err != nil {
		return nil, err
	}
	readMinutes := 8
	if r.EditorialReadMinutes != nil {
		readMinutes = *r.EditorialReadMinutes
	}
	isPub := false
	if r.EditorialIsPublished != nil {
		isPub = *r.EditorialIsPublished
	}
	return &model.EditorialModel{
		EditorialTitle:       strings.TrimSpace(r.EditorialTitle),
		EditorialSource:      model.EditorialSource(r.EditorialSource),
		EditorialURL:         strings.TrimSpace(r.EditorialURL),
		EditorialPublishedOn: published,
		EditorialSummary:     trimPtr(r.EditorialSummary),
		EditorialGSPapers:    pq.StringArray(r.EditorialGSPapers),
		EditorialTags:        pq.StringArray(r.EditorialTags),
		EditorialReadMinutes: readMinutes,
		EditorialIsPublished: isPub,
	}, nil
}

type PatchEditorialRequest struct {
	EditorialTitle       *string  `json:"editorial_title" validate:"omitempty,max=200"`
	EditorialSource      *string  `json:"editorial_source" validate:"omitempty,oneof=the_hindu indian_express pib down_to_earth other"`
	EditorialURL         *string  `json:"editorial_url" validate:"omitempty,url"`
	EditorialPublishedOn *string  `json:"editorial_published_on" validate:"omitempty,datetime=2006-01-02"`
	EditorialSummary     *string  `json:"editorial_summary" validate:"omitempty"`
	EditorialGSPapers    []string `json:"editorial_gs_papers" validate:"omitempty,dive,oneof=GS1 GS2 GS3 GS4 Essay"`
	EditorialTags        []string `json:"editorial_tags" validate:"omitempty,dive,required,max=50"`
	EditorialReadMinutes *int     `json:"editorial_read_minutes" validate:"omitempty,gt=0,lte=120"`
	EditorialIsPublished *bool    `json:"editorial_is_published" validate:"omitempty"`
}

/* ==============================
   PROGRESS / BOOKMARK requests
============================== */

type UpdateProgressRequest struct {
	Percent *int `json:"percent" validate:"required,gte=0,lte=100"`
}

type BookmarkRequest struct {
	Note *string `json:"note" validate:"omitempty,max=500"`
}

/* ==============================
   RESPONSE DTOs
============================== */

type EditorialResponse struct {
	EditorialID            uuid.UUID `json:"editorial_id"`
	EditorialTitle         string    `json:"editorial_title"`
	EditorialSource        string    `json:"editorial_source"`
	EditorialURL           string    `json:"editorial_url"`
	EditorialPublishedOn   string    `json:"editorial_published_on"`
	EditorialSummary       *string   `json:"editorial_summary,omitempty"`
	EditorialGSPapers      []string  `json:"editorial_gs_papers,omitempty"`
	EditorialTags          []string  `json:"editorial_tags,omitempty"`
	EditorialCoverURL      *string   `json:"editorial_cover_url,omitempty"`
	EditorialCoverThumbURL *string   `json:"editorial_cover_thumb_url,omitempty"`
	EditorialReadMinutes   int       `json:"editorial_read_minutes"`
	EditorialIsPublished   bool      `json:"editorial_is_published"`
	EditorialCreatedAt     time.Time `json:"editorial_created_at"`

	// Caller context
	ProgressPercent int        `json:"progress_percent"`
	IsRead          bool       `json:"is_read"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
	IsBookmarked    bool       `json:"is_bookmarked"`
}

type BookmarkResponse struct {
	EditorialBookmarkID        uuid.UUID `json:"editorial_bookmark_id"`
	EditorialBookmarkNote      *string   `json:"editorial_bookmark_note,omitempty"`
	EditorialBookmarkCreatedAt time.Time `json:"editorial_bookmark_created_at"`

	Editorial EditorialResponse `json:"editorial"`
}

type EditorialStatsResponse struct {
	TotalRead     int64 `json:"total_read"`
	ReadThisWeek  int64 `json:"read_this_week"`
	TotalBookmark int64 `json:"total_bookmarks"`
	StreakDays    int   `json:"streak_days"`
}

/* ==============================
   MAPPERS
============================== */

func FromEditorialModel(m *model.EditorialModel) EditorialResponse {
	return EditorialResponse{
		EditorialID:            m.EditorialID,
		EditorialTitle:         m.EditorialTitle,
		EditorialSource:        m.EditorialSource.String(),
		EditorialURL:           m.EditorialURL,
		EditorialPublishedOn:   apptime.FormatDate(m.EditorialPublishedOn),
		EditorialSummary:       m.EditorialSummary,
		EditorialGSPapers:      []string(m.EditorialGSPapers),
		EditorialTags:          []string(m.EditorialTags),
		EditorialCoverURL:      m.EditorialCoverURL,
		EditorialCoverThumbURL: m.EditorialCoverThumbURL,
		EditorialReadMinutes:   m.EditorialReadMinutes,
		EditorialIsPublished:   m.EditorialIsPublished,
		EditorialCreatedAt:     m.EditorialCreatedAt,
	}
}

// AttachProgress decorates a response with the caller's reading state.
func (r *EditorialResponse) AttachProgress(p *model.EditorialProgressModel) {
	if p == nil {
		return
	}
	r.ProgressPercent = int(p.EditorialProgressPercent)
	r.IsRead = p.EditorialProgressIsRead
	r.ReadAt = p.EditorialProgressReadAt
}
