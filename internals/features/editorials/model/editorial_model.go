// file: internals/features/editorials/model/editorial_model.go
package model

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: editorial_source
========================================================= */

type EditorialSource string

const (
	SourceTheHindu      EditorialSource = "the_hindu"
	SourceIndianExpress EditorialSource = "indian_express"
	SourcePIB           EditorialSource = "pib"
	SourceDownToEarth   EditorialSource = "down_to_earth"
	SourceOther         EditorialSource = "other"
)

func (s EditorialSource) String() string { return string(s) }

func (s EditorialSource) Valid() bool {
	switch s {
	case SourceTheHindu, SourceIndianExpress, SourcePIB, SourceDownToEarth, SourceOther:
		return true
	}
	return false
}

func (s *EditorialSource) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = SourceOther
	case string:
		*s = EditorialSource(v)
	case []byte:
		*s = EditorialSource(string(v))
	default:
		return errors.New("editorial_source: unsupported scan type")
	}
	return nil
}

func (s EditorialSource) Value() (driver.Value, error) {
	return string(s), nil
}

/* =========================================================
   MODEL: editorials
========================================================= */

type EditorialModel struct {
	EditorialID uuid.UUID `gorm:"column:editorial_id;type:uuid;default:gen_random_uuid();primaryKey" json:"editorial_id"`

	EditorialTitle  string          `gorm:"column:editorial_title;type:varchar(200);not null" json:"editorial_title"`
	EditorialSource EditorialSource `gorm:"column:editorial_source;type:varchar(20);not null;default:'other'" json:"editorial_source"`
	EditorialURL    string          `gorm:"column:editorial_url;type:text;not null" json:"editorial_url"`

	EditorialPublishedOn time.Time `gorm:"column:editorial_published_on;type:date;not null;index:idx_editorials_published_on" json:"editorial_published_on"`

	EditorialSummary  *string        `gorm:"column:editorial_summary;type:text" json:"editorial_summary,omitempty"`
	EditorialGSPapers pq.StringArray `gorm:"column:editorial_gs_papers;type:text[]" json:"editorial_gs_papers,omitempty"`
	EditorialTags     pq.StringArray `gorm:"column:editorial_tags;type:text[]" json:"editorial_tags,omitempty"`

	EditorialCoverURL      *string `gorm:"column:editorial_cover_url;type:text" json:"editorial_cover_url,omitempty"`
	EditorialCoverThumbURL *string `gorm:"column:editorial_cover_thumb_url;type:text" json:"editorial_cover_thumb_url,omitempty"`

	EditorialReadMinutes int  `gorm:"column:editorial_read_minutes;not null;default:8" json:"editorial_read_minutes"`
	EditorialIsPublished bool `gorm:"column:editorial_is_published;not null;default:false" json:"editorial_is_published"`

	EditorialCreatedAt time.Time      `gorm:"column:editorial_created_at;autoCreateTime" json:"editorial_created_at"`
	EditorialUpdatedAt time.Time      `gorm:"column:editorial_updated_at;autoUpdateTime" json:"editorial_updated_at"`
	EditorialDeletedAt gorm.DeletedAt `gorm:"column:editorial_deleted_at;index" json:"-"`
}

func (EditorialModel) TableName() string { return "editorials" }

func (m *EditorialModel) BeforeSave(tx *gorm.DB) error {
	m.EditorialTitle = strings.TrimSpace(m.EditorialTitle)
	if !m.EditorialSource.Valid() {
		m.EditorialSource = SourceOther
	}
	if m.EditorialReadMinutes <= 0 {
		m.EditorialReadMinutes = 8
	}
	m.EditorialUpdatedAt = time.Now()
	return nil
}
