// file: internals/features/library/model/subject_model.go
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

type SubjectPaper string

const (
	SubjectPaperPrelims SubjectPaper = "prelims"
	SubjectPaperMains   SubjectPaper = "mains"
	SubjectPaperBoth    SubjectPaper = "both"
)

func (p SubjectPaper) String() string { return string(p) }

func (p SubjectPaper) Valid() bool {
	switch p {
	case SubjectPaperPrelims, SubjectPaperMains, SubjectPaperBoth:
		return true
	}
	return false
}

func (p *SubjectPaper) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = SubjectPaper(strings.ToLower(v))
	case []byte:
		*p = SubjectPaper(strings.ToLower(string(v)))
	case nil:
		*p = SubjectPaperBoth
	default:
		return fmt.Errorf("unsupported type for SubjectPaper: %T", value)
	}
	return nil
}

func (p SubjectPaper) Value() (driver.Value, error) { return string(p), nil }

/* =======================
   Model
======================= */

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectName string `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`
	SubjectSlug string `gorm:"column:subject_slug;type:varchar(160);not null;uniqueIndex:uq_subjects_slug,where:subject_deleted_at IS NULL" json:"subject_slug"`

	SubjectPaper SubjectPaper `gorm:"column:subject_paper;type:varchar(10);not null;default:'both'" json:"subject_paper"`

	SubjectIcon     *string `gorm:"column:subject_icon;type:varchar(255)" json:"subject_icon,omitempty"`
	SubjectPosition int     `gorm:"column:subject_position;not null;default:0" json:"subject_position"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectName = strings.TrimSpace(m.SubjectName)
	m.SubjectSlug = strings.ToLower(strings.TrimSpace(m.SubjectSlug))
	if m.SubjectPaper == "" {
		m.SubjectPaper = SubjectPaperBoth
	}
	if !m.SubjectPaper.Valid() {
		return fmt.Errorf("invalid subject paper: %q", m.SubjectPaper)
	}
	m.SubjectUpdatedAt = time.Now()
	return nil
}
