// file: internals/features/library/model/study_material_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================
   Enums
======================= */

type MaterialKind string

const (
	MaterialNotes MaterialKind = "notes"
	MaterialPDF   MaterialKind = "pdf"
	MaterialNCERT MaterialKind = "ncert"
	MaterialPYQ   MaterialKind = "pyq"
)

func (k MaterialKind) String() string { return string(k) }

func (k MaterialKind) Valid() bool {
	switch k {
	case MaterialNotes, MaterialPDF, MaterialNCERT, MaterialPYQ:
		return true
	}
	return false
}

func (k *MaterialKind) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*k = MaterialKind(strings.ToLower(v))
	case []byte:
		*k = MaterialKind(strings.ToLower(string(v)))
	case nil:
		*k = MaterialNotes
	default:
		return fmt.Errorf("unsupported type for MaterialKind: %T", value)
	}
	return nil
}

func (k MaterialKind) Value() (driver.Value, error) { return string(k), nil }

/* =======================
   Model
======================= */

type StudyMaterialModel struct {
	StudyMaterialID uuid.UUID `gorm:"column:study_material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"study_material_id"`

	StudyMaterialChapterID uuid.UUID `gorm:"column:study_material_chapter_id;type:uuid;not null;index:idx_study_materials_chapter;uniqueIndex:uq_study_materials_chapter_slug,priority:1,where:study_material_deleted_at IS NULL" json:"study_material_chapter_id"`

	StudyMaterialTitle string `gorm:"column:study_material_title;type:varchar(200);not null" json:"study_material_title"`
	StudyMaterialSlug  string `gorm:"column:study_material_slug;type:varchar(160);not null;uniqueIndex:uq_study_materials_chapter_slug,priority:2,where:study_material_deleted_at IS NULL" json:"study_material_slug"`

	StudyMaterialKind MaterialKind `gorm:"column:study_material_kind;type:varchar(10);not null;default:'notes'" json:"study_material_kind"`

	// Markdown body for notes; pdf/ncert/pyq kinds usually carry a file
	// URL instead.
	StudyMaterialContent *string `gorm:"column:study_material_content;type:text" json:"study_material_content,omitempty"`
	StudyMaterialFileURL *string `gorm:"column:study_material_file_url;type:text" json:"study_material_file_url,omitempty"`

	StudyMaterialCoverURL *string `gorm:"column:study_material_cover_url;type:text" json:"study_material_cover_url,omitempty"`
	StudyMaterialThumbURL *string `gorm:"column:study_material_thumb_url;type:text" json:"study_material_thumb_url,omitempty"`

	StudyMaterialTopics pq.StringArray `gorm:"column:study_material_topics;type:text[]" json:"study_material_topics,omitempty"`

	StudyMaterialReadMinutes int  `gorm:"column:study_material_read_minutes;not null;default:10" json:"study_material_read_minutes"`
	StudyMaterialIsPublished bool `gorm:"column:study_material_is_published;not null;default:false" json:"study_material_is_published"`

	StudyMaterialCreatedAt time.Time      `gorm:"column:study_material_created_at;autoCreateTime" json:"study_material_created_at"`
	StudyMaterialUpdatedAt time.Time      `gorm:"column:study_material_updated_at;autoUpdateTime" json:"study_material_updated_at"`
	StudyMaterialDeletedAt gorm.DeletedAt `gorm:"column:study_material_deleted_at;index" json:"-"`
}

func (StudyMaterialModel) TableName() string { return "study_materials" }

func (m *StudyMaterialModel) BeforeSave(tx *gorm.DB) error {
	m.StudyMaterialTitle = strings.TrimSpace(m.StudyMaterialTitle)
	m.StudyMaterialSlug = strings.ToLower(strings.TrimSpace(m.StudyMaterialSlug))
	if m.StudyMaterialKind == "" {
		m.StudyMaterialKind = MaterialNotes
	}
	if !m.StudyMaterialKind.Valid() {
		return fmt.Errorf("invalid material kind: %q", m.StudyMaterialKind)
	}
	m.StudyMaterialUpdatedAt = time.Now()
	return nil
}
