// file: internals/features/editorials/model/editorial_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: editorial_progress (one row per user per editorial)
========================================================= */

type EditorialProgressModel struct {
	EditorialProgressID uuid.UUID `gorm:"column:editorial_progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"editorial_progress_id"`

	EditorialProgressUserID      uuid.UUID `gorm:"column:editorial_progress_user_id;type:uuid;not null;uniqueIndex:uq_editorial_progress_user_editorial,priority:1;index:idx_editorial_progress_user" json:"editorial_progress_user_id"`
	EditorialProgressEditorialID uuid.UUID `gorm:"column:editorial_progress_editorial_id;type:uuid;not null;uniqueIndex:uq_editorial_progress_user_editorial,priority:2" json:"editorial_progress_editorial_id"`

	// Percent only moves forward; completion latches at 100.
	EditorialProgressPercent int16      `gorm:"column:editorial_progress_percent;type:smallint;not null;default:0" json:"editorial_progress_percent"`
	EditorialProgressIsRead  bool       `gorm:"column:editorial_progress_is_read;not null;default:false" json:"editorial_progress_is_read"`
	EditorialProgressReadAt  *time.Time `gorm:"column:editorial_progress_read_at" json:"editorial_progress_read_at,omitempty"`

	EditorialProgressCreatedAt time.Time `gorm:"column:editorial_progress_created_at;autoCreateTime" json:"editorial_progress_created_at"`
	EditorialProgressUpdatedAt time.Time `gorm:"column:editorial_progress_updated_at;autoUpdateTime" json:"editorial_progress_updated_at"`
}

func (EditorialProgressModel) TableName() string { return "editorial_progress" }

/* =========================================================
   MODEL: editorial_bookmarks
========================================================= */

type EditorialBookmarkModel struct {
	EditorialBookmarkID uuid.UUID `gorm:"column:editorial_bookmark_id;type:uuid;default:gen_random_uuid();primaryKey" json:"editorial_bookmark_id"`

	EditorialBookmarkUserID      uuid.UUID `gorm:"column:editorial_bookmark_user_id;type:uuid;not null;uniqueIndex:uq_editorial_bookmarks_user_editorial,priority:1;index:idx_editorial_bookmarks_user" json:"editorial_bookmark_user_id"`
	EditorialBookmarkEditorialID uuid.UUID `gorm:"column:editorial_bookmark_editorial_id;type:uuid;not null;uniqueIndex:uq_editorial_bookmarks_user_editorial,priority:2" json:"editorial_bookmark_editorial_id"`

	EditorialBookmarkNote *string `gorm:"column:editorial_bookmark_note;type:text" json:"editorial_bookmark_note,omitempty"`

	EditorialBookmarkCreatedAt time.Time `gorm:"column:editorial_bookmark_created_at;autoCreateTime" json:"editorial_bookmark_created_at"`
}

func (EditorialBookmarkModel) TableName() string { return "editorial_bookmarks" }
