// file: internals/features/dashboard/activity/model/user_activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: user_activities
   Append-only feed of scoring events; points drive the
   weekly totals and the activity heatmap.
========================================================= */

type UserActivityModel struct {
	UserActivityID uuid.UUID `gorm:"column:user_activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_activity_id"`

	UserActivityUserID uuid.UUID `gorm:"column:user_activity_user_id;type:uuid;not null;index:idx_user_activities_user_on,priority:1" json:"user_activity_user_id"`

	// mcq_attempt | mains_submit | editorial_read | task_done | mock_submit
	UserActivityType  string     `gorm:"column:user_activity_type;type:varchar(30);not null" json:"user_activity_type"`
	UserActivityRefID *uuid.UUID `gorm:"column:user_activity_ref_id;type:uuid" json:"user_activity_ref_id,omitempty"`

	UserActivityPoints   int            `gorm:"column:user_activity_points;not null;default:0" json:"user_activity_points"`
	UserActivityMetadata datatypes.JSON `gorm:"column:user_activity_metadata;type:jsonb" json:"user_activity_metadata,omitempty"`

	// Calendar day in the app timezone.
	UserActivityOn time.Time `gorm:"column:user_activity_on;type:date;not null;index:idx_user_activities_user_on,priority:2" json:"user_activity_on"`

	UserActivityCreatedAt time.Time `gorm:"column:user_activity_created_at;autoCreateTime" json:"user_activity_created_at"`
}

func (UserActivityModel) TableName() string { return "user_activities" }

/* =========================================================
   MODEL: user_streaks
   One row per user; advanced on every logged activity.
========================================================= */

type UserStreakModel struct {
	UserStreakID uuid.UUID `gorm:"column:user_streak_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_streak_id"`

	UserStreakUserID uuid.UUID `gorm:"column:user_streak_user_id;type:uuid;not null;uniqueIndex:uq_user_streaks_user" json:"user_streak_user_id"`

	UserStreakCurrent int `gorm:"column:user_streak_current;not null;default:0" json:"user_streak_current"`
	UserStreakLongest int `gorm:"column:user_streak_longest;not null;default:0" json:"user_streak_longest"`

	UserStreakLastActive *time.Time `gorm:"column:user_streak_last_active;type:date" json:"user_streak_last_active,omitempty"`

	UserStreakCreatedAt time.Time `gorm:"column:user_streak_created_at;autoCreateTime" json:"user_streak_created_at"`
	UserStreakUpdatedAt time.Time `gorm:"column:user_streak_updated_at;autoUpdateTime" json:"user_streak_updated_at"`
}

func (UserStreakModel) TableName() string { return "user_streaks" }
