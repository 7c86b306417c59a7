// file: internals/features/studyplan/model/weekly_goal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyGoalModel holds one target row per user per week. Week starts are
// normalized to Monday before they reach the database.
type WeeklyGoalModel struct {
	WeeklyGoalID uuid.UUID `gorm:"column:weekly_goal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"weekly_goal_id"`

	WeeklyGoalUserID    uuid.UUID `gorm:"column:weekly_goal_user_id;type:uuid;not null;uniqueIndex:uq_weekly_goals_user_week,priority:1" json:"weekly_goal_user_id"`
	WeeklyGoalWeekStart time.Time `gorm:"column:weekly_goal_week_start;type:date;not null;uniqueIndex:uq_weekly_goals_user_week,priority:2" json:"weekly_goal_week_start"`

	WeeklyGoalTargetTasks   int `gorm:"column:weekly_goal_target_tasks;not null;default:0" json:"weekly_goal_target_tasks"`
	WeeklyGoalTargetMinutes int `gorm:"column:weekly_goal_target_minutes;not null;default:0" json:"weekly_goal_target_minutes"`

	WeeklyGoalCreatedAt time.Time `gorm:"column:weekly_goal_created_at;autoCreateTime" json:"weekly_goal_created_at"`
	WeeklyGoalUpdatedAt time.Time `gorm:"column:weekly_goal_updated_at;autoUpdateTime" json:"weekly_goal_updated_at"`
}

func (WeeklyGoalModel) TableName() string { return "weekly_goals" }

func (m *WeeklyGoalModel) BeforeSave(tx *gorm.DB) error {
	m.WeeklyGoalUpdatedAt = time.Now()
	return nil
}
