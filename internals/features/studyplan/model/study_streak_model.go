// file: internals/features/studyplan/model/study_streak_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyStreakModel tracks consecutive days with at least one task marked
// done, keyed by the task's planned date rather than the day the user
// clicked. It is separate from the overall activity streak.
type StudyStreakModel struct {
	StudyStreakID uuid.UUID `gorm:"column:study_streak_id;type:uuid;default:gen_random_uuid();primaryKey" json:"study_streak_id"`

	StudyStreakUserID uuid.UUID `gorm:"column:study_streak_user_id;type:uuid;not null;uniqueIndex:uq_study_streaks_user" json:"study_streak_user_id"`

	StudyStreakCurrent int `gorm:"column:study_streak_current;not null;default:0" json:"study_streak_current"`
	StudyStreakLongest int `gorm:"column:study_streak_longest;not null;default:0" json:"study_streak_longest"`

	StudyStreakLastDate *time.Time `gorm:"column:study_streak_last_date;type:date" json:"study_streak_last_date,omitempty"`

	StudyStreakCreatedAt time.Time `gorm:"column:study_streak_created_at;autoCreateTime" json:"study_streak_created_at"`
	StudyStreakUpdatedAt time.Time `gorm:"column:study_streak_updated_at;autoUpdateTime" json:"study_streak_updated_at"`
}

func (StudyStreakModel) TableName() string { return "study_streaks" }
