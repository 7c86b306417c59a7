// file: internals/features/studyplan/service/streak_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityservice "sarathi_backend/internals/features/dashboard/activity/service"
	"sarathi_backend/internals/features/studyplan/model"
	"sarathi_backend/internals/helpers/apptime"
)

// AdvanceOnTaskDone moves the study streak using the task's planned date,
// not the wall clock, so backfilling yesterday's task still keeps a run
// alive. Un-marking a task never calls this; streaks do not rewind.
func AdvanceOnTaskDone(db *gorm.DB, userID uuid.UUID, taskDate time.Time) error {
	day := apptime.DateOf(taskDate)

	var streak model.StudyStreakModel
	err := db.Where("study_streak_user_id = ?", userID).First(&streak).Error

	if err == gorm.ErrRecordNotFound {
		streak = model.StudyStreakModel{
			StudyStreakUserID:   userID,
			StudyStreakCurrent:  1,
			StudyStreakLongest:  1,
			StudyStreakLastDate: &day,
		}
		return db.Create(&streak).Error
	}
	if err != nil {
		return err
	}

	// Completing an older backlog task cannot rewind a run that already
	// moved past its date.
	if streak.StudyStreakLastDate != nil && day.Before(apptime.DateOf(*streak.StudyStreakLastDate)) {
		return nil
	}

	current, longest, changed := activityservice.AdvanceStreak(
		streak.StudyStreakCurrent, streak.StudyStreakLongest, streak.StudyStreakLastDate, day)
	if !changed {
		return nil
	}

	return db.Model(&streak).Updates(map[string]any{
		"study_streak_current":    current,
		"study_streak_longest":    longest,
		"study_streak_last_date":  day,
		"study_streak_updated_at": time.Now(),
	}).Error
}
