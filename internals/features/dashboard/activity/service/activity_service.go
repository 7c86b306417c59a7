// file: internals/features/dashboard/activity/service/activity_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	"sarathi_backend/internals/features/dashboard/activity/model"
	"sarathi_backend/internals/helpers/apptime"
)

// AdvanceStreak applies the consecutive-day rule:
// same day → unchanged, yesterday → +1, gap (or first ever) → reset to 1.
// Longest is a high-water mark and never shrinks.
func AdvanceStreak(current, longest int, lastActive *time.Time, today time.Time) (newCurrent, newLongest int, changed bool) {
	day := apptime.DateOf(today)

	switch {
	case lastActive == nil:
		newCurrent = 1
	case apptime.SameDay(*lastActive, day):
		return current, longest, false
	case apptime.IsNextDay(*lastActive, day):
		newCurrent = current + 1
	default:
		newCurrent = 1
	}

	newLongest = longest
	if newCurrent > newLongest {
		newLongest = newCurrent
	}
	return newCurrent, newLongest, true
}

// Log appends one activity row and advances the user's overall streak.
// Called by the scoring actions (MCQ submit, mains submit, editorial read,
// task completion, mock submit); failures here must not fail the caller's
// main write, so callers usually just log the returned error.
func Log(db *gorm.DB, userID uuid.UUID, activityType string, refID *uuid.UUID, meta datatypes.JSON) error {
	points, ok := constants.ActivityPoints[activityType]
	if !ok {
		return fmt.Errorf("unknown activity type: %q", activityType)
	}

	today := apptime.Today()

	entry := model.UserActivityModel{
		UserActivityUserID:   userID,
		UserActivityType:     activityType,
		UserActivityRefID:    refID,
		UserActivityPoints:   points,
		UserActivityMetadata: meta,
		UserActivityOn:       today,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ACTIVITY] insert failed:", err)
		return err
	}

	return advanceUserStreak(db, userID, today)
}

func advanceUserStreak(db *gorm.DB, userID uuid.UUID, today time.Time) error {
	var streak model.UserStreakModel
	err := db.Where("user_streak_user_id = ?", userID).First(&streak).Error

	if err == gorm.ErrRecordNotFound {
		day := apptime.DateOf(today)
		streak = model.UserStreakModel{
			UserStreakUserID:     userID,
			UserStreakCurrent:    1,
			UserStreakLongest:    1,
			UserStreakLastActive: &day,
		}
		if cerr := db.Create(&streak).Error; cerr != nil {
			log.Println("[ACTIVITY] streak insert failed:", cerr)
			return cerr
		}
		return nil
	}
	if err != nil {
		return err
	}

	current, longest, changed := AdvanceStreak(
		streak.UserStreakCurrent, streak.UserStreakLongest, streak.UserStreakLastActive, today)
	if !changed {
		return nil
	}

	day := apptime.DateOf(today)
	return db.Model(&streak).Updates(map[string]any{
		"user_streak_current":     current,
		"user_streak_longest":     longest,
		"user_streak_last_active": day,
		"user_streak_updated_at":  time.Now(),
	}).Error
}
