// file: internals/features/dashboard/dto/dashboard_dto.go
package dto

import (
	"time"

	model "sarathi_backend/internals/features/dashboard/activity/model"
)

/* =======================
   Dashboard payload
======================= */

// TodayFlags tells the home page which of the three daily habits the
// user has already closed out.
type TodayFlags struct {
	MCQDone       bool `json:"mcq_done"`
	MainsDone     bool `json:"mains_done"`
	EditorialRead bool `json:"editorial_read"`
}

type StreakBlock struct {
	Current    int     `json:"current"`
	Longest    int     `json:"longest"`
	LastActive *string `json:"last_active,omitempty"`
}

type Totals struct {
	MCQAttempts    int64   `json:"mcq_attempts"`
	MCQAvgAccuracy float64 `json:"mcq_avg_accuracy"`

	MainsSubmitted int64   `json:"mains_submitted"`
	MainsAvgScore  float64 `json:"mains_avg_score"`

	EditorialsRead int64 `json:"editorials_read"`

	TestsTaken     int64   `json:"tests_taken"`
	TestsBestScore float64 `json:"tests_best_score"`
}

type SyllabusItem struct {
	Subject string `json:"subject"`
	Percent int16  `json:"percent"`
}

type SyllabusSummary struct {
	Subjects   int            `json:"subjects"`
	AvgPercent float64        `json:"avg_percent"`
	Items      []SyllabusItem `json:"items"`
}

type DashboardResponse struct {
	Today          TodayFlags                `json:"today"`
	Streak         StreakBlock               `json:"streak"`
	Totals         Totals                    `json:"totals"`
	WeekPoints     int64                     `json:"week_points"`
	Syllabus       SyllabusSummary           `json:"syllabus"`
	RecentActivity []model.UserActivityModel `json:"recent_activity"`
}

/* =======================
   Heatmap payload
======================= */

// ActivityBucket is one calendar day of the heatmap.
type ActivityBucket struct {
	Day    string `json:"day"`
	Points int64  `json:"points"`
	Count  int64  `json:"count"`
}

type ActivityRangeResponse struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Buckets []ActivityBucket `json:"buckets"`
}

func FromStreak(s *model.UserStreakModel, format func(time.Time) string) StreakBlock {
	if s == nil {
		return StreakBlock{}
	}
	b := StreakBlock{
		Current: s.UserStreakCurrent,
		Longest: s.UserStreakLongest,
	}
	if s.UserStreakLastActive != nil {
		d := format(*s.UserStreakLastActive)
		b.LastActive = &d
	}
	return b
}
