// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	mainsModel "sarathi_backend/internals/features/dailies/mains/model"
	mcqModel "sarathi_backend/internals/features/dailies/mcq/model"
	activityModel "sarathi_backend/internals/features/dashboard/activity/model"
	dto "sarathi_backend/internals/features/dashboard/dto"
	editorialModel "sarathi_backend/internals/features/editorials/model"
	mockModel "sarathi_backend/internals/features/mocktests/model"
	planModel "sarathi_backend/internals/features/studyplan/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

type DashboardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:        db,
		Validator: validator.New(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/* =======================
   Handlers
======================= */

// GET /api/dashboard
// One payload for the home page so the client renders without fan-out.
func (ctrl *DashboardController) Overview(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	today := apptime.Today()
	resp := dto.DashboardResponse{}

	// Today flags come off the activity feed; one grouped scan covers all
	// three habits.
	var todayRows []struct {
		Type string
		N    int64
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&activityModel.UserActivityModel{}).
		Select("user_activity_type AS type, COUNT(*) AS n").
		Where("user_activity_user_id = ? AND user_activity_on = ?", userID, today).
		Group("user_activity_type").
		Scan(&todayRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	for _, row := range todayRows {
		switch row.Type {
		case constants.ActivityMCQAttempt:
			resp.Today.MCQDone = row.N > 0
		case constants.ActivityMainsSubmit:
			resp.Today.MainsDone = row.N > 0
		case constants.ActivityEditorialRead:
			resp.Today.EditorialRead = row.N > 0
		}
	}

	var streak activityModel.UserStreakModel
	switch err := ctrl.DB.WithContext(c.Context()).
		First(&streak, "user_streak_user_id = ?", userID).Error; err {
	case nil:
		resp.Streak = dto.FromStreak(&streak, apptime.FormatDate)
	case gorm.ErrRecordNotFound:
		resp.Streak = dto.StreakBlock{}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var mcq struct {
		N   int64
		Avg float64
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&mcqModel.MCQAttemptModel{}).
		Select("COUNT(*) AS n, COALESCE(AVG(mcq_attempt_accuracy), 0) AS avg").
		Where("mcq_attempt_user_id = ?", userID).
		Scan(&mcq).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp.Totals.MCQAttempts = mcq.N
	resp.Totals.MCQAvgAccuracy = round2(mcq.Avg)

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&mainsModel.MainsAttemptModel{}).
		Where("mains_attempt_user_id = ?", userID).
		Count(&resp.Totals.MainsSubmitted).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var mainsAvg float64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&mainsModel.MainsEvaluationModel{}).
		Joins("JOIN mains_attempts ON mains_attempt_id = mains_evaluation_attempt_id").
		Where("mains_attempt_user_id = ? AND mains_evaluation_status = ? AND mains_evaluation_score IS NOT NULL",
			userID, mainsModel.MainsEvaluationCompleted.String()).
		Select("COALESCE(AVG(mains_evaluation_score), 0)").
		Scan(&mainsAvg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp.Totals.MainsAvgScore = round2(mainsAvg)

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&editorialModel.EditorialProgressModel{}).
		Where("editorial_progress_user_id = ? AND editorial_progress_is_read = ?", userID, true).
		Count(&resp.Totals.EditorialsRead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var mock struct {
		N    int64
		Best float64
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&mockModel.MockTestAttemptModel{}).
		Select("COUNT(*) AS n, COALESCE(MAX(mock_test_attempt_score), 0) AS best").
		Where("mock_test_attempt_user_id = ? AND mock_test_attempt_status = ?",
			userID, mockModel.MockAttemptCompleted.String()).
		Scan(&mock).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp.Totals.TestsTaken = mock.N
	resp.Totals.TestsBestScore = round2(mock.Best)

	week := apptime.WeekStart(today)
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&activityModel.UserActivityModel{}).
		Select("COALESCE(SUM(user_activity_points), 0)").
		Where("user_activity_user_id = ? AND user_activity_on >= ? AND user_activity_on < ?",
			userID, week, week.AddDate(0, 0, 7)).
		Scan(&resp.WeekPoints).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var coverage []planModel.SyllabusCoverageModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("syllabus_coverage_user_id = ?", userID).
		Order("syllabus_coverage_subject ASC").
		Find(&coverage).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp.Syllabus.Items = make([]dto.SyllabusItem, 0, len(coverage))
	var percentSum int
	for _, row := range coverage {
		resp.Syllabus.Items = append(resp.Syllabus.Items, dto.SyllabusItem{
			Subject: row.SyllabusCoverageSubject,
			Percent: row.SyllabusCoveragePercent,
		})
		percentSum += int(row.SyllabusCoveragePercent)
	}
	resp.Syllabus.Subjects = len(coverage)
	if len(coverage) > 0 {
		resp.Syllabus.AvgPercent = round2(float64(percentSum) / float64(len(coverage)))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_activity_user_id = ?", userID).
		Order("user_activity_created_at DESC").
		Limit(10).
		Find(&resp.RecentActivity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Dashboard fetched", resp)
}

// GET /api/dashboard/activity?from=&to=
// Per-day point buckets for the heatmap. Defaults to the last 90 days.
func (ctrl *DashboardController) ActivityRange(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	to := apptime.Today()
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date, want YYYY-MM-DD")
		}
		to = parsed
	}
	from := to.AddDate(0, 0, -89)
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date, want YYYY-MM-DD")
		}
		from = parsed
	}
	if from.After(to) {
		return helper.JsonError(c, fiber.StatusBadRequest, "from must not be after to")
	}
	if to.Sub(from) > 366*24*time.Hour {
		return helper.JsonError(c, fiber.StatusBadRequest, "Range too large, max one year")
	}

	var rows []struct {
		Day    time.Time
		Points int64
		N      int64
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&activityModel.UserActivityModel{}).
		Select("user_activity_on AS day, COALESCE(SUM(user_activity_points), 0) AS points, COUNT(*) AS n").
		Where("user_activity_user_id = ? AND user_activity_on >= ? AND user_activity_on <= ?", userID, from, to).
		Group("user_activity_on").
		Order("user_activity_on ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.ActivityRangeResponse{
		From:    apptime.FormatDate(from),
		To:      apptime.FormatDate(to),
		Buckets: make([]dto.ActivityBucket, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Buckets = append(resp.Buckets, dto.ActivityBucket{
			Day:    apptime.FormatDate(row.Day),
			Points: row.Points,
			Count:  row.N,
		})
	}

	return helper.JsonOK(c, "Activity fetched", resp)
}
