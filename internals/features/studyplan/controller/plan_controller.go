// file: internals/features/studyplan/controller/plan_controller.go
package controller

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/studyplan/dto"
	model "sarathi_backend/internals/features/studyplan/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

/* =======================
   Handlers (streak)
======================= */

// GET /api/study-plan/streak
// Users with no completed tasks yet get a zero streak, not a 404.
func (ctrl *StudyPlanController) Streak(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var streak model.StudyStreakModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("study_streak_user_id = ?", userID).
		First(&streak).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err == gorm.ErrRecordNotFound {
		return helper.JsonOK(c, "OK", dto.StudyStreakResponse{})
	}

	return helper.JsonOK(c, "OK", dto.FromStreakModel(&streak))
}

/* =======================
   Handlers (weekly goal)
======================= */

func (ctrl *StudyPlanController) weeklyProgress(c *fiber.Ctx, userID uuid.UUID, week time.Time) (dto.WeeklyProgress, error) {
	weekEnd := week.AddDate(0, 0, 7)

	var progress dto.WeeklyProgress
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudyPlanTaskModel{}).
		Where("study_plan_task_user_id = ? AND study_plan_task_status = ?", userID, model.TaskDone).
		Where("study_plan_task_date >= ? AND study_plan_task_date < ?", week, weekEnd).
		Count(&progress.TasksDone).Error; err != nil {
		return progress, err
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudyPlanTaskModel{}).
		Select("COALESCE(SUM(study_plan_task_planned_minutes), 0)").
		Where("study_plan_task_user_id = ? AND study_plan_task_status = ?", userID, model.TaskDone).
		Where("study_plan_task_date >= ? AND study_plan_task_date < ?", week, weekEnd).
		Scan(&progress.MinutesDone).Error; err != nil {
		return progress, err
	}
	return progress, nil
}

// GET /api/study-plan/weekly-goal?week_start=
// Weeks are Monday-keyed; any date inside the week resolves to its Monday.
// A week with no goal row answers with zero targets plus live progress.
func (ctrl *StudyPlanController) WeeklyGoal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	week := apptime.WeekStart(apptime.Today())
	if raw := strings.TrimSpace(c.Query("week_start")); raw != "" {
		day, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week_start, want YYYY-MM-DD")
		}
		week = apptime.WeekStart(day)
	}

	resp := dto.WeeklyGoalResponse{WeeklyGoalWeekStart: week}

	var goal model.WeeklyGoalModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("weekly_goal_user_id = ? AND weekly_goal_week_start = ?", userID, week).
		First(&goal).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err == nil {
		resp.WeeklyGoalTargetTasks = goal.WeeklyGoalTargetTasks
		resp.WeeklyGoalTargetMinutes = goal.WeeklyGoalTargetMinutes
	}

	progress, err := ctrl.weeklyProgress(c, userID, week)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp.Progress = progress

	return helper.JsonOK(c, "OK", resp)
}

// PUT /api/study-plan/weekly-goal
func (ctrl *StudyPlanController) UpsertWeeklyGoal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.UpsertWeeklyGoalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	week := apptime.WeekStart(apptime.Today())
	if body.WeeklyGoalWeekStart != nil {
		day, perr := apptime.ParseDate(*body.WeeklyGoalWeekStart)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid week_start, want YYYY-MM-DD")
		}
		week = apptime.WeekStart(day)
	}

	var goal model.WeeklyGoalModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("weekly_goal_user_id = ? AND weekly_goal_week_start = ?", userID, week).
		First(&goal).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		goal = model.WeeklyGoalModel{
			WeeklyGoalUserID:        userID,
			WeeklyGoalWeekStart:     week,
			WeeklyGoalTargetTasks:   *body.WeeklyGoalTargetTasks,
			WeeklyGoalTargetMinutes: *body.WeeklyGoalTargetMinutes,
		}
		if cerr := ctrl.DB.WithContext(c.Context()).Create(&goal).Error; cerr != nil {
			msg := strings.ToLower(cerr.Error())
			if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Goal update raced, please retry")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, cerr.Error())
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		if uerr := ctrl.DB.WithContext(c.Context()).
			Model(&goal).
			Updates(map[string]any{
				"weekly_goal_target_tasks":   *body.WeeklyGoalTargetTasks,
				"weekly_goal_target_minutes": *body.WeeklyGoalTargetMinutes,
			}).Error; uerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, uerr.Error())
		}
		goal.WeeklyGoalTargetTasks = *body.WeeklyGoalTargetTasks
		goal.WeeklyGoalTargetMinutes = *body.WeeklyGoalTargetMinutes
	}

	progress, err := ctrl.weeklyProgress(c, userID, week)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Weekly goal saved", dto.WeeklyGoalResponse{
		WeeklyGoalWeekStart:     week,
		WeeklyGoalTargetTasks:   goal.WeeklyGoalTargetTasks,
		WeeklyGoalTargetMinutes: goal.WeeklyGoalTargetMinutes,
		Progress:                progress,
	})
}

/* =======================
   Handlers (syllabus)
======================= */

// GET /api/study-plan/syllabus
func (ctrl *StudyPlanController) Syllabus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.SyllabusCoverageModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("syllabus_coverage_user_id = ?", userID).
		Order("syllabus_coverage_subject ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", rows)
}

// PUT /api/study-plan/syllabus/:subject
func (ctrl *StudyPlanController) UpsertSyllabus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	subject := strings.TrimSpace(c.Params("subject"))
	if unescaped, uerr := url.PathUnescape(subject); uerr == nil {
		subject = strings.TrimSpace(unescaped)
	}
	if subject == "" || len(subject) > 80 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject")
	}

	var body dto.UpsertSyllabusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.SyllabusCoverageModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("syllabus_coverage_user_id = ? AND syllabus_coverage_subject = ?", userID, subject).
		First(&row).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		row = model.SyllabusCoverageModel{
			SyllabusCoverageUserID:     userID,
			SyllabusCoverageSubject:    subject,
			SyllabusCoveragePercent:    int16(*body.SyllabusCoveragePercent),
			SyllabusCoverageTopicsDone: pq.StringArray(body.SyllabusCoverageTopicsDone),
		}
		if cerr := ctrl.DB.WithContext(c.Context()).Create(&row).Error; cerr != nil {
			msg := strings.ToLower(cerr.Error())
			if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Coverage update raced, please retry")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, cerr.Error())
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		updates := map[string]any{
			"syllabus_coverage_percent": int16(*body.SyllabusCoveragePercent),
		}
		if body.SyllabusCoverageTopicsDone != nil {
			updates["syllabus_coverage_topics_done"] = pq.StringArray(body.SyllabusCoverageTopicsDone)
		}
		if uerr := ctrl.DB.WithContext(c.Context()).
			Model(&row).
			Updates(updates).Error; uerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, uerr.Error())
		}
		row.SyllabusCoveragePercent = int16(*body.SyllabusCoveragePercent)
		if body.SyllabusCoverageTopicsDone != nil {
			row.SyllabusCoverageTopicsDone = pq.StringArray(body.SyllabusCoverageTopicsDone)
		}
	}

	return helper.JsonUpdated(c, "Syllabus coverage saved", row)
}
