// file: internals/features/studyplan/dto/studyplan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/studyplan/model"
	"sarathi_backend/internals/helpers/apptime"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =======================
   Requests
======================= */

type CreateTaskRequest struct {
	StudyPlanTaskTitle          string  `json:"study_plan_task_title" validate:"required,max=200"`
	StudyPlanTaskNotes          *string `json:"study_plan_task_notes" validate:"omitempty,max=2000"`
	StudyPlanTaskSubject        *string `json:"study_plan_task_subject" validate:"omitempty,max=80"`
	StudyPlanTaskDate           string  `json:"study_plan_task_date" validate:"required,datetime=2006-01-02"`
	StudyPlanTaskPlannedMinutes *int    `json:"study_plan_task_planned_minutes" validate:"omitempty,gt=0,lte=960"`
}

func (r *CreateTaskRequest) ToModel(userID uuid.UUID) (*model.StudyPlanTaskModel, error) {
	date, err := apptime.ParseDate(r.StudyPlanTaskDate)
	if err != nil {
		return nil, err
	}
	return &model.StudyPlanTaskModel{
		StudyPlanTaskUserID:         userID,
		StudyPlanTaskTitle:          strings.TrimSpace(r.StudyPlanTaskTitle),
		StudyPlanTaskNotes:          trimPtr(r.StudyPlanTaskNotes),
		StudyPlanTaskSubject:        trimPtr(r.StudyPlanTaskSubject),
		StudyPlanTaskDate:           date,
		StudyPlanTaskPlannedMinutes: r.StudyPlanTaskPlannedMinutes,
		StudyPlanTaskStatus:         model.TaskPending,
	}, nil
}

type PatchTaskRequest struct {
	StudyPlanTaskTitle          *string `json:"study_plan_task_title" validate:"omitempty,max=200"`
	StudyPlanTaskNotes          *string `json:"study_plan_task_notes" validate:"omitempty,max=2000"`
	StudyPlanTaskSubject        *string `json:"study_plan_task_subject" validate:"omitempty,max=80"`
	StudyPlanTaskDate           *string `json:"study_plan_task_date" validate:"omitempty,datetime=2006-01-02"`
	StudyPlanTaskPlannedMinutes *int    `json:"study_plan_task_planned_minutes" validate:"omitempty,gt=0,lte=960"`
	StudyPlanTaskStatus         *string `json:"study_plan_task_status" validate:"omitempty,oneof=pending done skipped"`
}

type UpsertWeeklyGoalRequest struct {
	WeeklyGoalWeekStart     *string `json:"weekly_goal_week_start" validate:"omitempty,datetime=2006-01-02"`
	WeeklyGoalTargetTasks   *int    `json:"weekly_goal_target_tasks" validate:"required,gte=0,lte=200"`
	WeeklyGoalTargetMinutes *int    `json:"weekly_goal_target_minutes" validate:"required,gte=0,lte=10080"`
}

type UpsertSyllabusRequest struct {
	SyllabusCoveragePercent    *int     `json:"syllabus_coverage_percent" validate:"required,gte=0,lte=100"`
	SyllabusCoverageTopicsDone []string `json:"syllabus_coverage_topics_done" validate:"omitempty,dive,max=120"`
}

/* =======================
   Responses
======================= */

type StudyStreakResponse struct {
	StudyStreakCurrent  int        `json:"study_streak_current"`
	StudyStreakLongest  int        `json:"study_streak_longest"`
	StudyStreakLastDate *time.Time `json:"study_streak_last_date,omitempty"`
}

// WeeklyProgress is computed from done tasks whose date falls inside the
// requested week; planned minutes only count once the task is done.
type WeeklyProgress struct {
	TasksDone   int64 `json:"tasks_done"`
	MinutesDone int64 `json:"minutes_done"`
}

type WeeklyGoalResponse struct {
	WeeklyGoalWeekStart     time.Time      `json:"weekly_goal_week_start"`
	WeeklyGoalTargetTasks   int            `json:"weekly_goal_target_tasks"`
	WeeklyGoalTargetMinutes int            `json:"weekly_goal_target_minutes"`
	Progress                WeeklyProgress `json:"progress"`
}

func FromStreakModel(m *model.StudyStreakModel) StudyStreakResponse {
	if m == nil {
		return StudyStreakResponse{}
	}
	return StudyStreakResponse{
		StudyStreakCurrent:  m.StudyStreakCurrent,
		StudyStreakLongest:  m.StudyStreakLongest,
		StudyStreakLastDate: m.StudyStreakLastDate,
	}
}
