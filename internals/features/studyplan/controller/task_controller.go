// file: internals/features/studyplan/controller/task_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	activity "sarathi_backend/internals/features/dashboard/activity/service"
	dto "sarathi_backend/internals/features/studyplan/dto"
	model "sarathi_backend/internals/features/studyplan/model"
	service "sarathi_backend/internals/features/studyplan/service"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

type StudyPlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudyPlanController(db *gorm.DB) *StudyPlanController {
	return &StudyPlanController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers (tasks)
======================= */

// GET /api/study-plan/tasks?date=|from=&to=&status=
func (ctrl *StudyPlanController) ListTasks(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "date", "asc", helper.DefaultOpts)
	allowedSort := map[string]string{
		"date":       "study_plan_task_date",
		"created_at": "study_plan_task_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort parameters")
	}

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudyPlanTaskModel{}).
		Where("study_plan_task_user_id = ?", userID)

	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		}
		tx = tx.Where("study_plan_task_date = ?", day)
	} else {
		if raw := strings.TrimSpace(c.Query("from")); raw != "" {
			from, perr := apptime.ParseDate(raw)
			if perr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date, want YYYY-MM-DD")
			}
			tx = tx.Where("study_plan_task_date >= ?", from)
		}
		if raw := strings.TrimSpace(c.Query("to")); raw != "" {
			to, perr := apptime.ParseDate(raw)
			if perr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date, want YYYY-MM-DD")
			}
			tx = tx.Where("study_plan_task_date <= ?", to)
		}
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.TaskStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("study_plan_task_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var tasks []model.StudyPlanTaskModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&tasks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", tasks, helper.BuildMeta(total, p))
}

// POST /api/study-plan/tasks
func (ctrl *StudyPlanController) CreateTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	task, err := body.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Task created", task)
}

// PATCH /api/study-plan/tasks/:id
// Moving a task to done stamps completed_at, advances the study streak on
// the task's date, and logs a task_done activity. Moving it back clears
// completed_at only; streaks never rewind.
func (ctrl *StudyPlanController) PatchTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task ID")
	}

	var body dto.PatchTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var task model.StudyPlanTaskModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("study_plan_task_id = ? AND study_plan_task_user_id = ?", id, userID).
		First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.StudyPlanTaskTitle != nil {
		if title := strings.TrimSpace(*body.StudyPlanTaskTitle); title != "" {
			updates["study_plan_task_title"] = title
		}
	}
	if body.StudyPlanTaskNotes != nil {
		if notes := strings.TrimSpace(*body.StudyPlanTaskNotes); notes != "" {
			updates["study_plan_task_notes"] = notes
		} else {
			updates["study_plan_task_notes"] = gorm.Expr("NULL")
		}
	}
	if body.StudyPlanTaskSubject != nil {
		if subject := strings.TrimSpace(*body.StudyPlanTaskSubject); subject != "" {
			updates["study_plan_task_subject"] = subject
		} else {
			updates["study_plan_task_subject"] = gorm.Expr("NULL")
		}
	}
	if body.StudyPlanTaskDate != nil {
		day, perr := apptime.ParseDate(*body.StudyPlanTaskDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		}
		updates["study_plan_task_date"] = day
	}
	if body.StudyPlanTaskPlannedMinutes != nil {
		updates["study_plan_task_planned_minutes"] = *body.StudyPlanTaskPlannedMinutes
	}

	becameDone := false
	if body.StudyPlanTaskStatus != nil {
		next := model.TaskStatus(*body.StudyPlanTaskStatus)
		if next != task.StudyPlanTaskStatus {
			updates["study_plan_task_status"] = next.String()
			if next == model.TaskDone {
				becameDone = true
				updates["study_plan_task_completed_at"] = time.Now()
			} else if task.StudyPlanTaskStatus == model.TaskDone {
				updates["study_plan_task_completed_at"] = gorm.Expr("NULL")
			}
		}
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", task)
	}
	updates["study_plan_task_updated_at"] = time.Now()

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&task).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Where("study_plan_task_id = ?", id).
		First(&task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if becameDone {
		if err := service.AdvanceOnTaskDone(ctrl.DB, userID, task.StudyPlanTaskDate); err != nil {
			log.Println("[STUDYPLAN] streak advance failed:", err)
		}
		meta, _ := json.Marshal(fiber.Map{
			"title":   task.StudyPlanTaskTitle,
			"subject": task.StudyPlanTaskSubject,
		})
		if err := activity.Log(ctrl.DB, userID, constants.ActivityTaskDone, &task.StudyPlanTaskID, datatypes.JSON(meta)); err != nil {
			log.Println("[STUDYPLAN] activity log failed:", err)
		}
	}

	return helper.JsonUpdated(c, "Task updated", task)
}

// DELETE /api/study-plan/tasks/:id
func (ctrl *StudyPlanController) DeleteTask(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("study_plan_task_id = ? AND study_plan_task_user_id = ?", id, userID).
		Delete(&model.StudyPlanTaskModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
	}

	return helper.JsonDeleted(c, "Task deleted", fiber.Map{
		"study_plan_task_id": id,
	})
}
