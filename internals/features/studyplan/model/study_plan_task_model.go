// file: internals/features/studyplan/model/study_plan_task_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================
   Enums
======================= */

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
	TaskSkipped TaskStatus = "skipped"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskDone, TaskSkipped:
		return true
	}
	return false
}

func (s *TaskStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = TaskStatus(strings.ToLower(v))
	case []byte:
		*s = TaskStatus(strings.ToLower(string(v)))
	case nil:
		*s = TaskPending
	default:
		return fmt.Errorf("unsupported type for TaskStatus: %T", value)
	}
	return nil
}

func (s TaskStatus) Value() (driver.Value, error) { return string(s), nil }

/* =======================
   Model
======================= */

type StudyPlanTaskModel struct {
	StudyPlanTaskID uuid.UUID `gorm:"column:study_plan_task_id;type:uuid;default:gen_random_uuid();primaryKey" json:"study_plan_task_id"`

	StudyPlanTaskUserID uuid.UUID `gorm:"column:study_plan_task_user_id;type:uuid;not null;index:idx_study_plan_tasks_user" json:"study_plan_task_user_id"`

	StudyPlanTaskTitle   string  `gorm:"column:study_plan_task_title;type:varchar(200);not null" json:"study_plan_task_title"`
	StudyPlanTaskNotes   *string `gorm:"column:study_plan_task_notes;type:text" json:"study_plan_task_notes,omitempty"`
	StudyPlanTaskSubject *string `gorm:"column:study_plan_task_subject;type:varchar(80)" json:"study_plan_task_subject,omitempty"`

	StudyPlanTaskDate           time.Time `gorm:"column:study_plan_task_date;type:date;not null;index:idx_study_plan_tasks_date" json:"study_plan_task_date"`
	StudyPlanTaskPlannedMinutes *int      `gorm:"column:study_plan_task_planned_minutes" json:"study_plan_task_planned_minutes,omitempty"`

	StudyPlanTaskStatus      TaskStatus `gorm:"column:study_plan_task_status;type:varchar(10);not null;default:'pending'" json:"study_plan_task_status"`
	StudyPlanTaskCompletedAt *time.Time `gorm:"column:study_plan_task_completed_at" json:"study_plan_task_completed_at,omitempty"`

	StudyPlanTaskCreatedAt time.Time      `gorm:"column:study_plan_task_created_at;autoCreateTime" json:"study_plan_task_created_at"`
	StudyPlanTaskUpdatedAt time.Time      `gorm:"column:study_plan_task_updated_at;autoUpdateTime" json:"study_plan_task_updated_at"`
	StudyPlanTaskDeletedAt gorm.DeletedAt `gorm:"column:study_plan_task_deleted_at;index" json:"-"`
}

func (StudyPlanTaskModel) TableName() string { return "study_plan_tasks" }

func (m *StudyPlanTaskModel) BeforeSave(tx *gorm.DB) error {
	m.StudyPlanTaskTitle = strings.TrimSpace(m.StudyPlanTaskTitle)
	if m.StudyPlanTaskStatus == "" {
		m.StudyPlanTaskStatus = TaskPending
	}
	if !m.StudyPlanTaskStatus.Valid() {
		return fmt.Errorf("invalid task status: %q", m.StudyPlanTaskStatus)
	}
	m.StudyPlanTaskUpdatedAt = time.Now()
	return nil
}
