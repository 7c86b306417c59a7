// file: internals/features/studyplan/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/studyplan/controller"
)

// StudyPlanUserRoutes mounts the planner endpoints. Everything here is
// scoped to the signed-in user; there is no admin surface.
func StudyPlanUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudyPlanController(db)

	plan := r.Group("/study-plan")

	plan.Get("/tasks", ctrl.ListTasks)
	plan.Post("/tasks", ctrl.CreateTask)
	plan.Patch("/tasks/:id", ctrl.PatchTask)
	plan.Delete("/tasks/:id", ctrl.DeleteTask)

	plan.Get("/streak", ctrl.Streak)

	plan.Get("/weekly-goal", ctrl.WeeklyGoal)
	plan.Put("/weekly-goal", ctrl.UpsertWeeklyGoal)

	plan.Get("/syllabus", ctrl.Syllabus)
	plan.Put("/syllabus/:subject", ctrl.UpsertSyllabus)
}
