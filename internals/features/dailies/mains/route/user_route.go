// file: internals/features/dailies/mains/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/dailies/mains/controller"
	"sarathi_backend/internals/middlewares"
)

// MainsUserRoutes mounts the daily answer-writing endpoints for signed-in
// students. Static segments are registered before the :id matcher.
func MainsUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMainsQuestionController(db)

	mains := r.Group("/daily-answers")

	mains.Get("/today", ctrl.Today)
	mains.Get("/submissions", ctrl.MySubmissions)
	mains.Get("/", ctrl.List)
	mains.Get("/:id", ctrl.GetByID)
	mains.Get("/:id/evaluation", ctrl.Evaluation)
	mains.Post("/:id/submit", middlewares.SubmitRateLimiter(), ctrl.Submit)
}
