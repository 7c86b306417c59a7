// file: internals/features/mocktests/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/mocktests/controller"
	"sarathi_backend/internals/middlewares"
)

// MockTestUserRoutes mounts the practice-test endpoints for signed-in
// students. Static segments are registered before the :id matcher.
func MockTestUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMockTestController(db)

	tests := r.Group("/mock-tests")

	tests.Get("/attempts", ctrl.MyAttempts)
	tests.Post("/generate", ctrl.Generate)
	tests.Get("/", ctrl.List)
	tests.Get("/:id", ctrl.GetByID)
	tests.Get("/:id/result", ctrl.Result)
	tests.Post("/:id/start", ctrl.Start)
	tests.Post("/:id/submit", middlewares.SubmitRateLimiter(), ctrl.Submit)
}
