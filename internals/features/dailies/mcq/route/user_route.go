// file: internals/features/dailies/mcq/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mcqController "sarathi_backend/internals/features/dailies/mcq/controller"
	"sarathi_backend/internals/middlewares"
)

/*
Base: /api/daily-mcq
Static segments (/today, /attempts) are registered before /:id so they
are not swallowed by the param route.
*/

func DailyMCQUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := mcqController.NewDailyMCQController(db)

	mcq := api.Group("/daily-mcq")

	mcq.Get("/today", ctrl.Today)
	mcq.Get("/attempts", ctrl.MyAttempts)
	mcq.Get("/", ctrl.List)

	mcq.Get("/:id", ctrl.GetByID)
	mcq.Get("/:id/result", ctrl.Result)
	mcq.Post("/:id/attempt", middlewares.SubmitRateLimiter(), ctrl.SubmitAttempt)
}
