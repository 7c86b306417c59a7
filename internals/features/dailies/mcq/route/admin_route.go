// file: internals/features/dailies/mcq/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mcqController "sarathi_backend/internals/features/dailies/mcq/controller"
)

// Base: /api/admin/daily-mcq (role check applied on the group by the caller)
func DailyMCQAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := mcqController.NewDailyMCQController(db)

	mcq := admin.Group("/daily-mcq")

	mcq.Post("/", ctrl.AdminCreate)
	mcq.Patch("/:id", ctrl.AdminPatch)
	mcq.Post("/:id/publish", ctrl.AdminTogglePublish)
	mcq.Delete("/:id", ctrl.AdminDelete)

	mcq.Post("/:id/questions", ctrl.AdminAddQuestion)
	mcq.Patch("/:id/questions/:qid", ctrl.AdminPatchQuestion)
	mcq.Delete("/:id/questions/:qid", ctrl.AdminDeleteQuestion)
}
