// file: internals/features/dailies/mains/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/dailies/mains/controller"
)

// MainsAdminRoutes mounts question management under the admin group.
func MainsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMainsQuestionController(db)

	mains := r.Group("/daily-answers")

	mains.Post("/", ctrl.AdminCreate)
	mains.Patch("/:id", ctrl.AdminPatch)
	mains.Post("/:id/publish", ctrl.AdminTogglePublish)
	mains.Delete("/:id", ctrl.AdminDelete)
}
