// file: internals/features/editorials/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/editorials/controller"
	"sarathi_backend/internals/middlewares"
)

// EditorialAdminRoutes mounts editorial management under the admin group.
func EditorialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEditorialController(db)

	editorials := r.Group("/editorials")

	editorials.Post("/", ctrl.AdminCreate)
	editorials.Patch("/:id", ctrl.AdminPatch)
	editorials.Post("/:id/cover", middlewares.UploadRateLimiter(), ctrl.AdminUploadCover)
	editorials.Delete("/:id", ctrl.AdminDelete)
}
