// file: internals/features/videos/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/videos/controller"
)

// VideoAdminRoutes mounts curation endpoints for the lecture catalog.
func VideoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVideoController(db)

	videos := r.Group("/videos")

	videos.Post("/subjects", ctrl.AdminCreateSubject)
	videos.Patch("/subjects/:id", ctrl.AdminPatchSubject)
	videos.Delete("/subjects/:id", ctrl.AdminDeleteSubject)

	videos.Get("/", ctrl.AdminList)
	videos.Post("/", ctrl.AdminCreate)
	videos.Patch("/:id", ctrl.AdminPatch)
	videos.Post("/:id/publish", ctrl.AdminTogglePublish)
	videos.Delete("/:id", ctrl.AdminDelete)
}
