// file: internals/features/library/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/library/controller"
	"sarathi_backend/internals/middlewares"
)

// LibraryAdminRoutes mounts curation endpoints for subjects, chapters and
// study materials.
func LibraryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLibraryController(db)

	lib := r.Group("/library")

	lib.Post("/subjects", ctrl.AdminCreateSubject)
	lib.Patch("/subjects/:id", ctrl.AdminPatchSubject)
	lib.Delete("/subjects/:id", ctrl.AdminDeleteSubject)
	lib.Post("/subjects/:id/chapters", ctrl.AdminCreateChapter)

	lib.Patch("/chapters/:id", ctrl.AdminPatchChapter)
	lib.Delete("/chapters/:id", ctrl.AdminDeleteChapter)
	lib.Post("/chapters/:id/materials", ctrl.AdminCreateMaterial)

	lib.Patch("/materials/:id", ctrl.AdminPatchMaterial)
	lib.Post("/materials/:id/cover", middlewares.UploadRateLimiter(), ctrl.AdminUploadMaterialCover)
	lib.Post("/materials/:id/file", middlewares.UploadRateLimiter(), ctrl.AdminUploadMaterialFile)
	lib.Delete("/materials/:id", ctrl.AdminDeleteMaterial)
}
