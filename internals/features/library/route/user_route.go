// file: internals/features/library/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/library/controller"
)

// LibraryUserRoutes mounts the read side of the study library.
func LibraryUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLibraryController(db)

	lib := r.Group("/library")

	lib.Get("/search", ctrl.Search)
	lib.Get("/subjects", ctrl.Subjects)
	lib.Get("/subjects/:id/chapters", ctrl.SubjectChapters)
	lib.Get("/chapters/:id/materials", ctrl.ChapterMaterials)
	lib.Get("/materials/:id", ctrl.GetMaterial)
}
