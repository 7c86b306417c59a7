// file: internals/features/editorials/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/editorials/controller"
)

// EditorialUserRoutes mounts the reading-tracker endpoints. Static segments
// are registered before the :id matcher.
func EditorialUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEditorialController(db)

	editorials := r.Group("/editorials")

	editorials.Get("/bookmarks", ctrl.MyBookmarks)
	editorials.Get("/stats", ctrl.Stats)
	editorials.Get("/", ctrl.List)
	editorials.Get("/:id", ctrl.GetByID)
	editorials.Put("/:id/progress", ctrl.UpdateProgress)
	editorials.Post("/:id/bookmark", ctrl.Bookmark)
	editorials.Delete("/:id/bookmark", ctrl.Unbookmark)
}
