// file: internals/features/videos/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/videos/controller"
)

// VideoUserRoutes mounts the lecture catalog. Static segments are
// registered before the :id matcher.
func VideoUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVideoController(db)

	videos := r.Group("/videos")

	videos.Get("/subjects", ctrl.Subjects)
	videos.Get("/", ctrl.List)
	videos.Get("/:id", ctrl.GetByID)
}
