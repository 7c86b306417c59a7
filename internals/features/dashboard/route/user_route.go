// file: internals/features/dashboard/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/dashboard/controller"
)

// DashboardUserRoutes mounts the home-page aggregate and the activity
// heatmap feed.
func DashboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dash := r.Group("/dashboard")

	dash.Get("/", ctrl.Overview)
	dash.Get("/activity", ctrl.ActivityRange)
}
