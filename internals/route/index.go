// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	commerceRoute "sarathi_backend/internals/features/commerce/route"
	mainsRoute "sarathi_backend/internals/features/dailies/mains/route"
	mcqRoute "sarathi_backend/internals/features/dailies/mcq/route"
	dashboardRoute "sarathi_backend/internals/features/dashboard/route"
	editorialRoute "sarathi_backend/internals/features/editorials/route"
	libraryRoute "sarathi_backend/internals/features/library/route"
	mockRoute "sarathi_backend/internals/features/mocktests/route"
	planRoute "sarathi_backend/internals/features/studyplan/route"
	userRoute "sarathi_backend/internals/features/users/user/route"
	videoRoute "sarathi_backend/internals/features/videos/route"
	authMw "sarathi_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Open endpoints first; registration order keeps them ahead of the
	// bearer gate below.
	log.Println("[INFO] Mounting public routes...")
	public := app.Group("/api")
	commerceRoute.CommercePublicRoutes(public, db)

	// Everything else requires a verified token from the identity provider.
	// /api/auth/webhook and /api/auth/sync get special handling inside the
	// middleware itself.
	api := app.Group("/api", authMw.AuthMiddleware(db))

	log.Println("[INFO] Mounting auth routes...")
	userRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting daily practice routes...")
	mcqRoute.DailyMCQUserRoutes(api, db)
	mainsRoute.MainsUserRoutes(api, db)

	log.Println("[INFO] Mounting editorial routes...")
	editorialRoute.EditorialUserRoutes(api, db)

	log.Println("[INFO] Mounting mock test routes...")
	mockRoute.MockTestUserRoutes(api, db)

	log.Println("[INFO] Mounting study plan routes...")
	planRoute.StudyPlanUserRoutes(api, db)

	log.Println("[INFO] Mounting library routes...")
	libraryRoute.LibraryUserRoutes(api, db)

	log.Println("[INFO] Mounting video routes...")
	videoRoute.VideoUserRoutes(api, db)

	log.Println("[INFO] Mounting mentorship routes...")
	commerceRoute.CommerceUserRoutes(api, db)

	log.Println("[INFO] Mounting dashboard routes...")
	dashboardRoute.DashboardUserRoutes(api, db)

	// Admin surface: same gate plus the role check.
	log.Println("[INFO] Mounting admin routes...")
	admin := api.Group("/admin", authMw.OnlyRoles("Admins only", constants.AdminOnly...))

	mcqRoute.DailyMCQAdminRoutes(admin, db)
	mainsRoute.MainsAdminRoutes(admin, db)
	editorialRoute.EditorialAdminRoutes(admin, db)
	mockRoute.MockTestAdminRoutes(admin, db)
	libraryRoute.LibraryAdminRoutes(admin, db)
	videoRoute.VideoAdminRoutes(admin, db)
	commerceRoute.CommerceAdminRoutes(admin, db)
}
