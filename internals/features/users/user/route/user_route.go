// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sarathi_backend/internals/features/users/user/controller"
	"sarathi_backend/internals/middlewares"
)

/*
Base: /api/auth
- /sync    : verified token, mirror row optional (the middleware lets it through)
- /me      : requires a synced mirror
- /webhook : public; HMAC signature checked in the handler
*/

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	auth.Post("/sync", middlewares.SyncRateLimiter(), ctrl.Sync)

	auth.Get("/me", ctrl.Me)
	auth.Patch("/me", ctrl.PatchMe)
	auth.Post("/me/avatar", middlewares.UploadRateLimiter(), ctrl.UploadAvatar)
	auth.Delete("/me", ctrl.DeleteMe)

	auth.Post("/webhook", ctrl.Webhook)
}
