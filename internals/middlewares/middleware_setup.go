package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the app-wide middleware chain.
// Order matters: recovery first so panics in the others are caught.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
