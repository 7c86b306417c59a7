// file: internals/features/mocktests/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/mocktests/controller"
)

// MockTestAdminRoutes mounts the curation endpoints for the mock-test
// catalog and its question banks.
func MockTestAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMockTestController(db)

	tests := r.Group("/mock-tests")

	tests.Get("/", ctrl.AdminList)
	tests.Post("/", ctrl.AdminCreate)
	tests.Patch("/:id", ctrl.AdminPatch)
	tests.Post("/:id/publish", ctrl.AdminTogglePublish)
	tests.Put("/:id/access-code", ctrl.AdminSetAccessCode)
	tests.Delete("/:id", ctrl.AdminDelete)

	tests.Post("/:id/questions", ctrl.AdminAddQuestion)
	tests.Patch("/:id/questions/:qid", ctrl.AdminPatchQuestion)
	tests.Delete("/:id/questions/:qid", ctrl.AdminDeleteQuestion)
}
