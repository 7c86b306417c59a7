// file: internals/features/commerce/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/commerce/controller"
)

// CommerceAdminRoutes mounts plan and testimonial curation plus the
// mentorship back office.
func CommerceAdminRoutes(r fiber.Router, db *gorm.DB) {
	pricing := controller.NewPricingController(db)
	bookings := controller.NewBookingController(db)
	questions := controller.NewQuestionController(db)

	pr := r.Group("/pricing")
	pr.Get("/plans", pricing.AdminListPlans)
	pr.Post("/plans", pricing.AdminCreatePlan)
	pr.Patch("/plans/:id", pricing.AdminPatchPlan)
	pr.Delete("/plans/:id", pricing.AdminDeletePlan)

	pr.Get("/testimonials", pricing.AdminListTestimonials)
	pr.Post("/testimonials", pricing.AdminCreateTestimonial)
	pr.Patch("/testimonials/:id", pricing.AdminPatchTestimonial)
	pr.Delete("/testimonials/:id", pricing.AdminDeleteTestimonial)

	m := r.Group("/mentorship")
	m.Get("/bookings", bookings.AdminListBookings)
	m.Patch("/bookings/:id", bookings.AdminPatchBookingStatus)

	m.Get("/questions", questions.AdminListQuestions)
	m.Post("/questions/:id/answer", questions.AdminAnswerQuestion)
}
