// file: internals/features/commerce/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/commerce/controller"
)

// CommercePublicRoutes mounts the unauthenticated surface: the pricing
// page data and the payment gateway's notification callback.
func CommercePublicRoutes(r fiber.Router, db *gorm.DB) {
	pricing := controller.NewPricingController(db)
	bookings := controller.NewBookingController(db)

	pr := r.Group("/pricing")
	pr.Get("/plans", pricing.Plans)
	pr.Get("/testimonials", pricing.Testimonials)

	// The gateway authenticates itself through the signature, not a session.
	r.Post("/mentorship/notification", bookings.MidtransNotification)
}
