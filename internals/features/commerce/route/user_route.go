// file: internals/features/commerce/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sarathi_backend/internals/features/commerce/controller"
)

// CommerceUserRoutes mounts mentorship bookings and questions for the
// signed-in aspirant.
func CommerceUserRoutes(r fiber.Router, db *gorm.DB) {
	bookings := controller.NewBookingController(db)
	questions := controller.NewQuestionController(db)

	m := r.Group("/mentorship")

	m.Post("/bookings", bookings.CreateBooking)
	m.Get("/bookings", bookings.MyBookings)
	m.Delete("/bookings/:id", bookings.CancelBooking)

	m.Post("/questions", questions.CreateQuestion)
	m.Get("/questions", questions.MyQuestions)
}
