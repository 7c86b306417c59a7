// file: internals/features/commerce/controller/pricing_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "sarathi_backend/internals/features/commerce/model"
	helper "sarathi_backend/internals/helpers"
)

type PricingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPricingController(db *gorm.DB) *PricingController {
	return &PricingController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers (public)
======================= */

// GET /api/pricing/plans
func (ctrl *PricingController) Plans(c *fiber.Ctx) error {
	var plans []model.PricingPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("pricing_plan_is_active = ?", true).
		Order("pricing_plan_position ASC, pricing_plan_price_inr ASC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Pricing plans fetched", plans)
}

// GET /api/pricing/testimonials
func (ctrl *PricingController) Testimonials(c *fiber.Ctx) error {
	var rows []model.TestimonialModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("testimonial_is_published = ?", true).
		Order("testimonial_position ASC, testimonial_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Testimonials fetched", rows)
}
