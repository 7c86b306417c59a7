// file: internals/features/commerce/controller/admin_commerce_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/commerce/dto"
	model "sarathi_backend/internals/features/commerce/model"
	helper "sarathi_backend/internals/helpers"
)

func planSlugOpts() helper.SlugOptions {
	return helper.SlugOptions{
		Table:            "pricing_plans",
		SlugColumn:       "pricing_plan_slug",
		SoftDeleteColumn: "pricing_plan_deleted_at",
		DefaultBase:      "plan",
	}
}

/* =======================
   Handlers (admin plans)
======================= */

// GET /api/admin/pricing/plans
func (ctrl *PricingController) AdminListPlans(c *fiber.Ctx) error {
	var plans []model.PricingPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("pricing_plan_position ASC, pricing_plan_created_at ASC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Pricing plans fetched", plans)
}

// POST /api/admin/pricing/plans
func (ctrl *PricingController) AdminCreatePlan(c *fiber.Ctx) error {
	var body dto.CreatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), planSlugOpts(), body.PricingPlanName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	plan := body.ToModel(slug)
	plan.PricingPlanIsActive = true
	if err := ctrl.DB.WithContext(c.Context()).Create(plan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Plan created", plan)
}

// PATCH /api/admin/pricing/plans/:id
func (ctrl *PricingController) AdminPatchPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan ID")
	}

	var body dto.PatchPlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var plan model.PricingPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&plan, "pricing_plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.PricingPlanName != nil {
		if name := strings.TrimSpace(*body.PricingPlanName); name != "" {
			updates["pricing_plan_name"] = name
		}
	}
	if body.PricingPlanPriceINR != nil {
		updates["pricing_plan_price_inr"] = *body.PricingPlanPriceINR
	}
	if body.PricingPlanPeriod != nil {
		updates["pricing_plan_period"] = *body.PricingPlanPeriod
	}
	if body.PricingPlanFeatures != nil {
		if b, merr := json.Marshal(*body.PricingPlanFeatures); merr == nil {
			updates["pricing_plan_features"] = datatypes.JSON(b)
		}
	}
	if body.PricingPlanIsPopular != nil {
		updates["pricing_plan_is_popular"] = *body.PricingPlanIsPopular
	}
	if body.PricingPlanIsActive != nil {
		updates["pricing_plan_is_active"] = *body.PricingPlanIsActive
	}
	if body.PricingPlanPosition != nil {
		updates["pricing_plan_position"] = *body.PricingPlanPosition
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", plan)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&plan).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&plan, "pricing_plan_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Plan updated", plan)
}

// DELETE /api/admin/pricing/plans/:id
func (ctrl *PricingController) AdminDeletePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("pricing_plan_id = ?", id).
		Delete(&model.PricingPlanModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
	}

	return helper.JsonDeleted(c, "Plan deleted", fiber.Map{"pricing_plan_id": id})
}

/* =======================
   Handlers (admin testimonials)
======================= */

// GET /api/admin/pricing/testimonials
func (ctrl *PricingController) AdminListTestimonials(c *fiber.Ctx) error {
	var rows []model.TestimonialModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("testimonial_position ASC, testimonial_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Testimonials fetched", rows)
}

// POST /api/admin/pricing/testimonials
func (ctrl *PricingController) AdminCreateTestimonial(c *fiber.Ctx) error {
	var body dto.CreateTestimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Testimonial created", row)
}

// PATCH /api/admin/pricing/testimonials/:id
func (ctrl *PricingController) AdminPatchTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid testimonial ID")
	}

	var body dto.PatchTestimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.TestimonialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&row, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.TestimonialAuthorName != nil {
		if name := strings.TrimSpace(*body.TestimonialAuthorName); name != "" {
			updates["testimonial_author_name"] = name
		}
	}
	if body.TestimonialAuthorTitle != nil {
		if title := strings.TrimSpace(*body.TestimonialAuthorTitle); title != "" {
			updates["testimonial_author_title"] = title
		} else {
			updates["testimonial_author_title"] = gorm.Expr("NULL")
		}
	}
	if body.TestimonialQuote != nil {
		if quote := strings.TrimSpace(*body.TestimonialQuote); quote != "" {
			updates["testimonial_quote"] = quote
		}
	}
	if body.TestimonialAvatarURL != nil {
		if u := strings.TrimSpace(*body.TestimonialAvatarURL); u != "" {
			updates["testimonial_avatar_url"] = u
		} else {
			updates["testimonial_avatar_url"] = gorm.Expr("NULL")
		}
	}
	if body.TestimonialRating != nil {
		updates["testimonial_rating"] = *body.TestimonialRating
	}
	if body.TestimonialIsPublished != nil {
		updates["testimonial_is_published"] = *body.TestimonialIsPublished
	}
	if body.TestimonialPosition != nil {
		updates["testimonial_position"] = *body.TestimonialPosition
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", row)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&row).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&row, "testimonial_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Testimonial updated", row)
}

// DELETE /api/admin/pricing/testimonials/:id
// Testimonials have no soft delete; removal is final.
func (ctrl *PricingController) AdminDeleteTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid testimonial ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("testimonial_id = ?", id).
		Delete(&model.TestimonialModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
	}

	return helper.JsonDeleted(c, "Testimonial deleted", fiber.Map{"testimonial_id": id})
}

/* =======================
   Handlers (admin bookings)
======================= */

// GET /api/admin/mentorship/bookings?status=
func (ctrl *BookingController) AdminListBookings(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "slot_at", "desc", helper.AdminOpts)
	allowedSort := map[string]string{
		"slot_at":    "mentor_booking_slot_at",
		"created_at": "mentor_booking_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "slot_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort parameters")
	}

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.MentorBookingModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.BookingStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("mentor_booking_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MentorBookingModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Bookings fetched", rows, helper.BuildMeta(total, p))
}

// PATCH /api/admin/mentorship/bookings/:id
func (ctrl *BookingController) AdminPatchBookingStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var body dto.PatchBookingStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var booking model.MentorBookingModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&booking, "mentor_booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := model.BookingStatus(body.MentorBookingStatus)
	if next == booking.MentorBookingStatus {
		return helper.JsonOK(c, "No changes", booking)
	}
	if booking.MentorBookingStatus == model.BookingCompleted || booking.MentorBookingStatus == model.BookingCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Booking is already in a terminal state")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&booking).
		Update("mentor_booking_status", next.String()).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	booking.MentorBookingStatus = next
	return helper.JsonUpdated(c, "Booking updated", booking)
}

/* =======================
   Handlers (admin questions)
======================= */

// GET /api/admin/mentorship/questions?status=
func (ctrl *QuestionController) AdminListQuestions(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "asc", helper.AdminOpts)
	allowedSort := map[string]string{
		"created_at": "mentor_question_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort parameters")
	}

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.MentorQuestionModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.QuestionStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		tx = tx.Where("mentor_question_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MentorQuestionModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "Questions fetched", rows, helper.BuildMeta(total, p))
}

// POST /api/admin/mentorship/questions/:id/answer
// Answering again replaces the previous answer and re-stamps the author.
func (ctrl *QuestionController) AdminAnswerQuestion(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.AnswerQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.MentorQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "mentor_question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{
		"mentor_question_answer":      strings.TrimSpace(body.MentorQuestionAnswer),
		"mentor_question_answered_by": adminID,
		"mentor_question_answered_at": time.Now(),
		"mentor_question_status":      model.QuestionAnswered.String(),
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&question).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "mentor_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Question answered", question)
}
