// file: internals/features/commerce/dto/commerce_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sarathi_backend/internals/features/commerce/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =======================
   Requests (pricing plans)
======================= */

type CreatePlanRequest struct {
	PricingPlanName      string   `json:"pricing_plan_name" validate:"required,max=120"`
	PricingPlanPriceINR  *int     `json:"pricing_plan_price_inr" validate:"omitempty,gte=0,lte=1000000"`
	PricingPlanPeriod    string   `json:"pricing_plan_period" validate:"required,oneof=monthly quarterly yearly one_time"`
	PricingPlanFeatures  []string `json:"pricing_plan_features" validate:"omitempty,max=30,dive,max=160"`
	PricingPlanIsPopular *bool    `json:"pricing_plan_is_popular"`
	PricingPlanPosition  *int     `json:"pricing_plan_position" validate:"omitempty,gte=0"`
}

func (r *CreatePlanRequest) ToModel(slug string) *model.PricingPlanModel {
	m := &model.PricingPlanModel{
		PricingPlanName:   strings.TrimSpace(r.PricingPlanName),
		PricingPlanSlug:   slug,
		PricingPlanPeriod: model.PlanPeriod(r.PricingPlanPeriod),
	}
	if r.PricingPlanPriceINR != nil {
		m.PricingPlanPriceINR = *r.PricingPlanPriceINR
	}
	if len(r.PricingPlanFeatures) > 0 {
		if b, err := json.Marshal(r.PricingPlanFeatures); err == nil {
			m.PricingPlanFeatures = datatypes.JSON(b)
		}
	}
	if r.PricingPlanIsPopular != nil {
		m.PricingPlanIsPopular = *r.PricingPlanIsPopular
	}
	if r.PricingPlanPosition != nil {
		m.PricingPlanPosition = *r.PricingPlanPosition
	}
	return m
}

type PatchPlanRequest struct {
	PricingPlanName      *string   `json:"pricing_plan_name" validate:"omitempty,max=120"`
	PricingPlanPriceINR  *int      `json:"pricing_plan_price_inr" validate:"omitempty,gte=0,lte=1000000"`
	PricingPlanPeriod    *string   `json:"pricing_plan_period" validate:"omitempty,oneof=monthly quarterly yearly one_time"`
	PricingPlanFeatures  *[]string `json:"pricing_plan_features" validate:"omitempty,max=30,dive,max=160"`
	PricingPlanIsPopular *bool     `json:"pricing_plan_is_popular"`
	PricingPlanIsActive  *bool     `json:"pricing_plan_is_active"`
	PricingPlanPosition  *int      `json:"pricing_plan_position" validate:"omitempty,gte=0"`
}

/* =======================
   Requests (testimonials)
======================= */

type CreateTestimonialRequest struct {
	TestimonialAuthorName  string  `json:"testimonial_author_name" validate:"required,max=120"`
	TestimonialAuthorTitle *string `json:"testimonial_author_title" validate:"omitempty,max=120"`
	TestimonialQuote       string  `json:"testimonial_quote" validate:"required,max=2000"`
	TestimonialAvatarURL   *string `json:"testimonial_avatar_url" validate:"omitempty,url"`
	TestimonialRating      *int16  `json:"testimonial_rating" validate:"omitempty,gte=1,lte=5"`
	TestimonialIsPublished *bool   `json:"testimonial_is_published"`
	TestimonialPosition    *int    `json:"testimonial_position" validate:"omitempty,gte=0"`
}

func (r *CreateTestimonialRequest) ToModel() *model.TestimonialModel {
	m := &model.TestimonialModel{
		TestimonialAuthorName:  strings.TrimSpace(r.TestimonialAuthorName),
		TestimonialAuthorTitle: trimPtr(r.TestimonialAuthorTitle),
		TestimonialQuote:       strings.TrimSpace(r.TestimonialQuote),
		TestimonialAvatarURL:   trimPtr(r.TestimonialAvatarURL),
		TestimonialRating:      5,
	}
	if r.TestimonialRating != nil {
		m.TestimonialRating = *r.TestimonialRating
	}
	if r.TestimonialIsPublished != nil {
		m.TestimonialIsPublished = *r.TestimonialIsPublished
	}
	if r.TestimonialPosition != nil {
		m.TestimonialPosition = *r.TestimonialPosition
	}
	return m
}

type PatchTestimonialRequest struct {
	TestimonialAuthorName  *string `json:"testimonial_author_name" validate:"omitempty,max=120"`
	TestimonialAuthorTitle *string `json:"testimonial_author_title" validate:"omitempty,max=120"`
	TestimonialQuote       *string `json:"testimonial_quote" validate:"omitempty,max=2000"`
	TestimonialAvatarURL   *string `json:"testimonial_avatar_url" validate:"omitempty,url"`
	TestimonialRating      *int16  `json:"testimonial_rating" validate:"omitempty,gte=1,lte=5"`
	TestimonialIsPublished *bool   `json:"testimonial_is_published"`
	TestimonialPosition    *int    `json:"testimonial_position" validate:"omitempty,gte=0"`
}

/* =======================
   Requests (mentor bookings)
======================= */

type CreateBookingRequest struct {
	MentorBookingMentorName      *string `json:"mentor_booking_mentor_name" validate:"omitempty,max=120"`
	MentorBookingTopic           string  `json:"mentor_booking_topic" validate:"required,max=200"`
	MentorBookingSlotAt          string  `json:"mentor_booking_slot_at" validate:"required"`
	MentorBookingDurationMinutes *int    `json:"mentor_booking_duration_minutes" validate:"omitempty,gt=0,lte=240"`
	MentorBookingNote            *string `json:"mentor_booking_note" validate:"omitempty,max=1000"`
}

// SlotTime parses slot_at as RFC3339 so callers send an explicit offset.
func (r *CreateBookingRequest) SlotTime() (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(r.MentorBookingSlotAt))
}

func (r *CreateBookingRequest) ToModel(userID uuid.UUID, orderID string, slotAt time.Time, amountINR int) *model.MentorBookingModel {
	m := &model.MentorBookingModel{
		MentorBookingUserID:     userID,
		MentorBookingOrderID:    orderID,
		MentorBookingMentorName: trimPtr(r.MentorBookingMentorName),
		MentorBookingTopic:      strings.TrimSpace(r.MentorBookingTopic),
		MentorBookingSlotAt:     slotAt,
		MentorBookingAmountINR:  amountINR,
		MentorBookingStatus:     model.BookingPendingPayment,
		MentorBookingNote:       trimPtr(r.MentorBookingNote),
	}
	if r.MentorBookingDurationMinutes != nil {
		m.MentorBookingDurationMinutes = *r.MentorBookingDurationMinutes
	} else {
		m.MentorBookingDurationMinutes = 30
	}
	return m
}

type PatchBookingStatusRequest struct {
	MentorBookingStatus string `json:"mentor_booking_status" validate:"required,oneof=pending_payment confirmed completed cancelled"`
}

/* =======================
   Requests (mentor questions)
======================= */

type CreateQuestionRequest struct {
	MentorQuestionText    string  `json:"mentor_question_text" validate:"required,min=10,max=2000"`
	MentorQuestionSubject *string `json:"mentor_question_subject" validate:"omitempty,max=80"`
}

func (r *CreateQuestionRequest) ToModel(userID uuid.UUID) *model.MentorQuestionModel {
	return &model.MentorQuestionModel{
		MentorQuestionUserID:  userID,
		MentorQuestionText:    strings.TrimSpace(r.MentorQuestionText),
		MentorQuestionSubject: trimPtr(r.MentorQuestionSubject),
		MentorQuestionStatus:  model.QuestionOpen,
	}
}

type AnswerQuestionRequest struct {
	MentorQuestionAnswer string `json:"mentor_question_answer" validate:"required,max=5000"`
}
