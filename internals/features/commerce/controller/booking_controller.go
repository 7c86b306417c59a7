// file: internals/features/commerce/controller/booking_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sarathi_backend/internals/configs"
	dto "sarathi_backend/internals/features/commerce/dto"
	model "sarathi_backend/internals/features/commerce/model"
	service "sarathi_backend/internals/features/commerce/service"
	userModel "sarathi_backend/internals/features/users/user/model"
	helper "sarathi_backend/internals/helpers"
)

type BookingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers (user)
======================= */

// POST /api/mentorship/bookings
func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.CreateBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slotAt, err := body.SlotTime()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slot_at, want RFC3339")
	}
	if !slotAt.After(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slot must be in the future")
	}

	amount := configs.MentorSessionFee
	booking := body.ToModel(userID, service.NewBookingOrderID(), slotAt, amount)

	// Free sessions skip the gateway entirely.
	if amount == 0 {
		booking.MentorBookingStatus = model.BookingConfirmed
		if err := ctrl.DB.WithContext(c.Context()).Create(booking).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "Booking confirmed", booking)
	}

	if configs.MidtransServerKey == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Payments not configured")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(booking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, redirectURL, err := service.GenerateBookingSnapToken(*booking, user.UserFullName, user.UserEmail)
	if err != nil {
		log.Printf("[COMMERCE] snap token failed for %s: %v", booking.MentorBookingOrderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	update := map[string]any{
		"mentor_booking_snap_token":   token,
		"mentor_booking_checkout_url": redirectURL,
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.MentorBookingModel{}).
		Where("mentor_booking_id = ?", booking.MentorBookingID).
		Updates(update).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	booking.MentorBookingSnapToken = &token
	booking.MentorBookingCheckoutURL = &redirectURL
	return helper.JsonCreated(c, "Booking created, complete the payment", booking)
}

// GET /api/mentorship/bookings
func (ctrl *BookingController) MyBookings(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "slot_at", "desc", helper.DefaultOpts)
	allowedSort := map[string]string{
		"slot_at":    "mentor_booking_slot_at",
		"created_at": "mentor_booking_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "slot_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort parameters")
	}

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MentorBookingModel{}).
		Where("mentor_booking_user_id = ?", userID)

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

// DELETE /api/mentorship/bookings/:id
func (ctrl *BookingController) CancelBooking(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	var booking model.MentorBookingModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&booking, "mentor_booking_id = ? AND mentor_booking_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !booking.MentorBookingStatus.CancellableBy(booking.MentorBookingSlotAt, time.Now()) {
		return helper.JsonError(c, fiber.StatusConflict, "Booking can no longer be cancelled")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&booking).
		Update("mentor_booking_status", model.BookingCancelled.String()).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	booking.MentorBookingStatus = model.BookingCancelled
	return helper.JsonUpdated(c, "Booking cancelled", booking)
}

/* =======================
   Handlers (gateway webhook)
======================= */

// POST /api/mentorship/notification
// Public path. The gateway retries on any non-2xx, so processing problems
// after signature verification still answer 200.
func (ctrl *BookingController) MidtransNotification(c *fiber.Ctx) error {
	notif, ok := parseNotification(c)
	if !ok {
		log.Printf("[COMMERCE] webhook body empty or unreadable, ct=%q", c.Get(fiber.HeaderContentType))
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "empty body"})
	}

	if !notif.VerifySignature(configs.MidtransServerKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	var booking model.MentorBookingModel
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "mentor_booking_order_id = ?", notif.OrderID).Error; err != nil {
			return err
		}

		// Completed sessions are an admin-set terminal state; late gateway
		// notifications cannot regress them.
		if booking.MentorBookingStatus == model.BookingCompleted {
			return nil
		}

		next, paid := notif.NextBookingStatus(booking.MentorBookingStatus)

		updates := map[string]any{}
		if next != booking.MentorBookingStatus {
			updates["mentor_booking_status"] = next.String()
		}
		if paid && booking.MentorBookingPaidAt == nil {
			updates["mentor_booking_paid_at"] = notif.PaidTime()
		}
		if notif.TransactionID != "" && (booking.MentorBookingGatewayRef == nil || *booking.MentorBookingGatewayRef != notif.TransactionID) {
			updates["mentor_booking_gateway_ref"] = notif.TransactionID
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		booking.MentorBookingStatus = next
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored", "reason": "booking not found"})
		}
		log.Printf("[COMMERCE] webhook processing failed for %s: %v", notif.OrderID, err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "processed with warning", "error": err.Error()})
	}

	return helper.JsonOK(c, "Notification processed", fiber.Map{
		"order_id":       notif.OrderID,
		"gateway_status": strings.ToLower(notif.TransactionStatus),
		"booking_status": booking.MentorBookingStatus,
	})
}

// parseNotification reads the webhook payload as JSON, then falls back to
// form-urlencoded, which the gateway also sends (including its test button).
func parseNotification(c *fiber.Ctx) (service.MidtransNotification, bool) {
	var notif service.MidtransNotification

	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if strings.Contains(ct, "application/json") && len(c.Body()) > 0 {
		if err := c.BodyParser(&notif); err == nil && notif.OrderID != "" {
			return notif, true
		}
	}

	form := map[string]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		form[string(k)] = string(v)
	})
	if len(form) == 0 {
		return notif, false
	}

	notif = service.MidtransNotification{
		TransactionTime:   form["transaction_time"],
		TransactionStatus: form["transaction_status"],
		StatusCode:        form["status_code"],
		SignatureKey:      form["signature_key"],
		OrderID:           form["order_id"],
		GrossAmount:       form["gross_amount"],
		PaymentType:       form["payment_type"],
		FraudStatus:       form["fraud_status"],
		TransactionID:     form["transaction_id"],
		SettlementTime:    form["settlement_time"],
	}
	return notif, notif.OrderID != ""
}
