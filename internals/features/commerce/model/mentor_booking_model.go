// file: internals/features/commerce/model/mentor_booking_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================
   Enums
======================= */

type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
)

func (s BookingStatus) String() string { return string(s) }

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPendingPayment, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func (s *BookingStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = BookingStatus(strings.ToLower(v))
	case []byte:
		*s = BookingStatus(strings.ToLower(string(v)))
	case nil:
		*s = BookingPendingPayment
	default:
		return fmt.Errorf("unsupported type for BookingStatus: %T", value)
	}
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) { return string(s), nil }

// CancellableBy reports whether the caller may still cancel. Bookings
// lock 24 hours before the slot.
func (s BookingStatus) CancellableBy(slotAt, now time.Time) bool {
	if s != BookingPendingPayment && s != BookingConfirmed {
		return false
	}
	return slotAt.Sub(now) >= 24*time.Hour
}

/* =======================
   Model
======================= */

type MentorBookingModel struct {
	MentorBookingID uuid.UUID `gorm:"column:mentor_booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mentor_booking_id"`

	MentorBookingUserID uuid.UUID `gorm:"column:mentor_booking_user_id;type:uuid;not null;index:idx_mentor_bookings_user" json:"mentor_booking_user_id"`

	// Gateway order reference, generated as MB-<shortid>.
	MentorBookingOrderID string `gorm:"column:mentor_booking_order_id;type:varchar(40);not null;uniqueIndex:uq_mentor_bookings_order" json:"mentor_booking_order_id"`

	MentorBookingMentorName *string `gorm:"column:mentor_booking_mentor_name;type:varchar(120)" json:"mentor_booking_mentor_name,omitempty"`
	MentorBookingTopic      string  `gorm:"column:mentor_booking_topic;type:varchar(200);not null" json:"mentor_booking_topic"`

	MentorBookingSlotAt          time.Time `gorm:"column:mentor_booking_slot_at;type:timestamptz;not null" json:"mentor_booking_slot_at"`
	MentorBookingDurationMinutes int       `gorm:"column:mentor_booking_duration_minutes;not null;default:30" json:"mentor_booking_duration_minutes"`

	MentorBookingAmountINR int           `gorm:"column:mentor_booking_amount_inr;not null" json:"mentor_booking_amount_inr"`
	MentorBookingStatus    BookingStatus `gorm:"column:mentor_booking_status;type:varchar(20);not null;default:'pending_payment'" json:"mentor_booking_status"`

	MentorBookingSnapToken   *string    `gorm:"column:mentor_booking_snap_token;type:text" json:"mentor_booking_snap_token,omitempty"`
	MentorBookingCheckoutURL *string    `gorm:"column:mentor_booking_checkout_url;type:text" json:"mentor_booking_checkout_url,omitempty"`
	MentorBookingPaidAt      *time.Time `gorm:"column:mentor_booking_paid_at" json:"mentor_booking_paid_at,omitempty"`
	MentorBookingGatewayRef  *string    `gorm:"column:mentor_booking_gateway_ref;type:varchar(80)" json:"mentor_booking_gateway_ref,omitempty"`

	MentorBookingNote *string `gorm:"column:mentor_booking_note;type:text" json:"mentor_booking_note,omitempty"`

	MentorBookingCreatedAt time.Time      `gorm:"column:mentor_booking_created_at;autoCreateTime" json:"mentor_booking_created_at"`
	MentorBookingUpdatedAt time.Time      `gorm:"column:mentor_booking_updated_at;autoUpdateTime" json:"mentor_booking_updated_at"`
	MentorBookingDeletedAt gorm.DeletedAt `gorm:"column:mentor_booking_deleted_at;index" json:"-"`
}

func (MentorBookingModel) TableName() string { return "mentor_bookings" }

func (m *MentorBookingModel) BeforeSave(tx *gorm.DB) error {
	m.MentorBookingTopic = strings.TrimSpace(m.MentorBookingTopic)
	if m.MentorBookingStatus == "" {
		m.MentorBookingStatus = BookingPendingPayment
	}
	if !m.MentorBookingStatus.Valid() {
		return fmt.Errorf("invalid booking status: %q", m.MentorBookingStatus)
	}
	m.MentorBookingUpdatedAt = time.Now()
	return nil
}
