// file: internals/features/commerce/service/notification_service.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"time"

	"sarathi_backend/internals/features/commerce/model"
)

/* =========================================================
   Gateway notification payload
========================================================= */

// MidtransNotification is the subset of the gateway's HTTP notification
// the app reads. Unknown fields in the payload are ignored by the parser.
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // midtrans sends amounts as strings
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// VerifySignature checks signature_key = SHA512(order_id + status_code +
// gross_amount + server key), the scheme midtrans documents for HTTP
// notifications. A missing signature never verifies.
func (n MidtransNotification) VerifySignature(serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	if want == "" {
		return false
	}
	return sha512sum(n.OrderID+n.StatusCode+n.GrossAmount+serverKey) == want
}

// NextBookingStatus maps the gateway transaction status onto the booking's
// status. The second return reports whether this notification settles the
// payment; callers stamp paid_at from PaidTime when it does. A card capture
// under fraud challenge stays pending until the gateway re-notifies, and an
// unrecognized status leaves the booking where it is.
func (n MidtransNotification) NextBookingStatus(current model.BookingStatus) (model.BookingStatus, bool) {
	ts := strings.ToLower(n.TransactionStatus)
	fraud := strings.ToLower(n.FraudStatus)

	switch ts {
	case "capture", "settlement", "success":
		if ts == "capture" && fraud == "challenge" {
			return model.BookingPendingPayment, false
		}
		return model.BookingConfirmed, true
	case "pending":
		return model.BookingPendingPayment, false
	case "deny", "cancel", "canceled", "expire", "expired", "failure", "failed", "refund", "partial_refund":
		return model.BookingCancelled, false
	default:
		return current, false
	}
}

// PaidTime reads the gateway settlement timestamp, preferring
// settlement_time over transaction_time. The gateway formats both as
// "2006-01-02 15:04:05"; missing or malformed values fall back to now.
func (n MidtransNotification) PaidTime() time.Time {
	const layout = "2006-01-02 15:04:05"
	if s := strings.TrimSpace(n.SettlementTime); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	if s := strings.TrimSpace(n.TransactionTime); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}
