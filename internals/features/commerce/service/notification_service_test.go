package service

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"sarathi_backend/internals/features/commerce/model"
)

func signFor(n MidtransNotification, serverKey string) string {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestVerifySignature(t *testing.T) {
	const key = "SB-Mid-server-testkey"
	n := MidtransNotification{
		OrderID:     "MB-9F3C01A2B4",
		StatusCode:  "200",
		GrossAmount: "499.00",
	}

	n.SignatureKey = signFor(n, key)
	if !n.VerifySignature(key) {
		t.Fatalf("correctly signed notification rejected")
	}

	n.SignatureKey = strings.ToUpper(n.SignatureKey)
	if !n.VerifySignature(key) {
		t.Fatalf("uppercase hex signature rejected")
	}

	tampered := n
	tampered.GrossAmount = "1.00"
	if tampered.VerifySignature(key) {
		t.Fatalf("tampered gross_amount passed verification")
	}

	unsigned := n
	unsigned.SignatureKey = ""
	if unsigned.VerifySignature(key) {
		t.Fatalf("empty signature passed verification")
	}

	if n.VerifySignature("some-other-key") {
		t.Fatalf("signature verified against the wrong server key")
	}
}

func TestNextBookingStatus(t *testing.T) {
	cases := []struct {
		name     string
		txStatus string
		fraud    string
		current  model.BookingStatus
		want     model.BookingStatus
		wantPaid bool
	}{
		{"settlement", "settlement", "", model.BookingPendingPayment, model.BookingConfirmed, true},
		{"capture accepted", "capture", "accept", model.BookingPendingPayment, model.BookingConfirmed, true},
		{"capture challenged", "capture", "challenge", model.BookingPendingPayment, model.BookingPendingPayment, false},
		{"pending", "pending", "", model.BookingPendingPayment, model.BookingPendingPayment, false},
		{"deny", "deny", "", model.BookingPendingPayment, model.BookingCancelled, false},
		{"cancel", "cancel", "", model.BookingPendingPayment, model.BookingCancelled, false},
		{"expire", "expire", "", model.BookingPendingPayment, model.BookingCancelled, false},
		{"refund after payment", "refund", "", model.BookingConfirmed, model.BookingCancelled, false},
		{"mixed case", "SETTLEMENT", "", model.BookingPendingPayment, model.BookingConfirmed, true},
		{"unknown keeps current", "chargeback", "", model.BookingConfirmed, model.BookingConfirmed, false},
	}

	for _, tc := range cases {
		n := MidtransNotification{TransactionStatus: tc.txStatus, FraudStatus: tc.fraud}
		got, paid := n.NextBookingStatus(tc.current)
		if got != tc.want || paid != tc.wantPaid {
			t.Fatalf("%s: NextBookingStatus = (%s, %v), want (%s, %v)", tc.name, got, paid, tc.want, tc.wantPaid)
		}
	}
}

func TestPaidTimePrefersSettlementTime(t *testing.T) {
	n := MidtransNotification{
		TransactionTime: "2026-03-01 10:00:00",
		SettlementTime:  "2026-03-01 10:05:21",
	}
	got := n.PaidTime()
	if got.Hour() != 10 || got.Minute() != 5 || got.Second() != 21 {
		t.Fatalf("PaidTime = %v, want the settlement_time clock", got)
	}

	n.SettlementTime = "not a timestamp"
	got = n.PaidTime()
	if got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("malformed settlement_time should fall back to transaction_time, got %v", got)
	}

	empty := MidtransNotification{}
	if d := time.Since(empty.PaidTime()); d < 0 || d > time.Minute {
		t.Fatalf("empty payload should fall back to now, got %v ago", d)
	}
}

func TestNewBookingOrderID(t *testing.T) {
	id := NewBookingOrderID()
	if !strings.HasPrefix(id, "MB-") {
		t.Fatalf("order id %q missing MB- prefix", id)
	}
	if len(id) != 13 {
		t.Fatalf("order id %q has length %d, want 13", id, len(id))
	}
	for _, r := range id[3:] {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			t.Fatalf("order id %q contains non-hex rune %q", id, r)
		}
	}
	if NewBookingOrderID() == id {
		t.Fatalf("two generated order ids collided: %q", id)
	}
}
