package model

import (
	"testing"
	"time"
)

func TestBookingCancellableBy(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status BookingStatus
		slotAt time.Time
		want   bool
	}{
		{"pending well before slot", BookingPendingPayment, now.Add(72 * time.Hour), true},
		{"confirmed well before slot", BookingConfirmed, now.Add(72 * time.Hour), true},
		{"exactly 24h before slot", BookingConfirmed, now.Add(24 * time.Hour), true},
		{"inside 24h window", BookingConfirmed, now.Add(23*time.Hour + 59*time.Minute), false},
		{"slot already passed", BookingConfirmed, now.Add(-time.Hour), false},
		{"completed never cancellable", BookingCompleted, now.Add(72 * time.Hour), false},
		{"cancelled never cancellable", BookingCancelled, now.Add(72 * time.Hour), false},
	}

	for _, tc := range cases {
		if got := tc.status.CancellableBy(tc.slotAt, now); got != tc.want {
			t.Fatalf("%s: CancellableBy = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBookingStatusScanLowercases(t *testing.T) {
	var s BookingStatus
	if err := s.Scan("CONFIRMED"); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if s != BookingConfirmed {
		t.Fatalf("scan produced %q, want %q", s, BookingConfirmed)
	}

	var empty BookingStatus
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if empty != BookingPendingPayment {
		t.Fatalf("nil scan produced %q, want default %q", empty, BookingPendingPayment)
	}
}
