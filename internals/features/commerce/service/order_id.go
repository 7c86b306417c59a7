// file: internals/features/commerce/service/order_id.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewBookingOrderID returns a fresh gateway order id like MB-9F3C01A2B4.
// A collision would trip the unique index on mentor_booking_order_id and
// surface as a duplicate-key error on create.
func NewBookingOrderID() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return "MB-" + strings.ToUpper(hex.EncodeToString(buf))
}
