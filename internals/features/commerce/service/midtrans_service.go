// file: internals/features/commerce/service/midtrans_service.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"sarathi_backend/internals/features/commerce/model"
)

var SnapClient snap.Client

// InitMidtrans wires the shared Snap client. Call once at bootstrap with
// the server key from env; useProduction flips sandbox to live.
func InitMidtrans(serverKey string, useProduction bool) {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateBookingSnapToken creates a Snap transaction for a booking and
// returns the token plus the hosted checkout URL.
func GenerateBookingSnapToken(b model.MentorBookingModel, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  b.MentorBookingOrderID,
			GrossAmt: int64(b.MentorBookingAmountINR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
