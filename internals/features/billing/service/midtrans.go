package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"hostelku_backend/internals/features/billing/model"
)

var (
	SnapClient snap.Client
	CoreClient coreapi.Client
)

// InitMidtrans is called at bootstrap.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	CoreClient.New(serverKey, env)
}

// GenerateSnapToken creates the gateway session for a payment share and
// returns token + redirect_url (the fallback checkout page).
func GenerateSnapToken(p model.PaymentModel, orderID, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(p.PaymentAmountINR),
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

// CheckGatewayStatus asks the gateway for the current transaction status of
// an order. Returns the raw transaction_status string plus the gateway's own
// transaction id and status message.
func CheckGatewayStatus(orderID string) (status, gatewayRef, message string, err error) {
	resp, mErr := CoreClient.CheckTransaction(orderID)
	if mErr != nil {
		return "", "", "", mErr
	}
	return resp.TransactionStatus, resp.TransactionID, resp.StatusMessage, nil
}

// CancelGatewayOrder voids a pending order at the gateway. A gateway-side
// 404 is fine — the order may never have reached it.
func CancelGatewayOrder(orderID string) error {
	_, mErr := CoreClient.CancelTransaction(orderID)
	if mErr != nil {
		return mErr
	}
	return nil
}
