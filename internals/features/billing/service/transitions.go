package service

import (
	"hostelku_backend/internals/features/billing/model"
)

// ApplyGatewayStatus maps a raw gateway transaction_status onto the payment
// lifecycle. It returns the next status and whether a transition happened.
//
// Rules:
//   - terminal states (paid, failed, cancelled) are absorbing: a stale or
//     slow gateway response can never downgrade them;
//   - only a pending payment moves — the unpaid→pending edge belongs to
//     initiation, not to gateway polling;
//   - unknown gateway statuses leave the payment untouched.
func ApplyGatewayStatus(current model.PaymentStatus, gatewayStatus string) (model.PaymentStatus, bool) {
	if current.IsTerminal() {
		return current, false
	}
	if current != model.PaymentPending {
		return current, false
	}

	switch gatewayStatus {
	case "capture", "settlement":
		return model.PaymentPaid, true
	case "deny", "failure", "expire":
		return model.PaymentFailed, true
	case "cancel":
		return model.PaymentCancelled, true
	default:
		// "pending", "authorize" and anything unrecognized: keep waiting
		return current, false
	}
}
