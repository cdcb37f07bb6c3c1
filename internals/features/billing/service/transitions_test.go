package service

import (
	"testing"

	"hostelku_backend/internals/features/billing/model"
)

func TestApplyGatewayStatus(t *testing.T) {
	tests := []struct {
		name    string
		current model.PaymentStatus
		gateway string
		want    model.PaymentStatus
		changed bool
	}{
		{"pending settles", model.PaymentPending, "settlement", model.PaymentPaid, true},
		{"pending captured", model.PaymentPending, "capture", model.PaymentPaid, true},
		{"pending denied", model.PaymentPending, "deny", model.PaymentFailed, true},
		{"pending expired", model.PaymentPending, "expire", model.PaymentFailed, true},
		{"pending cancelled", model.PaymentPending, "cancel", model.PaymentCancelled, true},
		{"pending stays on pending echo", model.PaymentPending, "pending", model.PaymentPending, false},
		{"pending ignores unknown status", model.PaymentPending, "refund", model.PaymentPending, false},
		{"unpaid never moves from gateway", model.PaymentUnpaid, "settlement", model.PaymentUnpaid, false},
		{"paid absorbs late failure", model.PaymentPaid, "expire", model.PaymentPaid, false},
		{"failed absorbs late settlement", model.PaymentFailed, "settlement", model.PaymentFailed, false},
		{"cancelled absorbs everything", model.PaymentCancelled, "capture", model.PaymentCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ApplyGatewayStatus(tt.current, tt.gateway)
			if got != tt.want || changed != tt.changed {
				t.Fatalf("ApplyGatewayStatus(%q, %q) = (%q, %v), want (%q, %v)",
					tt.current, tt.gateway, got, changed, tt.want, tt.changed)
			}
		})
	}
}

// A poll burst of (pending, pending, success) must move the payment exactly once.
func TestApplyGatewayStatusPollBurst(t *testing.T) {
	current := model.PaymentPending
	transitions := 0
	for _, gw := range []string{"pending", "pending", "settlement", "settlement"} {
		next, changed := ApplyGatewayStatus(current, gw)
		if changed {
			transitions++
		}
		current = next
	}
	if transitions != 1 {
		t.Fatalf("expected exactly 1 transition, got %d", transitions)
	}
	if current != model.PaymentPaid {
		t.Fatalf("expected final status paid, got %q", current)
	}
}
