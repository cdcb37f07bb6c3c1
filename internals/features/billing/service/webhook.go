// HandlePaymentStatusWebhook is called when the gateway posts a notification.
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hostelku_backend/internals/features/billing/model"
)

// HandlePaymentStatusWebhook applies a gateway notification to the matching
// payment row. The transition runs status-guarded inside a transaction so a
// webhook racing the status poller moves the payment at most once.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	return db.Transaction(func(tx *gorm.DB) error {
		var payment model.PaymentModel
		if err := tx.
			Where("payment_order_id = ?", orderID).
			First(&payment).Error; err != nil {
			log.Println("[ERROR] Payment not found for order:", orderID)
			return fmt.Errorf("payment with order_id %s not found", orderID)
		}

		next, changed := ApplyGatewayStatus(payment.PaymentStatus, status)
		if !changed {
			log.Println("[INFO] Status not applied:", status, "current:", payment.PaymentStatus)
			return nil
		}

		updates := map[string]interface{}{
			"payment_status": next,
		}
		if next == model.PaymentPaid {
			updates["payment_paid_at"] = time.Now()
		}
		if next == model.PaymentFailed {
			updates["payment_failure_reason"] = status
		}
		if ref, ok := body["transaction_id"].(string); ok && ref != "" {
			updates["payment_gateway_ref"] = ref
		}

		// Guard on the previous status so a concurrent transition loses cleanly.
		res := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ? AND payment_status = ?", payment.PaymentID, payment.PaymentStatus).
			Updates(updates)
		if res.Error != nil {
			log.Println("[ERROR] Failed to save payment status:", res.Error)
			return res.Error
		}
		return nil
	})
}
