// internals/features/billing/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus keeps the per-student share lifecycle safe in code.
type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "unpaid"
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// IsTerminal reports whether the status is absorbing: once reached, no
// gateway response may move the payment again.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentPaid || s == PaymentFailed || s == PaymentCancelled
}

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// FK to the bill header and the paying student; one share per pair
	PaymentBillID    uuid.UUID `gorm:"column:payment_bill_id;type:uuid;not null;uniqueIndex:uq_payments_bill_student" json:"payment_bill_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;uniqueIndex:uq_payments_bill_student" json:"payment_student_id"`

	PaymentAmountINR int           `gorm:"column:payment_amount_inr;not null;check:payment_amount_inr >= 0" json:"payment_amount_inr"`
	PaymentStatus    PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:unpaid" json:"payment_status"`

	// Gateway references: order id is ours, gateway ref is theirs
	PaymentOrderID    *string `gorm:"column:payment_order_id;size:64;unique" json:"payment_order_id,omitempty"`
	PaymentGatewayRef *string `gorm:"column:payment_gateway_ref;size:64" json:"payment_gateway_ref,omitempty"`

	PaymentFailureReason *string    `gorm:"column:payment_failure_reason;type:text" json:"payment_failure_reason,omitempty"`
	PaymentPaidAt        *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
