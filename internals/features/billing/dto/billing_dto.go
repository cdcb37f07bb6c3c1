package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/billing/model"
)

/* ======================= REQUESTS ======================= */

type CreateBillRequest struct {
	BillRoomID uuid.UUID `json:"bill_room_id" validate:"required"`
	BillMonth  int16     `json:"bill_month" validate:"required,min=1,max=12"`
	BillYear   int16     `json:"bill_year" validate:"required,min=2000,max=2100"`

	BillUnits     int `json:"bill_units" validate:"min=0"`
	BillAmountINR int `json:"bill_amount_inr" validate:"required,min=1"`

	BillDueDate *string `json:"bill_due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateBillRequest) ToModel() (*model.ElectricityBillModel, error) {
	m := &model.ElectricityBillModel{
		BillRoomID:    r.BillRoomID,
		BillMonth:     r.BillMonth,
		BillYear:      r.BillYear,
		BillUnits:     r.BillUnits,
		BillAmountINR: r.BillAmountINR,
	}
	if r.BillDueDate != nil && *r.BillDueDate != "" {
		due, err := time.Parse("2006-01-02", *r.BillDueDate)
		if err != nil {
			return nil, err
		}
		m.BillDueDate = &due
	}
	return m, nil
}

/* ======================= RESPONSES ======================= */

type BillResponse struct {
	BillID     uuid.UUID `json:"bill_id"`
	BillRoomID uuid.UUID `json:"bill_room_id"`
	BillMonth  int16     `json:"bill_month"`
	BillYear   int16     `json:"bill_year"`

	BillUnits        int `json:"bill_units"`
	BillAmountINR    int `json:"bill_amount_inr"`
	BillStudentShare int `json:"bill_student_share_inr"`

	BillDueDate   *time.Time `json:"bill_due_date,omitempty"`
	BillCreatedAt time.Time  `json:"bill_created_at"`
}

func FromBillModel(m model.ElectricityBillModel) BillResponse {
	return BillResponse{
		BillID:           m.BillID,
		BillRoomID:       m.BillRoomID,
		BillMonth:        m.BillMonth,
		BillYear:         m.BillYear,
		BillUnits:        m.BillUnits,
		BillAmountINR:    m.BillAmountINR,
		BillStudentShare: m.BillStudentShare,
		BillDueDate:      m.BillDueDate,
		BillCreatedAt:    m.BillCreatedAt,
	}
}

type PaymentResponse struct {
	PaymentID        uuid.UUID           `json:"payment_id"`
	PaymentBillID    uuid.UUID           `json:"payment_bill_id"`
	PaymentStudentID uuid.UUID           `json:"payment_student_id"`
	PaymentAmountINR int                 `json:"payment_amount_inr"`
	PaymentStatus    model.PaymentStatus `json:"payment_status"`
	PaymentOrderID   *string             `json:"payment_order_id,omitempty"`
	PaymentPaidAt    *time.Time          `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt time.Time           `json:"payment_created_at"`
}

func FromPaymentModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentBillID:    m.PaymentBillID,
		PaymentStudentID: m.PaymentStudentID,
		PaymentAmountINR: m.PaymentAmountINR,
		PaymentStatus:    m.PaymentStatus,
		PaymentOrderID:   m.PaymentOrderID,
		PaymentPaidAt:    m.PaymentPaidAt,
		PaymentCreatedAt: m.PaymentCreatedAt,
	}
}

/* ======================= INITIATE RESPONSE ======================= */

type InitiatePaymentResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
	AmountINR   int       `json:"amount_inr"`
}
