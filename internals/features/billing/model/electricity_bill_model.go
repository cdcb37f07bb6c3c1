package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ElectricityBillModel struct {
	BillID uuid.UUID `gorm:"column:bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bill_id"`

	// FK room; one bill per room per period
	BillRoomID uuid.UUID `gorm:"column:bill_room_id;type:uuid;not null;uniqueIndex:uq_bills_room_period" json:"bill_room_id"`
	BillMonth  int16     `gorm:"column:bill_month;type:smallint;not null;uniqueIndex:uq_bills_room_period" json:"bill_month"` // 1..12
	BillYear   int16     `gorm:"column:bill_year;type:smallint;not null;uniqueIndex:uq_bills_room_period"  json:"bill_year"`  // 2000..2100

	BillUnits        int `gorm:"column:bill_units;not null;check:bill_units >= 0" json:"bill_units"`
	BillAmountINR    int `gorm:"column:bill_amount_inr;not null;check:bill_amount_inr >= 0" json:"bill_amount_inr"`
	BillStudentShare int `gorm:"column:bill_student_share_inr;not null" json:"bill_student_share_inr"`

	BillDueDate *time.Time `gorm:"column:bill_due_date;type:date" json:"bill_due_date,omitempty"`

	BillCreatedAt time.Time      `gorm:"column:bill_created_at;autoCreateTime" json:"bill_created_at"`
	BillUpdatedAt *time.Time     `gorm:"column:bill_updated_at;autoUpdateTime" json:"bill_updated_at,omitempty"`
	BillDeletedAt gorm.DeletedAt `gorm:"column:bill_deleted_at;index" json:"bill_deleted_at,omitempty"`
}

func (ElectricityBillModel) TableName() string { return "electricity_bills" }
