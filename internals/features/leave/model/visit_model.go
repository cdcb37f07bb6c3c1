package model

import (
	"time"

	"github.com/google/uuid"
)

type VisitType string

const (
	VisitOut VisitType = "out"
	VisitIn  VisitType = "in"
)

type VisitModel struct {
	VisitID uuid.UUID `gorm:"column:visit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"visit_id"`

	VisitLeaveID uuid.UUID `gorm:"column:visit_leave_id;type:uuid;not null;index" json:"visit_leave_id"`

	VisitType      VisitType `gorm:"column:visit_type;type:varchar(5);not null" json:"visit_type"`
	VisitScannedAt time.Time `gorm:"column:visit_scanned_at;not null" json:"visit_scanned_at"`
	VisitLocation  *string   `gorm:"column:visit_location;size:120" json:"visit_location,omitempty"`

	VisitCreatedAt time.Time `gorm:"column:visit_created_at;autoCreateTime" json:"visit_created_at"`
}

func (VisitModel) TableName() string { return "leave_visits" }
