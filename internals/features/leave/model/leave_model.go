package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType string

const (
	LeaveTypeLeave   LeaveType = "leave"
	LeaveTypeOutpass LeaveType = "outpass"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

type LeaveModel struct {
	LeaveID uuid.UUID `gorm:"column:leave_id;type:uuid;default:gen_random_uuid();primaryKey" json:"leave_id"`

	LeaveStudentID uuid.UUID `gorm:"column:leave_student_id;type:uuid;not null;index" json:"leave_student_id"`

	LeaveType   LeaveType   `gorm:"column:leave_type;type:varchar(10);not null;default:leave" json:"leave_type"`
	LeaveStatus LeaveStatus `gorm:"column:leave_status;type:varchar(10);not null;default:pending" json:"leave_status"`

	LeaveReason   string     `gorm:"column:leave_reason;type:text;not null" json:"leave_reason"`
	LeaveFromDate time.Time  `gorm:"column:leave_from_date;type:date;not null" json:"leave_from_date"`
	LeaveToDate   *time.Time `gorm:"column:leave_to_date;type:date" json:"leave_to_date,omitempty"`

	// Gate counters. Outgoing is capped by max visits, incoming by one;
	// once the QR is locked no scan of either kind is accepted.
	LeaveMaxVisits          int  `gorm:"column:leave_max_visits;not null;default:2" json:"leave_max_visits"`
	LeaveOutgoingVisitCount int  `gorm:"column:leave_outgoing_visit_count;not null;default:0" json:"leave_outgoing_visit_count"`
	LeaveIncomingVisitCount int  `gorm:"column:leave_incoming_visit_count;not null;default:0" json:"leave_incoming_visit_count"`
	LeaveVisitLocked        bool `gorm:"column:leave_visit_locked;not null;default:false" json:"leave_visit_locked"`

	LeaveReviewedBy   *uuid.UUID `gorm:"column:leave_reviewed_by;type:uuid" json:"leave_reviewed_by,omitempty"`
	LeaveReviewedAt   *time.Time `gorm:"column:leave_reviewed_at" json:"leave_reviewed_at,omitempty"`
	LeaveRejectReason *string    `gorm:"column:leave_reject_reason;type:text" json:"leave_reject_reason,omitempty"`

	LeaveCreatedAt time.Time  `gorm:"column:leave_created_at;autoCreateTime" json:"leave_created_at"`
	LeaveUpdatedAt *time.Time `gorm:"column:leave_updated_at;autoUpdateTime" json:"leave_updated_at,omitempty"`
}

func (LeaveModel) TableName() string { return "leaves" }
