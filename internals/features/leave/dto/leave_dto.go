package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/leave/model"
)

/* ======================= REQUESTS ======================= */

type CreateLeaveRequest struct {
	LeaveReason   string  `json:"leave_reason" validate:"required,min=5"`
	LeaveFromDate string  `json:"leave_from_date" validate:"required,datetime=2006-01-02"`
	LeaveToDate   *string `json:"leave_to_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateLeaveRequest) ToModel(studentID uuid.UUID, leaveType model.LeaveType, maxVisits int) (*model.LeaveModel, error) {
	from, err := time.Parse("2006-01-02", r.LeaveFromDate)
	if err != nil {
		return nil, err
	}
	m := &model.LeaveModel{
		LeaveStudentID: studentID,
		LeaveType:      leaveType,
		LeaveStatus:    model.LeavePending,
		LeaveReason:    r.LeaveReason,
		LeaveFromDate:  from,
		LeaveMaxVisits: maxVisits,
	}
	if r.LeaveToDate != nil && *r.LeaveToDate != "" {
		to, err := time.Parse("2006-01-02", *r.LeaveToDate)
		if err != nil {
			return nil, err
		}
		m.LeaveToDate = &to
	}
	return m, nil
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type ScanRequest struct {
	Location *string `json:"location,omitempty"`
}

/* ======================= RESPONSES ======================= */

type VisitResponse struct {
	VisitType      model.VisitType `json:"visit_type"`
	VisitScannedAt time.Time       `json:"visit_scanned_at"`
	VisitLocation  *string         `json:"visit_location,omitempty"`
}

type LeaveResponse struct {
	LeaveID        uuid.UUID         `json:"leave_id"`
	LeaveStudentID uuid.UUID         `json:"leave_student_id"`
	LeaveType      model.LeaveType   `json:"leave_type"`
	LeaveStatus    model.LeaveStatus `json:"leave_status"`

	LeaveReason   string     `json:"leave_reason"`
	LeaveFromDate time.Time  `json:"leave_from_date"`
	LeaveToDate   *time.Time `json:"leave_to_date,omitempty"`

	LeaveMaxVisits          int  `json:"leave_max_visits"`
	LeaveOutgoingVisitCount int  `json:"leave_outgoing_visit_count"`
	LeaveIncomingVisitCount int  `json:"leave_incoming_visit_count"`
	LeaveVisitLocked        bool `json:"leave_visit_locked"`

	LeaveRejectReason *string   `json:"leave_reject_reason,omitempty"`
	LeaveCreatedAt    time.Time `json:"leave_created_at"`

	Visits []VisitResponse `json:"visits"`
}

func FromLeaveModel(m model.LeaveModel, visits []model.VisitModel) LeaveResponse {
	out := LeaveResponse{
		LeaveID:                 m.LeaveID,
		LeaveStudentID:          m.LeaveStudentID,
		LeaveType:               m.LeaveType,
		LeaveStatus:             m.LeaveStatus,
		LeaveReason:             m.LeaveReason,
		LeaveFromDate:           m.LeaveFromDate,
		LeaveToDate:             m.LeaveToDate,
		LeaveMaxVisits:          m.LeaveMaxVisits,
		LeaveOutgoingVisitCount: m.LeaveOutgoingVisitCount,
		LeaveIncomingVisitCount: m.LeaveIncomingVisitCount,
		LeaveVisitLocked:        m.LeaveVisitLocked,
		LeaveRejectReason:       m.LeaveRejectReason,
		LeaveCreatedAt:          m.LeaveCreatedAt,
		Visits:                  make([]VisitResponse, 0, len(visits)),
	}
	for _, v := range visits {
		out.Visits = append(out.Visits, VisitResponse{
			VisitType:      v.VisitType,
			VisitScannedAt: v.VisitScannedAt,
			VisitLocation:  v.VisitLocation,
		})
	}
	return out
}
