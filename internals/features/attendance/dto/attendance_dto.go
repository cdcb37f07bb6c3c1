// internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"

	m "hostelku_backend/internals/features/attendance/model"
)

type TakeAttendanceEntry struct {
	StudentID uuid.UUID          `json:"student_id" validate:"required"`
	Status    m.AttendanceStatus `json:"status"     validate:"required,oneof=present absent leave"`
}

type TakeAttendanceRequest struct {
	Date    string                `json:"date"    validate:"required,datetime=2006-01-02"`
	Entries []TakeAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type AttendanceSummary struct {
	StudentID uuid.UUID `json:"student_id"`
	Present   int64     `json:"present"`
	Absent    int64     `json:"absent"`
	OnLeave   int64     `json:"leave"`
}
