package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOnLeave AttendanceStatus = "leave"
)

func IsValidAttendanceStatus(s AttendanceStatus) bool {
	return s == AttendancePresent || s == AttendanceAbsent || s == AttendanceOnLeave
}

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_student_date" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_student_date" json:"attendance_date"`

	AttendanceStatus  AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceTakenBy uuid.UUID        `gorm:"column:attendance_taken_by;type:uuid;not null" json:"attendance_taken_by"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }
