package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// FK to users (login account)
	StudentUserID uuid.UUID `gorm:"column:student_user_id;type:uuid;not null;uniqueIndex" json:"student_user_id"`

	StudentName   string `gorm:"column:student_name;size:100;not null" json:"student_name"`
	StudentRollNo string `gorm:"column:student_roll_no;size:30;unique;not null" json:"student_roll_no"`
	StudentCourse string `gorm:"column:student_course;size:100;not null" json:"student_course"`
	StudentBranch string `gorm:"column:student_branch;size:100" json:"student_branch"`
	StudentYear   int16  `gorm:"column:student_year;type:smallint;not null" json:"student_year"`

	// FK (nullable → SET NULL); unallocated students have no room
	StudentRoomID *uuid.UUID `gorm:"column:student_room_id;type:uuid;index" json:"student_room_id,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;size:100" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;size:20" json:"student_guardian_phone,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
