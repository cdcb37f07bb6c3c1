// internals/features/hostel/students/model/preregistration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Small enum so status stays safe in code
type PreregStatus string

const (
	PreregPending  PreregStatus = "pending"
	PreregApproved PreregStatus = "approved"
	PreregRejected PreregStatus = "rejected"
)

type PreregistrationModel struct {
	PreregID uuid.UUID `gorm:"column:prereg_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prereg_id"`

	PreregName   string `gorm:"column:prereg_name;size:100;not null" json:"prereg_name"`
	PreregEmail  string `gorm:"column:prereg_email;size:255;unique;not null" json:"prereg_email"`
	PreregPhone  string `gorm:"column:prereg_phone;size:20;not null" json:"prereg_phone"`
	PreregRollNo string `gorm:"column:prereg_roll_no;size:30;not null" json:"prereg_roll_no"`
	PreregCourse string `gorm:"column:prereg_course;size:100;not null" json:"prereg_course"`
	PreregBranch string `gorm:"column:prereg_branch;size:100" json:"prereg_branch"`
	PreregYear   int16  `gorm:"column:prereg_year;type:smallint;not null" json:"prereg_year"`

	PreregStatus       PreregStatus `gorm:"column:prereg_status;type:varchar(20);not null;default:pending" json:"prereg_status"`
	PreregReviewedBy   *uuid.UUID   `gorm:"column:prereg_reviewed_by;type:uuid" json:"prereg_reviewed_by,omitempty"`
	PreregReviewedAt   *time.Time   `gorm:"column:prereg_reviewed_at" json:"prereg_reviewed_at,omitempty"`
	PreregRejectReason *string      `gorm:"column:prereg_reject_reason;type:text" json:"prereg_reject_reason,omitempty"`

	PreregCreatedAt time.Time  `gorm:"column:prereg_created_at;autoCreateTime" json:"prereg_created_at"`
	PreregUpdatedAt *time.Time `gorm:"column:prereg_updated_at;autoUpdateTime" json:"prereg_updated_at,omitempty"`
}

func (PreregistrationModel) TableName() string { return "preregistrations" }
