package model

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "open"
	ComplaintResolved ComplaintStatus = "resolved"
)

type ComplaintCategory string

const (
	CategoryMaintenance ComplaintCategory = "maintenance"
	CategoryCleanliness ComplaintCategory = "cleanliness"
	CategoryFood        ComplaintCategory = "food"
	CategoryElectricity ComplaintCategory = "electricity"
	CategoryWater       ComplaintCategory = "water"
	CategorySecurity    ComplaintCategory = "security"
	CategoryOther       ComplaintCategory = "other"
)

var AllCategories = []ComplaintCategory{
	CategoryMaintenance, CategoryCleanliness, CategoryFood,
	CategoryElectricity, CategoryWater, CategorySecurity, CategoryOther,
}

func IsValidCategory(c string) bool {
	for _, v := range AllCategories {
		if string(v) == c {
			return true
		}
	}
	return false
}

type ComplaintModel struct {
	ComplaintID uuid.UUID `gorm:"column:complaint_id;type:uuid;default:gen_random_uuid();primaryKey" json:"complaint_id"`

	ComplaintStudentID uuid.UUID `gorm:"column:complaint_student_id;type:uuid;not null;index" json:"complaint_student_id"`

	ComplaintCategory    ComplaintCategory `gorm:"column:complaint_category;size:20;not null" json:"complaint_category"`
	ComplaintDescription string            `gorm:"column:complaint_description;type:text;not null" json:"complaint_description"`
	ComplaintStatus      ComplaintStatus   `gorm:"column:complaint_status;size:10;not null;default:open" json:"complaint_status"`

	ComplaintResolvedBy   *uuid.UUID `gorm:"column:complaint_resolved_by;type:uuid" json:"complaint_resolved_by,omitempty"`
	ComplaintResolvedAt   *time.Time `gorm:"column:complaint_resolved_at" json:"complaint_resolved_at,omitempty"`
	ComplaintResolveNotes *string    `gorm:"column:complaint_resolve_notes;type:text" json:"complaint_resolve_notes,omitempty"`

	ComplaintCreatedAt time.Time  `gorm:"column:complaint_created_at;autoCreateTime" json:"complaint_created_at"`
	ComplaintUpdatedAt *time.Time `gorm:"column:complaint_updated_at;autoUpdateTime" json:"complaint_updated_at,omitempty"`
}

func (ComplaintModel) TableName() string { return "complaints" }
