package model

import (
	"github.com/lib/pq"
	"github.com/google/uuid"
)

// CourseModel is the catalog principals are scoped by. Branch dropdowns are
// populated from course_branches.
type CourseModel struct {
	CourseID       uuid.UUID      `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName     string         `gorm:"column:course_name;size:100;unique;not null" json:"course_name"`
	CourseBranches pq.StringArray `gorm:"column:course_branches;type:text[]" json:"course_branches"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) HasBranch(branch string) bool {
	for _, b := range m.CourseBranches {
		if b == branch {
			return true
		}
	}
	return false
}
