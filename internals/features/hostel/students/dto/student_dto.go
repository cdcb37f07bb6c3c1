// internals/features/hostel/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	m "hostelku_backend/internals/features/hostel/students/model"
)

/* =============== REQUESTS =============== */

type UpdateStudentRequest struct {
	StudentName          *string `json:"student_name"           validate:"omitempty,min=1,max=100"`
	StudentCourse        *string `json:"student_course"         validate:"omitempty,min=1,max=100"`
	StudentBranch        *string `json:"student_branch"         validate:"omitempty,max=100"`
	StudentYear          *int16  `json:"student_year"           validate:"omitempty,gte=1,lte=6"`
	StudentGuardianName  *string `json:"student_guardian_name"  validate:"omitempty,max=100"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=20"`
}

func (r UpdateStudentRequest) ApplyTo(mo *m.StudentModel) {
	if r.StudentName != nil {
		mo.StudentName = *r.StudentName
	}
	if r.StudentCourse != nil {
		mo.StudentCourse = *r.StudentCourse
	}
	if r.StudentBranch != nil {
		mo.StudentBranch = *r.StudentBranch
	}
	if r.StudentYear != nil {
		mo.StudentYear = *r.StudentYear
	}
	if r.StudentGuardianName != nil {
		mo.StudentGuardianName = r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		mo.StudentGuardianPhone = r.StudentGuardianPhone
	}
}

type AllocateRoomRequest struct {
	RoomID uuid.UUID `json:"room_id" validate:"required"`
}

/* =============== PREREGISTRATION =============== */

type CreatePreregistrationRequest struct {
	PreregName   string `json:"prereg_name"    validate:"required,min=1,max=100"`
	PreregEmail  string `json:"prereg_email"   validate:"required,email"`
	PreregPhone  string `json:"prereg_phone"   validate:"required,min=6,max=20"`
	PreregRollNo string `json:"prereg_roll_no" validate:"required,min=1,max=30"`
	PreregCourse string `json:"prereg_course"  validate:"required,min=1,max=100"`
	PreregBranch string `json:"prereg_branch"  validate:"omitempty,max=100"`
	PreregYear   int16  `json:"prereg_year"    validate:"required,gte=1,lte=6"`
}

func (r CreatePreregistrationRequest) ToModel() *m.PreregistrationModel {
	return &m.PreregistrationModel{
		PreregName:   r.PreregName,
		PreregEmail:  r.PreregEmail,
		PreregPhone:  r.PreregPhone,
		PreregRollNo: r.PreregRollNo,
		PreregCourse: r.PreregCourse,
		PreregBranch: r.PreregBranch,
		PreregYear:   r.PreregYear,
	}
}

type RejectPreregistrationRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}
