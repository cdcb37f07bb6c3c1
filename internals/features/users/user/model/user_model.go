package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hostelku_backend/internals/constants"
)

// UserModel represents the users table. Staff accounts (sub_admin, warden,
// principal, security, custom) carry a permission tag set plus an access level
// per tag; students and super_admin carry none (super_admin bypasses checks).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	Permissions            pq.StringArray    `gorm:"type:text[]" json:"permissions"`
	PermissionAccessLevels datatypes.JSONMap `gorm:"type:jsonb" json:"permission_access_levels"`

	RequiresPasswordChange bool `gorm:"not null;default:false" json:"requires_password_change"`
	IsActive               bool `gorm:"not null;default:true" json:"is_active"`

	// WebP-converted profile photo, served by the photo endpoint.
	ProfilePhoto []byte `gorm:"type:bytea" json:"-"`

	// Principal scoping: branch options are constrained to the courses assigned
	// to the account. A single course pins the branch; multiple courses leave
	// the branch open.
	PrincipalCourses pq.StringArray `gorm:"type:text[]" json:"principal_courses,omitempty"`
	PrincipalBranch  *string        `gorm:"size:100" json:"principal_branch,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
}

// HasPermission reports whether the tag is present. super_admin implicitly
// holds every permission.
func (u *UserModel) HasPermission(tag string) bool {
	if u.Role == constants.RoleSuperAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == tag {
			return true
		}
	}
	return false
}

// AccessLevel returns the access level for a tag. super_admin always gets
// full; a granted tag without an explicit level defaults to view.
func (u *UserModel) AccessLevel(tag string) string {
	if u.Role == constants.RoleSuperAdmin {
		return constants.AccessFull
	}
	if !u.HasPermission(tag) {
		return ""
	}
	if v, ok := u.PermissionAccessLevels[tag]; ok {
		if s, ok := v.(string); ok && constants.IsValidAccessLevel(s) {
			return s
		}
	}
	return constants.AccessView
}

// AccessLevelMap flattens the JSONB map to plain strings for locals storage.
func (u *UserModel) AccessLevelMap() map[string]string {
	out := make(map[string]string, len(u.PermissionAccessLevels))
	for k, v := range u.PermissionAccessLevels {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
