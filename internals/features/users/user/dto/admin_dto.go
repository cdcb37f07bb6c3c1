// internals/features/users/user/dto/admin_dto.go
package dto

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"hostelku_backend/internals/constants"
	m "hostelku_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

// Create (staff accounts only; students come through preregistration)
type CreateAdminRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=admin sub_admin warden principal security custom"`

	Permissions            []string          `json:"permissions"              validate:"omitempty,dive,min=1"`
	PermissionAccessLevels map[string]string `json:"permission_access_levels" validate:"omitempty"`

	PrincipalCourses []string `json:"principal_courses" validate:"omitempty,dive,min=1"`
	PrincipalBranch  *string  `json:"principal_branch"  validate:"omitempty,min=1"`
}

// ValidateGrants checks tags and levels against the closed enums.
func (r CreateAdminRequest) ValidateGrants() error {
	for _, p := range r.Permissions {
		if !constants.IsValidPermission(p) {
			return fmt.Errorf("unknown permission: %s", p)
		}
	}
	for tag, level := range r.PermissionAccessLevels {
		if !constants.IsValidPermission(tag) {
			return fmt.Errorf("unknown permission in access levels: %s", tag)
		}
		if !constants.IsValidAccessLevel(level) {
			return fmt.Errorf("invalid access level %q for %s", level, tag)
		}
	}
	return nil
}

func (r CreateAdminRequest) ToModel(hashedPassword string) *m.UserModel {
	levels := make(datatypes.JSONMap, len(r.PermissionAccessLevels))
	for k, v := range r.PermissionAccessLevels {
		levels[k] = v
	}
	return &m.UserModel{
		UserName:               r.UserName,
		Email:                  r.Email,
		Password:               hashedPassword,
		Role:                   r.Role,
		Permissions:            pq.StringArray(r.Permissions),
		PermissionAccessLevels: levels,
		// Fresh staff accounts must reset their password on first login.
		RequiresPasswordChange: true,
		IsActive:               true,
		PrincipalCourses:       pq.StringArray(r.PrincipalCourses),
		PrincipalBranch:        r.PrincipalBranch,
	}
}

// Update (partial)
type UpdateAdminRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`

	Permissions            *[]string          `json:"permissions"              validate:"omitempty,dive,min=1"`
	PermissionAccessLevels *map[string]string `json:"permission_access_levels" validate:"omitempty"`

	PrincipalCourses *[]string `json:"principal_courses" validate:"omitempty,dive,min=1"`
	PrincipalBranch  *string   `json:"principal_branch"  validate:"omitempty"`
}

func (r UpdateAdminRequest) ValidateGrants() error {
	if r.Permissions != nil {
		for _, p := range *r.Permissions {
			if !constants.IsValidPermission(p) {
				return fmt.Errorf("unknown permission: %s", p)
			}
		}
	}
	if r.PermissionAccessLevels != nil {
		for tag, level := range *r.PermissionAccessLevels {
			if !constants.IsValidPermission(tag) {
				return fmt.Errorf("unknown permission in access levels: %s", tag)
			}
			if !constants.IsValidAccessLevel(level) {
				return fmt.Errorf("invalid access level %q for %s", level, tag)
			}
		}
	}
	return nil
}

func (r UpdateAdminRequest) ApplyTo(mo *m.UserModel) {
	if r.UserName != nil {
		mo.UserName = *r.UserName
	}
	if r.Email != nil {
		mo.Email = *r.Email
	}
	if r.IsActive != nil {
		mo.IsActive = *r.IsActive
	}
	if r.Permissions != nil {
		mo.Permissions = pq.StringArray(*r.Permissions)
	}
	if r.PermissionAccessLevels != nil {
		levels := make(datatypes.JSONMap, len(*r.PermissionAccessLevels))
		for k, v := range *r.PermissionAccessLevels {
			levels[k] = v
		}
		mo.PermissionAccessLevels = levels
	}
	if r.PrincipalCourses != nil {
		mo.PrincipalCourses = pq.StringArray(*r.PrincipalCourses)
	}
	if r.PrincipalBranch != nil {
		if *r.PrincipalBranch == "" {
			mo.PrincipalBranch = nil
		} else {
			mo.PrincipalBranch = r.PrincipalBranch
		}
	}
}

/* =============== RESPONSES =============== */

type AdminResponse struct {
	ID                     string            `json:"id"`
	UserName               string            `json:"user_name"`
	Email                  string            `json:"email"`
	Role                   string            `json:"role"`
	Permissions            []string          `json:"permissions"`
	PermissionAccessLevels map[string]string `json:"permission_access_levels"`
	RequiresPasswordChange bool              `json:"requires_password_change"`
	IsActive               bool              `json:"is_active"`
	PrincipalCourses       []string          `json:"principal_courses,omitempty"`
	PrincipalBranch        *string           `json:"principal_branch,omitempty"`
}

func FromUserModel(u m.UserModel) AdminResponse {
	return AdminResponse{
		ID:                     u.ID.String(),
		UserName:               u.UserName,
		Email:                  u.Email,
		Role:                   u.Role,
		Permissions:            []string(u.Permissions),
		PermissionAccessLevels: u.AccessLevelMap(),
		RequiresPasswordChange: u.RequiresPasswordChange,
		IsActive:               u.IsActive,
		PrincipalCourses:       []string(u.PrincipalCourses),
		PrincipalBranch:        u.PrincipalBranch,
	}
}
