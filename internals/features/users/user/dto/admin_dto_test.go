package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/constants"
)

func TestCreateAdminRequestValidateGrants(t *testing.T) {
	base := CreateAdminRequest{
		UserName: "warden01",
		Email:    "warden01@hostel.edu",
		Password: "initial-secret",
		Role:     constants.RoleWarden,
	}

	t.Run("known tags and levels pass", func(t *testing.T) {
		r := base
		r.Permissions = []string{constants.PermAttendance, constants.PermLeaveManagement}
		r.PermissionAccessLevels = map[string]string{
			constants.PermAttendance: constants.AccessFull,
		}
		assert.NoError(t, r.ValidateGrants())
	})

	t.Run("free-form permission strings are rejected", func(t *testing.T) {
		r := base
		r.Permissions = []string{"atendance"} // typo must not slip through
		assert.Error(t, r.ValidateGrants())
	})

	t.Run("unknown tag in access levels rejected", func(t *testing.T) {
		r := base
		r.PermissionAccessLevels = map[string]string{"billing": constants.AccessFull}
		assert.Error(t, r.ValidateGrants())
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		r := base
		r.PermissionAccessLevels = map[string]string{constants.PermPolls: "write"}
		assert.Error(t, r.ValidateGrants())
	})
}

func TestCreateAdminRequestToModel(t *testing.T) {
	r := CreateAdminRequest{
		UserName:    "principal01",
		Email:       "principal01@hostel.edu",
		Password:    "plaintext-ignored",
		Role:        constants.RolePrincipal,
		Permissions: []string{constants.PermStudentManagement},
	}

	u := r.ToModel("$2a$10$hash")
	require.NotNil(t, u)

	assert.Equal(t, "$2a$10$hash", u.Password, "the model must carry the hash, never the plaintext")
	assert.True(t, u.RequiresPasswordChange, "fresh staff accounts must reset their password")
	assert.True(t, u.IsActive)
	assert.Equal(t, constants.RolePrincipal, u.Role)
}
