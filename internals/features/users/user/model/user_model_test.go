package model

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"hostelku_backend/internals/constants"
)

func TestHasPermission(t *testing.T) {
	warden := UserModel{
		Role:        constants.RoleWarden,
		Permissions: pq.StringArray{constants.PermAttendance, constants.PermLeaveManagement},
	}

	assert.True(t, warden.HasPermission(constants.PermAttendance))
	assert.True(t, warden.HasPermission(constants.PermLeaveManagement))
	assert.False(t, warden.HasPermission(constants.PermElectricity))

	super := UserModel{Role: constants.RoleSuperAdmin}
	assert.True(t, super.HasPermission(constants.PermElectricity),
		"super admin holds every permission implicitly")
}

func TestAccessLevel(t *testing.T) {
	u := UserModel{
		Role:        constants.RoleSubAdmin,
		Permissions: pq.StringArray{constants.PermRoomManagement, constants.PermPolls},
		PermissionAccessLevels: datatypes.JSONMap{
			constants.PermRoomManagement: constants.AccessFull,
		},
	}

	assert.Equal(t, constants.AccessFull, u.AccessLevel(constants.PermRoomManagement))
	// A granted tag without an explicit level defaults to view.
	assert.Equal(t, constants.AccessView, u.AccessLevel(constants.PermPolls))
	// An ungranted tag has no level at all.
	assert.Equal(t, "", u.AccessLevel(constants.PermElectricity))

	super := UserModel{Role: constants.RoleSuperAdmin}
	assert.Equal(t, constants.AccessFull, super.AccessLevel(constants.PermElectricity))
}
