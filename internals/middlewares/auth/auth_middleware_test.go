package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordChangeBlocked(t *testing.T) {
	tests := []struct {
		name        string
		flagged     bool
		path        string
		wantBlocked bool
	}{
		{"flagged account blocked on normal route", true, "/api/attendance/students", true},
		{"flagged account blocked on root", true, "/", true},
		{"flagged account may change password", true, "/api/auth/change-password", false},
		{"flagged account may log out", true, "/api/auth/logout", false},
		{"flagged account may read its profile", true, "/api/auth/me", false},
		{"cleared flag passes everywhere", false, "/api/attendance/students", false},
		{"cleared flag passes the reset route too", false, "/api/auth/change-password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBlocked, passwordChangeBlocked(tt.flagged, tt.path))
		})
	}
}
