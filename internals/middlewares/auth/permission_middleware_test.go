package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/constants"
)

// seedLocals stands in for the auth middleware during handler tests.
func seedLocals(role string, permissions []string, levels map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		c.Locals("userPermissions", permissions)
		c.Locals("userAccessLevels", levels)
		return c.Next()
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRequirePermission(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"success": true}) }

	tests := []struct {
		name        string
		role        string
		permissions []string
		wantStatus  int
		wantCode    string
	}{
		{"granted tag passes", constants.RoleWarden, []string{constants.PermAttendance}, fiber.StatusOK, ""},
		{"missing tag restricted", constants.RoleWarden, []string{constants.PermComplaints}, fiber.StatusForbidden, "ACCESS_RESTRICTED"},
		{"no tags restricted", constants.RoleCustom, nil, fiber.StatusForbidden, "ACCESS_RESTRICTED"},
		{"super admin bypasses", constants.RoleSuperAdmin, nil, fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/guarded",
				seedLocals(tt.role, tt.permissions, nil),
				RequirePermission(constants.PermAttendance, "Attendance"),
				ok,
			)

			status, body := doRequest(t, app, "GET", "/guarded")
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error_code"])
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestRequirePermissionWithoutSession(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded",
		RequirePermission(constants.PermAttendance, "Attendance"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	status, _ := doRequest(t, app, "GET", "/guarded")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRequireFullAccess(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"success": true}) }

	tests := []struct {
		name       string
		role       string
		levels     map[string]string
		wantStatus int
		wantCode   string
	}{
		{"full access writes", constants.RoleWarden,
			map[string]string{constants.PermAttendance: constants.AccessFull}, fiber.StatusOK, ""},
		{"view access blocked", constants.RoleWarden,
			map[string]string{constants.PermAttendance: constants.AccessView}, fiber.StatusForbidden, "VIEW_ONLY_ACCESS"},
		{"no level blocked", constants.RoleWarden, nil, fiber.StatusForbidden, "VIEW_ONLY_ACCESS"},
		{"super admin bypasses", constants.RoleSuperAdmin, nil, fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/guarded",
				seedLocals(tt.role, []string{constants.PermAttendance}, tt.levels),
				RequireFullAccess(constants.PermAttendance),
				ok,
			)

			status, body := doRequest(t, app, "POST", "/guarded")
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error_code"])
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		required   string
		wantStatus int
	}{
		{"admin enters admin route", constants.RoleAdmin, constants.RoleAdmin, fiber.StatusOK},
		{"sub admin counts as admin", constants.RoleSubAdmin, constants.RoleAdmin, fiber.StatusOK},
		{"warden rejected from admin route", constants.RoleWarden, constants.RoleAdmin, fiber.StatusForbidden},
		{"student rejected from admin route", constants.RoleStudent, constants.RoleAdmin, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/staff",
				seedLocals(tt.role, nil, nil),
				RequireRole(tt.required, ""),
				func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"success": true}) },
			)

			status, _ := doRequest(t, app, "GET", "/staff")
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}
