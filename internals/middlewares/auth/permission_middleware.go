package auth

import (
	"github.com/gofiber/fiber/v2"

	"hostelku_backend/internals/constants"
	helper "hostelku_backend/internals/helpers"
)

// RequirePermission gates a dashboard section. super_admin bypasses the check;
// everyone else must hold the tag. Presence only — the view/full distinction is
// enforced by RequireFullAccess on the mutating routes.
func RequirePermission(permission, sectionName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing role information")
		}
		if role == constants.RoleSuperAdmin {
			return c.Next()
		}

		for _, p := range helper.GetPermissionsFromToken(c) {
			if p == permission {
				return c.Next()
			}
		}

		return helper.JsonErrorWithCode(c, fiber.StatusForbidden,
			"ACCESS_RESTRICTED", "Access restricted: "+sectionName)
	}
}

// RequireFullAccess rejects mutations from view-only grants. Mount it after
// RequirePermission on every POST/PUT/PATCH/DELETE in a permission-gated group
// so a view grant can never write.
func RequireFullAccess(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Missing role information")
		}
		if role == constants.RoleSuperAdmin {
			return c.Next()
		}

		levels := helper.GetAccessLevelsFromToken(c)
		if levels[permission] == constants.AccessFull {
			return c.Next()
		}

		return helper.JsonErrorWithCode(c, fiber.StatusForbidden,
			"VIEW_ONLY_ACCESS", "Your access level for this section does not allow changes")
	}
}
