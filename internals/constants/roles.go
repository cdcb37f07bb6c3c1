package constants

// Closed role set. Free-form role strings are rejected at the edges so a typo
// can never slip past a guard.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleSubAdmin   = "sub_admin"
	RoleWarden     = "warden"
	RolePrincipal  = "principal"
	RoleStudent    = "student"
	RoleSecurity   = "security"
	RoleCustom     = "custom"
)

var AllRoles = []string{
	RoleSuperAdmin, RoleAdmin, RoleSubAdmin, RoleWarden,
	RolePrincipal, RoleStudent, RoleSecurity, RoleCustom,
}

// roleEquivalence is the single declarative table both the route guards and any
// per-handler check consult. A required role maps to every actual role that
// satisfies it. Roles without an entry match themselves only.
var roleEquivalence = map[string][]string{
	RoleAdmin: {RoleAdmin, RoleSuperAdmin, RoleSubAdmin, RoleCustom},
}

// RoleSatisfies reports whether an account with role `actual` may enter a route
// that requires `required`.
func RoleSatisfies(actual, required string) bool {
	if actual == required {
		return true
	}
	accepted, ok := roleEquivalence[required]
	if !ok {
		return false
	}
	for _, r := range accepted {
		if r == actual {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
