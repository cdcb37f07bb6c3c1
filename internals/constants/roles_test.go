package constants

import "testing"

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		required string
		want     bool
	}{
		{"admin satisfies admin", RoleAdmin, RoleAdmin, true},
		{"super admin satisfies admin", RoleSuperAdmin, RoleAdmin, true},
		{"sub admin satisfies admin", RoleSubAdmin, RoleAdmin, true},
		{"custom satisfies admin", RoleCustom, RoleAdmin, true},
		{"warden does not satisfy admin", RoleWarden, RoleAdmin, false},
		{"principal does not satisfy admin", RolePrincipal, RoleAdmin, false},
		{"student does not satisfy admin", RoleStudent, RoleAdmin, false},
		{"security does not satisfy admin", RoleSecurity, RoleAdmin, false},
		{"exact match outside equivalence", RoleWarden, RoleWarden, true},
		{"student requirement is exact", RoleAdmin, RoleStudent, false},
		{"unknown role satisfies nothing", "visitor", RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleSatisfies(tt.actual, tt.required); got != tt.want {
				t.Fatalf("RoleSatisfies(%q, %q) = %v, want %v", tt.actual, tt.required, got, tt.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Fatalf("IsValidRole(%q) = false for a known role", r)
		}
	}
	for _, r := range []string{"", "Admin", "superadmin", "visitor"} {
		if IsValidRole(r) {
			t.Fatalf("IsValidRole(%q) = true for an unknown role", r)
		}
	}
}

func TestIsValidPermission(t *testing.T) {
	for _, p := range AllPermissions {
		if !IsValidPermission(p) {
			t.Fatalf("IsValidPermission(%q) = false for a known permission", p)
		}
	}
	if IsValidPermission("billing") {
		t.Fatal("IsValidPermission must reject tags outside the closed set")
	}
}
