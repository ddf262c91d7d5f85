package constants

import "fmt"

// Role names as stored in users.role.
const (
	RoleMember     = "member"
	RoleFounder    = "founder"
	RoleSuperAdmin = "superadmin"
)

// Error message templates for role gates.
const (
	ErrOnlyFoundersCanAccess    = "Only a founder or superadmin may access %s."
	ErrOnlySuperAdminsCanAccess = "Only a superadmin may access %s."
)

func RoleErrorFounder(feature string) string {
	return fmt.Sprintf(ErrOnlyFoundersCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleFounder,
		RoleSuperAdmin,
	}

	FounderAndAbove = []string{
		RoleFounder,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
