// file: internals/helpers/principal.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/constants"
)

// Principal is the authenticated caller, resolved once by the auth middleware
// and threaded explicitly into every service call. There is no package-level
// current user.
type Principal struct {
	UserID uuid.UUID
	Role   string
	AreaID *uuid.UUID
}

func (p Principal) IsMember() bool     { return p.Role == constants.RoleMember }
func (p Principal) IsFounder() bool    { return p.Role == constants.RoleFounder }
func (p Principal) IsSuperAdmin() bool { return p.Role == constants.RoleSuperAdmin }

// CanManageArea reports whether the principal administers the given area.
// A superadmin administers every area; a founder only their own.
func (p Principal) CanManageArea(areaID *uuid.UUID) bool {
	if p.IsSuperAdmin() {
		return true
	}
	if !p.IsFounder() || p.AreaID == nil || areaID == nil {
		return false
	}
	return *p.AreaID == *areaID
}

// GetPrincipal rebuilds the principal from request Locals set by the auth
// middleware.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return Principal{}, apperr.Authentication("Missing user identity in request context")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Principal{}, apperr.Authentication("Invalid user identity in request context")
	}

	role, _ := c.Locals("user_role").(string)
	if role == "" {
		return Principal{}, apperr.Authentication("Missing role information")
	}

	p := Principal{UserID: userID, Role: role}
	if areaStr, ok := c.Locals("area_id").(string); ok && areaStr != "" {
		if areaID, err := uuid.Parse(areaStr); err == nil {
			p.AreaID = &areaID
		}
	}
	return p, nil
}
