// internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/users/user/controller"
	"masjidcare_backend/internals/middlewares/auth"
)

// MemberAdminRoutes registers member management endpoints for founders and above.
func MemberAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := api.Group("/members",
		auth.OnlyRoles(constants.RoleErrorFounder("manage members"), constants.FounderAndAbove...),
	)
	members.Post("/", ctrl.CreateMember)
	members.Get("/", ctrl.ListMembers)
	members.Get("/:id", ctrl.GetMember)
	members.Patch("/:id/status", ctrl.UpdateMemberStatus)
	members.Delete("/:id", ctrl.DeleteMember)
}
