package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/pickup/controller"
	authMiddleware "masjidcare_backend/internals/middlewares/auth"
)

// Founder and above: decide on requests (approve/reject/start/complete).
func PickupAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPickupController(db)

	admin := api.Group("/pickup-requests",
		authMiddleware.OnlyRoles(
			constants.RoleErrorFounder("pickup request management"),
			constants.FounderAndAbove...,
		),
	)
	admin.Get("/", ctrl.ListRequests)
	admin.Patch("/:id", ctrl.Decide)
	admin.Delete("/:id", ctrl.CancelRequest)
}
