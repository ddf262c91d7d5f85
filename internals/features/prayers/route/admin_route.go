package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/prayers/controller"
	authMiddleware "masjidcare_backend/internals/middlewares/auth"
)

// Founder: aggregate statistics for their own area.
func PrayerAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrayerController(db)

	admin := api.Group("/prayers",
		authMiddleware.OnlyRoles(
			constants.RoleErrorFounder("area prayer statistics"),
			constants.FounderAndAbove...,
		),
	)
	admin.Get("/stats", ctrl.AreaStats)
}

// SuperAdmin: global statistics, optionally filtered to one area.
func PrayerOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrayerController(db)

	owner := api.Group("/prayers",
		authMiddleware.OnlyRoles(
			constants.RoleErrorSuperAdmin("global prayer statistics"),
			constants.SuperAdminOnly...,
		),
	)
	owner.Get("/stats", ctrl.GlobalStats)
}
