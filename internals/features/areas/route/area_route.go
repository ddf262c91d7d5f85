// internals/features/areas/route/area_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/areas/controller"
	"masjidcare_backend/internals/middlewares/auth"
)

// AreaPublicRoutes: active area list for the registration picker.
func AreaPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAreaController(db)
	api.Get("/areas", ctrl.ListActiveAreas)
}

// AreaAdminRoutes: founder-level schedule management.
func AreaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAreaController(db)

	areas := api.Group("/areas",
		auth.OnlyRoles(constants.RoleErrorFounder("area schedule management"), constants.FounderAndAbove...),
	)
	areas.Patch("/:id/prayer-times", ctrl.UpdatePrayerTimes)
}

// AreaOwnerRoutes: full area lifecycle, superadmin only.
func AreaOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAreaController(db)

	areas := api.Group("/areas",
		auth.OnlyRoles(constants.RoleErrorSuperAdmin("area management"), constants.SuperAdminOnly...),
	)
	areas.Get("/", ctrl.ListAreas)
	areas.Post("/", ctrl.CreateArea)
	areas.Get("/:id", ctrl.GetArea)
	areas.Patch("/:id", ctrl.UpdateArea)
	areas.Post("/:id/founder", ctrl.AssignFounder)
	areas.Delete("/:id", ctrl.DeleteArea)
}
