package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/prayers/controller"
)

// Authenticated members: mark attendance and read their own statistics.
func PrayerUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrayerController(db)

	prayers := api.Group("/prayers")
	prayers.Get("/", ctrl.ListOwn)
	prayers.Post("/", ctrl.MarkDay)
	prayers.Patch("/individual", ctrl.MarkIndividual)
	prayers.Get("/stats", ctrl.OwnStats)
}
