package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/progress/daily_activities/controller"
)

func DailyActivityUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDailyActivityController(db)

	activities := api.Group("/daily-activities")
	activities.Post("/", ctrl.Upsert)
	activities.Get("/", ctrl.ListOwn)
}
