package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/pickup/controller"
)

// Authenticated members: create, list own, read, history, cancel.
func PickupUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPickupController(db)

	requests := api.Group("/pickup-requests")
	requests.Post("/", ctrl.CreateRequest)
	requests.Get("/", ctrl.ListRequests)
	requests.Get("/:id", ctrl.GetRequest)
	requests.Get("/:id/history", ctrl.GetRequestHistory)
	requests.Delete("/:id", ctrl.CancelRequest)
}
