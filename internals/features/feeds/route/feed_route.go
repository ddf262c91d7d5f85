// internals/features/feeds/route/feed_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/constants"
	"masjidcare_backend/internals/features/feeds/controller"
	"masjidcare_backend/internals/middlewares/auth"
)

// FeedUserRoutes: member-facing timeline.
func FeedUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedController(db)

	feeds := api.Group("/feeds")
	feeds.Get("/", ctrl.ListFeeds)
	feeds.Get("/:id", ctrl.GetFeed)
}

// FeedAdminRoutes: publishing and moderation for founders and above.
func FeedAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedController(db)

	feeds := api.Group("/feeds",
		auth.OnlyRoles(constants.RoleErrorFounder("announcement management"), constants.FounderAndAbove...),
	)
	feeds.Post("/", ctrl.CreateFeed)
	feeds.Patch("/:id", ctrl.UpdateFeed)
	feeds.Delete("/:id", ctrl.DeleteFeed)
}
