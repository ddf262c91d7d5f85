// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjidcare_backend/internals/features/users/auth/controller"
	"masjidcare_backend/internals/middlewares"
)

// AuthPublicRoutes registers the unauthenticated auth endpoints with their
// own stricter rate limits.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
}

// AuthUserRoutes registers the endpoints requiring a valid session.
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/logout", ctrl.Logout)
	api.Get("/me", ctrl.Me)
	api.Post("/change-password", ctrl.ChangePassword)
}
