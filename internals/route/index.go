// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaRoute "masjidcare_backend/internals/features/areas/route"
	feedRoute "masjidcare_backend/internals/features/feeds/route"
	pickupRoute "masjidcare_backend/internals/features/pickup/route"
	prayerRoute "masjidcare_backend/internals/features/prayers/route"
	activityRoute "masjidcare_backend/internals/features/progress/daily_activities/route"
	authRoute "masjidcare_backend/internals/features/users/auth/route"
	userRoute "masjidcare_backend/internals/features/users/user/route"
	"masjidcare_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes wires every feature under four access tiers:
//
//	/api/n  public, no token
//	/api/u  any authenticated user
//	/api/a  founder and superadmin
//	/api/o  superadmin only
//
// The founder/superadmin split inside /api/a and /api/o is enforced again
// per-group by the role middleware, so a route added to the wrong tier
// fails closed.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := api.Group("/n")
	authRoute.AuthPublicRoutes(public, db)
	areaRoute.AreaPublicRoutes(public, db)

	// ===================== USER =====================
	log.Println("[INFO] Setting up USER routes...")
	user := api.Group("/u", auth.AuthMiddleware(db))
	authRoute.AuthUserRoutes(user, db)
	prayerRoute.PrayerUserRoutes(user, db)
	activityRoute.DailyActivityUserRoutes(user, db)
	pickupRoute.PickupUserRoutes(user, db)
	feedRoute.FeedUserRoutes(user, db)

	// ===================== ADMIN (founder+) =====================
	log.Println("[INFO] Setting up ADMIN routes...")
	admin := api.Group("/a", auth.AuthMiddleware(db))
	userRoute.MemberAdminRoutes(admin, db)
	prayerRoute.PrayerAdminRoutes(admin, db)
	pickupRoute.PickupAdminRoutes(admin, db)
	feedRoute.FeedAdminRoutes(admin, db)
	areaRoute.AreaAdminRoutes(admin, db)

	// ===================== OWNER (superadmin) =====================
	log.Println("[INFO] Setting up OWNER routes...")
	owner := api.Group("/o", auth.AuthMiddleware(db))
	areaRoute.AreaOwnerRoutes(owner, db)
	prayerRoute.PrayerOwnerRoutes(owner, db)
}
