// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/configs"
	categoryRoute "ewm_backend/internals/features/categories/route"
	compilationRoute "ewm_backend/internals/features/compilations/route"
	eventRoute "ewm_backend/internals/features/events/route"
	requestRoute "ewm_backend/internals/features/requests/route"
	statsClient "ewm_backend/internals/features/stats/client"
	userRoute "ewm_backend/internals/features/users/route"
	middlewares "ewm_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	stats := statsClient.New(configs.StatsServerURL)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/admin",
		middlewares.AdminJWTMiddleware(),
		middlewares.AdminWriteRateLimiter(),
	)
	userRoute.UserAdminRoutes(admin.Group("/users"), db)
	categoryRoute.CategoryAdminRoutes(admin.Group("/categories"), db)
	eventRoute.EventAdminRoutes(admin.Group("/events"), db, stats)
	compilationRoute.CompilationAdminRoutes(admin.Group("/compilations"), db)

	// ===================== PRIVATE (initiator / requester) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/users/:userId")
	eventRoute.EventPrivateRoutes(private.Group("/events"), db, stats)
	requestRoute.RequestPrivateRoutes(private, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	eventRoute.EventPublicRoutes(app.Group("/events"), db, stats)
	categoryRoute.CategoryPublicRoutes(app.Group("/categories"), db)
	compilationRoute.CompilationPublicRoutes(app.Group("/compilations"), db)
}
