package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsRoute "ewm_backend/internals/features/stats/route"
)

// SetupStatsRoutes dipakai binary statsserver.
func SetupStatsRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up STATS routes...")
	statsRoute.StatsRoutes(app, db)
}
