package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/stats/controller"
)

func StatsRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db)

	router.Post("/hit", ctrl.AddHit)
	router.Get("/stats", ctrl.GetStats)
}
