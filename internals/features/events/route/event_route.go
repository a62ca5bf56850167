package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/events/controller"
	"ewm_backend/internals/features/events/service"
)

// Route initiator: nested di /users/:userId/events
func EventPrivateRoutes(router fiber.Router, db *gorm.DB, stats service.StatsGateway) {
	ctrl := controller.NewEventController(db, stats)

	router.Post("/", ctrl.Create)
	router.Get("/", ctrl.GetOwn)
	router.Get("/:eventId", ctrl.GetOwnByID)
	router.Patch("/:eventId", ctrl.UpdateByUser)
}

// Route admin: /admin/events
func EventAdminRoutes(router fiber.Router, db *gorm.DB, stats service.StatsGateway) {
	ctrl := controller.NewEventController(db, stats)

	router.Get("/", ctrl.AdminSearch)
	router.Patch("/:eventId", ctrl.UpdateByAdmin)
}

// Route publik: /events — listing & detail merekam hit ke stats-server
func EventPublicRoutes(router fiber.Router, db *gorm.DB, stats service.StatsGateway) {
	ctrl := controller.NewEventController(db, stats)

	router.Get("/", ctrl.PublicSearch)
	router.Get("/:id", ctrl.GetPublicByID)
}
