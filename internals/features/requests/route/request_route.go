package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/requests/controller"
)

// RequestPrivateRoutes dipasang di group /users/:userId.
func RequestPrivateRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRequestController(db)

	router.Post("/requests", ctrl.Create)
	router.Get("/requests", ctrl.GetOwn)
	router.Patch("/requests/:requestId/cancel", ctrl.Cancel)

	router.Get("/events/:eventId/requests", ctrl.GetForEvent)
	router.Patch("/events/:eventId/requests", ctrl.Moderate)
}
