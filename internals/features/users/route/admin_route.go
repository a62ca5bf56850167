package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/users/controller"
)

func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	router.Get("/", ctrl.GetAll)
	router.Post("/", ctrl.Create)
	router.Delete("/:userId", ctrl.Delete)
}
