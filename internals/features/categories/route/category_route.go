package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/categories/controller"
)

func CategoryAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	router.Post("/", ctrl.Create)
	router.Patch("/:catId", ctrl.Update)
	router.Delete("/:catId", ctrl.Delete)
}

func CategoryPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	router.Get("/", ctrl.GetAll)
	router.Get("/:catId", ctrl.GetByID)
}
