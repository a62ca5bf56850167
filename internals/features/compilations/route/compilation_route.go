package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/compilations/controller"
)

func CompilationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCompilationController(db)

	router.Post("/", ctrl.Create)
	router.Patch("/:compId", ctrl.Update)
	router.Delete("/:compId", ctrl.Delete)
}

func CompilationPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCompilationController(db)

	router.Get("/", ctrl.GetAll)
	router.Get("/:compId", ctrl.GetByID)
}
