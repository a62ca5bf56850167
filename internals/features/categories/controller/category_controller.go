package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/categories/dto"
	"ewm_backend/internals/features/categories/model"
	eventModel "ewm_backend/internals/features/events/model"
	helper "ewm_backend/internals/helpers"
)

type CategoryController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, validate: validator.New()}
}

// POST /admin/categories
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.CategoryModel{}).
		Where("category_name = ?", req.Name).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Cek nama category gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat category")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Nama category sudah dipakai")
	}

	category := model.CategoryModel{CategoryName: req.Name}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		log.Println("[ERROR] Create category gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat category")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Category dibuat", dto.ToCategoryResponse(category))
}

// PATCH /admin/categories/:catId
func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("catId"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "catId tidak valid")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Category tidak ditemukan")
	}

	var count int64
	if err := ctrl.DB.Model(&model.CategoryModel{}).
		Where("category_name = ? AND category_id <> ?", req.Name, id).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update category")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Nama category sudah dipakai")
	}

	category.CategoryName = req.Name
	if err := ctrl.DB.Save(&category).Error; err != nil {
		log.Println("[ERROR] Update category gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update category")
	}
	return helper.Success(c, "Category diupdate", dto.ToCategoryResponse(category))
}

// DELETE /admin/categories/:catId — ditolak kalau masih dipakai event
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("catId"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "catId tidak valid")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Category tidak ditemukan")
	}

	var used int64
	if err := ctrl.DB.Model(&eventModel.EventModel{}).
		Where("event_category_id = ?", id).
		Count(&used).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus category")
	}
	if used > 0 {
		return helper.Error(c, fiber.StatusConflict, "Category masih dipakai event")
	}

	if err := ctrl.DB.Delete(&category).Error; err != nil {
		log.Println("[ERROR] Delete category gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus category")
	}
	return helper.Success(c, "Category dihapus", fiber.Map{"id": id})
}

// GET /categories?from=&size=
func (ctrl *CategoryController) GetAll(c *fiber.Ctx) error {
	page, err := helper.ParseFromSize(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var categories []model.CategoryModel
	if err := ctrl.DB.Order("category_id ASC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&categories).Error; err != nil {
		log.Println("[ERROR] Fetch categories gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil categories")
	}
	return helper.Success(c, "Daftar category", dto.ToCategoryResponseList(categories))
}

// GET /categories/:catId
func (ctrl *CategoryController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("catId"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "catId tidak valid")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Category tidak ditemukan")
	}
	return helper.Success(c, "Detail category", dto.ToCategoryResponse(category))
}
