package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/users/dto"
	"ewm_backend/internals/features/users/model"
	helper "ewm_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, validate: validator.New()}
}

// POST /admin/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.NewUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// email unik — cek dulu supaya pelanggaran jadi 409, bukan 500
	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Cek email gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	user := model.UserModel{
		UserName:  req.Name,
		UserEmail: req.Email,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Create user gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User dibuat", dto.ToUserResponse(user))
}

// GET /admin/users?ids=&from=&size=
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	page, err := helper.ParseFromSize(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.UserModel{})
	if raw := strings.TrimSpace(c.Query("ids")); raw != "" {
		var ids []uint
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Parameter 'ids' tidak valid")
			}
			ids = append(ids, uint(id))
		}
		q = q.Where("user_id IN ?", ids)
	}

	var users []model.UserModel
	if err := q.Order("user_id ASC").Offset(page.Offset()).Limit(page.Limit()).Find(&users).Error; err != nil {
		log.Println("[ERROR] Fetch users gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil users")
	}
	return helper.Success(c, "Daftar user", dto.ToUserResponseList(users))
}

// DELETE /admin/users/:userId
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&user).Error; err != nil {
		log.Println("[ERROR] Delete user gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helper.Success(c, "User dihapus", fiber.Map{"id": id})
}
