package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/stats/dto"
	"ewm_backend/internals/features/stats/model"
	"ewm_backend/internals/features/stats/repository"
	helper "ewm_backend/internals/helpers"
)

type StatsController struct {
	Repo     *repository.HitRepository
	validate *validator.Validate
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		Repo:     repository.NewHitRepository(db),
		validate: validator.New(),
	}
}

// POST /hit — append-only, tidak pernah diupdate/dihapus
func (ctrl *StatsController) AddHit(c *fiber.Ctx) error {
	var req dto.HitDto
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	at, err := helper.ParseDateTime(req.Timestamp)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	hit := model.HitModel{
		HitApp:       req.App,
		HitURI:       req.URI,
		HitIP:        req.IP,
		HitTimestamp: *at,
	}
	if err := ctrl.Repo.Save(c.UserContext(), &hit); err != nil {
		log.Println("[ERROR] Simpan hit gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hit")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hit tercatat", dto.HitDto{
		App:       hit.HitApp,
		URI:       hit.HitURI,
		IP:        hit.HitIP,
		Timestamp: req.Timestamp,
	})
}

// GET /stats?start=&end=&uris=&unique=
func (ctrl *StatsController) GetStats(c *fiber.Ctx) error {
	start, err := helper.ParseDateTime(c.Query("start"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	end, err := helper.ParseDateTime(c.Query("end"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if start == nil || end == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter 'start' dan 'end' wajib diisi")
	}
	if start.After(*end) {
		return helper.Error(c, fiber.StatusBadRequest, "start tidak boleh setelah end")
	}

	unique := false
	if raw := c.Query("unique"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Parameter 'unique' harus boolean")
		}
		unique = v
	}

	var uris []string
	if raw := strings.TrimSpace(c.Query("uris")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				uris = append(uris, trimmed)
			}
		}
	}

	stats, err := ctrl.Repo.GetStats(c.UserContext(), *start, *end, uris, unique)
	if err != nil {
		log.Println("[ERROR] Query stats gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if stats == nil {
		stats = []dto.StatsDto{}
	}
	return helper.Success(c, "Agregat hit per URI", stats)
}
