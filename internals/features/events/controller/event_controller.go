package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"

	categoryRepo "ewm_backend/internals/features/categories/repository"
	"ewm_backend/internals/features/events/dto"
	"ewm_backend/internals/features/events/repository"
	"ewm_backend/internals/features/events/service"
	userRepo "ewm_backend/internals/features/users/repository"
	helper "ewm_backend/internals/helpers"
)

type EventController struct {
	Service  *service.EventService
	validate *validator.Validate
}

func NewEventController(db *gorm.DB, stats service.StatsGateway) *EventController {
	svc := service.NewEventService(
		repository.NewEventRepository(db),
		repository.NewLocationRepository(db),
		categoryRepo.NewCategoryRepository(db),
		userRepo.NewUserRepository(db),
		stats,
	)
	return &EventController{
		Service:  svc,
		validate: validator.New(),
	}
}

// POST /users/:userId/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}

	var req dto.NewEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.AddEvent(c.UserContext(), userID, req)
	if err != nil {
		log.Println("[ERROR] Create event gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", resp)
}

// GET /users/:userId/events
func (ctrl *EventController) GetOwn(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	page, err := helper.ParseFromSize(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp, err := ctrl.Service.GetEventsByInitiator(c.UserContext(), userID, page.Offset(), page.Limit())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar event milik user", resp)
}

// GET /users/:userId/events/:eventId
func (ctrl *EventController) GetOwnByID(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	eventID, err := paramUint(c, "eventId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	resp, err := ctrl.Service.GetUserEventByID(c.UserContext(), userID, eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail event", resp)
}

// PATCH /users/:userId/events/:eventId
func (ctrl *EventController) UpdateByUser(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	eventID, err := paramUint(c, "eventId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.UpdateEventByUser(c.UserContext(), userID, eventID, req)
	if err != nil {
		log.Println("[ERROR] Update event oleh user gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Event berhasil diupdate", resp)
}

// PATCH /admin/events/:eventId
func (ctrl *EventController) UpdateByAdmin(c *fiber.Ctx) error {
	eventID, err := paramUint(c, "eventId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.UpdateEventByAdmin(c.UserContext(), eventID, req)
	if err != nil {
		log.Println("[ERROR] Update event oleh admin gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Event berhasil diupdate", resp)
}

// GET /admin/events
func (ctrl *EventController) AdminSearch(c *fiber.Ctx) error {
	page, err := helper.ParseFromSize(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	users, err := queryUintList(c, "users")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter 'users' tidak valid")
	}
	categories, err := queryUintList(c, "categories")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter 'categories' tidak valid")
	}

	resp, err := ctrl.Service.AdminSearch(
		c.UserContext(),
		users,
		queryStringList(c, "states"),
		categories,
		c.Query("rangeStart"),
		c.Query("rangeEnd"),
		page.Offset(),
		page.Limit(),
	)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar event (admin)", resp)
}

// GET /events/:id — publik; merekam hit & refresh views
func (ctrl *EventController) GetPublicByID(c *fiber.Ctx) error {
	eventID, err := paramUint(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id tidak valid")
	}

	// OriginalURL/IP menunjuk buffer fasthttp yang dipakai ulang; copy dulu
	// sebelum dikirim ke stats-server
	resp, err := ctrl.Service.GetPublicEventByID(c.UserContext(), eventID,
		utils.CopyString(c.OriginalURL()), utils.CopyString(c.IP()))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail event", resp)
}

// GET /events — listing publik; merekam hit & refresh views batch
func (ctrl *EventController) PublicSearch(c *fiber.Ctx) error {
	page, err := helper.ParseFromSize(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	categories, err := queryUintList(c, "categories")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter 'categories' tidak valid")
	}

	var paid *bool
	if raw := c.Query("paid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Parameter 'paid' tidak valid")
		}
		paid = &v
	}

	sort := c.Query("sort")
	if sort != "" && sort != dto.SortEventDate && sort != dto.SortViews {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter 'sort' harus EVENT_DATE atau VIEWS")
	}

	filter := dto.PublicSearchFilter{
		Text:          c.Query("text"),
		Categories:    categories,
		Paid:          paid,
		OnlyAvailable: c.QueryBool("onlyAvailable", false),
		Sort:          sort,
		From:          page.Offset(),
		Size:          page.Limit(),
	}

	resp, err := ctrl.Service.PublicSearch(
		c.UserContext(), filter,
		c.Query("rangeStart"), c.Query("rangeEnd"),
		utils.CopyString(c.OriginalURL()), utils.CopyString(c.IP()),
	)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar event", resp)
}

// ================= parsing param =================

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" tidak valid")
	}
	return uint(id), nil
}

func queryUintList(c *fiber.Ctx, name string) ([]uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, uint(id))
	}
	return out, nil
}

func queryStringList(c *fiber.Ctx, name string) []string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
