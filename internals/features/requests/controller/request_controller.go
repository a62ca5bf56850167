package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRepo "ewm_backend/internals/features/events/repository"
	"ewm_backend/internals/features/requests/dto"
	"ewm_backend/internals/features/requests/repository"
	"ewm_backend/internals/features/requests/service"
	userRepo "ewm_backend/internals/features/users/repository"
	helper "ewm_backend/internals/helpers"
)

type RequestController struct {
	Service  *service.RequestService
	validate *validator.Validate
}

func NewRequestController(db *gorm.DB) *RequestController {
	svc := service.NewRequestService(
		repository.NewRequestRepository(db),
		eventRepo.NewEventRepository(db),
		userRepo.NewUserRepository(db),
	)
	return &RequestController{
		Service:  svc,
		validate: validator.New(),
	}
}

// POST /users/:userId/requests?eventId=
func (ctrl *RequestController) Create(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	eventID, err := strconv.ParseUint(c.Query("eventId"), 10, 64)
	if err != nil || eventID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter 'eventId' wajib dan harus numerik")
	}

	resp, err := ctrl.Service.CreateRequest(c.UserContext(), userID, uint(eventID))
	if err != nil {
		log.Println("[ERROR] Create request gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Request partisipasi dibuat", resp)
}

// GET /users/:userId/requests
func (ctrl *RequestController) GetOwn(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}

	resp, err := ctrl.Service.GetRequestsByRequester(c.UserContext(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar request milik user", resp)
}

// PATCH /users/:userId/requests/:requestId/cancel
func (ctrl *RequestController) Cancel(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	requestID, err := paramUint(c, "requestId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "requestId tidak valid")
	}

	resp, err := ctrl.Service.CancelRequest(c.UserContext(), userID, requestID)
	if err != nil {
		log.Println("[ERROR] Cancel request gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Request dibatalkan", resp)
}

// GET /users/:userId/events/:eventId/requests
func (ctrl *RequestController) GetForEvent(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	eventID, err := paramUint(c, "eventId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	resp, err := ctrl.Service.GetRequestsForEvent(c.UserContext(), userID, eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar request event", resp)
}

// PATCH /users/:userId/events/:eventId/requests — moderasi batch
func (ctrl *RequestController) Moderate(c *fiber.Ctx) error {
	userID, err := paramUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "userId tidak valid")
	}
	eventID, err := paramUint(c, "eventId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.ModerateRequests(c.UserContext(), userID, eventID, req)
	if err != nil {
		log.Println("[ERROR] Moderasi request gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Hasil moderasi request", resp)
}

func paramUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" tidak valid")
	}
	return uint(id), nil
}
