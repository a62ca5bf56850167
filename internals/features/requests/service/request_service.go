package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventModel "ewm_backend/internals/features/events/model"
	"ewm_backend/internals/features/requests/dto"
	"ewm_backend/internals/features/requests/model"
	userModel "ewm_backend/internals/features/users/model"
)

type RequestStore interface {
	GetByID(ctx context.Context, id uint) (model.RequestModel, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.RequestModel, error)
	FindByEvent(ctx context.Context, eventID uint) ([]model.RequestModel, error)
	FindByRequester(ctx context.Context, userID uint) ([]model.RequestModel, error)
	ExistsByEventAndRequester(ctx context.Context, eventID, userID uint) (bool, error)
	Save(ctx context.Context, req *model.RequestModel) error
	SaveAll(ctx context.Context, reqs []model.RequestModel) error
	CountByEventAndStatus(ctx context.Context, eventID uint, status model.Status) (int64, error)
}

type EventStore interface {
	GetByID(ctx context.Context, id uint) (eventModel.EventModel, error)
	Save(ctx context.Context, ev *eventModel.EventModel) error
}

type UserLoader interface {
	GetByID(ctx context.Context, id uint) (userModel.UserModel, error)
}

type RequestService struct {
	requests RequestStore
	events   EventStore
	users    UserLoader
	now      func() time.Time
}

func NewRequestService(requests RequestStore, events EventStore, users UserLoader) *RequestService {
	return &RequestService{
		requests: requests,
		events:   events,
		users:    users,
		now:      time.Now,
	}
}

// CreateRequest membuat request partisipasi user terhadap event PUBLISHED.
// Auto-confirm ketika event tanpa moderasi atau tanpa batas peserta.
func (s *RequestService) CreateRequest(ctx context.Context, userID, eventID uint) (dto.RequestDto, error) {
	var empty dto.RequestDto

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return empty, notFound(err, "User tidak ditemukan")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return empty, notFound(err, "Event tidak ditemukan")
	}

	if event.EventInitiatorID == user.UserID {
		return empty, fiber.NewError(fiber.StatusConflict, "Initiator tidak boleh request ke event sendiri")
	}
	if event.EventState != eventModel.StatePublished {
		return empty, fiber.NewError(fiber.StatusConflict, "Event belum PUBLISHED")
	}
	exists, err := s.requests.ExistsByEventAndRequester(ctx, eventID, userID)
	if err != nil {
		return empty, err
	}
	if exists {
		return empty, fiber.NewError(fiber.StatusConflict, "Request duplikat untuk event ini")
	}
	if event.EventParticipantLimit > 0 && event.EventConfirmedRequests >= int64(event.EventParticipantLimit) {
		return empty, fiber.NewError(fiber.StatusConflict, "Batas peserta event sudah tercapai")
	}

	status := model.StatusPending
	if !event.EventRequestModeration || event.EventParticipantLimit == 0 {
		status = model.StatusConfirmed
	}

	request := model.RequestModel{
		RequestEventID:     eventID,
		RequestRequesterID: userID,
		RequestStatus:      status,
		CreatedAt:          s.now(),
	}
	if err := s.requests.Save(ctx, &request); err != nil {
		return empty, err
	}

	if status == model.StatusConfirmed {
		if err := s.recountConfirmed(ctx, &event); err != nil {
			return empty, err
		}
	}
	return dto.ToRequestDto(request), nil
}

func (s *RequestService) GetRequestsByRequester(ctx context.Context, userID uint) ([]dto.RequestDto, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, notFound(err, "User tidak ditemukan")
	}
	requests, err := s.requests.FindByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToRequestDtoList(requests), nil
}

// CancelRequest: pemohon membatalkan request miliknya sendiri.
func (s *RequestService) CancelRequest(ctx context.Context, userID, requestID uint) (dto.RequestDto, error) {
	var empty dto.RequestDto

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return empty, notFound(err, "User tidak ditemukan")
	}
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return empty, notFound(err, "Request tidak ditemukan")
	}
	if request.RequestRequesterID != userID {
		return empty, fiber.NewError(fiber.StatusConflict, "Request bukan milik user ini")
	}

	wasConfirmed := request.RequestStatus == model.StatusConfirmed
	request.RequestStatus = model.StatusCanceled
	if err := s.requests.Save(ctx, &request); err != nil {
		return empty, err
	}

	if wasConfirmed {
		event, err := s.events.GetByID(ctx, request.RequestEventID)
		if err != nil {
			return empty, notFound(err, "Event tidak ditemukan")
		}
		if err := s.recountConfirmed(ctx, &event); err != nil {
			return empty, err
		}
	}
	return dto.ToRequestDto(request), nil
}

// GetRequestsForEvent: daftar request sebuah event, hanya untuk initiator.
func (s *RequestService) GetRequestsForEvent(ctx context.Context, userID, eventID uint) ([]dto.RequestDto, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User tidak ditemukan")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, notFound(err, "Event tidak ditemukan")
	}
	if event.EventInitiatorID != user.UserID {
		return nil, fiber.NewError(fiber.StatusConflict, "User bukan initiator event ini")
	}
	requests, err := s.requests.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return dto.ToRequestDtoList(requests), nil
}

// recountConfirmed: cache confirmed_requests selalu dihitung ulang dari
// COUNT baris CONFIRMED, bukan dari counter in-memory.
func (s *RequestService) recountConfirmed(ctx context.Context, event *eventModel.EventModel) error {
	confirmed, err := s.requests.CountByEventAndStatus(ctx, event.EventID, model.StatusConfirmed)
	if err != nil {
		return err
	}
	event.EventConfirmedRequests = confirmed
	return s.events.Save(ctx, event)
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}
