package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ewm_backend/internals/features/events/dto"
	"ewm_backend/internals/features/events/model"
	helper "ewm_backend/internals/helpers"
)

// applyStateAction = satu-satunya tempat transisi state terjadi.
// PUBLISH_EVENT:  PENDING → PUBLISHED (set publishedOn)
// REJECT_EVENT / CANCEL_REVIEW: PENDING → CANCELED
// SEND_TO_REVIEW: * → PENDING
func applyStateAction(event *model.EventModel, action model.StateAction, now time.Time) error {
	switch action {
	case model.ActionPublishEvent:
		if event.EventState != model.StatePending {
			return fiber.NewError(fiber.StatusConflict, "Event '"+event.EventTitle+"' hanya bisa dipublish dari state PENDING")
		}
		// jarak minimal publish → eventDate adalah 1 jam
		if event.EventDate.Before(now.Add(time.Hour)) {
			return fiber.NewError(fiber.StatusConflict, "Event '"+event.EventTitle+"' terlalu dekat dengan eventDate untuk dipublish")
		}
		event.EventState = model.StatePublished
		event.EventPublishedOn = &now
	case model.ActionRejectEvent, model.ActionCancelReview:
		if event.EventState != model.StatePending {
			return fiber.NewError(fiber.StatusConflict, "Event '"+event.EventTitle+"' hanya bisa dibatalkan dari state PENDING")
		}
		event.EventState = model.StateCanceled
	case model.ActionSendToReview:
		event.EventState = model.StatePending
	default:
		return fiber.NewError(fiber.StatusBadRequest, "stateAction tidak dikenal: "+string(action))
	}
	return nil
}

// applyUpdate menerapkan partial update: hanya field non-nil & non-blank
// yang diubah, lalu simpan location + event.
func (s *EventService) applyUpdate(ctx context.Context, event *model.EventModel, req dto.UpdateEventRequest) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	if req.ParticipantLimit != nil && *req.ParticipantLimit < 0 {
		return empty, fiber.NewError(fiber.StatusBadRequest, "Jumlah peserta tidak boleh negatif")
	}
	if req.StateAction != nil {
		action, ok := model.ParseStateAction(*req.StateAction)
		if !ok {
			return empty, fiber.NewError(fiber.StatusBadRequest, "stateAction tidak dikenal: "+*req.StateAction)
		}
		if err := applyStateAction(event, action, s.now()); err != nil {
			return empty, err
		}
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		event.EventTitle = *req.Title
	}
	if req.Annotation != nil && strings.TrimSpace(*req.Annotation) != "" {
		event.EventAnnotation = *req.Annotation
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		event.EventDescription = *req.Description
	}
	if req.Category != nil {
		category, err := s.categories.GetByID(ctx, *req.Category)
		if err != nil {
			return empty, notFound(err, "Category tidak ditemukan")
		}
		event.EventCategoryID = category.CategoryID
	}
	if req.EventDate != nil {
		eventDate, err := helper.ParseDateTime(*req.EventDate)
		if err != nil {
			return empty, err
		}
		event.EventDate = *eventDate
	}
	if req.Location != nil {
		location := model.LocationModel{
			LocationID:  event.EventLocationID,
			LocationLat: req.Location.Lat,
			LocationLon: req.Location.Lon,
		}
		if err := s.locations.Save(ctx, &location); err != nil {
			return empty, err
		}
		event.EventLocationID = location.LocationID
	}
	if req.Paid != nil {
		event.EventPaid = *req.Paid
	}
	if req.ParticipantLimit != nil {
		event.EventParticipantLimit = *req.ParticipantLimit
	}
	if req.RequestModeration != nil {
		event.EventRequestModeration = *req.RequestModeration
	}

	if err := s.events.Save(ctx, event); err != nil {
		return empty, err
	}
	return s.toFullResponse(ctx, *event)
}

// ================= komposisi response =================

func (s *EventService) toFullResponse(ctx context.Context, event model.EventModel) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	bundles, err := s.toBundles(ctx, []model.EventModel{event})
	if err != nil {
		return empty, err
	}
	return dto.ToEventFullResponse(bundles[0]), nil
}

// toBundles memuat category/initiator/location untuk sekumpulan event
// dengan tiga query batch (bukan lazy fetch per baris).
func (s *EventService) toBundles(ctx context.Context, events []model.EventModel) ([]dto.EventBundle, error) {
	if len(events) == 0 {
		return nil, nil
	}
	categoryIDs := make([]uint, 0, len(events))
	userIDs := make([]uint, 0, len(events))
	locationIDs := make([]uint, 0, len(events))
	for _, ev := range events {
		categoryIDs = append(categoryIDs, ev.EventCategoryID)
		userIDs = append(userIDs, ev.EventInitiatorID)
		locationIDs = append(locationIDs, ev.EventLocationID)
	}

	categories, err := s.categories.GetByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.GetByIDs(ctx, locationIDs)
	if err != nil {
		return nil, err
	}

	bundles := make([]dto.EventBundle, 0, len(events))
	for _, ev := range events {
		bundles = append(bundles, dto.EventBundle{
			Event:    ev,
			Category: categories[ev.EventCategoryID],
			User:     users[ev.EventInitiatorID],
			Location: locations[ev.EventLocationID],
		})
	}
	return bundles, nil
}

// ================= util kecil =================

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}

func parseRange(rawStart, rawEnd string) (*time.Time, *time.Time, error) {
	start, err := helper.ParseDateTime(rawStart)
	if err != nil {
		return nil, nil, err
	}
	end, err := helper.ParseDateTime(rawEnd)
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "rangeStart tidak boleh setelah rangeEnd")
	}
	return start, end, nil
}
