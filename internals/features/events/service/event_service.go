package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	categoryModel "ewm_backend/internals/features/categories/model"
	"ewm_backend/internals/features/events/dto"
	"ewm_backend/internals/features/events/model"
	statsDto "ewm_backend/internals/features/stats/dto"
	userModel "ewm_backend/internals/features/users/model"
	helper "ewm_backend/internals/helpers"
)

// EventStore: akses tabel events. Semua pembacaan lintas-entity lewat
// loader eksplisit, tidak ada relasi lazy.
type EventStore interface {
	GetByID(ctx context.Context, id uint) (model.EventModel, error)
	Save(ctx context.Context, ev *model.EventModel) error
	SaveAll(ctx context.Context, evs []model.EventModel) error
	FindByInitiator(ctx context.Context, userID uint, from, size int) ([]model.EventModel, error)
	AdminSearch(ctx context.Context, f dto.AdminSearchFilter) ([]model.EventModel, error)
	PublicSearch(ctx context.Context, f dto.PublicSearchFilter) ([]model.EventModel, error)
}

type LocationStore interface {
	GetByIDs(ctx context.Context, ids []uint) (map[uint]model.LocationModel, error)
	Save(ctx context.Context, loc *model.LocationModel) error
}

type CategoryLoader interface {
	GetByID(ctx context.Context, id uint) (categoryModel.CategoryModel, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]categoryModel.CategoryModel, error)
}

type UserLoader interface {
	GetByID(ctx context.Context, id uint) (userModel.UserModel, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]userModel.UserModel, error)
}

// StatsGateway: dua panggilan independen ke stats-service (tanpa atomicity).
type StatsGateway interface {
	AddHit(ctx context.Context, uri, ip string, at time.Time) error
	FindStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]statsDto.StatsDto, error)
}

type EventService struct {
	events     EventStore
	locations  LocationStore
	categories CategoryLoader
	users      UserLoader
	stats      StatsGateway
	now        func() time.Time
}

func NewEventService(events EventStore, locations LocationStore, categories CategoryLoader, users UserLoader, stats StatsGateway) *EventService {
	return &EventService{
		events:     events,
		locations:  locations,
		categories: categories,
		users:      users,
		stats:      stats,
		now:        time.Now,
	}
}

// ================= PRIVATE (initiator) =================

func (s *EventService) AddEvent(ctx context.Context, userID uint, req dto.NewEventRequest) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	if req.ParticipantLimit != nil && *req.ParticipantLimit < 0 {
		return empty, fiber.NewError(fiber.StatusBadRequest, "Jumlah peserta tidak boleh negatif")
	}
	eventDate, err := helper.ParseDateTime(req.EventDate)
	if err != nil {
		return empty, err
	}
	if eventDate.Before(s.now().Add(2 * time.Hour)) {
		return empty, fiber.NewError(fiber.StatusBadRequest, "eventDate minimal 2 jam dari sekarang")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return empty, notFound(err, "User tidak ditemukan")
	}
	category, err := s.categories.GetByID(ctx, req.Category)
	if err != nil {
		return empty, notFound(err, "Category tidak ditemukan")
	}

	location := model.LocationModel{
		LocationLat: req.Location.Lat,
		LocationLon: req.Location.Lon,
	}
	if err := s.locations.Save(ctx, &location); err != nil {
		return empty, err
	}

	limit := 0
	if req.ParticipantLimit != nil {
		limit = *req.ParticipantLimit
	}
	moderation := true
	if req.RequestModeration != nil {
		moderation = *req.RequestModeration
	}

	event := model.EventModel{
		EventTitle:             req.Title,
		EventAnnotation:        req.Annotation,
		EventDescription:       req.Description,
		EventCategoryID:        category.CategoryID,
		EventInitiatorID:       user.UserID,
		EventLocationID:        location.LocationID,
		EventState:             model.StatePending,
		EventDate:              *eventDate,
		EventPaid:              req.Paid,
		EventParticipantLimit:  limit,
		EventRequestModeration: moderation,
	}
	if err := s.events.Save(ctx, &event); err != nil {
		return empty, err
	}

	return dto.ToEventFullResponse(dto.EventBundle{
		Event:    event,
		Category: category,
		User:     user,
		Location: location,
	}), nil
}

func (s *EventService) GetEventsByInitiator(ctx context.Context, userID uint, from, size int) ([]dto.EventShortResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, notFound(err, "User tidak ditemukan")
	}
	events, err := s.events.FindByInitiator(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	bundles, err := s.toBundles(ctx, events)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventShortResponse, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, dto.ToEventShortResponse(b))
	}
	return out, nil
}

func (s *EventService) GetUserEventByID(ctx context.Context, userID, eventID uint) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return empty, notFound(err, "User tidak ditemukan")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return empty, notFound(err, "Event tidak ditemukan")
	}
	if event.EventInitiatorID != userID {
		return empty, fiber.NewError(fiber.StatusConflict, "User bukan initiator event ini")
	}
	return s.toFullResponse(ctx, event)
}

func (s *EventService) UpdateEventByUser(ctx context.Context, userID, eventID uint, req dto.UpdateEventRequest) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return empty, notFound(err, "User tidak ditemukan")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return empty, notFound(err, "Event tidak ditemukan")
	}
	if event.EventInitiatorID != user.UserID {
		return empty, fiber.NewError(fiber.StatusConflict, "User bukan initiator event ini")
	}
	if event.EventState == model.StatePublished {
		return empty, fiber.NewError(fiber.StatusConflict, "Event yang sudah PUBLISHED tidak bisa diubah initiator")
	}
	return s.applyUpdate(ctx, &event, req)
}

// ================= ADMIN =================

func (s *EventService) UpdateEventByAdmin(ctx context.Context, eventID uint, req dto.UpdateEventRequest) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return empty, notFound(err, "Event tidak ditemukan")
	}
	return s.applyUpdate(ctx, &event, req)
}

func (s *EventService) AdminSearch(ctx context.Context, users []uint, rawStates []string, categories []uint, rangeStart, rangeEnd string, from, size int) ([]dto.EventFullResponse, error) {
	start, end, err := parseRange(rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	states := make([]model.State, 0, len(rawStates))
	for _, raw := range rawStates {
		st, ok := model.ParseState(raw)
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "State tidak dikenal: "+raw)
		}
		states = append(states, st)
	}

	events, err := s.events.AdminSearch(ctx, dto.AdminSearchFilter{
		Users:      users,
		States:     states,
		Categories: categories,
		RangeStart: start,
		RangeEnd:   end,
		From:       from,
		Size:       size,
	})
	if err != nil {
		return nil, err
	}
	bundles, err := s.toBundles(ctx, events)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventFullResponse, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, dto.ToEventFullResponse(b))
	}
	return out, nil
}

// ================= PUBLIC =================

func (s *EventService) GetPublicEventByID(ctx context.Context, eventID uint, uri, ip string) (dto.EventFullResponse, error) {
	var empty dto.EventFullResponse

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return empty, notFound(err, "Event tidak ditemukan")
	}
	if event.EventState != model.StatePublished {
		return empty, fiber.NewError(fiber.StatusNotFound, "Event belum dipublish")
	}

	if err := s.stats.AddHit(ctx, uri, ip, s.now()); err != nil {
		return empty, err
	}
	views, err := s.fetchViews(ctx, event.EventID)
	if err != nil {
		return empty, err
	}
	// refresh-and-persist view count: efek samping baca yang disengaja,
	// cache views disimpan di baris event
	event.EventViews = views
	if err := s.events.Save(ctx, &event); err != nil {
		return empty, err
	}
	return s.toFullResponse(ctx, event)
}

func (s *EventService) PublicSearch(ctx context.Context, f dto.PublicSearchFilter, rangeStart, rangeEnd, uri, ip string) ([]dto.EventShortResponse, error) {
	start, end, err := parseRange(rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	f.RangeStart = start
	f.RangeEnd = end

	events, err := s.events.PublicSearch(ctx, f)
	if err != nil {
		return nil, err
	}

	if err := s.stats.AddHit(ctx, uri, ip, s.now()); err != nil {
		return nil, err
	}
	if err := s.refreshViews(ctx, events); err != nil {
		return nil, err
	}

	bundles, err := s.toBundles(ctx, events)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventShortResponse, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, dto.ToEventShortResponse(b))
	}
	return out, nil
}

// refreshViews mengambil hitungan unique-IP untuk semua event dalam satu
// query batch ke stats-service lalu menyimpan cache views per event.
func (s *EventService) refreshViews(ctx context.Context, events []model.EventModel) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.EventID)
	}
	viewsMap, err := s.fetchViewsBatch(ctx, ids)
	if err != nil {
		return err
	}
	for i := range events {
		events[i].EventViews = viewsMap[events[i].EventID] // absen → 0
	}
	return s.events.SaveAll(ctx, events)
}
