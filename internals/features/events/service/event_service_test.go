package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryModel "ewm_backend/internals/features/categories/model"
	"ewm_backend/internals/features/events/dto"
	"ewm_backend/internals/features/events/model"
	statsDto "ewm_backend/internals/features/stats/dto"
	userModel "ewm_backend/internals/features/users/model"
)

// ===== fakes in-memory =====

type fakeEventStore struct {
	byID        map[uint]model.EventModel
	nextID      uint
	saves       int
	searchCalls int
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{byID: map[uint]model.EventModel{}, nextID: 1}
}

func (f *fakeEventStore) add(ev model.EventModel) model.EventModel {
	if ev.EventID == 0 {
		ev.EventID = f.nextID
		f.nextID++
	}
	f.byID[ev.EventID] = ev
	return ev
}

func (f *fakeEventStore) GetByID(_ context.Context, id uint) (model.EventModel, error) {
	ev, ok := f.byID[id]
	if !ok {
		return model.EventModel{}, gorm.ErrRecordNotFound
	}
	return ev, nil
}

func (f *fakeEventStore) Save(_ context.Context, ev *model.EventModel) error {
	f.saves++
	*ev = f.add(*ev)
	return nil
}

func (f *fakeEventStore) SaveAll(_ context.Context, evs []model.EventModel) error {
	f.saves++
	for _, ev := range evs {
		f.byID[ev.EventID] = ev
	}
	return nil
}

func (f *fakeEventStore) FindByInitiator(_ context.Context, userID uint, from, size int) ([]model.EventModel, error) {
	var out []model.EventModel
	for id := uint(1); id < f.nextID; id++ {
		if ev, ok := f.byID[id]; ok && ev.EventInitiatorID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventStore) AdminSearch(_ context.Context, _ dto.AdminSearchFilter) ([]model.EventModel, error) {
	f.searchCalls++
	var out []model.EventModel
	for id := uint(1); id < f.nextID; id++ {
		if ev, ok := f.byID[id]; ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventStore) PublicSearch(_ context.Context, _ dto.PublicSearchFilter) ([]model.EventModel, error) {
	f.searchCalls++
	var out []model.EventModel
	for id := uint(1); id < f.nextID; id++ {
		if ev, ok := f.byID[id]; ok && ev.EventState == model.StatePublished {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeLocationStore struct {
	byID   map[uint]model.LocationModel
	nextID uint
}

func newFakeLocationStore() *fakeLocationStore {
	return &fakeLocationStore{byID: map[uint]model.LocationModel{}, nextID: 1}
}

func (f *fakeLocationStore) GetByIDs(_ context.Context, ids []uint) (map[uint]model.LocationModel, error) {
	out := map[uint]model.LocationModel{}
	for _, id := range ids {
		if loc, ok := f.byID[id]; ok {
			out[id] = loc
		}
	}
	return out, nil
}

func (f *fakeLocationStore) Save(_ context.Context, loc *model.LocationModel) error {
	if loc.LocationID == 0 {
		loc.LocationID = f.nextID
		f.nextID++
	}
	f.byID[loc.LocationID] = *loc
	return nil
}

type fakeCategoryLoader struct {
	byID map[uint]categoryModel.CategoryModel
}

func (f *fakeCategoryLoader) GetByID(_ context.Context, id uint) (categoryModel.CategoryModel, error) {
	c, ok := f.byID[id]
	if !ok {
		return categoryModel.CategoryModel{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryLoader) GetByIDs(_ context.Context, ids []uint) (map[uint]categoryModel.CategoryModel, error) {
	out := map[uint]categoryModel.CategoryModel{}
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakeUserLoader struct {
	byID map[uint]userModel.UserModel
}

func (f *fakeUserLoader) GetByID(_ context.Context, id uint) (userModel.UserModel, error) {
	u, ok := f.byID[id]
	if !ok {
		return userModel.UserModel{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserLoader) GetByIDs(_ context.Context, ids []uint) (map[uint]userModel.UserModel, error) {
	out := map[uint]userModel.UserModel{}
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeStatsGateway struct {
	hits  []string // uri yang tercatat lewat AddHit
	stats []statsDto.StatsDto
	calls []([]string) // uris tiap panggilan FindStats
}

func (f *fakeStatsGateway) AddHit(_ context.Context, uri, ip string, _ time.Time) error {
	f.hits = append(f.hits, uri)
	return nil
}

func (f *fakeStatsGateway) FindStats(_ context.Context, _, _ time.Time, uris []string, _ bool) ([]statsDto.StatsDto, error) {
	f.calls = append(f.calls, uris)
	return f.stats, nil
}

// ===== setup =====

type fixture struct {
	svc        *EventService
	events     *fakeEventStore
	locations  *fakeLocationStore
	categories *fakeCategoryLoader
	users      *fakeUserLoader
	stats      *fakeStatsGateway
	now        time.Time
}

func newFixture() *fixture {
	f := &fixture{
		events:     newFakeEventStore(),
		locations:  newFakeLocationStore(),
		categories: &fakeCategoryLoader{byID: map[uint]categoryModel.CategoryModel{1: {CategoryID: 1, CategoryName: "Konser"}}},
		users:      &fakeUserLoader{byID: map[uint]userModel.UserModel{1: {UserID: 1, UserName: "initiator"}, 2: {UserID: 2, UserName: "other"}}},
		stats:      &fakeStatsGateway{},
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewEventService(f.events, f.locations, f.categories, f.users, f.stats)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) seedEvent(state model.State) model.EventModel {
	loc := model.LocationModel{LocationLat: -6.2, LocationLon: 106.8}
	_ = f.locations.Save(context.Background(), &loc)
	return f.events.add(model.EventModel{
		EventTitle:       "Festival Musik",
		EventAnnotation:  "Annotation cukup panjang untuk lolos validasi minimal",
		EventDescription: "Description cukup panjang untuk lolos validasi minimal",
		EventCategoryID:  1,
		EventInitiatorID: 1,
		EventLocationID:  loc.LocationID,
		EventState:       state,
		EventDate:        f.now.Add(48 * time.Hour),
	})
}

func newEventRequest(f *fixture) dto.NewEventRequest {
	return dto.NewEventRequest{
		Title:       "Festival Musik",
		Annotation:  "Annotation cukup panjang untuk lolos validasi minimal",
		Description: "Description cukup panjang untuk lolos validasi minimal",
		Category:    1,
		Location:    &dto.LocationDto{Lat: -6.2, Lon: 106.8},
		EventDate:   f.now.Add(48 * time.Hour).Format("2006-01-02 15:04:05"),
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T: %v", err, err)
	}
	return fe.Code
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// ===== create =====

func TestAddEventStartsPendingAndSavesLocation(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.AddEvent(context.Background(), 1, newEventRequest(f))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.State != model.StatePending {
		t.Errorf("new event must start PENDING, got %s", resp.State)
	}
	if resp.Location.Lat != -6.2 || resp.Location.Lon != 106.8 {
		t.Errorf("location round-trip broken: %+v", resp.Location)
	}
	if resp.ParticipantLimit != 0 {
		t.Errorf("nil participantLimit should default to 0, got %d", resp.ParticipantLimit)
	}
	if !f.events.byID[resp.ID].EventRequestModeration {
		t.Error("nil requestModeration should default to true")
	}
	if len(f.locations.byID) != 1 {
		t.Errorf("exactly one location row expected, got %d", len(f.locations.byID))
	}
}

func TestAddEventRejectsNegativeLimit(t *testing.T) {
	f := newFixture()
	req := newEventRequest(f)
	req.ParticipantLimit = intPtr(-1)

	_, err := f.svc.AddEvent(context.Background(), 1, req)
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for negative limit, got %d", code)
	}
	if f.events.saves != 0 {
		t.Error("nothing may be persisted on validation failure")
	}
}

func TestAddEventRejectsTooCloseDate(t *testing.T) {
	f := newFixture()
	req := newEventRequest(f)
	req.EventDate = f.now.Add(time.Hour).Format("2006-01-02 15:04:05")

	_, err := f.svc.AddEvent(context.Background(), 1, req)
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for event date under 2h away, got %d", code)
	}
}

// ===== state machine =====

func TestPublishFromPendingSetsPublishedOn(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)

	resp, err := f.svc.UpdateEventByAdmin(context.Background(), ev.EventID, dto.UpdateEventRequest{
		StateAction: strPtr("PUBLISH_EVENT"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.State != model.StatePublished {
		t.Fatalf("expected PUBLISHED, got %s", resp.State)
	}
	stored := f.events.byID[ev.EventID]
	if stored.EventPublishedOn == nil || !stored.EventPublishedOn.Equal(f.now) {
		t.Errorf("publishedOn should be set to now, got %v", stored.EventPublishedOn)
	}
}

func TestPublishTooCloseToEventDateConflicts(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)
	ev.EventDate = f.now.Add(30 * time.Minute)
	f.events.byID[ev.EventID] = ev

	_, err := f.svc.UpdateEventByAdmin(context.Background(), ev.EventID, dto.UpdateEventRequest{
		StateAction: strPtr("PUBLISH_EVENT"),
	})
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 publishing under 1h before eventDate, got %d", code)
	}
	stored := f.events.byID[ev.EventID]
	if stored.EventState != model.StatePending || stored.EventPublishedOn != nil {
		t.Errorf("event must stay PENDING without publishedOn, got %s / %v", stored.EventState, stored.EventPublishedOn)
	}
}

func TestDoublePublishConflicts(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePublished)

	_, err := f.svc.UpdateEventByAdmin(context.Background(), ev.EventID, dto.UpdateEventRequest{
		StateAction: strPtr("PUBLISH_EVENT"),
	})
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 publishing non-PENDING event, got %d", code)
	}
}

func TestRejectFromPendingCancels(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)

	resp, err := f.svc.UpdateEventByAdmin(context.Background(), ev.EventID, dto.UpdateEventRequest{
		StateAction: strPtr("REJECT_EVENT"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.State != model.StateCanceled {
		t.Fatalf("expected CANCELED, got %s", resp.State)
	}
	if resp.PublishedOn != "" {
		t.Error("canceled event must not carry publishedOn")
	}
}

func TestSendToReviewFromCanceled(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StateCanceled)

	resp, err := f.svc.UpdateEventByUser(context.Background(), 1, ev.EventID, dto.UpdateEventRequest{
		StateAction: strPtr("SEND_TO_REVIEW"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.State != model.StatePending {
		t.Fatalf("expected PENDING after send to review, got %s", resp.State)
	}
}

func TestUnknownStateActionRejected(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)

	_, err := f.svc.UpdateEventByAdmin(context.Background(), ev.EventID, dto.UpdateEventRequest{
		StateAction: strPtr("EXPLODE_EVENT"),
	})
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 unknown action, got %d", code)
	}
}

// ===== initiator updates =====

func TestUpdateByNonInitiatorConflicts(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)
	saves := f.events.saves

	_, err := f.svc.UpdateEventByUser(context.Background(), 2, ev.EventID, dto.UpdateEventRequest{
		Title: strPtr("Judul Baru Sekali"),
	})
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 for non-initiator, got %d", code)
	}
	if f.events.saves != saves {
		t.Error("no mutation allowed for non-initiator")
	}
}

func TestUpdatePublishedEventByUserConflicts(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePublished)

	_, err := f.svc.UpdateEventByUser(context.Background(), 1, ev.EventID, dto.UpdateEventRequest{
		Title: strPtr("Judul Baru Sekali"),
	})
	if code := fiberCode(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 updating PUBLISHED event, got %d", code)
	}
}

func TestPartialUpdateSkipsNilAndBlank(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)

	resp, err := f.svc.UpdateEventByUser(context.Background(), 1, ev.EventID, dto.UpdateEventRequest{
		Title: strPtr("   "), // blank → tidak diubah
		Paid:  boolPtr(true),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Title != "Festival Musik" {
		t.Errorf("blank title must be ignored, got %q", resp.Title)
	}
	if !resp.Paid {
		t.Error("paid should be updated to true")
	}
}

func TestUpdateMovesLocationInPlace(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)

	resp, err := f.svc.UpdateEventByUser(context.Background(), 1, ev.EventID, dto.UpdateEventRequest{
		Location: &dto.LocationDto{Lat: -7.8, Lon: 110.4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Location.Lat != -7.8 || resp.Location.Lon != 110.4 {
		t.Errorf("location not updated: %+v", resp.Location)
	}
	if len(f.locations.byID) != 1 {
		t.Errorf("location row should be updated in place, got %d rows", len(f.locations.byID))
	}
}

// ===== search validation =====

func TestAdminSearchRejectsUnknownState(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AdminSearch(context.Background(), nil, []string{"LIMBO"}, nil, "", "", 0, 10)
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 unknown state, got %d", code)
	}
	if f.events.searchCalls != 0 {
		t.Error("repository must not be hit when validation fails")
	}
}

func TestSearchRejectsInvertedRange(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AdminSearch(context.Background(), nil, nil, nil,
		"2025-06-02 00:00:00", "2025-06-01 00:00:00", 0, 10)
	if code := fiberCode(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 inverted range, got %d", code)
	}
	if f.events.searchCalls != 0 {
		t.Error("repository must not be hit when range is invalid")
	}
}

// ===== public reads + views =====

func TestGetPublicEventHidesUnpublished(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePending)

	_, err := f.svc.GetPublicEventByID(context.Background(), ev.EventID, "/events/1", "10.0.0.1")
	if code := fiberCode(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for non-published event, got %d", code)
	}
	if len(f.stats.hits) != 0 {
		t.Error("hidden event must not record a hit")
	}
}

func TestGetPublicEventRecordsHitAndRefreshesViews(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePublished)
	f.stats.stats = []statsDto.StatsDto{{App: "ewm-service", URI: "/events/1", Hits: 7}}

	resp, err := f.svc.GetPublicEventByID(context.Background(), ev.EventID, "/events/1", "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Views != 7 {
		t.Errorf("views should come from stats-service, got %d", resp.Views)
	}
	if len(f.stats.hits) != 1 || f.stats.hits[0] != "/events/1" {
		t.Errorf("hit should be recorded for request URI, got %v", f.stats.hits)
	}
	if f.events.byID[ev.EventID].EventViews != 7 {
		t.Error("views cache must be persisted on the event row")
	}
}

func TestGetPublicEventZeroViewsWhenNoStats(t *testing.T) {
	f := newFixture()
	ev := f.seedEvent(model.StatePublished)

	resp, err := f.svc.GetPublicEventByID(context.Background(), ev.EventID, "/events/1", "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Views != 0 {
		t.Errorf("no stats record means 0 views, got %d", resp.Views)
	}
}

func TestPublicSearchBatchViewsMissingURIDefaultsZero(t *testing.T) {
	f := newFixture()
	first := f.seedEvent(model.StatePublished)
	second := f.seedEvent(model.StatePublished)
	f.stats.stats = []statsDto.StatsDto{
		{App: "ewm-service", URI: "/events/" + uintString(first.EventID), Hits: 4},
		// second event tanpa baris stats
	}

	out, err := f.svc.PublicSearch(context.Background(), dto.PublicSearchFilter{Size: 10}, "", "", "/events", "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 events, got %d", len(out))
	}
	views := map[uint]int64{}
	for _, e := range out {
		views[e.ID] = e.Views
	}
	if views[first.EventID] != 4 || views[second.EventID] != 0 {
		t.Errorf("expected views {%d:4, %d:0}, got %v", first.EventID, second.EventID, views)
	}
	if len(f.stats.calls) != 1 || len(f.stats.calls[0]) != 2 {
		t.Errorf("views must be fetched in one batch call, got %v", f.stats.calls)
	}
}

func TestPublicSearchFailsOnMalformedStatsURI(t *testing.T) {
	f := newFixture()
	f.seedEvent(model.StatePublished)
	f.stats.stats = []statsDto.StatsDto{{App: "ewm-service", URI: "/events/abc", Hits: 4}}

	_, err := f.svc.PublicSearch(context.Background(), dto.PublicSearchFilter{Size: 10}, "", "", "/events", "10.0.0.1")
	if code := fiberCode(t, err); code != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 on malformed stats URI, got %d", code)
	}
}

func uintString(id uint) string {
	return eventURI(id)[len("/events/"):]
}
