package controller

import (
	"testing"

	categoryModel "ewm_backend/internals/features/categories/model"
	"ewm_backend/internals/features/compilations/model"
	eventModel "ewm_backend/internals/features/events/model"
	userModel "ewm_backend/internals/features/users/model"
)

func TestComposeCompilationResponses(t *testing.T) {
	compilations := []model.CompilationModel{
		{CompilationID: 1, CompilationTitle: "Akhir Pekan", CompilationPinned: true},
		{CompilationID: 2, CompilationTitle: "Gratis"},
		{CompilationID: 3, CompilationTitle: "Kosong"},
	}
	// satu hasil query membership untuk seluruh halaman, urut event id
	membership := []model.CompilationEventModel{
		{CompilationEventCompilationID: 1, CompilationEventEventID: 10},
		{CompilationEventCompilationID: 1, CompilationEventEventID: 11},
		{CompilationEventCompilationID: 2, CompilationEventEventID: 11},
	}
	events := map[uint]eventModel.EventModel{
		10: {EventID: 10, EventTitle: "Konser A", EventCategoryID: 5, EventInitiatorID: 7},
		11: {EventID: 11, EventTitle: "Pameran B", EventCategoryID: 5, EventInitiatorID: 8},
	}
	categories := map[uint]categoryModel.CategoryModel{
		5: {CategoryID: 5, CategoryName: "Konser"},
	}
	users := map[uint]userModel.UserModel{
		7: {UserID: 7, UserName: "alpha"},
		8: {UserID: 8, UserName: "beta"},
	}

	out := composeCompilationResponses(compilations, membership, events, categories, users)

	if len(out) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 || out[2].ID != 3 {
		t.Errorf("response order must follow input order, got %d/%d/%d", out[0].ID, out[1].ID, out[2].ID)
	}

	if len(out[0].Events) != 2 || out[0].Events[0].ID != 10 || out[0].Events[1].ID != 11 {
		t.Errorf("first compilation should list events 10,11 in order, got %+v", out[0].Events)
	}
	if out[0].Events[0].Category.Name != "Konser" || out[0].Events[0].Initiator.Name != "alpha" {
		t.Errorf("event dto should be composed from batch maps, got %+v", out[0].Events[0])
	}

	// event yang sama boleh muncul di lebih dari satu compilation
	if len(out[1].Events) != 1 || out[1].Events[0].ID != 11 {
		t.Errorf("second compilation should share event 11, got %+v", out[1].Events)
	}
	if out[2].Events == nil || len(out[2].Events) != 0 {
		t.Errorf("compilation without members must have an empty (non-nil) list, got %+v", out[2].Events)
	}
}
