package helper

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestParseDateTimeRoundTrip(t *testing.T) {
	got, err := ParseDateTime("2025-06-01 12:30:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if FormatDateTime(got) != "2025-06-01 12:30:45" {
		t.Errorf("format round-trip broken: %q", FormatDateTime(got))
	}
}

func TestParseDateTimeBlankIsNil(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		got, err := ParseDateTime(raw)
		if err != nil || got != nil {
			t.Errorf("%q: blank input should give nil/nil, got %v / %v", raw, got, err)
		}
	}
}

func TestParseDateTimeBadFormat(t *testing.T) {
	for _, raw := range []string{"2025-06-01", "01-06-2025 12:00:00", "not-a-date"} {
		_, err := ParseDateTime(raw)
		fe, ok := err.(*fiber.Error)
		if !ok || fe.Code != fiber.StatusBadRequest {
			t.Errorf("%q: expected 400, got %v", raw, err)
		}
	}
}

func TestFormatDateTimeNil(t *testing.T) {
	if FormatDateTime(nil) != "" {
		t.Error("nil time should format to empty string")
	}
}
