package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/constants"
)

// ParseDateTime memparse string "yyyy-MM-dd HH:mm:ss" menjadi time.Time.
// String kosong → nil (param opsional), format salah → 400.
func ParseDateTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(constants.DateTimeLayout, raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Format tanggal salah, gunakan "+constants.DateTimeLayout)
	}
	return &t, nil
}

// FormatDateTime membalikkan ke format API; pointer nil → string kosong.
func FormatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constants.DateTimeLayout)
}
