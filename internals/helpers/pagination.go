package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
	MaxSize     = 1000
)

// Params hasil parsing pagination gaya ewm: from = offset, size = limit.
type Params struct {
	From int
	Size int
}

// ParseFromSize membaca query param `from` dan `size`.
// Nilai negatif / size=0 → 400, supaya error validasi muncul
// sebelum query ke repository.
func ParseFromSize(c *fiber.Ctx) (Params, error) {
	p := Params{From: DefaultFrom, Size: DefaultSize}

	if raw := c.Query("from"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, fiber.NewError(fiber.StatusBadRequest, "Parameter 'from' harus bilangan >= 0")
		}
		p.From = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return p, fiber.NewError(fiber.StatusBadRequest, "Parameter 'size' harus bilangan > 0")
		}
		p.Size = n
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p, nil
}

// Offset & Limit tinggal dipakai langsung di query GORM.
func (p Params) Offset() int { return p.From }
func (p Params) Limit() int  { return p.Size }
