package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FromFiberError mengubah error dari service layer (biasanya *fiber.Error)
// menjadi response JSON konsisten via helper.Error.
// gorm.ErrRecordNotFound yang lolos tanpa dibungkus dipetakan ke 404;
// selain itu fallback ke 500 dengan pesan asli.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
