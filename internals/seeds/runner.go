package seeds

import (
	categories "ewm_backend/internals/seeds/categories"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal; idempotent, baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	categories.SeedCategoriesFromJSON(db, "internals/seeds/categories/data_categories.json")
}
