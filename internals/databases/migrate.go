package database

import (
	"log"

	"gorm.io/gorm"

	categoryModel "ewm_backend/internals/features/categories/model"
	compilationModel "ewm_backend/internals/features/compilations/model"
	eventModel "ewm_backend/internals/features/events/model"
	requestModel "ewm_backend/internals/features/requests/model"
	statsModel "ewm_backend/internals/features/stats/model"
	userModel "ewm_backend/internals/features/users/model"
)

// MigrateEwm menjalankan AutoMigrate untuk seluruh tabel ewm-service.
// Urutan penting: tabel yang direferensikan FK dibuat lebih dulu.
func MigrateEwm(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&categoryModel.CategoryModel{},
		&eventModel.LocationModel{},
		&eventModel.EventModel{},
		&requestModel.RequestModel{},
		&compilationModel.CompilationModel{},
		&compilationModel.CompilationEventModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate ewm gagal: %v", err)
	}
	log.Println("✅ AutoMigrate ewm selesai.")
}

// MigrateStats menjalankan AutoMigrate untuk stats-server (tabel hits saja).
func MigrateStats(db *gorm.DB) {
	if err := db.AutoMigrate(&statsModel.HitModel{}); err != nil {
		log.Fatalf("❌ AutoMigrate stats gagal: %v", err)
	}
	log.Println("✅ AutoMigrate stats selesai.")
}
