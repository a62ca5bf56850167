package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ewm_backend/internals/configs"
)

// StatsDB dipakai binary statsserver; skemanya terpisah dari DB utama.
var StatsDB *gorm.DB

func ConnectStatsDB() {
	log.Println("🔌 Koneksi ke PostgreSQL (stats-server)...")

	sslmode := getenv("STATS_DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ewm_stats&options=-c statement_timeout=3000",
		os.Getenv("STATS_DB_USER"),
		os.Getenv("STATS_DB_PASSWORD"),
		os.Getenv("STATS_DB_HOST"),
		os.Getenv("STATS_DB_PORT"),
		os.Getenv("STATS_DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek stats DB: %v", err)
	}
	StatsDB = db
	log.Println("✅ Stats DB connected.")
}

func TuneStatsPool() {
	sqlDB, err := StatsDB.DB()
	if err != nil {
		log.Printf("stats pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}
