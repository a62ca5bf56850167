package constants

import "time"

// Identitas aplikasi yang dikirim ke stats-service pada setiap hit
const (
	AppName      = "ewm-service"
	StatsAppName = "ewm-stats-server"
)

// Format tanggal yang dipakai di seluruh API (query param & body JSON)
const DateTimeLayout = "2006-01-02 15:04:05"

// Prefix URI kanonik untuk korelasi view count per event
const EventURIPrefix = "/events/"

// StartHistory = titik awal penghitungan statistik ("awal sejarah").
// Semua query views memakai rentang [StartHistory, now].
var StartHistory = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
