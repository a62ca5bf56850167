package dto

// HitDto payload POST /hit; timestamp string "yyyy-MM-dd HH:mm:ss".
type HitDto struct {
	App       string `json:"app" validate:"required"`
	URI       string `json:"uri" validate:"required"`
	IP        string `json:"ip" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// StatsDto satu baris agregat GET /stats, urut hits menurun.
type StatsDto struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}
