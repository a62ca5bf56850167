package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ewm_backend/internals/features/stats/dto"
	"ewm_backend/internals/features/stats/model"
)

type HitRepository struct {
	DB *gorm.DB
}

func NewHitRepository(db *gorm.DB) *HitRepository {
	return &HitRepository{DB: db}
}

func (r *HitRepository) Save(ctx context.Context, hit *model.HitModel) error {
	return r.DB.WithContext(ctx).Create(hit).Error
}

// GetStats mengagregasi hits per (app, uri) dalam rentang waktu.
// unique=true menghitung DISTINCT ip. uris kosong → semua URI.
func (r *HitRepository) GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.StatsDto, error) {
	counter := "COUNT(hit_ip)"
	if unique {
		counter = "COUNT(DISTINCT hit_ip)"
	}

	query := "SELECT hit_app AS app, hit_uri AS uri, " + counter + " AS hits " +
		"FROM hits WHERE hit_timestamp BETWEEN ? AND ? "
	args := []interface{}{start, end}

	if len(uris) > 0 {
		query += "AND hit_uri = ANY(?) "
		args = append(args, pq.Array(uris))
	}
	query += "GROUP BY hit_app, hit_uri ORDER BY hits DESC"

	var stats []dto.StatsDto
	err := r.DB.WithContext(ctx).Raw(query, args...).Scan(&stats).Error
	return stats, err
}
