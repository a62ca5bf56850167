package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ewm_backend/internals/constants"
)

func eventURI(eventID uint) string {
	return constants.EventURIPrefix + strconv.FormatUint(uint64(eventID), 10)
}

// extractEventID memparse id numerik di ekor URI hasil stats-service.
// URI yang kami kirim selalu berakhiran id; gagal parse berarti kontrak
// stats-service rusak → 500.
func extractEventID(uri string) (uint, error) {
	parts := strings.Split(uri, "/")
	raw := parts[len(parts)-1]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal parse event ID dari URI stats: "+uri)
	}
	return uint(id), nil
}

// fetchViews: hitungan unique-IP untuk satu event sejak StartHistory.
// Tidak ada record → 0.
func (s *EventService) fetchViews(ctx context.Context, eventID uint) (int64, error) {
	stats, err := s.stats.FindStats(ctx, constants.StartHistory, s.now(), []string{eventURI(eventID)}, true)
	if err != nil {
		return 0, err
	}
	if len(stats) == 0 {
		return 0, nil
	}
	return stats[0].Hits, nil
}

// fetchViewsBatch: satu query batch (uris digabung koma oleh client),
// hasilnya dipetakan balik id → hits.
func (s *EventService) fetchViewsBatch(ctx context.Context, eventIDs []uint) (map[uint]int64, error) {
	uris := make([]string, 0, len(eventIDs))
	for _, id := range eventIDs {
		uris = append(uris, eventURI(id))
	}
	stats, err := s.stats.FindStats(ctx, constants.StartHistory, s.now(), uris, true)
	if err != nil {
		return nil, err
	}
	viewsMap := make(map[uint]int64, len(stats))
	for _, stat := range stats {
		id, err := extractEventID(stat.URI)
		if err != nil {
			return nil, err
		}
		if _, exists := viewsMap[id]; !exists {
			viewsMap[id] = stat.Hits
		}
	}
	return viewsMap, nil
}
