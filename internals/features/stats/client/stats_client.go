package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ewm_backend/internals/constants"
	"ewm_backend/internals/features/stats/dto"
)

// Client pembungkus HTTP ke stats-server. Dua operasi kontrak:
// AddHit (fire-and-forget) dan FindStats (agregat per URI).
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) AddHit(ctx context.Context, uri, ip string, at time.Time) error {
	payload := dto.HitDto{
		App:       constants.AppName,
		URI:       uri,
		IP:        ip,
		Timestamp: at.Format(constants.DateTimeLayout),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("kirim hit ke stats-server gagal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("stats-server menolak hit: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) FindStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.StatsDto, error) {
	params := url.Values{}
	params.Set("start", start.Format(constants.DateTimeLayout))
	params.Set("end", end.Format(constants.DateTimeLayout))
	if len(uris) > 0 {
		params.Set("uris", strings.Join(uris, ","))
	}
	params.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query stats-server gagal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats-server balas status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("body stats-server tidak bisa diparse: %w", err)
	}
	var stats []dto.StatsDto
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return nil, fmt.Errorf("data stats-server bukan list agregat: %w", err)
	}
	return stats, nil
}
