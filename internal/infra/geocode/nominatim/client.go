package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/luyao/tripdeck/internal/domain/attractions"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client resolves free-text locations through the OpenStreetMap
// Nominatim API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a geocoding client. Nominatim's usage policy
// requires an identifying User-Agent.
func NewClient(baseURL, userAgent string, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With("component", "nominatim.client"),
	}
}

type match struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the highest-ranked match for a query, or nil when
// nothing matches.
func (c *Client) Geocode(ctx context.Context, query string) (*attractions.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var matches []match
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(matches) == 0 {
		c.logger.Info("no geocode match", "query", query)
		return nil, nil
	}

	first := matches[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode latitude %q: %w", first.Lat, err)
	}
	lng, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode longitude %q: %w", first.Lon, err)
	}

	return &attractions.GeocodeResult{
		Lat:         lat,
		Lng:         lng,
		DisplayName: first.DisplayName,
	}, nil
}
