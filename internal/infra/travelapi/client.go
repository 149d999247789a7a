package travelapi

import (
	"bytes"
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

	"github.com/google/uuid"

	"github.com/luyao/tripdeck/internal/domain/airports"
	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/domain/timediff"
	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the travel backend. One instance serves every
// endpoint the backend exposes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a backend client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "travelapi.client"),
	}
}

// envelope is the backend's uniform response wrapper. Success is a
// pointer so endpoints that omit the flag stay distinguishable from an
// explicit false.
type envelope struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

// SearchFlights implements flights.API.
func (c *Client) SearchFlights(ctx context.Context, criteria flights.Criteria) (*flights.Payload, error) {
	query := url.Values{}
	query.Set("origin", criteria.Origin)
	query.Set("destination", criteria.Destination)
	query.Set("departure_date", criteria.DepartureDate)
	if criteria.ReturnDate != "" {
		query.Set("return_date", criteria.ReturnDate)
	}
	if criteria.Adults > 0 {
		query.Set("adults", strconv.Itoa(criteria.Adults))
	}
	if criteria.Currency != "" {
		query.Set("currency", criteria.Currency)
	}

	env, err := c.getJSON(ctx, "/api/flights/search", query, "搜尋失敗")
	if err != nil {
		return nil, err
	}

	var payload flights.Payload
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &payload); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeTransport, "搜尋失敗", fmt.Errorf("decode search payload: %w", err))
		}
	}
	return &payload, nil
}

// TrackPrices implements pricetrack.API.
func (c *Client) TrackPrices(ctx context.Context, q pricetrack.Query) (*pricetrack.Report, error) {
	query := url.Values{}
	query.Set("origin", q.Origin)
	query.Set("destination", q.Destination)
	query.Set("weeks", strconv.Itoa(q.Weeks))

	env, err := c.getJSON(ctx, "/api/flights/track-prices", query, "價格追蹤失敗")
	if err != nil {
		return nil, err
	}

	var report pricetrack.Report
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &report); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeTransport, "價格追蹤失敗", fmt.Errorf("decode tracking payload: %w", err))
		}
	}
	return &report, nil
}

// ConvertCurrency implements currency.API.
func (c *Client) ConvertCurrency(ctx context.Context, req currency.Request) (*currency.Conversion, error) {
	body := map[string]any{
		"amount":        req.Amount,
		"from_currency": req.From,
		"to_currency":   req.To,
	}

	env, err := c.postJSON(ctx, "/api/currency/convert", body, "轉換失敗")
	if err != nil {
		return nil, err
	}

	var conversion currency.Conversion
	if err := json.Unmarshal(env.Data, &conversion); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "轉換服務暫時不可用", fmt.Errorf("decode conversion payload: %w", err))
	}
	return &conversion, nil
}

// TimeDiff implements timediff.API. The endpoint answers a flat JSON
// object rather than the data envelope, and a non-JSON content type is
// a protocol violation surfaced with the raw body.
func (c *Client) TimeDiff(ctx context.Context, req timediff.Request) (*timediff.Outcome, error) {
	form := url.Values{}
	form.Set("from", req.From)
	form.Set("to", req.To)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/timediff",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "連線錯誤，請檢查網路或後端服務是否正常", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "伺服器回應格式錯誤: "+string(body), nil)
	}

	var raw struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
		timediff.Outcome
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "伺服器回應格式錯誤: "+string(body), err)
	}
	if resp.StatusCode >= 300 || (raw.Success != nil && !*raw.Success) {
		message := raw.Error
		if message == "" {
			message = "計算時差失敗，請檢查時區名稱是否為 Region/City 格式。"
		}
		return nil, apperrors.Wrap(apperrors.CodeApplication, message, nil)
	}
	return &raw.Outcome, nil
}

// SearchAttractions implements attractions.API. The meta block rides on
// the envelope rather than inside data.
func (c *Client) SearchAttractions(ctx context.Context, lat, lng float64, params attractions.Params) (*attractions.Payload, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("radius", strconv.Itoa(params.Radius))
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}

	env, err := c.getJSON(ctx, "/api/attractions/search", query, "搜尋失敗")
	if err != nil {
		return nil, err
	}

	payload := &attractions.Payload{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &payload.Places); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeTransport, "搜尋失敗", fmt.Errorf("decode attractions payload: %w", err))
		}
	}
	if len(env.Meta) > 0 {
		var meta attractions.Meta
		if err := json.Unmarshal(env.Meta, &meta); err == nil {
			payload.Meta = &meta
		}
	}
	return payload, nil
}

// SearchAirports implements airports.API.
func (c *Client) SearchAirports(ctx context.Context, q string) ([]airports.Airport, error) {
	query := url.Values{}
	query.Set("q", q)

	env, err := c.getJSON(ctx, "/api/airports/search", query, "搜尋機場失敗")
	if err != nil {
		return nil, err
	}

	var matches []airports.Airport
	if err := json.Unmarshal(env.Data, &matches); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "搜尋機場失敗", fmt.Errorf("decode airports payload: %w", err))
	}
	return matches, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, fallback string) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, fallback, err)
	}
	return c.doEnvelope(req, fallback)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, fallback string) (*envelope, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, fallback, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, fallback, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doEnvelope(req, fallback)
}

// doEnvelope runs a request and classifies the outcome: a reachable
// endpoint reporting failure is an application error carrying the
// server's message, everything else is a transport error.
func (c *Client) doEnvelope(req *http.Request, fallback string) (*envelope, error) {
	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 300 {
			return nil, apperrors.Wrap(apperrors.CodeTransport,
				fmt.Sprintf("伺服器回應異常 (HTTP %d)", resp.StatusCode), err)
		}
		return nil, apperrors.Wrap(apperrors.CodeTransport, fallback, fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode >= 300 || (env.Success != nil && !*env.Success) {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		if message == "" {
			message = fallback
		}
		return nil, apperrors.Wrap(apperrors.CodeApplication, message, nil)
	}
	return &env, nil
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			"request_id", requestID,
			"path", req.URL.Path,
			"error", err)
		return nil, nil, apperrors.Wrap(apperrors.CodeTransport, "連線錯誤，請檢查網路或後端服務是否正常", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.CodeTransport, "連線錯誤，請檢查網路或後端服務是否正常", err)
	}

	c.logger.Debug("backend request done",
		"request_id", requestID,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))
	return resp, body, nil
}
