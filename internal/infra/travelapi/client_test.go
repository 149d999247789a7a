package travelapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/domain/timediff"
	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, slog.Default())
}

func TestSearchFlightsDecodesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/flights/search", r.URL.Path)
		require.Equal(t, "TPE", r.URL.Query().Get("origin"))
		require.Equal(t, "NRT", r.URL.Query().Get("destination"))
		require.Equal(t, "2099-06-01", r.URL.Query().Get("departure_date"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"flights": [{"price": 12000, "currency": "TWD", "airline": "EVA Air",
					"from": {"code": "TPE"}, "to": {"code": "NRT"},
					"departure": "2099-06-01T08:30:00+08:00", "duration": "PT3H25M"}],
				"exchange": {"base_currency": "TWD", "rates": {"JPY": 4.6632, "USD": 0.0312},
					"last_updated": "2025-03-01T08:00:00Z"},
				"price_advice": {"trend": "down", "advice": "建議立即購買"},
				"meta": {"count": 1}
			}
		}`))
	})

	payload, err := client.SearchFlights(context.Background(), flights.Criteria{
		Origin: "TPE", Destination: "NRT", DepartureDate: "2099-06-01",
	})
	require.NoError(t, err)
	require.Len(t, payload.Flights, 1)
	require.Equal(t, "EVA Air", payload.Flights[0].Airline)
	require.Equal(t, 1, payload.Meta.Count)
	require.Equal(t, "down", payload.Advice.Trend)

	// rates keep the body's key order
	require.Equal(t, flights.RateList{
		{Code: "JPY", Value: 4.6632},
		{Code: "USD", Value: 0.0312},
	}, payload.Exchange.Rates)
}

func TestSearchFlightsApplicationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "缺少必要參數: origin, destination, departure_date"}`))
	})

	_, err := client.SearchFlights(context.Background(), flights.Criteria{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeApplication))
	require.Equal(t, "缺少必要參數: origin, destination, departure_date", apperrors.UserMessage(err))
}

func TestSearchFlightsSuccessFalse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "外部服務逾時"}`))
	})

	_, err := client.SearchFlights(context.Background(), flights.Criteria{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeApplication))
	require.Equal(t, "外部服務逾時", apperrors.UserMessage(err))
}

func TestSearchFlightsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, time.Second, slog.Default())

	_, err := client.SearchFlights(context.Background(), flights.Criteria{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeTransport))
}

func TestSearchFlightsDatalessSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "ok"}`))
	})

	payload, err := client.SearchFlights(context.Background(), flights.Criteria{
		Origin: "TPE", Destination: "NRT", DepartureDate: "2099-06-01",
	})
	require.NoError(t, err)
	require.Empty(t, payload.Flights)
}

func TestTrackPricesDatalessSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	})

	report, err := client.TrackPrices(context.Background(), pricetrack.Query{
		Origin: "TPE", Destination: "NRT", Weeks: 12,
	})
	require.NoError(t, err)
	require.Empty(t, report.DataPoints)
}

func TestTrackPricesForwardsWeeks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/flights/track-prices", r.URL.Path)
		require.Equal(t, "12", r.URL.Query().Get("weeks"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": {
			"min_price": 80, "avg_price": 90, "max_price": 100,
			"best_date": "2025-03-01", "track_weeks": 12,
			"data_points": [{"week": 1, "date": "2025-02-22", "price": 100}]
		}}`))
	})

	report, err := client.TrackPrices(context.Background(), pricetrack.Query{
		Origin: "TPE", Destination: "NRT", Weeks: 12,
	})
	require.NoError(t, err)
	require.Equal(t, 12, report.TrackWeeks)
	require.Len(t, report.DataPoints, 1)
}

func TestConvertCurrencyPostsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/currency/convert", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "application/json")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": {
			"original_amount": 1000, "from_currency": "TWD",
			"converted_amount": 4663.2, "to_currency": "JPY",
			"exchange_rate": 4.6632, "last_updated": "2025-03-01T08:00:00Z"
		}}`))
	})

	conversion, err := client.ConvertCurrency(context.Background(), currency.Request{
		Amount: 1000, From: "TWD", To: "JPY",
	})
	require.NoError(t, err)
	require.Equal(t, 4663.2, conversion.ConvertedAmount)
}

func TestTimeDiffPostsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/timediff", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		require.Equal(t, "Asia/Taipei", r.PostForm.Get("from"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "from": "Asia/Taipei", "to": "Asia/Tokyo",
			"diff": 1, "diffStr": "1 小時"}`))
	})

	outcome, err := client.TimeDiff(context.Background(), timediff.Request{
		From: "Asia/Taipei", To: "Asia/Tokyo",
	})
	require.NoError(t, err)
	require.Equal(t, float64(1), outcome.Diff)
	require.Equal(t, "1 小時", outcome.DiffStr)
}

func TestTimeDiffRejectsNonJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>504 Gateway Timeout</html>"))
	})

	_, err := client.TimeDiff(context.Background(), timediff.Request{From: "a", To: "b"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeTransport))
	require.Contains(t, apperrors.UserMessage(err), "伺服器回應格式錯誤")
	require.Contains(t, apperrors.UserMessage(err), "504 Gateway Timeout")
}

func TestTimeDiffApplicationFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "無效的時區名稱"}`))
	})

	_, err := client.TimeDiff(context.Background(), timediff.Request{From: "a", To: "b"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeApplication))
	require.Equal(t, "無效的時區名稱", apperrors.UserMessage(err))
}

func TestSearchAttractionsReadsEnvelopeMeta(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/attractions/search", r.URL.Path)
		require.Equal(t, "35.6812", r.URL.Query().Get("lat"))
		require.Equal(t, "1000", r.URL.Query().Get("radius"))
		require.Empty(t, r.URL.Query().Get("category"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true,
			"data": [{"name": "明治神宮", "is_open_now": true}],
			"meta": {"radius": 1000, "location": "Tokyo Station"}}`))
	})

	payload, err := client.SearchAttractions(context.Background(), 35.6812, 139.7671,
		attractions.Params{Radius: 1000})
	require.NoError(t, err)
	require.Len(t, payload.Places, 1)
	require.NotNil(t, payload.Meta)
	require.Equal(t, "Tokyo Station", payload.Meta.Location)
}

func TestSearchAirportsDecodesSuggestions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/airports/search", r.URL.Path)
		require.Equal(t, "tp", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": [
			{"code": "TPE", "name": "台灣桃園國際機場", "city": "台北"}]}`))
	})

	matches, err := client.SearchAirports(context.Background(), "tp")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "TPE", matches[0].Code)
}
