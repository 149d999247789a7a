package flights

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

type stubAPI struct {
	payload *Payload
	err     error
	calls   int
}

func (s *stubAPI) SearchFlights(ctx context.Context, criteria Criteria) (*Payload, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func newTestService(api API) Service {
	return NewService(Config{Currency: "TWD"}, api, slog.Default())
}

func validCriteria() Criteria {
	return Criteria{
		Origin:        "TPE",
		Destination:   "NRT",
		DepartureDate: "2099-06-01",
	}
}

func TestSearchValidation(t *testing.T) {
	api := &stubAPI{}
	svc := newTestService(api)

	cases := []Criteria{
		{},
		{Origin: "TPE", Destination: "NRT"},
		{Origin: "TPE", Destination: "NRT", DepartureDate: "01-06-2099"},
		{Origin: "TPE", Destination: "NRT", DepartureDate: "2001-01-01"},
		{Origin: "TPE", Destination: "NRT", DepartureDate: "2099-06-10", ReturnDate: "2099-06-01"},
	}
	for i, criteria := range cases {
		_, err := svc.Search(context.Background(), criteria)
		require.Error(t, err, "case %d", i)
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation), "case %d", i)
	}
	require.Zero(t, api.calls, "validation failures must not reach the network")
}

func TestSearchEmptyState(t *testing.T) {
	svc := newTestService(&stubAPI{payload: &Payload{}})

	result, err := svc.Search(context.Background(), validCriteria())
	require.NoError(t, err)
	require.True(t, result.Empty())
	require.Zero(t, result.Count)
	require.Nil(t, result.Weather)
	require.Nil(t, result.Exchange)
}

func TestSearchCountPrefersMeta(t *testing.T) {
	payload := &Payload{
		Flights: []Flight{{Airline: "EVA Air"}},
		Meta:    &Meta{Count: 7},
	}
	svc := newTestService(&stubAPI{payload: payload})

	result, err := svc.Search(context.Background(), validCriteria())
	require.NoError(t, err)
	require.Equal(t, 7, result.Count)
	require.Len(t, result.Offers, 1)
}

func TestSearchDerivesOfferAttributes(t *testing.T) {
	payload := &Payload{
		Flights: []Flight{{
			Price:        12000,
			Currency:     "TWD",
			Airline:      "EVA Air",
			FlightNumber: "BR198",
			From:         Airport{Code: "TPE"},
			To:           Airport{Code: "NRT"},
			Departure:    "2099-06-01T01:20:00+08:00",
			Arrival:      "2099-06-01T05:45:00+09:00",
			Duration:     "PT3H25M",
			Stops:        0,
		}},
	}
	svc := newTestService(&stubAPI{payload: payload})

	result, err := svc.Search(context.Background(), validCriteria())
	require.NoError(t, err)
	require.Len(t, result.Offers, 1)

	offer := result.Offers[0]
	require.True(t, offer.RedEye)
	require.Equal(t, "TPE", offer.FromCode)
	require.Equal(t, "NRT", offer.ToCode)
	require.False(t, offer.Departure.IsZero())

	// absent timestamps stay at the zero time and never count as red-eye
	payload.Flights[0].Departure = ""
	result, err = svc.Search(context.Background(), validCriteria())
	require.NoError(t, err)
	require.True(t, result.Offers[0].Departure.IsZero())
	require.False(t, result.Offers[0].RedEye)
}

func TestSearchOptionalBundles(t *testing.T) {
	payload := &Payload{
		Flights: []Flight{{Airline: "EVA Air"}},
		Weather: &WeatherBundle{
			DestinationWeather: &WeatherSummary{City: "Tokyo", AvgTemp: 8, Condition: "Rain"},
			TravelAdvice:       "旅行建議：注意保暖",
		},
		Advice: &PriceAdvice{Trend: "down", Advice: "建議立即購買", CurrentLowest: 12000, HistoryAvg: 15000},
	}
	svc := newTestService(&stubAPI{payload: payload})

	result, err := svc.Search(context.Background(), validCriteria())
	require.NoError(t, err)

	require.NotNil(t, result.Weather)
	require.NotEmpty(t, result.Weather.Packing, "packing list derives from destination weather")
	require.Nil(t, result.Weather.Origin)

	require.NotNil(t, result.Advice)
	require.Equal(t, TrendDown, result.Advice.Trend)
	require.True(t, result.Advice.HasHistory())

	// no destination weather means no packing list
	payload.Weather = &WeatherBundle{OriginWeather: &WeatherSummary{City: "Taipei"}}
	result, err = svc.Search(context.Background(), validCriteria())
	require.NoError(t, err)
	require.Empty(t, result.Weather.Packing)
}

func TestSearchPassesAPIErrorsThrough(t *testing.T) {
	wantErr := apperrors.Wrap(apperrors.CodeApplication, "搜尋失敗", nil)
	svc := newTestService(&stubAPI{err: wantErr})

	_, err := svc.Search(context.Background(), validCriteria())
	require.ErrorIs(t, err, wantErr)
}

func TestRateListPreservesResponseOrder(t *testing.T) {
	raw := []byte(`{"base_currency":"TWD","rates":{"JPY":4.6632,"USD":0.0312,"EUR":0.0288},"last_updated":"2025-03-01T08:00:00Z"}`)

	var bundle ExchangeBundle
	require.NoError(t, json.Unmarshal(raw, &bundle))
	require.Equal(t, RateList{
		{Code: "JPY", Value: 4.6632},
		{Code: "USD", Value: 0.0312},
		{Code: "EUR", Value: 0.0288},
	}, bundle.Rates)

	encoded, err := json.Marshal(bundle.Rates)
	require.NoError(t, err)
	require.JSONEq(t, `{"JPY":4.6632,"USD":0.0312,"EUR":0.0288}`, string(encoded))
}
