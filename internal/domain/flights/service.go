package flights

import (
	"context"
	"log/slog"
	"time"

	"github.com/luyao/tripdeck/internal/format"
	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

// Service exposes the flight search orchestration.
type Service interface {
	Search(ctx context.Context, criteria Criteria) (*Result, error)
}

// API is the backend flight search endpoint.
type API interface {
	SearchFlights(ctx context.Context, criteria Criteria) (*Payload, error)
}

// Config holds search defaults.
type Config struct {
	Currency string
}

type service struct {
	cfg    Config
	api    API
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the flight search domain.
func NewService(cfg Config, api API, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		api:    api,
		logger: logger.With("component", "flights.service"),
		now:    time.Now,
	}
}

func (s *service) Search(ctx context.Context, criteria Criteria) (*Result, error) {
	normalized := s.normalize(criteria)
	if err := validate(normalized, s.now()); err != nil {
		return nil, err
	}

	payload, err := s.api.SearchFlights(ctx, normalized)
	if err != nil {
		return nil, err
	}

	result := classify(payload)
	s.logger.Info("flight search classified",
		"route", normalized.Origin+"-"+normalized.Destination,
		"count", result.Count,
		"empty", result.Empty())
	return result, nil
}

func (s *service) normalize(c Criteria) Criteria {
	if c.Currency == "" {
		c.Currency = s.cfg.Currency
	}
	if c.Adults <= 0 {
		c.Adults = 1
	}
	return c
}

func validate(c Criteria, now time.Time) error {
	if c.Origin == "" || c.Destination == "" || c.DepartureDate == "" {
		return apperrors.Wrap(apperrors.CodeValidation, "缺少必要參數: origin, destination, departure_date", nil)
	}

	departure, err := time.Parse("2006-01-02", c.DepartureDate)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "出發日期格式須為 YYYY-MM-DD", err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if departure.Before(today) {
		return apperrors.Wrap(apperrors.CodeValidation, "出發日期不可早於今天", nil)
	}

	if c.ReturnDate != "" {
		ret, err := time.Parse("2006-01-02", c.ReturnDate)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeValidation, "回程日期格式須為 YYYY-MM-DD", err)
		}
		if ret.Before(departure) {
			return apperrors.Wrap(apperrors.CodeValidation, "回程日期不可早於出發日期", nil)
		}
	}
	return nil
}

// classify shapes the raw payload into the deterministic view states: the
// result count prefers the server-supplied meta count, every offer gets
// its derived attributes resolved, and the optional bundles stay nil when
// absent so the renderer can hide their panels.
func classify(payload *Payload) *Result {
	result := &Result{}
	if payload == nil {
		return result
	}

	result.Count = len(payload.Flights)
	if payload.Meta != nil && payload.Meta.Count > 0 {
		result.Count = payload.Meta.Count
	}

	for _, flight := range payload.Flights {
		result.Offers = append(result.Offers, buildOffer(flight))
	}

	if payload.Weather != nil {
		result.Weather = &WeatherView{
			Origin:       payload.Weather.OriginWeather,
			Destination:  payload.Weather.DestinationWeather,
			TravelAdvice: payload.Weather.TravelAdvice,
		}
		if payload.Weather.DestinationWeather != nil {
			result.Weather.Packing = PackingList(payload.Weather.DestinationWeather)
		}
	}

	result.Exchange = payload.Exchange

	if payload.Advice != nil {
		result.Advice = &AdviceView{
			Advice:        payload.Advice.Advice,
			CurrentLowest: payload.Advice.CurrentLowest,
			HistoryAvg:    payload.Advice.HistoryAvg,
			HistoryLow:    payload.Advice.HistoryLow,
			DiffPercent:   payload.Advice.DiffPercent,
			Trend:         ParseTrend(payload.Advice.Trend),
		}
	}

	return result
}

func buildOffer(f Flight) Offer {
	departure := format.ParseTimestamp(f.Departure)
	return Offer{
		FromCode:     f.From.Code,
		ToCode:       f.To.Code,
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		Departure:    departure,
		Arrival:      format.ParseTimestamp(f.Arrival),
		Duration:     f.Duration,
		Stops:        f.Stops,
		Price:        f.Price,
		Currency:     f.Currency,
		RedEye:       RedEye(departure),
	}
}
