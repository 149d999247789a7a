package attractions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

// Service exposes the geocode-then-search pipeline.
type Service interface {
	Search(ctx context.Context, params Params) (*Result, error)
}

// Geocoder resolves a free-text location to its best match. A nil
// result with a nil error means no match.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*GeocodeResult, error)
}

// API is the backend attraction-search endpoint.
type API interface {
	SearchAttractions(ctx context.Context, lat, lng float64, params Params) (*Payload, error)
}

// Config holds pipeline defaults.
type Config struct {
	DefaultRadius int
}

type service struct {
	cfg      Config
	geocoder Geocoder
	api      API
	logger   *slog.Logger
}

// NewService wires up the attractions domain.
func NewService(cfg Config, geocoder Geocoder, api API, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		geocoder: geocoder,
		api:      api,
		logger:   logger.With("component", "attractions.service"),
	}
}

func (s *service) Search(ctx context.Context, params Params) (*Result, error) {
	location := strings.TrimSpace(params.Location)
	if location == "" {
		return nil, apperrors.Wrap(apperrors.CodeValidation, "請輸入地點名稱", nil)
	}
	if params.Radius <= 0 {
		params.Radius = s.cfg.DefaultRadius
	}
	if params.Category == "all" {
		params.Category = ""
	}

	match, err := s.geocoder.Geocode(ctx, location)
	if err != nil || match == nil {
		return nil, apperrors.Wrap(apperrors.CodeApplication,
			fmt.Sprintf("找不到地點 %q，請嘗試更明確的名稱", location), err)
	}
	s.logger.Info("location geocoded", "query", location, "display_name", match.DisplayName)

	payload, err := s.api.SearchAttractions(ctx, match.Lat, match.Lng, params)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Location: match.DisplayName,
		Radius:   params.Radius,
	}
	if payload.Meta != nil {
		if payload.Meta.Location != "" {
			result.Location = payload.Meta.Location
		}
		if payload.Meta.Radius > 0 {
			result.Radius = payload.Meta.Radius
		}
	}
	for _, place := range payload.Places {
		result.Cards = append(result.Cards, normalize(place))
	}

	s.logger.Info("attractions classified", "location", result.Location, "count", len(result.Cards))
	return result, nil
}
