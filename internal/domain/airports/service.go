package airports

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Airport is one autocomplete suggestion.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Label renders the suggestion row text.
func (a Airport) Label() string {
	return fmt.Sprintf("%s - %s (%s)", a.Code, a.Name, a.City)
}

// Service exposes airport autocomplete lookups.
type Service interface {
	Suggest(ctx context.Context, query string) ([]Airport, error)
}

// API is the backend airport-search endpoint.
type API interface {
	SearchAirports(ctx context.Context, query string) ([]Airport, error)
}

type service struct {
	api    API
	logger *slog.Logger
}

// NewService wires up the airport autocomplete domain.
func NewService(api API, logger *slog.Logger) Service {
	return &service{
		api:    api,
		logger: logger.With("component", "airports.service"),
	}
}

// Suggest returns suggestions for queries of at least two characters.
// Shorter queries yield nothing without touching the network, and a
// failed lookup degrades to no suggestions instead of an error.
func (s *service) Suggest(ctx context.Context, query string) ([]Airport, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < 2 {
		return nil, nil
	}

	airports, err := s.api.SearchAirports(ctx, trimmed)
	if err != nil {
		s.logger.Warn("airport suggestion lookup failed", "query", trimmed, "error", err)
		return nil, nil
	}
	return airports, nil
}
