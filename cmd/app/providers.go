package main

import (
	"log/slog"

	"github.com/luyao/tripdeck/internal/domain/airports"
	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/domain/timediff"
	"github.com/luyao/tripdeck/internal/infra/config"
	"github.com/luyao/tripdeck/internal/infra/geocode/nominatim"
	"github.com/luyao/tripdeck/internal/infra/travelapi"
	"github.com/luyao/tripdeck/internal/interface/tui"
)

func provideTravelAPIClient(cfg *config.Config, logger *slog.Logger) *travelapi.Client {
	return travelapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
}

func provideGeocoder(cfg *config.Config, logger *slog.Logger) *nominatim.Client {
	return nominatim.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, logger)
}

func provideFlightsConfig(cfg *config.Config) flights.Config {
	return flights.Config{
		Currency: cfg.UI.Currency,
	}
}

func provideTrackingConfig(cfg *config.Config) pricetrack.Config {
	return pricetrack.Config{
		DefaultWeeks: cfg.Tracking.DefaultWeeks,
		MaxWeeks:     cfg.Tracking.MaxWeeks,
	}
}

func provideAttractionsConfig(cfg *config.Config) attractions.Config {
	return attractions.Config{
		DefaultRadius: cfg.Attractions.DefaultRadius,
	}
}

func provideServices(
	flightsSvc flights.Service,
	trackingSvc pricetrack.Service,
	currencySvc currency.Service,
	timeDiffSvc timediff.Service,
	attractionsSvc attractions.Service,
	airportsSvc airports.Service,
) tui.Services {
	return tui.Services{
		Flights:     flightsSvc,
		Tracking:    trackingSvc,
		Currency:    currencySvc,
		TimeDiff:    timeDiffSvc,
		Attractions: attractionsSvc,
		Airports:    airportsSvc,
	}
}

func provideModel(services tui.Services, logger *slog.Logger) tui.Model {
	return tui.NewModel(services, logger)
}
